// Command mcpb runs the stdio to HTTP bridge.
//
// A tool host starts mcpb as a stdio server. mcpb posts each request line to
// the remote endpoint given by --url, or by MCPB_URL when that is set, and
// writes every JSON event of the reply to stdout. Diagnostics go to stderr.
// It exits with status 0 once stdin is closed and all requests have completed.
package main
