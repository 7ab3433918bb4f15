// Package bridge forwards a line delimited JSON stream to a remote HTTP endpoint.
//
// Every input line is posted as its own request without waiting on earlier
// ones. Responses are either a single JSON document or a server-sent-event
// stream. Each JSON event they carry is written back as one output line.
// The remote's session header is echoed on later requests. The bridge stops
// once input is closed and no request is still in flight.
//
// The `mcpb` command in the mcpb sub directory wraps this package for use as
// a stdio tool host server.
package bridge
