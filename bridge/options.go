package bridge

import "time"

// DefaultURL is the remote endpoint used when neither flag nor environment names one.
const DefaultURL = "http://localhost:8080/mcp"

type Options struct {
	URL           string        `short:"u" long:"url" env:"MCPB_URL" description:"remote endpoint url" default:"http://localhost:8080/mcp"`
	SessionHeader string        `long:"session-header" env:"MCPB_SESSION_HEADER" description:"session affinity header" default:"Mcp-Session-Id"`
	Token         string        `short:"t" long:"token" env:"MCPB_TOKEN" description:"static bearer token"`
	MaxInFlight   int           `long:"max-inflight" env:"MCPB_MAX_INFLIGHT" description:"max concurrent remote calls, 0 is unbounded"`
	Timeout       time.Duration `long:"timeout" env:"MCPB_TIMEOUT" description:"per request timeout, 0 disables it"`
	MetricsAddr   string        `long:"metrics" env:"MCPB_METRICS" description:"prometheus listen address, e.g. 127.0.0.1:9090"`
}

// Init fills zero values with defaults.
func (o *Options) Init() {
	if o.URL == "" {
		o.URL = DefaultURL
	}
	if o.SessionHeader == "" {
		o.SessionHeader = DefaultSessionHeader
	}
	if o.MaxInFlight < 0 {
		o.MaxInFlight = 0
	}
}
