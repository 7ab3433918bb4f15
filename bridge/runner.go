package bridge

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
)

// ParseOptions parses command line arguments; environment variables fill any unset flag.
func ParseOptions(args []string) (*Options, error) {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return nil, err
	}
	return options, nil
}

// Run bridges stdin/stdout to the configured endpoint until input drains.
// SIGINT and SIGTERM stop the process at once with status 0.
func Run(args []string) error {
	options, err := ParseOptions(args)
	if err != nil {
		return err
	}
	ctx := context.Background()
	srv, err := New(ctx, options)
	if err != nil {
		return err
	}
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		os.Exit(0)
	}()
	return srv.Serve(ctx, os.Stdin)
}
