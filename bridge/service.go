package bridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"time"
)

const readChunk = 32 * 1024

// Service bridges a line delimited JSON stream to a remote HTTP endpoint.
type Service struct {
	options    *Options
	session    *Session
	lifecycle  *Lifecycle
	metrics    *Metrics
	dispatcher *Dispatcher
	logger     *log.Logger
	out        io.Writer
	httpClient *http.Client
}

// Option customises a Service.
type Option func(s *Service)

// WithOutput sets the protocol output stream, os.Stdout by default.
func WithOutput(out io.Writer) Option {
	return func(s *Service) {
		s.out = out
	}
}

// WithLogger sets the diagnostics logger, stderr by default.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithHTTPClient replaces the client built from Options.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.httpClient = client
	}
}

// New constructs a bridge Service.
func New(ctx context.Context, options *Options, opts ...Option) (*Service, error) {
	if options == nil {
		options = &Options{}
	}
	options.Init()
	ret := &Service{
		options:   options,
		session:   &Session{},
		lifecycle: NewLifecycle(),
		metrics:   NewMetrics(),
		out:       os.Stdout,
		logger:    log.New(os.Stderr, "mcpb: ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.httpClient == nil {
		client, err := newHTTPClient(options.URL, options.Token, options.Timeout)
		if err != nil {
			return nil, err
		}
		ret.httpClient = client
	}
	ret.dispatcher = &Dispatcher{
		endpoint:      options.URL,
		sessionHeader: options.SessionHeader,
		client:        ret.httpClient,
		session:       ret.session,
		lifecycle:     ret.lifecycle,
		writer:        NewWriter(ret.out),
		metrics:       ret.metrics,
		logger:        ret.logger,
	}
	if options.MaxInFlight > 0 {
		ret.dispatcher.slots = make(chan struct{}, options.MaxInFlight)
	}
	return ret, nil
}

// Session returns the shared session state.
func (s *Service) Session() *Session {
	return s.session
}

// Lifecycle returns the termination tracker.
func (s *Service) Lifecycle() *Lifecycle {
	return s.lifecycle
}

// Metrics returns the service collectors.
func (s *Service) Metrics() *Metrics {
	return s.metrics
}

// Serve reads request lines from in until it is exhausted and every dispatched call has completed.
// Cancelling ctx returns immediately without draining.
func (s *Service) Serve(ctx context.Context, in io.Reader) error {
	if s.options.MetricsAddr != "" {
		srv, err := s.serveMetrics(s.options.MetricsAddr)
		if err != nil {
			return err
		}
		defer srv.Close()
	}
	go s.read(ctx, in)
	select {
	case <-s.lifecycle.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) read(ctx context.Context, in io.Reader) {
	defer s.lifecycle.CloseInput()
	framer := &Framer{}
	buf := make([]byte, readChunk)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			for _, line := range framer.Push(buf[:n]) {
				s.dispatch(ctx, line)
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.logger.Printf("input read failed: %v", err)
			}
			break
		}
	}
	if line, ok := framer.Flush(); ok {
		s.dispatch(ctx, line)
	}
}

// dispatch isolates per line failures so one bad line never stops the read loop.
func (s *Service) dispatch(ctx context.Context, line string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Printf("line handling failed: %v", r)
		}
	}()
	s.dispatcher.Dispatch(ctx, line)
}

func (s *Service) serveMetrics(addr string) (*http.Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %v: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.metrics.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Printf("metrics server failed: %v", err)
		}
	}()
	return srv, nil
}
