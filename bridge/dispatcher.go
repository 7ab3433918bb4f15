package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/jsonrpc"
)

const acceptHeader = "application/json, text/event-stream"

// Dispatcher forwards each request line to the remote endpoint and routes decoded events to the writer.
type Dispatcher struct {
	endpoint      string
	sessionHeader string
	client        *http.Client
	session       *Session
	lifecycle     *Lifecycle
	writer        *Writer
	metrics       *Metrics
	logger        *log.Logger
	slots         chan struct{}
}

// Dispatch validates line and, when it is JSON, issues the remote call on its own goroutine.
// Invalid lines are reported and never counted as pending.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) {
	payload := []byte(line)
	if !json.Valid(payload) {
		d.metrics.requests.WithLabelValues(outcomeInvalidInput).Inc()
		d.logger.Printf("invalid request line: %v", truncate(line, 120))
		return
	}
	d.lifecycle.Begin()
	go d.forward(ctx, payload)
}

func (d *Dispatcher) forward(ctx context.Context, payload []byte) {
	id := uuid.NewString()[:8]
	defer d.lifecycle.Complete()
	defer func() {
		if r := recover(); r != nil {
			d.metrics.requests.WithLabelValues(outcomeTransportError).Inc()
			d.logger.Printf("[%v] %v: dispatch panic: %v", id, describe(payload), r)
		}
	}()
	if d.slots != nil {
		select {
		case d.slots <- struct{}{}:
			defer func() { <-d.slots }()
		case <-ctx.Done():
			d.logger.Printf("[%v] %v: %v", id, describe(payload), ctx.Err())
			return
		}
	}
	d.metrics.inflight.Inc()
	defer d.metrics.inflight.Dec()

	outcome, err := d.call(ctx, payload)
	d.metrics.requests.WithLabelValues(outcome).Inc()
	if err != nil {
		d.logger.Printf("[%v] %v: %v", id, describe(payload), err)
	}
}

func (d *Dispatcher) call(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(payload))
	if err != nil {
		return outcomeTransportError, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", jsonMediaType.String())
	req.Header.Set("Accept", acceptHeader)
	if token := d.session.Token(); token != "" {
		req.Header.Set(d.sessionHeader, token)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return outcomeTransportError, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	d.session.SetToken(resp.Header.Get(d.sessionHeader))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return outcomeTransportError, fmt.Errorf("failed to read response: %w", err)
	}
	events := Decode(resp.Header.Get("Content-Type"), body)
	written, err := d.writer.Write(events)
	d.metrics.events.Add(float64(written))
	if err != nil {
		return outcomeTransportError, fmt.Errorf("failed to write events: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		if written == 0 {
			return outcomeStatusError, fmt.Errorf("unexpected status: %v", resp.Status)
		}
		return outcomeStatusError, nil
	}
	return outcomeOK, nil
}

// describe names a request line for diagnostics, using its JSON-RPC method and id when present.
func describe(payload []byte) string {
	request := &jsonrpc.Request{}
	if err := json.Unmarshal(payload, request); err != nil || request.Method == "" {
		return "request"
	}
	id := fmt.Sprint(request.Id)
	if id == "" || id == "<nil>" {
		return request.Method
	}
	return request.Method + "#" + id
}

func truncate(text string, limit int) string {
	text = strings.TrimSpace(text)
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
