package bridge

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	outcomeOK             = "ok"
	outcomeTransportError = "transport_error"
	outcomeInvalidInput   = "invalid_input"
	outcomeStatusError    = "status_error"
)

// Metrics collects bridge counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	events   prometheus.Counter
	inflight prometheus.Gauge
}

// NewMetrics creates and registers bridge collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcpb",
			Name:      "requests_total",
			Help:      "Input lines handled, by outcome.",
		}, []string{"outcome"}),
		events: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mcpb",
			Name:      "events_total",
			Help:      "Decoded events written to the output stream.",
		}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mcpb",
			Name:      "inflight",
			Help:      "HTTP calls currently in flight.",
		}),
	}
	m.registry.MustRegister(m.requests, m.events, m.inflight)
	return m
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
