// Package metrics exposes Prometheus collectors for the order service:
// lifecycle transition attempts and HTTP traffic.
package metrics

import (
	"context"
	"net/http"

	"fulfillment/internal/core/application/orderstate"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fulfillment"

// TransitionMetrics counts order transition attempts by operation and outcome.
// It is an orderstate.Observer.
type TransitionMetrics struct {
	transitions *prometheus.CounterVec
}

// NewTransitionMetrics creates the collector and registers it on reg.
func NewTransitionMetrics(reg prometheus.Registerer) (*TransitionMetrics, error) {
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_transitions_total",
		Help:      "Total number of order lifecycle transition attempts.",
	}, []string{"operation", "outcome"})

	if err := reg.Register(transitions); err != nil {
		return nil, err
	}

	return &TransitionMetrics{transitions: transitions}, nil
}

// Observe records one transition attempt.
func (m *TransitionMetrics) Observe(_ context.Context, result orderstate.Result) {
	m.transitions.WithLabelValues(string(result.Operation), string(result.Outcome)).Inc()
}

// ServerMetrics holds the HTTP request collectors.
type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

// NewServerMetrics creates the HTTP collectors and registers them on reg.
func NewServerMetrics(reg prometheus.Registerer) (*ServerMetrics, error) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})

	for _, c := range []prometheus.Collector{requests, latency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return &ServerMetrics{Requests: requests, LatencyMS: latency}, nil
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
