// Package observability wires Prometheus instrumentation for the serving
// adapters. The balancing core stays unmeasured and pure; adapters observe
// around it.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Outcome label values for the balance request counter.
const (
	OutcomeBalanced   = "balanced"
	OutcomeParseError = "parse_error"
	OutcomeUnsolvable = "unsolvable"
)

// Metrics bundles the collectors on a private registry, so tests can create
// as many instances as they need without duplicate-registration panics.
type Metrics struct {
	Registry *prometheus.Registry

	BalanceRequests *prometheus.CounterVec
	SolveDuration   prometheus.Histogram
}

// NewMetrics creates and registers all collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		BalanceRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stoich_balance_requests_total",
				Help: "Balance requests by outcome.",
			},
			[]string{"outcome"},
		),
		SolveDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "stoich_solve_duration_seconds",
				Help:    "Wall time of the full parse-solve-normalize pipeline.",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
	}
	m.Registry.MustRegister(
		m.BalanceRequests,
		m.SolveDuration,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveBalance records one request.
func (m *Metrics) ObserveBalance(outcome string, elapsed time.Duration) {
	m.BalanceRequests.WithLabelValues(outcome).Inc()
	m.SolveDuration.Observe(elapsed.Seconds())
}
