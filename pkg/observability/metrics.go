package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "waterjug"

// Metrics groups the collectors exported by the service.
type Metrics struct {
	Solves        *prometheus.CounterVec
	SolveDuration prometheus.Histogram
	TraceSteps    prometheus.Histogram
	Requests      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "solves_total",
				Help:      "Total number of solves by outcome",
			},
			[]string{"outcome"},
		),
		SolveDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solve_duration_seconds",
				Help:      "Duration of solves, including short-circuited ones",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		TraceSteps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "trace_steps",
				Help:      "Number of steps in solved traces",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "code"},
		),
	}

	reg.MustRegister(m.Solves, m.SolveDuration, m.TraceSteps, m.Requests)
	return m
}

// Hooks returns lifecycle hooks recording every finished solve.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSolveFinish: func(_ context.Context, e *domain.SolveEvent) {
			m.Solves.WithLabelValues(string(e.Outcome)).Inc()
			m.SolveDuration.Observe(e.Duration.Seconds())
			if e.Outcome == domain.OutcomeSolved {
				m.TraceSteps.Observe(float64(e.Steps))
			}
		},
	}
}

// Handler exposes the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
