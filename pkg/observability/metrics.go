package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records execution counts and durations in Prometheus collectors.
type Metrics struct {
	executions *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		executions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "usecase_executions_total",
				Help: "Total number of use case executions by outcome status",
			},
			[]string{"use_case", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "usecase_execution_duration_seconds",
				Help: "Duration of use case executions",
			},
			[]string{"use_case"},
		),
	}
	reg.MustRegister(m.executions, m.duration)
	return m
}

// Hooks returns lifecycle hooks that record the collectors.
func (m *Metrics) Hooks() Hooks {
	return Hooks{
		OnOutcome: func(ctx context.Context, e *OutcomeEvent) {
			m.executions.WithLabelValues(e.UseCase, e.Status).Inc()
			m.duration.WithLabelValues(e.UseCase).Observe(e.Duration.Seconds())
		},
	}
}
