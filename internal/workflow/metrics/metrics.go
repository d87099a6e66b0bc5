package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the workflow engine.
type Metrics struct {
	// Action executions by action and outcome
	Executions *prometheus.CounterVec

	// Applied status transitions by from/to pair
	Transitions *prometheus.CounterVec
}

// New creates a Metrics instance with all workflow metrics registered.
func New() *Metrics {
	return &Metrics{
		Executions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "komek_workflow_executions_total",
			Help: "Total workflow action executions by action and outcome",
		}, []string{"action", "outcome"}),

		Transitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "komek_workflow_transitions_total",
			Help: "Total applied application status transitions",
		}, []string{"from", "to"}),
	}
}

// IncrementExecutions records one action execution outcome.
func (m *Metrics) IncrementExecutions(action, outcome string) {
	if m != nil {
		m.Executions.WithLabelValues(action, outcome).Inc()
	}
}

// IncrementTransitions records one applied status transition.
func (m *Metrics) IncrementTransitions(from, to string) {
	if m != nil {
		m.Transitions.WithLabelValues(from, to).Inc()
	}
}
