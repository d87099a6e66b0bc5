package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the household calculator.
type Metrics struct {
	// Calculation runs by overall eligibility outcome
	Calculations *prometheus.CounterVec

	// Calculation latency including classification
	CalculateLatency prometheus.Histogram
}

// New creates a Metrics instance with all calculator metrics registered.
func New() *Metrics {
	return &Metrics{
		Calculations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "komek_household_calculations_total",
			Help: "Total household calculation runs by eligibility outcome",
		}, []string{"eligible"}),

		CalculateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "komek_household_calculate_duration_seconds",
			Help:    "Duration of a full eligibility evaluation run",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
	}
}

// IncrementCalculations records a calculation run outcome.
func (m *Metrics) IncrementCalculations(eligible bool) {
	if m != nil {
		label := "false"
		if eligible {
			label = "true"
		}
		m.Calculations.WithLabelValues(label).Inc()
	}
}

// ObserveCalculateLatency records the evaluation duration.
func (m *Metrics) ObserveCalculateLatency(d time.Duration) {
	if m != nil {
		m.CalculateLatency.Observe(d.Seconds())
	}
}
