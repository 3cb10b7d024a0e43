package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the store operation collectors.
type Metrics struct {
	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
	Tasks      prometheus.Gauge
}

// New creates the collectors and registers them with reg when it is not nil.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskboard_store_operations_total",
				Help: "Store operations by name and outcome",
			},
			[]string{"operation", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "taskboard_store_operation_seconds",
				Help:    "Time spent inside the store, including the wait for the store lock",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		Tasks: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "taskboard_tasks_last_listed_total",
			Help: "Total matching tasks reported by the most recent list call",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Operations, m.Duration, m.Tasks)
	}
	return m
}

// Observe records one finished operation. A nil receiver is a no-op.
func (m *Metrics) Observe(operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Operations.WithLabelValues(operation, outcome).Inc()
	m.Duration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// SetListedTotal records the total reported by a list call.
func (m *Metrics) SetListedTotal(total int) {
	if m == nil {
		return
	}
	m.Tasks.Set(float64(total))
}
