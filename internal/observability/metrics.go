package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the dashboard.
type Metrics struct {
	Submissions    *prometheus.CounterVec // labels: outcome={valid,ignored,invalid}
	Renders        *prometheus.CounterVec // labels: outcome={ok,no_data,not_found,error}
	RenderDuration prometheus.Histogram
	SessionsActive prometheus.Gauge
	ReferenceRows  *prometheus.GaugeVec // labels: table={seasonality,locations}
}

func newMetrics() *Metrics {
	return &Metrics{
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "submissions_total",
			Help:      "Form submissions by outcome.",
		}, []string{"outcome"}),
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "renders_total",
			Help:      "Chart pair renders by outcome.",
		}, []string{"outcome"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dashboard",
			Name:      "render_duration_seconds",
			Help:      "Time to resolve and draw both charts.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dashboard",
			Name:      "sessions_active",
			Help:      "Sessions currently holding a selection.",
		}),
		ReferenceRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "dashboard",
			Name:      "reference_rows",
			Help:      "Rows loaded per reference table.",
		}, []string{"table"}),
	}
}

// NewMetrics creates and registers all dashboard metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Submissions,
		m.Renders,
		m.RenderDuration,
		m.SessionsActive,
		m.ReferenceRows,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
