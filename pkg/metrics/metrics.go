package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Dashboard gauges, refreshed by the periodic worker
	RevenueToday         prometheus.Gauge
	AppointmentsToday    prometheus.Gauge
	LowStockItems        prometheus.Gauge
	PendingPaymentAlerts prometheus.Gauge
	BranchRevenueTotal   *prometheus.GaugeVec

	// Refresh worker metrics
	RefreshRuns     prometheus.Counter
	RefreshDuration prometheus.Histogram

	// HTTP metrics, observed by the router
	RequestDuration *prometheus.HistogramVec
	RequestTotal    *prometheus.CounterVec
}

// New creates and registers all application metrics against the given
// registerer. Tests pass a fresh registry to avoid collisions.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RevenueToday: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "revenue_today",
			Help:      "Revenue recorded today across all branches",
		}),
		AppointmentsToday: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "appointments_today",
			Help:      "Appointments booked for today across all branches",
		}),
		LowStockItems: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "low_stock_items",
			Help:      "Inventory items currently at or below their reorder threshold",
		}),
		PendingPaymentAlerts: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_payment_alerts",
			Help:      "Patients with an outstanding balance",
		}),
		BranchRevenueTotal: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "branch_revenue_total",
			Help:      "All-time revenue per branch",
		}, []string{"branch"}),

		RefreshRuns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_refresh_runs_total",
			Help:      "Total number of dashboard snapshot refreshes",
		}),
		RefreshDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dashboard_refresh_duration_seconds",
			Help:      "Time spent recomputing the dashboard snapshot",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
		}, []string{"method", "path", "status"}),
		RequestTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
	}
}
