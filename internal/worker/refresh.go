package worker

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/ebtesamty/dashboard-api/internal/model"
	"github.com/ebtesamty/dashboard-api/internal/service/report"
	"github.com/ebtesamty/dashboard-api/pkg/logger"
	"github.com/ebtesamty/dashboard-api/pkg/metrics"
)

// SnapshotKey is where the refresher parks the latest dashboard snapshot.
const SnapshotKey = "dashboard:snapshot"

// Refresher periodically recomputes the dashboard aggregates, caches the
// snapshot for the read handlers and publishes the figures as metrics. Each
// tick recomputes from scratch; nothing accumulates between runs.
type Refresher struct {
	reports  *report.Service
	cache    *cache.Cache
	metrics  *metrics.Metrics
	logger   *logger.Logger
	interval time.Duration
}

func NewRefresher(reports *report.Service, c *cache.Cache, m *metrics.Metrics, l *logger.Logger, interval time.Duration) *Refresher {
	return &Refresher{
		reports:  reports,
		cache:    c,
		metrics:  m,
		logger:   l,
		interval: interval,
	}
}

// Start runs until the context is cancelled. An immediate refresh warms the
// cache before the first tick.
func (r *Refresher) Start(ctx context.Context) {
	r.Refresh()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Refresh()
		}
	}
}

// Refresh recomputes the snapshot once.
func (r *Refresher) Refresh() {
	start := time.Now()
	today := start.Format(model.DateLayout)

	snapshot := model.DashboardSnapshot{
		Overview:    r.reports.Overview(today),
		Branches:    r.reports.BranchOverviews(today),
		Alerts:      r.reports.Alerts(),
		RefreshedAt: start,
	}
	r.cache.Set(SnapshotKey, snapshot, cache.DefaultExpiration)

	r.metrics.RevenueToday.Set(snapshot.Overview.RevenueToday)
	r.metrics.AppointmentsToday.Set(float64(snapshot.Overview.AppointmentsToday))
	r.metrics.LowStockItems.Set(float64(snapshot.Overview.LowStockTotal))

	var pendingPayments int
	for _, alert := range snapshot.Alerts {
		if alert.Severity == model.AlertSeverityWarning {
			pendingPayments++
		}
	}
	r.metrics.PendingPaymentAlerts.Set(float64(pendingPayments))

	for _, total := range r.reports.BranchRevenueTotals() {
		r.metrics.BranchRevenueTotal.WithLabelValues(total.Branch).Set(total.Total)
	}

	r.metrics.RefreshRuns.Inc()
	r.metrics.RefreshDuration.Observe(time.Since(start).Seconds())
	r.logger.Debug("dashboard snapshot refreshed", "alerts", len(snapshot.Alerts))
}
