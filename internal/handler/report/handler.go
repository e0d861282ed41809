package report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/ebtesamty/dashboard-api/internal/config"
	"github.com/ebtesamty/dashboard-api/internal/handler"
	"github.com/ebtesamty/dashboard-api/internal/model"
	"github.com/ebtesamty/dashboard-api/internal/service/report"
	"github.com/ebtesamty/dashboard-api/internal/worker"
)

// Handler serves the dashboard read endpoints. Overview and alerts are
// answered from the refresher's cached snapshot when one is available, with
// a live recompute as the fallback.
type Handler struct {
	reports *report.Service
	cache   *cache.Cache
	cfg     config.DashboardConfig
}

func NewHandler(reports *report.Service, c *cache.Cache, cfg config.DashboardConfig) *Handler {
	return &Handler{reports: reports, cache: c, cfg: cfg}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/overview", h.GetOverview)
		dashboard.GET("/revenue/daily", h.GetDailyRevenue)
		dashboard.GET("/revenue/branches", h.GetBranchRevenue)
		dashboard.GET("/alerts", h.GetAlerts)
	}

	r.GET("/appointments/upcoming", h.GetUpcomingAppointments)
	r.GET("/branches", h.ListBranches)
}

func (h *Handler) GetOverview(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.snapshot()))
}

func (h *Handler) GetDailyRevenue(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(h.cfg.RevenueDays)))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid days parameter"))
		return
	}

	window := report.LastNDays(time.Now(), days)
	series := model.RevenueSeries{
		Days:   window,
		Totals: h.reports.DailyRevenueSeries(window),
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(series))
}

func (h *Handler) GetBranchRevenue(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.reports.BranchRevenueTotals()))
}

// GetAlerts truncates the feed to the requested limit. The cap lives here,
// not in the report service: the dashboard shows the first few alerts, other
// consumers can ask for more.
func (h *Handler) GetAlerts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.cfg.AlertLimit)))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid limit parameter"))
		return
	}

	alerts := h.snapshot().Alerts
	if limit > 0 && len(alerts) > limit {
		alerts = alerts[:limit]
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(alerts))
}

func (h *Handler) GetUpcomingAppointments(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.cfg.UpcomingLimit)))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid limit parameter"))
		return
	}

	asOf := c.DefaultQuery("from", time.Now().Format(model.DateLayout))
	appointments := h.reports.UpcomingAppointments(asOf, limit)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) ListBranches(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.reports.Branches()))
}

func (h *Handler) snapshot() model.DashboardSnapshot {
	if v, ok := h.cache.Get(worker.SnapshotKey); ok {
		if snapshot, ok := v.(model.DashboardSnapshot); ok {
			return snapshot
		}
	}

	now := time.Now()
	today := now.Format(model.DateLayout)
	return model.DashboardSnapshot{
		Overview:    h.reports.Overview(today),
		Branches:    h.reports.BranchOverviews(today),
		Alerts:      h.reports.Alerts(),
		RefreshedAt: now,
	}
}
