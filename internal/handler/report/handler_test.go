package report

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebtesamty/dashboard-api/internal/config"
	"github.com/ebtesamty/dashboard-api/internal/model"
	"github.com/ebtesamty/dashboard-api/internal/service/report"
	"github.com/ebtesamty/dashboard-api/internal/store"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(s *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHandler(
		report.NewService(s),
		cache.New(cache.NoExpiration, 0),
		config.DashboardConfig{AlertLimit: 5, RevenueDays: 7, UpcomingLimit: 5},
	)

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestGetOverview(t *testing.T) {
	engine := newTestRouter(store.New())

	w, resp := doRequest(t, engine, "/api/v1/dashboard/overview")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Status)

	var snapshot model.DashboardSnapshot
	require.NoError(t, json.Unmarshal(resp.Data, &snapshot))
	assert.Len(t, snapshot.Branches, 3)
}

func TestGetAlertsAppliesLimit(t *testing.T) {
	s := store.NewEmpty()
	for i := 0; i < 8; i++ {
		s.Inventory = append(s.Inventory, model.InventoryItem{
			ID: i + 1, Name: "Item", Quantity: 0, MinThreshold: 1, Unit: "box", Branch: "سمالوط",
		})
	}
	engine := newTestRouter(s)

	w, resp := doRequest(t, engine, "/api/v1/dashboard/alerts")
	assert.Equal(t, http.StatusOK, w.Code)

	var alerts []model.Alert
	require.NoError(t, json.Unmarshal(resp.Data, &alerts))
	assert.Len(t, alerts, 5)

	_, resp = doRequest(t, engine, "/api/v1/dashboard/alerts?limit=2")
	require.NoError(t, json.Unmarshal(resp.Data, &alerts))
	assert.Len(t, alerts, 2)
}

func TestGetUpcomingAppointments(t *testing.T) {
	s := store.NewEmpty()
	s.Appointments = []model.Appointment{
		{ID: 1, Date: "2024-01-19"},
		{ID: 2, Date: "2024-01-25"},
		{ID: 3, Date: "2024-01-20"},
	}
	engine := newTestRouter(s)

	w, resp := doRequest(t, engine, "/api/v1/appointments/upcoming?from=2024-01-20")

	assert.Equal(t, http.StatusOK, w.Code)

	var appointments []model.Appointment
	require.NoError(t, json.Unmarshal(resp.Data, &appointments))
	require.Len(t, appointments, 2)
	assert.Equal(t, 3, appointments[0].ID)
	assert.Equal(t, 2, appointments[1].ID)
}

func TestGetDailyRevenueRejectsBadDays(t *testing.T) {
	engine := newTestRouter(store.NewEmpty())

	w, resp := doRequest(t, engine, "/api/v1/dashboard/revenue/daily?days=zero")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", resp.Status)
}

func TestGetDailyRevenueWindowSize(t *testing.T) {
	engine := newTestRouter(store.NewEmpty())

	w, resp := doRequest(t, engine, "/api/v1/dashboard/revenue/daily?days=3")

	assert.Equal(t, http.StatusOK, w.Code)

	var series model.RevenueSeries
	require.NoError(t, json.Unmarshal(resp.Data, &series))
	assert.Len(t, series.Days, 3)
	assert.Len(t, series.Totals, 3)
}

func TestGetBranchRevenue(t *testing.T) {
	engine := newTestRouter(store.New())

	w, resp := doRequest(t, engine, "/api/v1/dashboard/revenue/branches")

	assert.Equal(t, http.StatusOK, w.Code)

	var totals []model.BranchRevenue
	require.NoError(t, json.Unmarshal(resp.Data, &totals))
	require.Len(t, totals, 3)
	assert.Equal(t, "سمالوط", totals[0].Branch)
}

func TestListBranches(t *testing.T) {
	engine := newTestRouter(store.New())

	w, resp := doRequest(t, engine, "/api/v1/branches")

	assert.Equal(t, http.StatusOK, w.Code)

	var branches []model.Branch
	require.NoError(t, json.Unmarshal(resp.Data, &branches))
	assert.Len(t, branches, 3)
}
