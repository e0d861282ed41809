package registry

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebtesamty/dashboard-api/internal/model"
	"github.com/ebtesamty/dashboard-api/internal/persistence"
	"github.com/ebtesamty/dashboard-api/internal/service/registry"
	"github.com/ebtesamty/dashboard-api/internal/store"
	"github.com/ebtesamty/dashboard-api/pkg/logger"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(enforce bool) (*gin.Engine, *store.Store) {
	gin.SetMode(gin.TestMode)

	st := store.NewEmpty()
	l := logger.NewLogger(&logger.Config{Level: logger.FatalLevel, Output: io.Discard})
	mirror := persistence.NewMirror(persistence.NewMemoryKV(), st, l)
	h := NewHandler(registry.NewService(st, mirror, l, enforce))

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/v1"))
	return engine, st
}

func doPost(t *testing.T, engine *gin.Engine, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCreatePatientOverridesSystemFields(t *testing.T) {
	engine, st := newTestRouter(false)

	w, resp := doPost(t, engine, "/api/v1/patients", `{
		"name": "Ahmed Mohamed",
		"phone": "01234567890",
		"branch": "سمالوط",
		"lastVisit": "1999-01-01",
		"pendingPayment": 999
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", resp.Status)

	var patient model.Patient
	require.NoError(t, json.Unmarshal(resp.Data, &patient))
	assert.Equal(t, 1, patient.ID)
	assert.Equal(t, time.Now().Format(model.DateLayout), patient.LastVisit)
	assert.Zero(t, patient.PendingPayment)
	assert.Len(t, st.Patients, 1)
}

func TestCreateAppointmentIgnoresCallerStatus(t *testing.T) {
	engine, _ := newTestRouter(false)

	w, resp := doPost(t, engine, "/api/v1/appointments", `{
		"patientId": 1,
		"patientName": "Ahmed Mohamed",
		"branch": "سمالوط",
		"date": "2024-03-01",
		"time": "10:00",
		"status": "confirmed"
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var appointment model.Appointment
	require.NoError(t, json.Unmarshal(resp.Data, &appointment))
	assert.Equal(t, model.AppointmentStatusPending, appointment.Status)
}

func TestCreatePatientRejectsMalformedJSON(t *testing.T) {
	engine, st := newTestRouter(false)

	w, resp := doPost(t, engine, "/api/v1/patients", `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", resp.Status)
	assert.Empty(t, st.Patients)
}

func TestCreatePatientValidationEnforced(t *testing.T) {
	engine, st := newTestRouter(true)

	w, resp := doPost(t, engine, "/api/v1/patients", `{
		"name": "Ahmed",
		"phone": "12345",
		"branch": "سمالوط"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", resp.Status)
	assert.Empty(t, st.Patients)
}
