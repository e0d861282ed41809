package registry

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ebtesamty/dashboard-api/internal/handler"
	"github.com/ebtesamty/dashboard-api/internal/model"
	"github.com/ebtesamty/dashboard-api/internal/service/registry"
)

// Handler is the write boundary exposed to the UI forms.
type Handler struct {
	service *registry.Service
}

func NewHandler(service *registry.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/patients", h.CreatePatient)
	r.POST("/appointments", h.CreateAppointment)
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	patient, err := h.service.AddPatient(c.Request.Context(), &req)
	if err != nil {
		c.JSON(handler.StatusForError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(patient))
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	appointment, err := h.service.AddAppointment(c.Request.Context(), &req)
	if err != nil {
		c.JSON(handler.StatusForError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(appointment))
}
