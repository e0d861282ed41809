package registry

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ebtesamty/dashboard-api/internal/model"
	"github.com/ebtesamty/dashboard-api/internal/persistence"
	"github.com/ebtesamty/dashboard-api/internal/store"
	apperrors "github.com/ebtesamty/dashboard-api/pkg/errors"
	"github.com/ebtesamty/dashboard-api/pkg/logger"
)

// Service is the write side of the store: append-only creation of patients
// and appointments. Appends hold the store's write lock; the full mirror
// save that follows runs after the lock is released and reads whatever is
// current at that point. There is no rollback: if the save fails the record
// stays applied and the failure is logged (at-least-applied, not atomic).
type Service struct {
	store    *store.Store
	mirror   *persistence.Mirror
	logger   *logger.Logger
	validate *validator.Validate // nil when admission validation is disabled
}

// NewService constructs the registry. With enforceValidation false the
// service accepts whatever the UI sends, which is the historical behavior;
// with it true, malformed input is rejected at admission.
func NewService(st *store.Store, mirror *persistence.Mirror, l *logger.Logger, enforceValidation bool) *Service {
	s := &Service{
		store:  st,
		mirror: mirror,
		logger: l,
	}
	if enforceValidation {
		s.validate = newAdmissionValidator()
	}
	return s
}

// AddPatient appends a new patient. LastVisit and PendingPayment are
// system-assigned (today, zero) and override any caller-supplied values.
func (s *Service) AddPatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if err := s.admit(req); err != nil {
		return nil, err
	}

	s.store.Lock()
	patient := model.Patient{
		ID:             len(s.store.Patients) + 1,
		Name:           req.Name,
		Phone:          req.Phone,
		Branch:         req.Branch,
		Doctor:         req.Doctor,
		Treatment:      req.Treatment,
		TotalPayments:  req.TotalPayments,
		LastVisit:      time.Now().Format(model.DateLayout),
		PendingPayment: 0,
	}
	s.store.Patients = append(s.store.Patients, patient)
	s.store.Unlock()

	s.persist(ctx, "patient", patient.ID)
	return &patient, nil
}

// AddAppointment appends a new appointment. Status is forced to pending
// unconditionally.
func (s *Service) AddAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := s.admit(req); err != nil {
		return nil, err
	}

	s.store.Lock()
	appointment := model.Appointment{
		ID:          len(s.store.Appointments) + 1,
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		Branch:      req.Branch,
		Doctor:      req.Doctor,
		Date:        req.Date,
		Time:        req.Time,
		Status:      model.AppointmentStatusPending,
		Treatment:   req.Treatment,
	}
	s.store.Appointments = append(s.store.Appointments, appointment)
	s.store.Unlock()

	s.persist(ctx, "appointment", appointment.ID)
	return &appointment, nil
}

func (s *Service) admit(req interface{}) error {
	if s.validate == nil {
		return nil
	}
	if err := s.validate.Struct(req); err != nil {
		return apperrors.NewValidation("invalid input", err)
	}
	return nil
}

func (s *Service) persist(ctx context.Context, entity string, id int) {
	if err := s.mirror.Save(ctx); err != nil {
		// The appended record stays in memory; persistence is best-effort.
		s.logger.Error(err, "failed to persist collections after create", "entity", entity, "id", id)
	}
}
