package model

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

type Appointment struct {
	ID          int               `json:"id"`
	PatientID   int               `json:"patientId"`
	PatientName string            `json:"patientName"`
	Branch      string            `json:"branch"`
	Doctor      string            `json:"doctor"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Status      AppointmentStatus `json:"status"`
	Treatment   string            `json:"treatment"`
}

// CreateAppointmentRequest carries caller-supplied appointment fields. Status
// is accepted on the wire but ignored: every new appointment starts out
// pending no matter what the caller sends.
type CreateAppointmentRequest struct {
	PatientID   int               `json:"patientId"`
	PatientName string            `json:"patientName" validate:"required"`
	Branch      string            `json:"branch" validate:"required"`
	Doctor      string            `json:"doctor"`
	Date        string            `json:"date" validate:"required,isodate"`
	Time        string            `json:"time" validate:"required"`
	Status      AppointmentStatus `json:"status"`
	Treatment   string            `json:"treatment"`
}
