package model

type Patient struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Branch         string  `json:"branch"`
	Doctor         string  `json:"doctor"`
	Treatment      string  `json:"treatment"`
	LastVisit      string  `json:"lastVisit"`
	TotalPayments  float64 `json:"totalPayments"`
	PendingPayment float64 `json:"pendingPayment"`
}

// CreatePatientRequest carries caller-supplied patient fields. LastVisit and
// PendingPayment are accepted on the wire but always overwritten by the
// registry; they exist here so the override is part of the contract rather
// than a silent drop.
type CreatePatientRequest struct {
	Name           string  `json:"name" validate:"required"`
	Phone          string  `json:"phone" validate:"required,egphone"`
	Branch         string  `json:"branch" validate:"required"`
	Doctor         string  `json:"doctor"`
	Treatment      string  `json:"treatment"`
	TotalPayments  float64 `json:"totalPayments"`
	LastVisit      string  `json:"lastVisit"`
	PendingPayment float64 `json:"pendingPayment"`
}
