package model

// Transaction is one entry in the append-only payment ledger. Transactions
// are never updated or deleted.
type Transaction struct {
	ID            int     `json:"id"`
	PatientID     int     `json:"patientId"`
	PatientName   string  `json:"patientName"`
	Branch        string  `json:"branch"`
	Amount        float64 `json:"amount"`
	Type          string  `json:"type"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"paymentMethod"`
}
