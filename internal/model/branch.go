package model

// DateLayout is the wire and comparison format for all dates in the system.
// Dates are kept as strings so that lexical ordering matches chronological
// ordering; nothing in the data model stores a time.Time.
const DateLayout = "2006-01-02"

// Branch is a physical clinic location. The branch list is static for the
// lifetime of a session. Every other entity references a branch by its
// display name, not by id.
type Branch struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"nameEn"`
	Active bool   `json:"active"`
}
