package model

import "time"

type AlertSeverity string

const (
	AlertSeverityDanger  AlertSeverity = "danger"
	AlertSeverityWarning AlertSeverity = "warning"
)

// Alert is a dashboard notification. Titles and descriptions are display
// strings consumed verbatim by the Arabic UI.
type Alert struct {
	Severity    AlertSeverity `json:"severity"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Timestamp   time.Time     `json:"timestamp"`
}
