package model

import "time"

// BranchStats are the per-branch daily figures shown on a branch card.
// PatientCount counts appointments booked for the day, not distinct
// patients; the dashboard has always labelled that figure "patients today"
// and downstream consumers depend on the appointment count.
type BranchStats struct {
	PatientCount  int     `json:"patients"`
	Revenue       float64 `json:"revenue"`
	LowStockCount int     `json:"lowStock"`
}

// BranchOverview pairs a branch with its stats for the requested day.
type BranchOverview struct {
	Branch Branch      `json:"branch"`
	Stats  BranchStats `json:"stats"`
}

// Overview are the cross-branch quick stats at the top of the dashboard.
type Overview struct {
	AppointmentsToday int     `json:"appointmentsToday"`
	RevenueToday      float64 `json:"revenueToday"`
	LowStockTotal     int     `json:"lowStockTotal"`
}

// BranchRevenue is one bar of the branch comparison chart: all-time revenue
// for a single branch.
type BranchRevenue struct {
	Branch string  `json:"branch"`
	Total  float64 `json:"total"`
}

// RevenueSeries is the daily revenue chart dataset: one total per day, in
// the same order as Days.
type RevenueSeries struct {
	Days   []string  `json:"days"`
	Totals []float64 `json:"totals"`
}

// DashboardSnapshot is the periodically refreshed aggregate view cached for
// the overview and alerts endpoints.
type DashboardSnapshot struct {
	Overview    Overview         `json:"overview"`
	Branches    []BranchOverview `json:"branches"`
	Alerts      []Alert          `json:"alerts"`
	RefreshedAt time.Time        `json:"refreshedAt"`
}
