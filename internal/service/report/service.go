package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/ebtesamty/dashboard-api/internal/model"
	"github.com/ebtesamty/dashboard-api/internal/store"
)

// Service computes the dashboard aggregates. Every method is a pure read
// over the store's current state: nothing here mutates, and no query ever
// fails. Empty collections yield zero counts and empty slices.
//
// Each exported method holds the store's read lock for the duration of its
// scan, so queries see a consistent snapshot of the collections even while
// the registry appends on other goroutines.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// BranchDailyStats returns the branch card figures for one day. The low
// stock count reflects current inventory levels regardless of day.
func (s *Service) BranchDailyStats(branchName, day string) model.BranchStats {
	s.store.RLock()
	defer s.store.RUnlock()

	return s.branchDailyStats(branchName, day)
}

// branchDailyStats expects the caller to hold the store's read lock.
func (s *Service) branchDailyStats(branchName, day string) model.BranchStats {
	var stats model.BranchStats

	for _, apt := range s.store.Appointments {
		if s.store.MatchesBranch(apt.Branch, branchName) && apt.Date == day {
			stats.PatientCount++
		}
	}

	for _, t := range s.store.Transactions {
		if s.store.MatchesBranch(t.Branch, branchName) && t.Date == day {
			stats.Revenue += t.Amount
		}
	}

	for _, item := range s.store.Inventory {
		if s.store.MatchesBranch(item.Branch, branchName) && item.LowStock() {
			stats.LowStockCount++
		}
	}

	return stats
}

// DailyRevenueSeries sums transaction amounts per day across all branches,
// one total per input day, in input order.
func (s *Service) DailyRevenueSeries(days []string) []float64 {
	s.store.RLock()
	defer s.store.RUnlock()

	totals := make([]float64, len(days))
	for i, day := range days {
		for _, t := range s.store.Transactions {
			if t.Date == day {
				totals[i] += t.Amount
			}
		}
	}
	return totals
}

// BranchRevenueTotals returns the all-time revenue per branch, in branch
// list order.
func (s *Service) BranchRevenueTotals() []model.BranchRevenue {
	s.store.RLock()
	defer s.store.RUnlock()

	totals := make([]model.BranchRevenue, 0, len(s.store.Branches))
	for _, branch := range s.store.Branches {
		var total float64
		for _, t := range s.store.Transactions {
			if s.store.MatchesBranch(t.Branch, branch.Name) {
				total += t.Amount
			}
		}
		totals = append(totals, model.BranchRevenue{Branch: branch.Name, Total: total})
	}
	return totals
}

// Alerts builds the notification feed: one danger alert per low stock item
// in inventory order, then one warning alert per patient with an outstanding
// balance in patient order. Danger alerts always precede warnings because of
// this append order. The feed is not re-sorted and not capped here;
// truncation is the caller's presentation policy.
func (s *Service) Alerts() []model.Alert {
	s.store.RLock()
	defer s.store.RUnlock()

	now := time.Now()
	alerts := []model.Alert{}

	for _, item := range s.store.Inventory {
		if item.LowStock() {
			alerts = append(alerts, model.Alert{
				Severity:    model.AlertSeverityDanger,
				Title:       fmt.Sprintf("نقص في المخزون - %s", item.Name),
				Description: fmt.Sprintf("الكمية المتبقية: %d %s (%s)", item.Quantity, item.Unit, item.Branch),
				Timestamp:   now,
			})
		}
	}

	for _, patient := range s.store.Patients {
		if patient.PendingPayment > 0 {
			alerts = append(alerts, model.Alert{
				Severity:    model.AlertSeverityWarning,
				Title:       fmt.Sprintf("مدفوعات متأخرة - %s", patient.Name),
				Description: fmt.Sprintf("المبلغ المستحق: %v ج.م", patient.PendingPayment),
				Timestamp:   now,
			})
		}
	}

	return alerts
}

// UpcomingAppointments returns appointments dated asOfDay or later, sorted
// ascending by date and truncated to limit. The sort is stable, so same-day
// appointments keep their insertion order. A limit <= 0 means no cap.
func (s *Service) UpcomingAppointments(asOfDay string, limit int) []model.Appointment {
	s.store.RLock()
	defer s.store.RUnlock()

	upcoming := []model.Appointment{}
	for _, apt := range s.store.Appointments {
		if apt.Date >= asOfDay {
			upcoming = append(upcoming, apt)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date < upcoming[j].Date
	})

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// Overview returns the cross-branch quick stats for one day.
func (s *Service) Overview(day string) model.Overview {
	s.store.RLock()
	defer s.store.RUnlock()

	var overview model.Overview

	for _, apt := range s.store.Appointments {
		if apt.Date == day {
			overview.AppointmentsToday++
		}
	}

	for _, t := range s.store.Transactions {
		if t.Date == day {
			overview.RevenueToday += t.Amount
		}
	}

	for _, item := range s.store.Inventory {
		if item.LowStock() {
			overview.LowStockTotal++
		}
	}

	return overview
}

// BranchOverviews returns the branch cards for one day, in branch list order.
func (s *Service) BranchOverviews(day string) []model.BranchOverview {
	s.store.RLock()
	defer s.store.RUnlock()

	cards := make([]model.BranchOverview, 0, len(s.store.Branches))
	for _, branch := range s.store.Branches {
		cards = append(cards, model.BranchOverview{
			Branch: branch,
			Stats:  s.branchDailyStats(branch.Name, day),
		})
	}
	return cards
}

// Branches returns the static branch list in display order. The list never
// changes after construction, so no lock is taken.
func (s *Service) Branches() []model.Branch {
	return s.store.Branches
}

// LastNDays returns the n consecutive days ending at now, oldest first,
// formatted for date comparison. Feeds the daily revenue chart.
func LastNDays(now time.Time, n int) []string {
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, now.AddDate(0, 0, -i).Format(model.DateLayout))
	}
	return days
}
