package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebtesamty/dashboard-api/internal/model"
	"github.com/ebtesamty/dashboard-api/internal/store"
)

func testStore() *store.Store {
	s := store.NewEmpty()
	s.Branches = []model.Branch{
		{ID: 1, Name: "Downtown", Active: true},
		{ID: 2, Name: "Riverside", Active: true},
	}
	return s
}

func TestBranchDailyStats(t *testing.T) {
	s := testStore()
	s.Appointments = []model.Appointment{
		{ID: 1, Branch: "Downtown", Date: "2024-01-20"},
		{ID: 2, Branch: "Downtown", Date: "2024-01-20"},
		{ID: 3, Branch: "Downtown", Date: "2024-01-21"},
		{ID: 4, Branch: "Riverside", Date: "2024-01-20"},
	}
	s.Transactions = []model.Transaction{
		{ID: 1, Branch: "Downtown", Amount: 500, Date: "2024-01-20"},
		{ID: 2, Branch: "Downtown", Amount: 250, Date: "2024-01-20"},
		{ID: 3, Branch: "Downtown", Amount: 900, Date: "2024-01-19"},
		{ID: 4, Branch: "Riverside", Amount: 100, Date: "2024-01-20"},
	}
	s.Inventory = []model.InventoryItem{
		{ID: 1, Branch: "Downtown", Quantity: 5, MinThreshold: 10},
		{ID: 2, Branch: "Downtown", Quantity: 10, MinThreshold: 10}, // boundary counts
		{ID: 3, Branch: "Downtown", Quantity: 11, MinThreshold: 10},
		{ID: 4, Branch: "Riverside", Quantity: 1, MinThreshold: 10},
	}

	stats := NewService(s).BranchDailyStats("Downtown", "2024-01-20")

	assert.Equal(t, 2, stats.PatientCount)
	assert.Equal(t, 750.0, stats.Revenue)
	assert.Equal(t, 2, stats.LowStockCount)
}

func TestBranchDailyStatsNoMatchesYieldsZeros(t *testing.T) {
	stats := NewService(testStore()).BranchDailyStats("Downtown", "2024-01-20")

	assert.Zero(t, stats.PatientCount)
	assert.Zero(t, stats.Revenue)
	assert.Zero(t, stats.LowStockCount)
}

func TestDailyRevenueSeries(t *testing.T) {
	s := testStore()
	days := []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
		"2024-01-05", "2024-01-06", "2024-01-07",
	}
	s.Transactions = []model.Transaction{
		{ID: 1, Branch: "Downtown", Amount: 300, Date: "2024-01-03"},
		{ID: 2, Branch: "Riverside", Amount: 200, Date: "2024-01-07"},
		{ID: 3, Branch: "Downtown", Amount: 50, Date: "2024-01-07"},
	}

	totals := NewService(s).DailyRevenueSeries(days)

	assert.Equal(t, []float64{0, 0, 300, 0, 0, 0, 250}, totals)
}

func TestBranchRevenueTotals(t *testing.T) {
	s := testStore()
	s.Transactions = []model.Transaction{
		{ID: 1, Branch: "Riverside", Amount: 700, Date: "2023-06-01"},
		{ID: 2, Branch: "Downtown", Amount: 400, Date: "2024-01-20"},
		{ID: 3, Branch: "Downtown", Amount: 100, Date: "2022-12-31"},
	}

	totals := NewService(s).BranchRevenueTotals()

	require.Len(t, totals, 2)
	assert.Equal(t, model.BranchRevenue{Branch: "Downtown", Total: 500}, totals[0])
	assert.Equal(t, model.BranchRevenue{Branch: "Riverside", Total: 700}, totals[1])
}

func TestAlertsOrdering(t *testing.T) {
	s := testStore()
	s.Inventory = []model.InventoryItem{
		{ID: 1, Name: "Gloves", Quantity: 2, MinThreshold: 5, Unit: "box", Branch: "Downtown"},
	}
	s.Patients = []model.Patient{
		{ID: 1, Name: "Ahmed", PendingPayment: 300},
	}

	alerts := NewService(s).Alerts()

	require.Len(t, alerts, 2)
	assert.Equal(t, model.AlertSeverityDanger, alerts[0].Severity)
	assert.Equal(t, model.AlertSeverityWarning, alerts[1].Severity)
	assert.Contains(t, alerts[0].Title, "Gloves")
	assert.Contains(t, alerts[0].Description, "box")
	assert.Contains(t, alerts[0].Description, "Downtown")
	assert.Contains(t, alerts[1].Title, "Ahmed")
	assert.Contains(t, alerts[1].Description, "300")
}

func TestAlertsSkipsHealthyRecords(t *testing.T) {
	s := testStore()
	s.Inventory = []model.InventoryItem{
		{ID: 1, Name: "Gloves", Quantity: 50, MinThreshold: 5},
	}
	s.Patients = []model.Patient{
		{ID: 1, Name: "Ahmed", PendingPayment: 0},
	}

	assert.Empty(t, NewService(s).Alerts())
}

func TestAlertsUncapped(t *testing.T) {
	s := testStore()
	for i := 0; i < 8; i++ {
		s.Inventory = append(s.Inventory, model.InventoryItem{
			ID: i + 1, Name: "Item", Quantity: 0, MinThreshold: 1, Branch: "Downtown",
		})
	}

	// Truncation to the first few entries is the caller's job.
	assert.Len(t, NewService(s).Alerts(), 8)
}

func TestUpcomingAppointments(t *testing.T) {
	s := testStore()
	s.Appointments = []model.Appointment{
		{ID: 1, Date: "2024-01-19"},
		{ID: 2, Date: "2024-01-20"},
		{ID: 3, Date: "2024-01-25"},
		{ID: 4, Date: "2024-01-21"},
	}

	upcoming := NewService(s).UpcomingAppointments("2024-01-20", 5)

	require.Len(t, upcoming, 3)
	assert.Equal(t, "2024-01-20", upcoming[0].Date)
	assert.Equal(t, "2024-01-21", upcoming[1].Date)
	assert.Equal(t, "2024-01-25", upcoming[2].Date)
}

func TestUpcomingAppointmentsStableOnTies(t *testing.T) {
	s := testStore()
	s.Appointments = []model.Appointment{
		{ID: 1, Date: "2024-01-20", Time: "10:00"},
		{ID: 2, Date: "2024-01-20", Time: "09:00"},
	}

	upcoming := NewService(s).UpcomingAppointments("2024-01-20", 5)

	// Same-day appointments keep insertion order.
	require.Len(t, upcoming, 2)
	assert.Equal(t, 1, upcoming[0].ID)
	assert.Equal(t, 2, upcoming[1].ID)
}

func TestUpcomingAppointmentsLimit(t *testing.T) {
	s := testStore()
	for i := 0; i < 10; i++ {
		s.Appointments = append(s.Appointments, model.Appointment{ID: i + 1, Date: "2024-02-01"})
	}

	assert.Len(t, NewService(s).UpcomingAppointments("2024-01-01", 5), 5)
}

func TestOverview(t *testing.T) {
	s := testStore()
	s.Appointments = []model.Appointment{
		{ID: 1, Branch: "Downtown", Date: "2024-01-20"},
		{ID: 2, Branch: "Riverside", Date: "2024-01-20"},
		{ID: 3, Branch: "Riverside", Date: "2024-01-21"},
	}
	s.Transactions = []model.Transaction{
		{ID: 1, Branch: "Downtown", Amount: 500, Date: "2024-01-20"},
		{ID: 2, Branch: "Riverside", Amount: 100, Date: "2024-01-20"},
	}
	s.Inventory = []model.InventoryItem{
		{ID: 1, Branch: "Downtown", Quantity: 0, MinThreshold: 1},
	}

	svc := NewService(s)
	overview := svc.Overview("2024-01-20")

	assert.Equal(t, 2, overview.AppointmentsToday)
	assert.Equal(t, 600.0, overview.RevenueToday)
	assert.Equal(t, 1, overview.LowStockTotal)

	// The overview is the sum of the branch cards.
	cards := svc.BranchOverviews("2024-01-20")
	require.Len(t, cards, 2)
	var patients int
	var revenue float64
	for _, card := range cards {
		patients += card.Stats.PatientCount
		revenue += card.Stats.Revenue
	}
	assert.Equal(t, overview.AppointmentsToday, patients)
	assert.Equal(t, overview.RevenueToday, revenue)
}

func TestEmptyStoreYieldsEmptyResults(t *testing.T) {
	svc := NewService(store.NewEmpty())

	assert.Empty(t, svc.Alerts())
	assert.Empty(t, svc.UpcomingAppointments("2024-01-01", 5))
	assert.Equal(t, []float64{0}, svc.DailyRevenueSeries([]string{"2024-01-01"}))
	assert.Zero(t, svc.Overview("2024-01-01"))
}

func TestLastNDays(t *testing.T) {
	now := time.Date(2024, 1, 7, 13, 0, 0, 0, time.UTC)

	days := LastNDays(now, 7)

	require.Len(t, days, 7)
	assert.Equal(t, "2024-01-01", days[0])
	assert.Equal(t, "2024-01-07", days[6])
}
