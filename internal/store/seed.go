package store

import "github.com/ebtesamty/dashboard-api/internal/model"

// Seed data for a fresh install, replaced by whatever the persistence mirror
// finds in its slots at startup.

func seedBranches() []model.Branch {
	return []model.Branch{
		{ID: 1, Name: "سمالوط", NameEn: "Samalout", Active: true},
		{ID: 2, Name: "التوفيقية", NameEn: "Tawfiqeya", Active: true},
		{ID: 3, Name: "قلوصنا", NameEn: "Qulusna", Active: true},
	}
}

func seedUsers() []model.User {
	return []model.User{
		{ID: 1, Name: "د. ابرام عبد لمعى", Role: model.UserRoleAdmin, Branch: "all", Username: "dr_ebram", Password: "admin123"},
		{ID: 2, Name: "أحمد علي", Role: model.UserRoleStaff, Branch: "سمالوط", Username: "ahmed_samalout", Password: "staff123"},
	}
}

func seed(s *Store) {
	s.Patients = []model.Patient{
		{
			ID:             1,
			Name:           "أحمد محمد",
			Phone:          "01234567890",
			Branch:         "سمالوط",
			Doctor:         "د. إبراهيم",
			Treatment:      "حشو عصب",
			LastVisit:      "2024-01-15",
			TotalPayments:  1500,
			PendingPayment: 0,
		},
	}

	s.Appointments = []model.Appointment{
		{
			ID:          1,
			PatientID:   1,
			PatientName: "أحمد محمد",
			Branch:      "سمالوط",
			Doctor:      "د. إبراهيم",
			Date:        "2024-01-20",
			Time:        "10:00",
			Status:      model.AppointmentStatusConfirmed,
			Treatment:   "حشو عصب",
		},
	}

	s.Inventory = []model.InventoryItem{
		{ID: 1, Name: "مخدر موضعي", Category: "مخدر", Quantity: 50, MinThreshold: 20, Unit: "علبة", Branch: "سمالوط"},
		{ID: 2, Name: "حشو كومبوزيت", Category: "حشوات", Quantity: 15, MinThreshold: 10, Unit: "علبة", Branch: "التوفيقية"},
		{ID: 3, Name: "مادة طبعة", Category: "مواد طبعة", Quantity: 5, MinThreshold: 10, Unit: "علبة", Branch: "قلوصنا"},
	}

	s.Transactions = []model.Transaction{
		{
			ID:            1,
			PatientID:     1,
			PatientName:   "أحمد محمد",
			Branch:        "سمالوط",
			Amount:        500,
			Type:          "كشف",
			Date:          "2024-01-15",
			PaymentMethod: "نقدي",
		},
	}
}
