package report

import (
	"time"

	"github.com/palengke/backend/internal/domain/report"
)

// DashboardSummary is the top-level figures the landing page shows
type DashboardSummary struct {
	Leases         map[string]report.Aggregate `json:"leases"`
	Expenses       map[string]report.Aggregate `json:"expenses"`
	Loans          map[string]report.Aggregate `json:"loans"`
	RentCollected  report.Aggregate            `json:"rent_collected"`
	ExpiringLeases int                         `json:"expiring_leases"`
	GeneratedAt    time.Time                   `json:"generated_at"`
}

// ExpenseSummary breaks expenses down two ways over a date range
type ExpenseSummary struct {
	ByStatus   map[string]report.Aggregate `json:"by_status"`
	ByCategory map[string]report.Aggregate `json:"by_category"`
	Total      report.Aggregate            `json:"total"`
	From       time.Time                   `json:"from"`
	To         time.Time                   `json:"to"`
}

// ExpiringLease is one lease inside the warning window
type ExpiringLease struct {
	ID            string    `json:"id"`
	LeaseNumber   string    `json:"lease_number"`
	ApplicantName string    `json:"applicant_name"`
	LeaseEnd      time.Time `json:"lease_end"`
	DaysLeft      int       `json:"days_left"`
}

// ExpiringLeaseReport lists active leases ending within the window
type ExpiringLeaseReport struct {
	WindowDays int             `json:"window_days"`
	Leases     []ExpiringLease `json:"leases"`
}
