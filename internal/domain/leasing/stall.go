package leasing

import (
	"time"

	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// StallStatus represents the occupancy status of a market stall
type StallStatus string

const (
	StallStatusVacant      StallStatus = "VACANT"
	StallStatusOccupied    StallStatus = "OCCUPIED"
	StallStatusMaintenance StallStatus = "MAINTENANCE"
)

// IsValid checks if the status is a valid StallStatus
func (s StallStatus) IsValid() bool {
	switch s {
	case StallStatusVacant, StallStatusOccupied, StallStatusMaintenance:
		return true
	}
	return false
}

// String returns the string representation of StallStatus
func (s StallStatus) String() string {
	return string(s)
}

// Stall represents a physical market stall available for lease
type Stall struct {
	shared.AuditedAggregateRoot
	StallNumber string
	Zone        string
	SizeSqm     decimal.Decimal
	MonthlyRate decimal.Decimal
	Status      StallStatus
	Remark      string
}

// NewStall creates a new vacant stall
func NewStall(stallNumber, zone string, sizeSqm decimal.Decimal, monthlyRate valueobject.Money) (*Stall, error) {
	if stallNumber == "" {
		return nil, shared.NewDomainError("INVALID_STALL_NUMBER", "Stall number cannot be empty")
	}
	if zone == "" {
		return nil, shared.NewDomainError("INVALID_ZONE", "Zone cannot be empty")
	}
	if sizeSqm.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_SIZE", "Stall size must be positive")
	}
	if monthlyRate.Amount().LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_RATE", "Monthly rate must be positive")
	}

	return &Stall{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		StallNumber:          stallNumber,
		Zone:                 zone,
		SizeSqm:              sizeSqm,
		MonthlyRate:          monthlyRate.Amount(),
		Status:               StallStatusVacant,
	}, nil
}

// Occupy marks the stall as occupied by an active lease
func (s *Stall) Occupy() error {
	if s.Status == StallStatusOccupied {
		return shared.NewDomainError("ALREADY_OCCUPIED", "Stall is already occupied")
	}
	if s.Status == StallStatusMaintenance {
		return shared.NewDomainError("UNDER_MAINTENANCE", "Stall is under maintenance")
	}
	s.Status = StallStatusOccupied
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Vacate marks the stall as vacant again
func (s *Stall) Vacate() {
	s.Status = StallStatusVacant
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// IsVacant returns true if the stall can take a new lease
func (s *Stall) IsVacant() bool {
	return s.Status == StallStatusVacant
}

// GetMonthlyRateMoney returns the monthly rate as Money
func (s *Stall) GetMonthlyRateMoney() valueobject.Money {
	return valueobject.NewMoneyPHP(s.MonthlyRate)
}
