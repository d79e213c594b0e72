package lending

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
)

// LoanStatus represents the status of a loan application
type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "PENDING"
	LoanStatusApproved LoanStatus = "APPROVED"
	LoanStatusRejected LoanStatus = "REJECTED"
)

// IsValid checks if the status is a valid LoanStatus
func (s LoanStatus) IsValid() bool {
	switch s {
	case LoanStatusPending, LoanStatusApproved, LoanStatusRejected:
		return true
	}
	return false
}

// String returns the string representation of LoanStatus
func (s LoanStatus) String() string {
	return string(s)
}

// CanTransitionTo checks whether a transition to the target status is legal
func (s LoanStatus) CanTransitionTo(target LoanStatus) bool {
	switch s {
	case LoanStatusPending:
		return target == LoanStatusApproved || target == LoanStatusRejected
	default:
		return false
	}
}

// LoanApplication represents a tenant micro-loan request aggregate root
type LoanApplication struct {
	shared.AuditedAggregateRoot
	ApplicationNumber string          `json:"application_number"`
	TenantID          uuid.UUID       `json:"tenant_id"`
	Amount            decimal.Decimal `json:"amount"`
	TermMonths        int             `json:"term_months"`
	Purpose           string          `json:"purpose"`
	Status            LoanStatus      `json:"status"`
	AppliedAt         time.Time       `json:"applied_at"`
	DecidedAt         *time.Time      `json:"decided_at"`
	DecidedBy         *uuid.UUID      `json:"decided_by"`
	RejectionReason   string          `json:"rejection_reason"`
	Remark            string          `json:"remark"`
}

// NewLoanApplication creates a pending application
func NewLoanApplication(
	applicationNumber string,
	tenantID uuid.UUID,
	amount valueobject.Money,
	termMonths int,
	purpose string,
) (*LoanApplication, error) {
	if applicationNumber == "" {
		return nil, shared.NewDomainError("INVALID_APPLICATION_NUMBER", "Application number cannot be empty")
	}
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if amount.Amount().LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Loan amount must be positive")
	}
	if termMonths <= 0 || termMonths > 60 {
		return nil, shared.NewDomainError("INVALID_TERM", "Loan term must be between 1 and 60 months")
	}
	if purpose == "" {
		return nil, shared.NewDomainError("INVALID_PURPOSE", "Loan purpose cannot be empty")
	}

	application := &LoanApplication{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		ApplicationNumber:    applicationNumber,
		TenantID:             tenantID,
		Amount:               amount.Amount(),
		TermMonths:           termMonths,
		Purpose:              purpose,
		Status:               LoanStatusPending,
		AppliedAt:            time.Now(),
	}

	application.AddDomainEvent(NewLoanApplicationSubmittedEvent(application))

	return application, nil
}

// Approve grants the loan
func (l *LoanApplication) Approve(decidedBy uuid.UUID) error {
	if !l.Status.CanTransitionTo(LoanStatusApproved) {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot approve loan application in %s status", l.Status))
	}
	if decidedBy == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Decider user ID cannot be empty")
	}

	now := time.Now()
	l.Status = LoanStatusApproved
	l.DecidedAt = &now
	l.DecidedBy = &decidedBy
	l.UpdatedAt = now
	l.IncrementVersion()

	l.AddDomainEvent(NewLoanApplicationApprovedEvent(l, decidedBy))

	return nil
}

// Reject declines the loan. A reason is optional.
func (l *LoanApplication) Reject(decidedBy uuid.UUID, reason string) error {
	if !l.Status.CanTransitionTo(LoanStatusRejected) {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot reject loan application in %s status", l.Status))
	}
	if decidedBy == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Decider user ID cannot be empty")
	}

	now := time.Now()
	l.Status = LoanStatusRejected
	l.DecidedAt = &now
	l.DecidedBy = &decidedBy
	l.RejectionReason = reason
	l.UpdatedAt = now
	l.IncrementVersion()

	l.AddDomainEvent(NewLoanApplicationRejectedEvent(l, decidedBy, reason))

	return nil
}

// GetAmountMoney returns the loan amount as PHP money
func (l *LoanApplication) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyPHP(l.Amount)
}

// IsPending returns true while the application awaits a decision
func (l *LoanApplication) IsPending() bool {
	return l.Status == LoanStatusPending
}
