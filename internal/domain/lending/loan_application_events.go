package lending

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/shared"
)

// Aggregate type constant for LoanApplication
const AggregateTypeLoanApplication = "LoanApplication"

// Loan application domain event types
const (
	EventTypeLoanApplicationSubmitted = "LoanApplicationSubmitted"
	EventTypeLoanApplicationApproved  = "LoanApplicationApproved"
	EventTypeLoanApplicationRejected  = "LoanApplicationRejected"
)

// LoanApplicationSubmittedEvent is published when a tenant applies for a loan
type LoanApplicationSubmittedEvent struct {
	shared.BaseDomainEvent
	ApplicationNumber string          `json:"application_number"`
	TenantID          uuid.UUID       `json:"tenant_id"`
	Amount            decimal.Decimal `json:"amount"`
	TermMonths        int             `json:"term_months"`
}

// NewLoanApplicationSubmittedEvent creates a new LoanApplicationSubmittedEvent
func NewLoanApplicationSubmittedEvent(application *LoanApplication) *LoanApplicationSubmittedEvent {
	actor := uuid.Nil
	if createdBy := application.GetCreatedBy(); createdBy != nil {
		actor = *createdBy
	}
	return &LoanApplicationSubmittedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeLoanApplicationSubmitted, AggregateTypeLoanApplication, application.ID, actor),
		ApplicationNumber: application.ApplicationNumber,
		TenantID:          application.TenantID,
		Amount:            application.Amount,
		TermMonths:        application.TermMonths,
	}
}

// LoanApplicationApprovedEvent is published when a loan is granted
type LoanApplicationApprovedEvent struct {
	shared.BaseDomainEvent
	ApplicationNumber string          `json:"application_number"`
	TenantID          uuid.UUID       `json:"tenant_id"`
	Amount            decimal.Decimal `json:"amount"`
}

// NewLoanApplicationApprovedEvent creates a new LoanApplicationApprovedEvent
func NewLoanApplicationApprovedEvent(application *LoanApplication, decidedBy uuid.UUID) *LoanApplicationApprovedEvent {
	return &LoanApplicationApprovedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeLoanApplicationApproved, AggregateTypeLoanApplication, application.ID, decidedBy),
		ApplicationNumber: application.ApplicationNumber,
		TenantID:          application.TenantID,
		Amount:            application.Amount,
	}
}

// LoanApplicationRejectedEvent is published when a loan is declined
type LoanApplicationRejectedEvent struct {
	shared.BaseDomainEvent
	ApplicationNumber string `json:"application_number"`
	Reason            string `json:"reason"`
}

// NewLoanApplicationRejectedEvent creates a new LoanApplicationRejectedEvent
func NewLoanApplicationRejectedEvent(application *LoanApplication, decidedBy uuid.UUID, reason string) *LoanApplicationRejectedEvent {
	return &LoanApplicationRejectedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeLoanApplicationRejected, AggregateTypeLoanApplication, application.ID, decidedBy),
		ApplicationNumber: application.ApplicationNumber,
		Reason:            reason,
	}
}
