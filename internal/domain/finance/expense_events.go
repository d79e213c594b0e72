package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/shared"
)

// Aggregate type constants for the finance context
const (
	AggregateTypeExpense     = "Expense"
	AggregateTypeRentPayment = "RentPayment"
)

// Expense domain event types
const (
	EventTypeExpenseCreated        = "ExpenseCreated"
	EventTypeExpenseApproved       = "ExpenseApproved"
	EventTypeExpenseRejected       = "ExpenseRejected"
	EventTypeExpenseCheckRequested = "ExpenseCheckRequested"
	EventTypeExpensePaid           = "ExpensePaid"
	EventTypeRentPaymentRecorded   = "RentPaymentRecorded"
)

// ExpenseCreatedEvent is published when an expense is recorded
type ExpenseCreatedEvent struct {
	shared.BaseDomainEvent
	ExpenseNumber string          `json:"expense_number"`
	Category      ExpenseCategory `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
}

// NewExpenseCreatedEvent creates a new ExpenseCreatedEvent
func NewExpenseCreatedEvent(expense *Expense) *ExpenseCreatedEvent {
	actor := uuid.Nil
	if createdBy := expense.GetCreatedBy(); createdBy != nil {
		actor = *createdBy
	}
	return &ExpenseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpenseCreated, AggregateTypeExpense, expense.ID, actor),
		ExpenseNumber:   expense.ExpenseNumber,
		Category:        expense.Category,
		Amount:          expense.Amount,
	}
}

// ExpenseApprovedEvent is published when an expense passes approval
type ExpenseApprovedEvent struct {
	shared.BaseDomainEvent
	ExpenseNumber string          `json:"expense_number"`
	Amount        decimal.Decimal `json:"amount"`
}

// NewExpenseApprovedEvent creates a new ExpenseApprovedEvent
func NewExpenseApprovedEvent(expense *Expense, approvedBy uuid.UUID) *ExpenseApprovedEvent {
	return &ExpenseApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpenseApproved, AggregateTypeExpense, expense.ID, approvedBy),
		ExpenseNumber:   expense.ExpenseNumber,
		Amount:          expense.Amount,
	}
}

// ExpenseRejectedEvent is published when an expense is rejected
type ExpenseRejectedEvent struct {
	shared.BaseDomainEvent
	ExpenseNumber string `json:"expense_number"`
	Reason        string `json:"reason"`
}

// NewExpenseRejectedEvent creates a new ExpenseRejectedEvent
func NewExpenseRejectedEvent(expense *Expense, rejectedBy uuid.UUID, reason string) *ExpenseRejectedEvent {
	return &ExpenseRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpenseRejected, AggregateTypeExpense, expense.ID, rejectedBy),
		ExpenseNumber:   expense.ExpenseNumber,
		Reason:          reason,
	}
}

// ExpenseCheckRequestedEvent is published when a check request is generated
type ExpenseCheckRequestedEvent struct {
	shared.BaseDomainEvent
	ExpenseNumber string          `json:"expense_number"`
	Amount        decimal.Decimal `json:"amount"`
}

// NewExpenseCheckRequestedEvent creates a new ExpenseCheckRequestedEvent
func NewExpenseCheckRequestedEvent(expense *Expense, requestedBy uuid.UUID) *ExpenseCheckRequestedEvent {
	return &ExpenseCheckRequestedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpenseCheckRequested, AggregateTypeExpense, expense.ID, requestedBy),
		ExpenseNumber:   expense.ExpenseNumber,
		Amount:          expense.Amount,
	}
}

// ExpensePaidEvent is published when payment release is authorized
type ExpensePaidEvent struct {
	shared.BaseDomainEvent
	ExpenseNumber string          `json:"expense_number"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        time.Time       `json:"paid_at"`
}

// NewExpensePaidEvent creates a new ExpensePaidEvent
func NewExpensePaidEvent(expense *Expense, releasedBy uuid.UUID) *ExpensePaidEvent {
	paidAt := time.Now()
	if expense.PaidAt != nil {
		paidAt = *expense.PaidAt
	}
	return &ExpensePaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpensePaid, AggregateTypeExpense, expense.ID, releasedBy),
		ExpenseNumber:   expense.ExpenseNumber,
		Amount:          expense.Amount,
		PaidAt:          paidAt,
	}
}

// RentPaymentRecordedEvent is published when a stall rent payment is recorded
type RentPaymentRecordedEvent struct {
	shared.BaseDomainEvent
	ReceiptNumber string          `json:"receipt_number"`
	LeaseID       uuid.UUID       `json:"lease_id"`
	Amount        decimal.Decimal `json:"amount"`
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
}

// NewRentPaymentRecordedEvent creates a new RentPaymentRecordedEvent
func NewRentPaymentRecordedEvent(payment *RentPayment, recordedBy uuid.UUID) *RentPaymentRecordedEvent {
	return &RentPaymentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRentPaymentRecorded, AggregateTypeRentPayment, payment.ID, recordedBy),
		ReceiptNumber:   payment.ReceiptNumber,
		LeaseID:         payment.LeaseID,
		Amount:          payment.Amount,
		PeriodStart:     payment.PeriodStart,
		PeriodEnd:       payment.PeriodEnd,
	}
}
