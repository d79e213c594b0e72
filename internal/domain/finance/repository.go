package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ExpenseRepository defines the interface for expense persistence
type ExpenseRepository interface {
	// Create creates a new expense
	Create(ctx context.Context, expense *Expense) error

	// Update updates an existing expense
	Update(ctx context.Context, expense *Expense) error

	// UpdateWithLock updates an expense using optimistic locking on Version
	UpdateWithLock(ctx context.Context, expense *Expense) error

	// Delete deletes an expense by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds an expense by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)

	// FindByExpenseNumber finds an expense by its business number
	FindByExpenseNumber(ctx context.Context, expenseNumber string) (*Expense, error)

	// FindAll returns expenses matching the filter with pagination
	FindAll(ctx context.Context, filter ExpenseFilter) ([]*Expense, int64, error)

	// Count returns the total number of expenses
	Count(ctx context.Context) (int64, error)

	// GenerateExpenseNumber generates the next expense number
	GenerateExpenseNumber(ctx context.Context) (string, error)
}

// ExpenseFilter contains filter options for querying expenses
type ExpenseFilter struct {
	ApprovalStatus *ApprovalStatus
	PaymentStatus  *ExpensePaymentStatus
	Category       *ExpenseCategory

	// Incurred date range, inclusive on both ends
	IncurredFrom *time.Time
	IncurredTo   *time.Time

	Keyword  string
	Page     int
	PageSize int
}

// RentPaymentRepository defines the interface for rent payment persistence.
// Payments are append-only, there is no update.
type RentPaymentRepository interface {
	// Create records a new payment
	Create(ctx context.Context, payment *RentPayment) error

	// FindByID finds a payment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*RentPayment, error)

	// FindByLease returns all payments recorded against a lease
	FindByLease(ctx context.Context, leaseID uuid.UUID) ([]*RentPayment, error)

	// FindByTenant returns all payments recorded for a market tenant
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*RentPayment, error)

	// FindByPeriod returns payments whose paid-at falls within the range
	FindByPeriod(ctx context.Context, from, to time.Time) ([]*RentPayment, error)

	// Count returns the total number of payments
	Count(ctx context.Context) (int64, error)

	// GenerateReceiptNumber generates the next receipt number
	GenerateReceiptNumber(ctx context.Context) (string, error)
}
