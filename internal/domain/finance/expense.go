package finance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/identity"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
)

// ExpenseCategory represents the category of a market expense
type ExpenseCategory string

const (
	ExpenseCategoryUtilities   ExpenseCategory = "UTILITIES"
	ExpenseCategorySalary      ExpenseCategory = "SALARY"
	ExpenseCategoryMaintenance ExpenseCategory = "MAINTENANCE"
	ExpenseCategorySecurity    ExpenseCategory = "SECURITY"
	ExpenseCategorySanitation  ExpenseCategory = "SANITATION"
	ExpenseCategorySupplies    ExpenseCategory = "SUPPLIES"
	ExpenseCategoryPermits     ExpenseCategory = "PERMITS"
	ExpenseCategoryOther       ExpenseCategory = "OTHER"
)

// IsValid checks if the category is a valid ExpenseCategory
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryUtilities, ExpenseCategorySalary, ExpenseCategoryMaintenance,
		ExpenseCategorySecurity, ExpenseCategorySanitation, ExpenseCategorySupplies,
		ExpenseCategoryPermits, ExpenseCategoryOther:
		return true
	}
	return false
}

// String returns the string representation of ExpenseCategory
func (c ExpenseCategory) String() string {
	return string(c)
}

// ApprovalStatus tracks the approval lifecycle of an expense
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

// IsValid checks if the status is a valid ApprovalStatus
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// String returns the string representation of ApprovalStatus
func (s ApprovalStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the approval decision has been made
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}

// ExpensePaymentStatus tracks the disbursement lifecycle of an expense.
// It only advances once the expense is approved.
type ExpensePaymentStatus string

const (
	ExpensePaymentPending         ExpensePaymentStatus = "PENDING"
	ExpensePaymentReadyForPayment ExpensePaymentStatus = "READY_FOR_PAYMENT"
	ExpensePaymentPaid            ExpensePaymentStatus = "PAID"
)

// IsValid checks if the status is a valid ExpensePaymentStatus
func (s ExpensePaymentStatus) IsValid() bool {
	switch s {
	case ExpensePaymentPending, ExpensePaymentReadyForPayment, ExpensePaymentPaid:
		return true
	}
	return false
}

// String returns the string representation of ExpensePaymentStatus
func (s ExpensePaymentStatus) String() string {
	return string(s)
}

// Expense represents a market operating expense aggregate root.
// It carries two independent lifecycles: the approval decision and the
// disbursement state. The disbursement lifecycle cannot move until the
// approval lifecycle has reached APPROVED.
type Expense struct {
	shared.AuditedAggregateRoot
	ExpenseNumber   string               `json:"expense_number"`
	Category        ExpenseCategory      `json:"category"`
	Amount          decimal.Decimal      `json:"amount"`
	Description     string               `json:"description"`
	IncurredAt      time.Time            `json:"incurred_at"`
	ApprovalStatus  ApprovalStatus       `json:"approval_status"`
	PaymentStatus   ExpensePaymentStatus `json:"payment_status"`
	ApprovedAt      *time.Time           `json:"approved_at"`
	ApprovedBy      *uuid.UUID           `json:"approved_by"`
	RejectedAt      *time.Time           `json:"rejected_at"`
	RejectedBy      *uuid.UUID           `json:"rejected_by"`
	RejectionReason string               `json:"rejection_reason"`
	CheckRequestAt  *time.Time           `json:"check_request_at"`
	CheckRequestBy  *uuid.UUID           `json:"check_request_by"`
	PaidAt          *time.Time           `json:"paid_at"`
	ReleasedBy      *uuid.UUID           `json:"released_by"`
	Remark          string               `json:"remark"`
}

// NewExpense creates a new expense awaiting approval
func NewExpense(
	expenseNumber string,
	category ExpenseCategory,
	amount valueobject.Money,
	description string,
	incurredAt time.Time,
) (*Expense, error) {
	if expenseNumber == "" {
		return nil, shared.NewDomainError("INVALID_EXPENSE_NUMBER", "Expense number cannot be empty")
	}
	if len(expenseNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_EXPENSE_NUMBER", "Expense number cannot exceed 50 characters")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Expense category is not valid")
	}
	if amount.Amount().LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if len(description) > 500 {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 500 characters")
	}

	expense := &Expense{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		ExpenseNumber:        expenseNumber,
		Category:             category,
		Amount:               amount.Amount(),
		Description:          description,
		IncurredAt:           incurredAt,
		ApprovalStatus:       ApprovalStatusPending,
		PaymentStatus:        ExpensePaymentPending,
	}

	expense.AddDomainEvent(NewExpenseCreatedEvent(expense))

	return expense, nil
}

// Approve approves the expense, subject to the policy's role threshold
func (e *Expense) Approve(approvedBy uuid.UUID, role identity.Role, policy *ApprovalPolicy) error {
	if e.ApprovalStatus != ApprovalStatusPending {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot approve expense in %s status", e.ApprovalStatus))
	}
	if approvedBy == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Approver user ID cannot be empty")
	}
	if err := policy.CanApprove(role, e.Amount); err != nil {
		return err
	}

	now := time.Now()
	e.ApprovalStatus = ApprovalStatusApproved
	e.ApprovedAt = &now
	e.ApprovedBy = &approvedBy
	e.UpdatedAt = now
	e.IncrementVersion()

	e.AddDomainEvent(NewExpenseApprovedEvent(e, approvedBy))

	return nil
}

// Reject rejects the expense with a mandatory reason
func (e *Expense) Reject(rejectedBy uuid.UUID, reason string) error {
	if e.ApprovalStatus != ApprovalStatusPending {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot reject expense in %s status", e.ApprovalStatus))
	}
	if rejectedBy == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Rejector user ID cannot be empty")
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Rejection reason is required")
	}

	now := time.Now()
	e.ApprovalStatus = ApprovalStatusRejected
	e.RejectedAt = &now
	e.RejectedBy = &rejectedBy
	e.RejectionReason = reason
	e.UpdatedAt = now
	e.IncrementVersion()

	e.AddDomainEvent(NewExpenseRejectedEvent(e, rejectedBy, reason))

	return nil
}

// GenerateCheckRequest moves the disbursement lifecycle to
// READY_FOR_PAYMENT. The expense must already be approved.
func (e *Expense) GenerateCheckRequest(requestedBy uuid.UUID, role identity.Role, policy *ApprovalPolicy) error {
	if err := policy.CanGenerateCheckRequest(role); err != nil {
		return err
	}
	if e.ApprovalStatus != ApprovalStatusApproved {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			"Check request requires an approved expense")
	}
	if e.PaymentStatus != ExpensePaymentPending {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot generate check request in %s payment status", e.PaymentStatus))
	}
	if requestedBy == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Requester user ID cannot be empty")
	}

	now := time.Now()
	e.PaymentStatus = ExpensePaymentReadyForPayment
	e.CheckRequestAt = &now
	e.CheckRequestBy = &requestedBy
	e.UpdatedAt = now
	e.IncrementVersion()

	e.AddDomainEvent(NewExpenseCheckRequestedEvent(e, requestedBy))

	return nil
}

// AuthorizeRelease marks the expense as PAID. Only callable once a
// check request has been generated.
func (e *Expense) AuthorizeRelease(releasedBy uuid.UUID, role identity.Role, policy *ApprovalPolicy) error {
	if err := policy.CanAuthorizeRelease(role); err != nil {
		return err
	}
	if e.ApprovalStatus != ApprovalStatusApproved {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			"Payment release requires an approved expense")
	}
	if e.PaymentStatus != ExpensePaymentReadyForPayment {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot release payment in %s payment status", e.PaymentStatus))
	}
	if releasedBy == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Releaser user ID cannot be empty")
	}

	now := time.Now()
	e.PaymentStatus = ExpensePaymentPaid
	e.PaidAt = &now
	e.ReleasedBy = &releasedBy
	e.UpdatedAt = now
	e.IncrementVersion()

	e.AddDomainEvent(NewExpensePaidEvent(e, releasedBy))

	return nil
}

// Update edits the expense details while it is still pending approval
func (e *Expense) Update(
	category ExpenseCategory,
	amount valueobject.Money,
	description string,
	incurredAt time.Time,
) error {
	if e.ApprovalStatus != ApprovalStatusPending {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			"Only pending expenses can be edited")
	}
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Expense category is not valid")
	}
	if amount.Amount().LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}

	e.Category = category
	e.Amount = amount.Amount()
	e.Description = description
	e.IncurredAt = incurredAt
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// SetRemark sets a free-text remark
func (e *Expense) SetRemark(remark string) {
	e.Remark = remark
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// GetAmountMoney returns the amount as a PHP money value
func (e *Expense) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyPHP(e.Amount)
}

// IsPaid reports whether the expense disbursement has completed
func (e *Expense) IsPaid() bool {
	return e.PaymentStatus == ExpensePaymentPaid
}
