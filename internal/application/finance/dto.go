package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/finance"
)

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	Category    finance.ExpenseCategory `json:"category" binding:"required"`
	Amount      decimal.Decimal         `json:"amount" binding:"required"`
	Description string                  `json:"description" binding:"required,min=1,max=500"`
	IncurredAt  time.Time               `json:"incurred_at" binding:"required"`
	Remark      string                  `json:"remark"`
	CreatedBy   *uuid.UUID              `json:"-"`
}

// UpdateExpenseRequest edits a pending expense
type UpdateExpenseRequest struct {
	Category    finance.ExpenseCategory `json:"category" binding:"required"`
	Amount      decimal.Decimal         `json:"amount" binding:"required"`
	Description string                  `json:"description" binding:"required,min=1,max=500"`
	IncurredAt  time.Time               `json:"incurred_at" binding:"required"`
}

// RejectExpenseRequest carries the mandatory rejection reason
type RejectExpenseRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// ExpenseResponse represents an expense in responses
type ExpenseResponse struct {
	ID              uuid.UUID       `json:"id"`
	ExpenseNumber   string          `json:"expense_number"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	IncurredAt      time.Time       `json:"incurred_at"`
	ApprovalStatus  string          `json:"approval_status"`
	PaymentStatus   string          `json:"payment_status"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
	RejectedAt      *time.Time      `json:"rejected_at,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CheckRequestAt  *time.Time      `json:"check_request_at,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	Remark          string          `json:"remark,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ExpenseListFilter contains list query options
type ExpenseListFilter struct {
	ApprovalStatus *finance.ApprovalStatus       `form:"approval_status"`
	PaymentStatus  *finance.ExpensePaymentStatus `form:"payment_status"`
	Category       *finance.ExpenseCategory      `form:"category"`
	IncurredFrom   *time.Time                    `form:"incurred_from" time_format:"2006-01-02"`
	IncurredTo     *time.Time                    `form:"incurred_to" time_format:"2006-01-02"`
	Keyword        string                        `form:"keyword"`
	Page           int                           `form:"page"`
	PageSize       int                           `form:"page_size"`
}

// RecordRentPaymentRequest represents a request to record a rent payment
type RecordRentPaymentRequest struct {
	LeaseID     uuid.UUID             `json:"lease_id" binding:"required"`
	TenantID    uuid.UUID             `json:"tenant_id" binding:"required"`
	Amount      decimal.Decimal       `json:"amount" binding:"required"`
	Method      finance.PaymentMethod `json:"method" binding:"required"`
	PeriodStart time.Time             `json:"period_start" binding:"required"`
	PeriodEnd   time.Time             `json:"period_end" binding:"required"`
	Remark      string                `json:"remark"`
	RecordedBy  uuid.UUID             `json:"-"`
}

// CorrectRentPaymentRequest reverses a previously recorded payment
type CorrectRentPaymentRequest struct {
	Remark     string    `json:"remark" binding:"required,min=1,max=500"`
	RecordedBy uuid.UUID `json:"-"`
}

// RentPaymentResponse represents a rent payment in responses
type RentPaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	ReceiptNumber string          `json:"receipt_number"`
	LeaseID       uuid.UUID       `json:"lease_id"`
	TenantID      uuid.UUID       `json:"tenant_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
	PaidAt        time.Time       `json:"paid_at"`
	IsCorrection  bool            `json:"is_correction"`
	Remark        string          `json:"remark,omitempty"`
}

// ToExpenseResponse converts a domain expense to a response DTO
func ToExpenseResponse(expense *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:              expense.ID,
		ExpenseNumber:   expense.ExpenseNumber,
		Category:        expense.Category.String(),
		Amount:          expense.Amount,
		Description:     expense.Description,
		IncurredAt:      expense.IncurredAt,
		ApprovalStatus:  expense.ApprovalStatus.String(),
		PaymentStatus:   expense.PaymentStatus.String(),
		ApprovedAt:      expense.ApprovedAt,
		RejectedAt:      expense.RejectedAt,
		RejectionReason: expense.RejectionReason,
		CheckRequestAt:  expense.CheckRequestAt,
		PaidAt:          expense.PaidAt,
		Remark:          expense.Remark,
		CreatedAt:       expense.CreatedAt,
		UpdatedAt:       expense.UpdatedAt,
	}
}

// ToExpenseResponses converts a slice of domain expenses
func ToExpenseResponses(expenses []*finance.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		responses = append(responses, ToExpenseResponse(expense))
	}
	return responses
}

// ToRentPaymentResponse converts a domain payment to a response DTO
func ToRentPaymentResponse(payment *finance.RentPayment) RentPaymentResponse {
	return RentPaymentResponse{
		ID:            payment.ID,
		ReceiptNumber: payment.ReceiptNumber,
		LeaseID:       payment.LeaseID,
		TenantID:      payment.TenantID,
		Amount:        payment.Amount,
		Method:        payment.Method.String(),
		PeriodStart:   payment.PeriodStart,
		PeriodEnd:     payment.PeriodEnd,
		PaidAt:        payment.PaidAt,
		IsCorrection:  payment.IsCorrection(),
		Remark:        payment.Remark,
	}
}

// ToRentPaymentResponses converts a slice of domain payments
func ToRentPaymentResponses(payments []*finance.RentPayment) []RentPaymentResponse {
	responses := make([]RentPaymentResponse, 0, len(payments))
	for _, payment := range payments {
		responses = append(responses, ToRentPaymentResponse(payment))
	}
	return responses
}
