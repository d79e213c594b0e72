package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/finance"
)

// ExpenseModel is the persistence model for the Expense aggregate
type ExpenseModel struct {
	AuditedAggregateModel
	ExpenseNumber   string                       `gorm:"type:varchar(50);not null;uniqueIndex"`
	Category        finance.ExpenseCategory      `gorm:"type:varchar(50);not null;index"`
	Amount          decimal.Decimal              `gorm:"type:decimal(18,4);not null"`
	Description     string                       `gorm:"type:text"`
	IncurredAt      time.Time                    `gorm:"not null;index"`
	ApprovalStatus  finance.ApprovalStatus       `gorm:"type:varchar(30);not null;index"`
	PaymentStatus   finance.ExpensePaymentStatus `gorm:"type:varchar(30);not null;index"`
	ApprovedAt      *time.Time
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectedAt      *time.Time
	RejectedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason string     `gorm:"type:text"`
	CheckRequestAt  *time.Time
	CheckRequestBy  *uuid.UUID `gorm:"type:uuid"`
	PaidAt          *time.Time
	ReleasedBy      *uuid.UUID `gorm:"type:uuid"`
	Remark          string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		AuditedAggregateRoot: m.toDomainRoot(),
		ExpenseNumber:        m.ExpenseNumber,
		Category:             m.Category,
		Amount:               m.Amount,
		Description:          m.Description,
		IncurredAt:           m.IncurredAt,
		ApprovalStatus:       m.ApprovalStatus,
		PaymentStatus:        m.PaymentStatus,
		ApprovedAt:           m.ApprovedAt,
		ApprovedBy:           m.ApprovedBy,
		RejectedAt:           m.RejectedAt,
		RejectedBy:           m.RejectedBy,
		RejectionReason:      m.RejectionReason,
		CheckRequestAt:       m.CheckRequestAt,
		CheckRequestBy:       m.CheckRequestBy,
		PaidAt:               m.PaidAt,
		ReleasedBy:           m.ReleasedBy,
		Remark:               m.Remark,
	}
}

// ExpenseModelFromDomain converts a domain Expense to the persistence model
func ExpenseModelFromDomain(expense *finance.Expense) *ExpenseModel {
	return &ExpenseModel{
		AuditedAggregateModel: fromDomainRoot(expense.AuditedAggregateRoot),
		ExpenseNumber:         expense.ExpenseNumber,
		Category:              expense.Category,
		Amount:                expense.Amount,
		Description:           expense.Description,
		IncurredAt:            expense.IncurredAt,
		ApprovalStatus:        expense.ApprovalStatus,
		PaymentStatus:         expense.PaymentStatus,
		ApprovedAt:            expense.ApprovedAt,
		ApprovedBy:            expense.ApprovedBy,
		RejectedAt:            expense.RejectedAt,
		RejectedBy:            expense.RejectedBy,
		RejectionReason:       expense.RejectionReason,
		CheckRequestAt:        expense.CheckRequestAt,
		CheckRequestBy:        expense.CheckRequestBy,
		PaidAt:                expense.PaidAt,
		ReleasedBy:            expense.ReleasedBy,
		Remark:                expense.Remark,
	}
}

// RentPaymentModel is the persistence model for the RentPayment aggregate
type RentPaymentModel struct {
	AuditedAggregateModel
	ReceiptNumber string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	LeaseID       uuid.UUID             `gorm:"type:uuid;not null;index"`
	TenantID      uuid.UUID             `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Method        finance.PaymentMethod `gorm:"type:varchar(30);not null"`
	PeriodStart   time.Time             `gorm:"not null"`
	PeriodEnd     time.Time             `gorm:"not null"`
	PaidAt        time.Time             `gorm:"not null;index"`
	Remark        string                `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (RentPaymentModel) TableName() string {
	return "rent_payments"
}

// ToDomain converts the persistence model to a domain RentPayment
func (m *RentPaymentModel) ToDomain() *finance.RentPayment {
	return &finance.RentPayment{
		AuditedAggregateRoot: m.toDomainRoot(),
		ReceiptNumber:        m.ReceiptNumber,
		LeaseID:              m.LeaseID,
		TenantID:             m.TenantID,
		Amount:               m.Amount,
		Method:               m.Method,
		PeriodStart:          m.PeriodStart,
		PeriodEnd:            m.PeriodEnd,
		PaidAt:               m.PaidAt,
		Remark:               m.Remark,
	}
}

// RentPaymentModelFromDomain converts a domain RentPayment to the persistence model
func RentPaymentModelFromDomain(payment *finance.RentPayment) *RentPaymentModel {
	return &RentPaymentModel{
		AuditedAggregateModel: fromDomainRoot(payment.AuditedAggregateRoot),
		ReceiptNumber:         payment.ReceiptNumber,
		LeaseID:               payment.LeaseID,
		TenantID:              payment.TenantID,
		Amount:                payment.Amount,
		Method:                payment.Method,
		PeriodStart:           payment.PeriodStart,
		PeriodEnd:             payment.PeriodEnd,
		PaidAt:                payment.PaidAt,
		Remark:                payment.Remark,
	}
}
