package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
)

// PaymentMethod represents how a rent payment was settled
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCheck        PaymentMethod = "CHECK"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodGCash        PaymentMethod = "GCASH"
)

// IsValid checks if the method is a valid PaymentMethod
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCheck, PaymentMethodBankTransfer, PaymentMethodGCash:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// RentPayment records a stall rent payment against a lease.
// Payments are append-only: once recorded they are never edited,
// corrections are issued as new negative-amount entries.
type RentPayment struct {
	shared.AuditedAggregateRoot
	ReceiptNumber string          `json:"receipt_number"`
	LeaseID       uuid.UUID       `json:"lease_id"`
	TenantID      uuid.UUID       `json:"tenant_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"method"`
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
	PaidAt        time.Time       `json:"paid_at"`
	Remark        string          `json:"remark"`
}

// NewRentPayment records a rent payment for a lease period
func NewRentPayment(
	receiptNumber string,
	leaseID, tenantID uuid.UUID,
	amount valueobject.Money,
	method PaymentMethod,
	periodStart, periodEnd time.Time,
	recordedBy uuid.UUID,
) (*RentPayment, error) {
	if receiptNumber == "" {
		return nil, shared.NewDomainError("INVALID_RECEIPT_NUMBER", "Receipt number cannot be empty")
	}
	if leaseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LEASE_ID", "Lease ID cannot be empty")
	}
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if amount.IsZero() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount cannot be zero")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
	}
	if !periodEnd.After(periodStart) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Period end must be after period start")
	}

	payment := &RentPayment{
		AuditedAggregateRoot: shared.NewAuditedAggregateRootWithCreator(recordedBy),
		ReceiptNumber:        receiptNumber,
		LeaseID:              leaseID,
		TenantID:             tenantID,
		Amount:               amount.Amount(),
		Method:               method,
		PeriodStart:          periodStart,
		PeriodEnd:            periodEnd,
		PaidAt:               time.Now(),
	}

	payment.AddDomainEvent(NewRentPaymentRecordedEvent(payment, recordedBy))

	return payment, nil
}

// NewRentPaymentCorrection records a reversing entry for a prior payment
func NewRentPaymentCorrection(original *RentPayment, receiptNumber, remark string, recordedBy uuid.UUID) (*RentPayment, error) {
	if original == nil {
		return nil, shared.NewDomainError("INVALID_PAYMENT", "Original payment is required")
	}
	if remark == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "Correction remark is required")
	}

	amount := valueobject.NewMoneyPHP(original.Amount.Neg())
	correction, err := NewRentPayment(
		receiptNumber,
		original.LeaseID,
		original.TenantID,
		amount,
		original.Method,
		original.PeriodStart,
		original.PeriodEnd,
		recordedBy,
	)
	if err != nil {
		return nil, err
	}
	correction.Remark = remark

	return correction, nil
}

// GetAmountMoney returns the payment amount as a PHP money value
func (p *RentPayment) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyPHP(p.Amount)
}

// IsCorrection reports whether this entry reverses a prior payment
func (p *RentPayment) IsCorrection() bool {
	return p.Amount.IsNegative()
}
