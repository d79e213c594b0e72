package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palengke/backend/internal/domain/shared/valueobject"
)

func newTestPayment(t *testing.T) *RentPayment {
	t.Helper()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	payment, err := NewRentPayment(
		"OR-2026-0815",
		uuid.New(),
		uuid.New(),
		valueobject.NewMoneyPHPFromFloat(3500),
		PaymentMethodGCash,
		start,
		start.AddDate(0, 1, 0),
		uuid.New(),
	)
	require.NoError(t, err)
	return payment
}

func TestNewRentPayment(t *testing.T) {
	payment := newTestPayment(t)

	assert.Equal(t, "OR-2026-0815", payment.ReceiptNumber)
	assert.False(t, payment.IsCorrection())
	assert.Len(t, payment.GetDomainEvents(), 1)
	assert.NotNil(t, payment.GetCreatedBy())
}

func TestNewRentPaymentValidation(t *testing.T) {
	start := time.Now()
	amount := valueobject.NewMoneyPHPFromFloat(3500)

	_, err := NewRentPayment("", uuid.New(), uuid.New(), amount, PaymentMethodCash, start, start.AddDate(0, 1, 0), uuid.New())
	assert.Error(t, err)

	_, err = NewRentPayment("OR-1", uuid.Nil, uuid.New(), amount, PaymentMethodCash, start, start.AddDate(0, 1, 0), uuid.New())
	assert.Error(t, err)

	_, err = NewRentPayment("OR-1", uuid.New(), uuid.New(), valueobject.ZeroPHP(), PaymentMethodCash, start, start.AddDate(0, 1, 0), uuid.New())
	assert.Error(t, err)

	_, err = NewRentPayment("OR-1", uuid.New(), uuid.New(), amount, PaymentMethod("IOU"), start, start.AddDate(0, 1, 0), uuid.New())
	assert.Error(t, err)

	// Period end must come after start.
	_, err = NewRentPayment("OR-1", uuid.New(), uuid.New(), amount, PaymentMethodCash, start, start, uuid.New())
	assert.Error(t, err)
}

func TestRentPaymentCorrection(t *testing.T) {
	original := newTestPayment(t)

	correction, err := NewRentPaymentCorrection(original, "OR-2026-0816", "wrong stall charged", uuid.New())
	require.NoError(t, err)

	assert.True(t, correction.IsCorrection())
	assert.True(t, correction.Amount.Equal(original.Amount.Neg()))
	assert.Equal(t, original.LeaseID, correction.LeaseID)
	assert.Equal(t, original.TenantID, correction.TenantID)
	assert.Equal(t, "wrong stall charged", correction.Remark)

	_, err = NewRentPaymentCorrection(original, "OR-2026-0817", "", uuid.New())
	assert.Error(t, err)
}
