package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
)

func newTestOrder(t *testing.T) *PurchaseOrder {
	t.Helper()
	order, err := NewPurchaseOrder("PO-2026-0001", "Bayanihan Supplies")
	require.NoError(t, err)
	return order
}

func TestNewPurchaseOrder(t *testing.T) {
	order := newTestOrder(t)

	assert.Equal(t, PurchaseOrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.IsZero())
	assert.Len(t, order.GetDomainEvents(), 1)

	_, err := NewPurchaseOrder("", "Bayanihan Supplies")
	assert.Error(t, err)

	_, err = NewPurchaseOrder("PO-2026-0002", "")
	assert.Error(t, err)
}

func TestAddAndRemoveItems(t *testing.T) {
	order := newTestOrder(t)

	item, err := order.AddItem("Trash bags 50L", decimal.NewFromInt(10), valueobject.NewMoneyPHPFromFloat(120))
	require.NoError(t, err)
	assert.Equal(t, 1, order.ItemCount())
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(1200)))

	_, err = order.AddItem("Floor wax", decimal.NewFromInt(4), valueobject.NewMoneyPHPFromFloat(250.50))
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("2202")))

	require.NoError(t, order.RemoveItem(item.ID))
	assert.Equal(t, 1, order.ItemCount())
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("1002")))

	err = order.RemoveItem(uuid.New())
	assert.Error(t, err)
}

func TestAddItemValidation(t *testing.T) {
	order := newTestOrder(t)

	_, err := order.AddItem("", decimal.NewFromInt(1), valueobject.NewMoneyPHPFromFloat(10))
	assert.Error(t, err)

	_, err = order.AddItem("Broom", decimal.Zero, valueobject.NewMoneyPHPFromFloat(10))
	assert.Error(t, err)

	_, err = order.AddItem("Broom", decimal.NewFromInt(-1), valueobject.NewMoneyPHPFromFloat(10))
	assert.Error(t, err)
}

func TestReceiveOrder(t *testing.T) {
	order := newTestOrder(t)
	receiver := uuid.New()

	_, err := order.AddItem("Trash bags 50L", decimal.NewFromInt(50), valueobject.NewMoneyPHPFromFloat(120))
	require.NoError(t, err)
	_, err = order.AddItem("Floor wax", decimal.NewFromInt(4), valueobject.NewMoneyPHPFromFloat(250))
	require.NoError(t, err)

	received, err := order.Receive(receiver)
	require.NoError(t, err)
	require.Len(t, received, 2)
	assert.Equal(t, "Trash bags 50L", received[0].ItemName)
	assert.True(t, received[0].Quantity.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, PurchaseOrderStatusReceived, order.Status)
	require.NotNil(t, order.ReceivedBy)
	assert.Equal(t, receiver, *order.ReceivedBy)

	// RECEIVED is terminal.
	_, err = order.Receive(receiver)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodeInvalidTransition, domainErr.Code)

	err = order.Cancel(uuid.New(), "too late")
	assert.Error(t, err)
}

func TestReceiveEmptyOrder(t *testing.T) {
	order := newTestOrder(t)

	_, err := order.Receive(uuid.New())
	assert.Error(t, err)
	assert.Equal(t, PurchaseOrderStatusPending, order.Status)
}

func TestCancelOrder(t *testing.T) {
	order := newTestOrder(t)
	canceller := uuid.New()

	err := order.Cancel(canceller, "")
	assert.Error(t, err)

	require.NoError(t, order.Cancel(canceller, "supplier out of stock"))
	assert.Equal(t, PurchaseOrderStatusCancelled, order.Status)
	assert.Equal(t, "supplier out of stock", order.CancelReason)

	// CANCELLED is terminal.
	_, err = order.Receive(uuid.New())
	assert.Error(t, err)
	err = order.Cancel(canceller, "again")
	assert.Error(t, err)
}

func TestModifyAfterTerminal(t *testing.T) {
	order := newTestOrder(t)
	_, err := order.AddItem("Broom", decimal.NewFromInt(2), valueobject.NewMoneyPHPFromFloat(80))
	require.NoError(t, err)

	_, err = order.Receive(uuid.New())
	require.NoError(t, err)

	_, err = order.AddItem("Dustpan", decimal.NewFromInt(1), valueobject.NewMoneyPHPFromFloat(45))
	assert.Error(t, err)
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    PurchaseOrderStatus
		to      PurchaseOrderStatus
		allowed bool
	}{
		{PurchaseOrderStatusPending, PurchaseOrderStatusReceived, true},
		{PurchaseOrderStatusPending, PurchaseOrderStatusCancelled, true},
		{PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled, false},
		{PurchaseOrderStatusReceived, PurchaseOrderStatusPending, false},
		{PurchaseOrderStatusCancelled, PurchaseOrderStatusReceived, false},
		{PurchaseOrderStatusCancelled, PurchaseOrderStatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}
