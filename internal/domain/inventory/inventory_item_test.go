package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, qty, minStock int64) *InventoryItem {
	t.Helper()
	item, err := NewInventoryItem("Trash bags 50L", "roll",
		decimal.NewFromInt(qty), decimal.NewFromInt(120), decimal.NewFromInt(minStock))
	require.NoError(t, err)
	item.ClearDomainEvents()
	return item
}

func TestNewInventoryItem(t *testing.T) {
	item := newTestItem(t, 200, 20)
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(200)))
	assert.False(t, item.IsBelowMinStock())

	_, err := NewInventoryItem("", "pc", decimal.NewFromInt(1), decimal.Zero, decimal.Zero)
	assert.Error(t, err)

	_, err = NewInventoryItem("Broom", "pc", decimal.NewFromInt(-1), decimal.Zero, decimal.Zero)
	assert.Error(t, err)
}

func TestIncreaseStock(t *testing.T) {
	item := newTestItem(t, 200, 20)
	actor := uuid.New()

	require.NoError(t, item.IncreaseStock(decimal.NewFromInt(50), actor))
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(250)))

	// A receipt never alters the restock threshold.
	assert.True(t, item.MinStock.Equal(decimal.NewFromInt(20)))

	err := item.IncreaseStock(decimal.Zero, actor)
	assert.Error(t, err)
	err = item.IncreaseStock(decimal.NewFromInt(-5), actor)
	assert.Error(t, err)
}

func TestDecreaseStockNeverNegative(t *testing.T) {
	item := newTestItem(t, 10, 2)
	actor := uuid.New()

	err := item.DecreaseStock(decimal.NewFromInt(11), actor)
	assert.Error(t, err)
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(10)))

	require.NoError(t, item.DecreaseStock(decimal.NewFromInt(10), actor))
	assert.True(t, item.Quantity.IsZero())
}

func TestBelowMinimumEvent(t *testing.T) {
	item := newTestItem(t, 25, 20)
	actor := uuid.New()

	require.NoError(t, item.DecreaseStock(decimal.NewFromInt(3), actor))
	for _, e := range item.GetDomainEvents() {
		assert.NotEqual(t, EventTypeStockBelowMinimum, e.EventType())
	}

	require.NoError(t, item.DecreaseStock(decimal.NewFromInt(5), actor))
	found := false
	for _, e := range item.GetDomainEvents() {
		if e.EventType() == EventTypeStockBelowMinimum {
			found = true
		}
	}
	assert.True(t, found, "expected a below-minimum event once quantity dropped under the threshold")
}

func TestAdjustStock(t *testing.T) {
	item := newTestItem(t, 100, 10)
	actor := uuid.New()

	err := item.AdjustStock(decimal.NewFromInt(80), "", actor)
	assert.Error(t, err)

	err = item.AdjustStock(decimal.NewFromInt(-1), "count", actor)
	assert.Error(t, err)

	require.NoError(t, item.AdjustStock(decimal.NewFromInt(80), "monthly count", actor))
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(80)))
}

func TestNewInventoryItemFromReceipt(t *testing.T) {
	receiver := uuid.New()
	item, err := NewInventoryItemFromReceipt("Floor wax", decimal.NewFromInt(4), decimal.NewFromInt(250), receiver)
	require.NoError(t, err)

	assert.True(t, item.MinStock.Equal(DefaultMinStock))
	require.NotNil(t, item.GetCreatedBy())
	assert.Equal(t, receiver, *item.GetCreatedBy())
}

func TestStockValue(t *testing.T) {
	item := newTestItem(t, 10, 1)
	assert.Equal(t, "1200.00 PHP", item.StockValue().String())
}
