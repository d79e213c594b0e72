package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
)

// Default minimum stock assigned when an item first enters inventory
// through a purchase receipt and no explicit threshold was set.
var DefaultMinStock = decimal.NewFromInt(10)

// InventoryItem represents a stocked supply item aggregate root.
// Quantity never goes negative.
type InventoryItem struct {
	shared.AuditedAggregateRoot
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	MinStock  decimal.Decimal `json:"min_stock"`
	Remark    string          `json:"remark"`
}

// NewInventoryItem creates a new stocked item
func NewInventoryItem(name, unit string, quantity, unitPrice, minStock decimal.Decimal) (*InventoryItem, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Item name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Item name cannot exceed 200 characters")
	}
	if quantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_UNIT_PRICE", "Unit price cannot be negative")
	}
	if minStock.IsNegative() {
		return nil, shared.NewDomainError("INVALID_MIN_STOCK", "Minimum stock cannot be negative")
	}

	item := &InventoryItem{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		Name:                 name,
		Unit:                 unit,
		Quantity:             quantity,
		UnitPrice:            unitPrice,
		MinStock:             minStock,
	}

	item.AddDomainEvent(NewInventoryItemCreatedEvent(item))
	item.checkThreshold(uuid.Nil)

	return item, nil
}

// NewInventoryItemFromReceipt creates an item implied by a purchase
// receipt. It gets the default minimum stock threshold.
func NewInventoryItemFromReceipt(name string, quantity, unitPrice decimal.Decimal, receivedBy uuid.UUID) (*InventoryItem, error) {
	item, err := NewInventoryItem(name, "", quantity, unitPrice, DefaultMinStock)
	if err != nil {
		return nil, err
	}
	item.SetCreatedBy(receivedBy)
	return item, nil
}

// IncreaseStock adds received quantity. The minimum stock threshold
// is never altered by a receipt.
func (i *InventoryItem) IncreaseStock(quantity decimal.Decimal, actor uuid.UUID) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Increase quantity must be positive")
	}

	i.Quantity = i.Quantity.Add(quantity)
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewStockIncreasedEvent(i, quantity, actor))

	return nil
}

// DecreaseStock consumes stock, refusing to go below zero
func (i *InventoryItem) DecreaseStock(quantity decimal.Decimal, actor uuid.UUID) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Decrease quantity must be positive")
	}
	if quantity.GreaterThan(i.Quantity) {
		return shared.NewDomainError("INSUFFICIENT_STOCK",
			fmt.Sprintf("Cannot take %s from stock of %s", quantity, i.Quantity))
	}

	i.Quantity = i.Quantity.Sub(quantity)
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewStockDecreasedEvent(i, quantity, actor))
	i.checkThreshold(actor)

	return nil
}

// AdjustStock sets the quantity to an absolute value after a physical count
func (i *InventoryItem) AdjustStock(newQuantity decimal.Decimal, reason string, actor uuid.UUID) error {
	if newQuantity.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Adjustment reason is required")
	}

	previous := i.Quantity
	i.Quantity = newQuantity
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewStockAdjustedEvent(i, previous, newQuantity, reason, actor))
	i.checkThreshold(actor)

	return nil
}

// SetMinStock changes the low-stock threshold
func (i *InventoryItem) SetMinStock(minStock decimal.Decimal) error {
	if minStock.IsNegative() {
		return shared.NewDomainError("INVALID_MIN_STOCK", "Minimum stock cannot be negative")
	}

	i.MinStock = minStock
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	i.checkThreshold(uuid.Nil)

	return nil
}

// SetUnitPrice updates the reference unit price
func (i *InventoryItem) SetUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_UNIT_PRICE", "Unit price cannot be negative")
	}

	i.UnitPrice = unitPrice
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// IsBelowMinStock reports whether the item needs restocking
func (i *InventoryItem) IsBelowMinStock() bool {
	return i.Quantity.LessThan(i.MinStock)
}

// StockValue returns quantity times unit price as PHP money
func (i *InventoryItem) StockValue() valueobject.Money {
	return valueobject.NewMoneyPHP(i.Quantity.Mul(i.UnitPrice))
}

func (i *InventoryItem) checkThreshold(actor uuid.UUID) {
	if i.IsBelowMinStock() {
		i.AddDomainEvent(NewStockBelowMinimumEvent(i, actor))
	}
}
