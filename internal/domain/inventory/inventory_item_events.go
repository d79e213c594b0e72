package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/shared"
)

// Aggregate type constant for InventoryItem
const AggregateTypeInventoryItem = "InventoryItem"

// Inventory domain event types
const (
	EventTypeInventoryItemCreated = "InventoryItemCreated"
	EventTypeStockIncreased       = "StockIncreased"
	EventTypeStockDecreased       = "StockDecreased"
	EventTypeStockAdjusted        = "StockAdjusted"
	EventTypeStockBelowMinimum    = "StockBelowMinimum"
)

// InventoryItemCreatedEvent is published when an item enters inventory
type InventoryItemCreatedEvent struct {
	shared.BaseDomainEvent
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
}

// NewInventoryItemCreatedEvent creates a new InventoryItemCreatedEvent
func NewInventoryItemCreatedEvent(item *InventoryItem) *InventoryItemCreatedEvent {
	actor := uuid.Nil
	if createdBy := item.GetCreatedBy(); createdBy != nil {
		actor = *createdBy
	}
	return &InventoryItemCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInventoryItemCreated, AggregateTypeInventoryItem, item.ID, actor),
		Name:            item.Name,
		Quantity:        item.Quantity,
	}
}

// StockIncreasedEvent is published when stock is added
type StockIncreasedEvent struct {
	shared.BaseDomainEvent
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	NewQuantity decimal.Decimal `json:"new_quantity"`
}

// NewStockIncreasedEvent creates a new StockIncreasedEvent
func NewStockIncreasedEvent(item *InventoryItem, quantity decimal.Decimal, actor uuid.UUID) *StockIncreasedEvent {
	return &StockIncreasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockIncreased, AggregateTypeInventoryItem, item.ID, actor),
		Name:            item.Name,
		Quantity:        quantity,
		NewQuantity:     item.Quantity,
	}
}

// StockDecreasedEvent is published when stock is consumed
type StockDecreasedEvent struct {
	shared.BaseDomainEvent
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	NewQuantity decimal.Decimal `json:"new_quantity"`
}

// NewStockDecreasedEvent creates a new StockDecreasedEvent
func NewStockDecreasedEvent(item *InventoryItem, quantity decimal.Decimal, actor uuid.UUID) *StockDecreasedEvent {
	return &StockDecreasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockDecreased, AggregateTypeInventoryItem, item.ID, actor),
		Name:            item.Name,
		Quantity:        quantity,
		NewQuantity:     item.Quantity,
	}
}

// StockAdjustedEvent is published when a physical count overrides the quantity
type StockAdjustedEvent struct {
	shared.BaseDomainEvent
	Name             string          `json:"name"`
	PreviousQuantity decimal.Decimal `json:"previous_quantity"`
	NewQuantity      decimal.Decimal `json:"new_quantity"`
	Reason           string          `json:"reason"`
}

// NewStockAdjustedEvent creates a new StockAdjustedEvent
func NewStockAdjustedEvent(item *InventoryItem, previous, newQuantity decimal.Decimal, reason string, actor uuid.UUID) *StockAdjustedEvent {
	return &StockAdjustedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeStockAdjusted, AggregateTypeInventoryItem, item.ID, actor),
		Name:             item.Name,
		PreviousQuantity: previous,
		NewQuantity:      newQuantity,
		Reason:           reason,
	}
}

// StockBelowMinimumEvent is published when quantity drops under the threshold
type StockBelowMinimumEvent struct {
	shared.BaseDomainEvent
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	MinStock decimal.Decimal `json:"min_stock"`
}

// NewStockBelowMinimumEvent creates a new StockBelowMinimumEvent
func NewStockBelowMinimumEvent(item *InventoryItem, actor uuid.UUID) *StockBelowMinimumEvent {
	return &StockBelowMinimumEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockBelowMinimum, AggregateTypeInventoryItem, item.ID, actor),
		Name:            item.Name,
		Quantity:        item.Quantity,
		MinStock:        item.MinStock,
	}
}
