package trade

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/shared"
)

// Aggregate type constant for PurchaseOrder
const AggregateTypePurchaseOrder = "PurchaseOrder"

// Purchase order domain event types
const (
	EventTypePurchaseOrderCreated   = "PurchaseOrderCreated"
	EventTypePurchaseOrderReceived  = "PurchaseOrderReceived"
	EventTypePurchaseOrderCancelled = "PurchaseOrderCancelled"
)

// PurchaseOrderCreatedEvent is published when an order is created
type PurchaseOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber  string `json:"order_number"`
	SupplierName string `json:"supplier_name"`
}

// NewPurchaseOrderCreatedEvent creates a new PurchaseOrderCreatedEvent
func NewPurchaseOrderCreatedEvent(order *PurchaseOrder) *PurchaseOrderCreatedEvent {
	actor := uuid.Nil
	if createdBy := order.GetCreatedBy(); createdBy != nil {
		actor = *createdBy
	}
	return &PurchaseOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderCreated, AggregateTypePurchaseOrder, order.ID, actor),
		OrderNumber:     order.OrderNumber,
		SupplierName:    order.SupplierName,
	}
}

// PurchaseOrderReceivedEvent is published when an order is received.
// Inventory listens for it to increase stock.
type PurchaseOrderReceivedEvent struct {
	shared.BaseDomainEvent
	OrderNumber   string             `json:"order_number"`
	ReceivedItems []ReceivedItemInfo `json:"received_items"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
}

// NewPurchaseOrderReceivedEvent creates a new PurchaseOrderReceivedEvent
func NewPurchaseOrderReceivedEvent(order *PurchaseOrder, receivedBy uuid.UUID, items []ReceivedItemInfo) *PurchaseOrderReceivedEvent {
	return &PurchaseOrderReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderReceived, AggregateTypePurchaseOrder, order.ID, receivedBy),
		OrderNumber:     order.OrderNumber,
		ReceivedItems:   items,
		TotalAmount:     order.TotalAmount,
	}
}

// PurchaseOrderCancelledEvent is published when an order is cancelled
type PurchaseOrderCancelledEvent struct {
	shared.BaseDomainEvent
	OrderNumber string `json:"order_number"`
	Reason      string `json:"reason"`
}

// NewPurchaseOrderCancelledEvent creates a new PurchaseOrderCancelledEvent
func NewPurchaseOrderCancelledEvent(order *PurchaseOrder, cancelledBy uuid.UUID, reason string) *PurchaseOrderCancelledEvent {
	return &PurchaseOrderCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderCancelled, AggregateTypePurchaseOrder, order.ID, cancelledBy),
		OrderNumber:     order.OrderNumber,
		Reason:          reason,
	}
}
