package trade

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPending   PurchaseOrderStatus = "PENDING"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "RECEIVED"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusPending, PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks whether a transition to the target status is legal.
// RECEIVED and CANCELLED are terminal.
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	switch s {
	case PurchaseOrderStatusPending:
		return target == PurchaseOrderStatusReceived || target == PurchaseOrderStatusCancelled
	default:
		return false
	}
}

// IsTerminal returns true once the order can no longer change
func (s PurchaseOrderStatus) IsTerminal() bool {
	return s == PurchaseOrderStatusReceived || s == PurchaseOrderStatusCancelled
}

// PurchaseOrderItem is a line on a purchase order
type PurchaseOrderItem struct {
	shared.BaseEntity
	OrderID  uuid.UUID       `json:"order_id"`
	ItemName string          `json:"item_name"`
	Quantity decimal.Decimal `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Amount   decimal.Decimal `json:"amount"`
	Remark   string          `json:"remark"`
}

// NewPurchaseOrderItem creates a validated order line
func NewPurchaseOrderItem(orderID uuid.UUID, itemName string, quantity decimal.Decimal, unitCost valueobject.Money) (*PurchaseOrderItem, error) {
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Item name cannot be empty")
	}
	if len(itemName) > 200 {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Item name cannot exceed 200 characters")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_UNIT_COST", "Unit cost cannot be negative")
	}

	return &PurchaseOrderItem{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		ItemName:   itemName,
		Quantity:   quantity,
		UnitCost:   unitCost.Amount(),
		Amount:     quantity.Mul(unitCost.Amount()),
	}, nil
}

// GetAmountMoney returns the line amount as PHP money
func (i *PurchaseOrderItem) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyPHP(i.Amount)
}

// ReceivedItemInfo describes one received line for downstream stock updates
type ReceivedItemInfo struct {
	ItemID   uuid.UUID       `json:"item_id"`
	ItemName string          `json:"item_name"`
	Quantity decimal.Decimal `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// PurchaseOrder represents a supplies purchase aggregate root.
// The whole order is received or cancelled in one step, there are
// no partial deliveries.
type PurchaseOrder struct {
	shared.AuditedAggregateRoot
	OrderNumber  string              `json:"order_number"`
	SupplierName string              `json:"supplier_name"`
	Status       PurchaseOrderStatus `json:"status"`
	Items        []PurchaseOrderItem `json:"items"`
	TotalAmount  decimal.Decimal     `json:"total_amount"`
	OrderedAt    time.Time           `json:"ordered_at"`
	ReceivedAt   *time.Time          `json:"received_at"`
	ReceivedBy   *uuid.UUID          `json:"received_by"`
	CancelledAt  *time.Time          `json:"cancelled_at"`
	CancelledBy  *uuid.UUID          `json:"cancelled_by"`
	CancelReason string              `json:"cancel_reason"`
	Remark       string              `json:"remark"`
}

// NewPurchaseOrder creates a pending order with no lines yet
func NewPurchaseOrder(orderNumber, supplierName string) (*PurchaseOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if supplierName == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier name cannot be empty")
	}

	order := &PurchaseOrder{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		OrderNumber:          orderNumber,
		SupplierName:         supplierName,
		Status:               PurchaseOrderStatusPending,
		Items:                make([]PurchaseOrderItem, 0),
		TotalAmount:          decimal.Zero,
		OrderedAt:            time.Now(),
	}

	order.AddDomainEvent(NewPurchaseOrderCreatedEvent(order))

	return order, nil
}

// AddItem appends a line to a pending order
func (o *PurchaseOrder) AddItem(itemName string, quantity decimal.Decimal, unitCost valueobject.Money) (*PurchaseOrderItem, error) {
	if o.Status != PurchaseOrderStatusPending {
		return nil, shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot modify order in %s status", o.Status))
	}

	item, err := NewPurchaseOrderItem(o.ID, itemName, quantity, unitCost)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.recalculateTotal()
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return item, nil
}

// RemoveItem removes a line from a pending order
func (o *PurchaseOrder) RemoveItem(itemID uuid.UUID) error {
	if o.Status != PurchaseOrderStatusPending {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot modify order in %s status", o.Status))
	}

	for i, item := range o.Items {
		if item.ID == itemID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			o.recalculateTotal()
			o.UpdatedAt = time.Now()
			o.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_FOUND", "Order item not found")
}

// Receive marks the entire order as received and returns the received
// line details for stock updates.
func (o *PurchaseOrder) Receive(receivedBy uuid.UUID) ([]ReceivedItemInfo, error) {
	if !o.Status.CanTransitionTo(PurchaseOrderStatusReceived) {
		return nil, shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot receive order in %s status", o.Status))
	}
	if len(o.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Cannot receive an order with no items")
	}
	if receivedBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Receiver user ID cannot be empty")
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusReceived
	o.ReceivedAt = &now
	o.ReceivedBy = &receivedBy
	o.UpdatedAt = now
	o.IncrementVersion()

	received := make([]ReceivedItemInfo, 0, len(o.Items))
	for _, item := range o.Items {
		received = append(received, ReceivedItemInfo{
			ItemID:   item.ID,
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			UnitCost: item.UnitCost,
		})
	}

	o.AddDomainEvent(NewPurchaseOrderReceivedEvent(o, receivedBy, received))

	return received, nil
}

// Cancel abandons a pending order
func (o *PurchaseOrder) Cancel(cancelledBy uuid.UUID, reason string) error {
	if !o.Status.CanTransitionTo(PurchaseOrderStatusCancelled) {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot cancel order in %s status", o.Status))
	}
	if cancelledBy == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Canceller user ID cannot be empty")
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Cancel reason is required")
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusCancelled
	o.CancelledAt = &now
	o.CancelledBy = &cancelledBy
	o.CancelReason = reason
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewPurchaseOrderCancelledEvent(o, cancelledBy, reason))

	return nil
}

// SetRemark sets a free-text remark
func (o *PurchaseOrder) SetRemark(remark string) {
	o.Remark = remark
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

func (o *PurchaseOrder) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Amount)
	}
	o.TotalAmount = total
}

// GetTotalAmountMoney returns the order total as PHP money
func (o *PurchaseOrder) GetTotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyPHP(o.TotalAmount)
}

// ItemCount returns the number of lines on the order
func (o *PurchaseOrder) ItemCount() int {
	return len(o.Items)
}

// IsPending returns true while the order awaits receipt or cancellation
func (o *PurchaseOrder) IsPending() bool {
	return o.Status == PurchaseOrderStatusPending
}

// IsReceived returns true if the order has been received
func (o *PurchaseOrder) IsReceived() bool {
	return o.Status == PurchaseOrderStatusReceived
}

// GetItem returns a line by ID, or nil
func (o *PurchaseOrder) GetItem(itemID uuid.UUID) *PurchaseOrderItem {
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			return &o.Items[i]
		}
	}
	return nil
}
