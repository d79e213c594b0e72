package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/palengke/backend/internal/domain/inventory"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/trade"
)

// PurchaseOrderReceivedHandler increases stock when a purchase order is
// received. Items not yet stocked are created with the default minimum
// stock; existing items keep their threshold untouched.
type PurchaseOrderReceivedHandler struct {
	itemRepo inventory.InventoryItemRepository
	logger   *zap.Logger
}

// NewPurchaseOrderReceivedHandler creates a new handler for purchase order received events
func NewPurchaseOrderReceivedHandler(
	itemRepo inventory.InventoryItemRepository,
	logger *zap.Logger,
) *PurchaseOrderReceivedHandler {
	return &PurchaseOrderReceivedHandler{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *PurchaseOrderReceivedHandler) EventTypes() []string {
	return []string{trade.EventTypePurchaseOrderReceived}
}

// Handle processes a PurchaseOrderReceivedEvent by updating stock levels
func (h *PurchaseOrderReceivedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	receivedEvent, ok := event.(*trade.PurchaseOrderReceivedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", trade.EventTypePurchaseOrderReceived),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			trade.EventTypePurchaseOrderReceived, event.EventType())
	}

	h.logger.Info("processing received purchase order for stock update",
		zap.String("order_id", receivedEvent.AggregateID().String()),
		zap.String("order_number", receivedEvent.OrderNumber),
		zap.Int("received_items", len(receivedEvent.ReceivedItems)),
	)

	for _, received := range receivedEvent.ReceivedItems {
		if err := h.applyReceipt(ctx, received, receivedEvent.ActorID()); err != nil {
			h.logger.Error("failed to update stock for received item",
				zap.String("order_number", receivedEvent.OrderNumber),
				zap.String("item_name", received.ItemName),
				zap.Error(err),
			)
			return err
		}
	}

	return nil
}

func (h *PurchaseOrderReceivedHandler) applyReceipt(ctx context.Context, received trade.ReceivedItemInfo, actor uuid.UUID) error {
	item, err := h.itemRepo.FindByName(ctx, received.ItemName)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	if item == nil {
		// First time this supply appears: stock it with the default threshold.
		newItem, err := inventory.NewInventoryItemFromReceipt(received.ItemName, received.Quantity, received.UnitCost, actor)
		if err != nil {
			return err
		}
		if err := h.itemRepo.Create(ctx, newItem); err != nil {
			return err
		}
		h.logger.Info("stocked new inventory item from receipt",
			zap.String("item_name", received.ItemName),
			zap.String("quantity", received.Quantity.String()),
		)
		return nil
	}

	if err := item.IncreaseStock(received.Quantity, actor); err != nil {
		return err
	}
	if err := item.SetUnitPrice(received.UnitCost); err != nil {
		return err
	}
	return h.itemRepo.UpdateWithLock(ctx, item)
}
