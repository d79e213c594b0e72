package inventory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/palengke/backend/internal/domain/inventory"
	"github.com/palengke/backend/internal/domain/shared"
)

// StockBelowMinimumHandler logs a restock warning whenever stock falls
// under its threshold. Kept as a dedicated handler so a notification
// channel can be slotted in without touching the stock paths.
type StockBelowMinimumHandler struct {
	logger *zap.Logger
}

// NewStockBelowMinimumHandler creates a new handler for low-stock events
func NewStockBelowMinimumHandler(logger *zap.Logger) *StockBelowMinimumHandler {
	return &StockBelowMinimumHandler{logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *StockBelowMinimumHandler) EventTypes() []string {
	return []string{inventory.EventTypeStockBelowMinimum}
}

// Handle processes a StockBelowMinimumEvent
func (h *StockBelowMinimumHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	lowStock, ok := event.(*inventory.StockBelowMinimumEvent)
	if !ok {
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			inventory.EventTypeStockBelowMinimum, event.EventType())
	}

	h.logger.Warn("inventory item below minimum stock",
		zap.String("item_id", lowStock.AggregateID().String()),
		zap.String("item_name", lowStock.Name),
		zap.String("quantity", lowStock.Quantity.String()),
		zap.String("min_stock", lowStock.MinStock.String()),
	)

	return nil
}
