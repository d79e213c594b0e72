package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/palengke/backend/internal/domain/audit"
	"github.com/palengke/backend/internal/domain/finance"
	"github.com/palengke/backend/internal/domain/identity"
	"github.com/palengke/backend/internal/domain/inventory"
	"github.com/palengke/backend/internal/domain/leasing"
	"github.com/palengke/backend/internal/domain/lending"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/trade"
)

// TrailHandler writes every status transition into the audit trail.
// Each entry records the acting user and the moment of the change.
type TrailHandler struct {
	repo   audit.Repository
	logger *zap.Logger
}

// NewTrailHandler creates a new TrailHandler
func NewTrailHandler(repo audit.Repository, logger *zap.Logger) *TrailHandler {
	return &TrailHandler{repo: repo, logger: logger}
}

// EventTypes returns the event types this handler subscribes to
func (h *TrailHandler) EventTypes() []string {
	return []string{
		leasing.EventTypeLeaseSubmitted,
		leasing.EventTypeLeaseApproved,
		leasing.EventTypeLeaseRejected,
		leasing.EventTypeLeaseRestored,
		leasing.EventTypeLeaseActivated,
		finance.EventTypeExpenseCreated,
		finance.EventTypeExpenseApproved,
		finance.EventTypeExpenseRejected,
		finance.EventTypeExpenseCheckRequested,
		finance.EventTypeExpensePaid,
		finance.EventTypeRentPaymentRecorded,
		inventory.EventTypeInventoryItemCreated,
		inventory.EventTypeStockIncreased,
		inventory.EventTypeStockDecreased,
		inventory.EventTypeStockAdjusted,
		inventory.EventTypeStockBelowMinimum,
		trade.EventTypePurchaseOrderCreated,
		trade.EventTypePurchaseOrderReceived,
		trade.EventTypePurchaseOrderCancelled,
		lending.EventTypeLoanApplicationSubmitted,
		lending.EventTypeLoanApplicationApproved,
		lending.EventTypeLoanApplicationRejected,
		identity.EventTypeUserCreated,
		identity.EventTypeUserRoleChanged,
	}
}

// Handle appends the event to the trail
func (h *TrailHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	entry := audit.NewEntry(event)
	if err := h.repo.Save(ctx, entry); err != nil {
		h.logger.Error("audit entry not recorded",
			zap.String("event_type", event.EventType()),
			zap.String("aggregate_id", event.AggregateID().String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

var _ shared.EventHandler = (*TrailHandler)(nil)
