package leasing

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/palengke/backend/internal/domain/leasing"
	"github.com/palengke/backend/internal/domain/shared"
)

// LeaseApprovedHandler flips the stall to OCCUPIED when a lease is
// approved, and back to VACANT when an approved lease is rejected
// after restore or rejected outright.
type LeaseApprovedHandler struct {
	stallRepo leasing.StallRepository
	logger    *zap.Logger
}

// NewLeaseApprovedHandler creates a new handler for lease decision events
func NewLeaseApprovedHandler(stallRepo leasing.StallRepository, logger *zap.Logger) *LeaseApprovedHandler {
	return &LeaseApprovedHandler{
		stallRepo: stallRepo,
		logger:    logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *LeaseApprovedHandler) EventTypes() []string {
	return []string{leasing.EventTypeLeaseApproved, leasing.EventTypeLeaseRejected}
}

// Handle processes lease approval and rejection events
func (h *LeaseApprovedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *leasing.LeaseApprovedEvent:
		return h.occupyStall(ctx, e)
	case *leasing.LeaseRejectedEvent:
		return h.vacateStall(ctx, e)
	default:
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}
}

func (h *LeaseApprovedHandler) occupyStall(ctx context.Context, event *leasing.LeaseApprovedEvent) error {
	stall, err := h.stallRepo.FindByID(ctx, event.StallID)
	if err != nil {
		h.logger.Error("failed to load stall for approved lease",
			zap.String("lease_id", event.AggregateID().String()),
			zap.String("stall_id", event.StallID.String()),
			zap.Error(err),
		)
		return err
	}

	if err := stall.Occupy(); err != nil {
		// Already occupied: the approval has effectively been applied.
		h.logger.Warn("stall not vacant on lease approval",
			zap.String("stall_id", event.StallID.String()),
			zap.Error(err),
		)
		return nil
	}

	if err := h.stallRepo.Save(ctx, stall); err != nil {
		return err
	}

	h.logger.Info("stall occupied for approved lease",
		zap.String("lease_number", event.LeaseNumber),
		zap.String("stall_number", stall.StallNumber),
	)
	return nil
}

func (h *LeaseApprovedHandler) vacateStall(ctx context.Context, event *leasing.LeaseRejectedEvent) error {
	stall, err := h.stallRepo.FindByID(ctx, event.StallID)
	if err != nil {
		return err
	}
	if stall.Status != leasing.StallStatusOccupied {
		return nil
	}

	stall.Vacate()
	return h.stallRepo.Save(ctx, stall)
}
