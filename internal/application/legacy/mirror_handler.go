package legacy

import (
	"context"

	"go.uber.org/zap"

	"github.com/palengke/backend/internal/domain/finance"
	"github.com/palengke/backend/internal/domain/inventory"
	"github.com/palengke/backend/internal/domain/leasing"
	"github.com/palengke/backend/internal/domain/lending"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/trade"
)

// MirrorHandler re-reads the aggregate behind each domain event and
// pushes its current state into the legacy collections. It runs after
// the canonical write, so a reload always sees the committed record.
type MirrorHandler struct {
	leaseRepo   leasing.LeaseRepository
	expenseRepo finance.ExpenseRepository
	paymentRepo finance.RentPaymentRepository
	itemRepo    inventory.InventoryItemRepository
	orderRepo   trade.PurchaseOrderRepository
	loanRepo    lending.LoanApplicationRepository
	sync        *SyncService
	logger      *zap.Logger
}

// NewMirrorHandler creates a new MirrorHandler
func NewMirrorHandler(
	leaseRepo leasing.LeaseRepository,
	expenseRepo finance.ExpenseRepository,
	paymentRepo finance.RentPaymentRepository,
	itemRepo inventory.InventoryItemRepository,
	orderRepo trade.PurchaseOrderRepository,
	loanRepo lending.LoanApplicationRepository,
	sync *SyncService,
	logger *zap.Logger,
) *MirrorHandler {
	return &MirrorHandler{
		leaseRepo:   leaseRepo,
		expenseRepo: expenseRepo,
		paymentRepo: paymentRepo,
		itemRepo:    itemRepo,
		orderRepo:   orderRepo,
		loanRepo:    loanRepo,
		sync:        sync,
		logger:      logger,
	}
}

// EventTypes returns the event types this handler subscribes to
func (h *MirrorHandler) EventTypes() []string {
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
		trade.EventTypePurchaseOrderCreated,
		trade.EventTypePurchaseOrderReceived,
		trade.EventTypePurchaseOrderCancelled,
		lending.EventTypeLoanApplicationSubmitted,
		lending.EventTypeLoanApplicationApproved,
		lending.EventTypeLoanApplicationRejected,
	}
}

// Handle mirrors the aggregate the event refers to. A missing
// aggregate is logged and skipped rather than failed: the canonical
// record may have been purged between publish and dispatch.
func (h *MirrorHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	var err error
	switch event.AggregateType() {
	case leasing.AggregateTypeLease:
		var lease *leasing.Lease
		if lease, err = h.leaseRepo.FindByID(ctx, event.AggregateID()); err == nil {
			err = h.sync.SyncLease(ctx, lease)
		}
	case finance.AggregateTypeExpense:
		var expense *finance.Expense
		if expense, err = h.expenseRepo.FindByID(ctx, event.AggregateID()); err == nil {
			err = h.sync.SyncExpense(ctx, expense)
		}
	case finance.AggregateTypeRentPayment:
		var payment *finance.RentPayment
		if payment, err = h.paymentRepo.FindByID(ctx, event.AggregateID()); err == nil {
			err = h.sync.SyncRentPayment(ctx, payment)
		}
	case inventory.AggregateTypeInventoryItem:
		var item *inventory.InventoryItem
		if item, err = h.itemRepo.FindByID(ctx, event.AggregateID()); err == nil {
			err = h.sync.SyncInventoryItem(ctx, item)
		}
	case trade.AggregateTypePurchaseOrder:
		var order *trade.PurchaseOrder
		if order, err = h.orderRepo.FindByID(ctx, event.AggregateID()); err == nil {
			err = h.sync.SyncPurchaseOrder(ctx, order)
		}
	case lending.AggregateTypeLoanApplication:
		var application *lending.LoanApplication
		if application, err = h.loanRepo.FindByID(ctx, event.AggregateID()); err == nil {
			err = h.sync.SyncLoanApplication(ctx, application)
		}
	default:
		return nil
	}
	if err != nil {
		h.logger.Warn("legacy mirror skipped",
			zap.String("event_type", event.EventType()),
			zap.String("aggregate_id", event.AggregateID().String()),
			zap.Error(err),
		)
	}
	return nil
}

var _ shared.EventHandler = (*MirrorHandler)(nil)
