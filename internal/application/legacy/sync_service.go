package legacy

import (
	"context"

	"go.uber.org/zap"

	"github.com/palengke/backend/internal/domain/finance"
	"github.com/palengke/backend/internal/domain/inventory"
	"github.com/palengke/backend/internal/domain/leasing"
	"github.com/palengke/backend/internal/domain/legacy"
	"github.com/palengke/backend/internal/domain/lending"
	"github.com/palengke/backend/internal/domain/trade"
)

// SyncService keeps the fixed legacy collections in step with the
// canonical aggregates. The old application partitioned one logical
// entity across several collections per status; this mirror preserves
// that layout so stored data exported from it stays readable.
type SyncService struct {
	store  legacy.KeyedStore
	logger *zap.Logger
}

// NewSyncService creates a new SyncService
func NewSyncService(store legacy.KeyedStore, logger *zap.Logger) *SyncService {
	return &SyncService{store: store, logger: logger}
}

// SyncLease places the lease in the partition matching its stored
// status and removes it from the others. The umbrella collection keeps
// a copy regardless of status.
func (s *SyncService) SyncLease(ctx context.Context, lease *leasing.Lease) error {
	rec := LeaseToRecord(lease)
	home := LeaseCollection(lease.Status)

	partitions := []string{
		legacy.CollectionLeaseRequests,
		legacy.CollectionApprovedLeases,
		legacy.CollectionRejectedLeases,
	}
	for _, collection := range partitions {
		if collection == home {
			continue
		}
		if err := s.store.Remove(ctx, collection, rec.ID); err != nil {
			return err
		}
	}
	if err := s.store.Upsert(ctx, home, rec); err != nil {
		return err
	}
	return s.store.Upsert(ctx, legacy.CollectionLeases, rec)
}

// SyncExpense mirrors an expense into the expenses collection
func (s *SyncService) SyncExpense(ctx context.Context, expense *finance.Expense) error {
	return s.store.Upsert(ctx, legacy.CollectionExpenses, ExpenseToRecord(expense))
}

// SyncInventoryItem mirrors an item into the inventory collection
func (s *SyncService) SyncInventoryItem(ctx context.Context, item *inventory.InventoryItem) error {
	return s.store.Upsert(ctx, legacy.CollectionInventory, InventoryItemToRecord(item))
}

// SyncPurchaseOrder mirrors an order into the purchaseOrders collection
func (s *SyncService) SyncPurchaseOrder(ctx context.Context, order *trade.PurchaseOrder) error {
	return s.store.Upsert(ctx, legacy.CollectionPurchaseOrders, PurchaseOrderToRecord(order))
}

// SyncRentPayment mirrors a payment into the paymentHistory collection
func (s *SyncService) SyncRentPayment(ctx context.Context, payment *finance.RentPayment) error {
	return s.store.Upsert(ctx, legacy.CollectionPaymentHistory, RentPaymentToRecord(payment))
}

// SyncLoanApplication mirrors an application into the loanApplications collection
func (s *SyncService) SyncLoanApplication(ctx context.Context, application *lending.LoanApplication) error {
	return s.store.Upsert(ctx, legacy.CollectionLoanApplications, LoanApplicationToRecord(application))
}
