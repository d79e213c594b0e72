package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	// Create creates a new order with its items
	Create(ctx context.Context, order *PurchaseOrder) error

	// Update updates an existing order and replaces its items
	Update(ctx context.Context, order *PurchaseOrder) error

	// UpdateWithLock updates an order using optimistic locking on Version
	UpdateWithLock(ctx context.Context, order *PurchaseOrder) error

	// Delete deletes an order by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds an order by ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)

	// FindByOrderNumber finds an order by its business number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*PurchaseOrder, error)

	// FindAll returns orders matching the filter with pagination
	FindAll(ctx context.Context, filter PurchaseOrderFilter) ([]*PurchaseOrder, int64, error)

	// Count returns the total number of orders
	Count(ctx context.Context) (int64, error)

	// GenerateOrderNumber generates the next order number
	GenerateOrderNumber(ctx context.Context) (string, error)
}

// PurchaseOrderFilter contains filter options for querying orders
type PurchaseOrderFilter struct {
	Status *PurchaseOrderStatus

	// Ordered date range, inclusive on both ends
	OrderedFrom *time.Time
	OrderedTo   *time.Time

	Keyword  string
	Page     int
	PageSize int
}
