package inventory

import (
	"context"

	"github.com/google/uuid"
)

// InventoryItemRepository defines the interface for inventory persistence
type InventoryItemRepository interface {
	// Create creates a new item
	Create(ctx context.Context, item *InventoryItem) error

	// Update updates an existing item
	Update(ctx context.Context, item *InventoryItem) error

	// UpdateWithLock updates an item using optimistic locking on Version
	UpdateWithLock(ctx context.Context, item *InventoryItem) error

	// Delete deletes an item by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds an item by ID
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error)

	// FindByName finds an item by its exact name
	FindByName(ctx context.Context, name string) (*InventoryItem, error)

	// FindAll returns items matching the filter with pagination
	FindAll(ctx context.Context, filter InventoryItemFilter) ([]*InventoryItem, int64, error)

	// FindBelowMinStock returns all items needing restock
	FindBelowMinStock(ctx context.Context) ([]*InventoryItem, error)

	// Count returns the total number of items
	Count(ctx context.Context) (int64, error)
}

// InventoryItemFilter contains filter options for querying inventory
type InventoryItemFilter struct {
	Keyword string

	// Only items under their minimum stock
	BelowMinStock bool

	Page     int
	PageSize int
}
