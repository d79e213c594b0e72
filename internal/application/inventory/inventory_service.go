package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/palengke/backend/internal/domain/inventory"
	"github.com/palengke/backend/internal/domain/shared"
)

// InventoryService handles stocked-supplies operations
type InventoryService struct {
	itemRepo       inventory.InventoryItemRepository
	eventPublisher shared.EventPublisher
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(itemRepo inventory.InventoryItemRepository) *InventoryService {
	return &InventoryService{
		itemRepo: itemRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *InventoryService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create stocks a new item
func (s *InventoryService) Create(ctx context.Context, req CreateInventoryItemRequest) (*InventoryItemResponse, error) {
	existing, err := s.itemRepo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ITEM_ALREADY_EXISTS", "An item with this name is already stocked")
	}

	item, err := inventory.NewInventoryItem(req.Name, req.Unit, req.Quantity, req.UnitPrice, req.MinStock)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		item.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, item)

	response := ToInventoryItemResponse(item)
	return &response, nil
}

// GetByID retrieves an item by ID
func (s *InventoryService) GetByID(ctx context.Context, itemID uuid.UUID) (*InventoryItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	response := ToInventoryItemResponse(item)
	return &response, nil
}

// List retrieves items with filtering and pagination
func (s *InventoryService) List(ctx context.Context, filter InventoryItemListFilter) ([]InventoryItemResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	items, total, err := s.itemRepo.FindAll(ctx, inventory.InventoryItemFilter{
		Keyword:       filter.Keyword,
		BelowMinStock: filter.BelowMinStock,
		Page:          filter.Page,
		PageSize:      filter.PageSize,
	})
	if err != nil {
		return nil, 0, err
	}

	return ToInventoryItemResponses(items), total, nil
}

// ListBelowMinStock returns all items needing restock
func (s *InventoryService) ListBelowMinStock(ctx context.Context) ([]InventoryItemResponse, error) {
	items, err := s.itemRepo.FindBelowMinStock(ctx)
	if err != nil {
		return nil, err
	}
	return ToInventoryItemResponses(items), nil
}

// Consume takes supplies out of stock
func (s *InventoryService) Consume(ctx context.Context, itemID, actor uuid.UUID, req ConsumeStockRequest) (*InventoryItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := item.DecreaseStock(req.Quantity, actor); err != nil {
		return nil, err
	}

	if err := s.itemRepo.UpdateWithLock(ctx, item); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, item)

	response := ToInventoryItemResponse(item)
	return &response, nil
}

// Adjust overrides the quantity after a physical count
func (s *InventoryService) Adjust(ctx context.Context, itemID, actor uuid.UUID, req AdjustStockRequest) (*InventoryItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := item.AdjustStock(req.Quantity, req.Reason, actor); err != nil {
		return nil, err
	}

	if err := s.itemRepo.UpdateWithLock(ctx, item); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, item)

	response := ToInventoryItemResponse(item)
	return &response, nil
}

// SetMinStock changes an item's restock threshold
func (s *InventoryService) SetMinStock(ctx context.Context, itemID uuid.UUID, req SetMinStockRequest) (*InventoryItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := item.SetMinStock(req.MinStock); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, item)

	response := ToInventoryItemResponse(item)
	return &response, nil
}

func (s *InventoryService) publishEvents(ctx context.Context, item *inventory.InventoryItem) {
	if s.eventPublisher == nil {
		return
	}
	events := item.GetDomainEvents()
	item.ClearDomainEvents()
	_ = s.eventPublisher.Publish(ctx, events...)
}
