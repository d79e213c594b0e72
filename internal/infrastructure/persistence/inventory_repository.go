package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/palengke/backend/internal/domain/inventory"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/infrastructure/persistence/models"
)

// GormInventoryItemRepository implements InventoryItemRepository using GORM
type GormInventoryItemRepository struct {
	db *gorm.DB
}

// NewGormInventoryItemRepository creates a new GormInventoryItemRepository
func NewGormInventoryItemRepository(db *gorm.DB) *GormInventoryItemRepository {
	return &GormInventoryItemRepository{db: db}
}

// Create creates a new item
func (r *GormInventoryItemRepository) Create(ctx context.Context, item *inventory.InventoryItem) error {
	model := models.InventoryItemModelFromDomain(item)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing item
func (r *GormInventoryItemRepository) Update(ctx context.Context, item *inventory.InventoryItem) error {
	model := models.InventoryItemModelFromDomain(item)
	return r.db.WithContext(ctx).Save(model).Error
}

// UpdateWithLock updates an item using optimistic locking on the version column.
// Stock movements race with each other, the version check keeps quantities honest.
func (r *GormInventoryItemRepository) UpdateWithLock(ctx context.Context, item *inventory.InventoryItem) error {
	model := models.InventoryItemModelFromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&models.InventoryItemModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("*").
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete deletes an item by ID
func (r *GormInventoryItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.InventoryItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an item by its ID
func (r *GormInventoryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	var model models.InventoryItemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds an item by its exact name
func (r *GormInventoryItemRepository) FindByName(ctx context.Context, name string) (*inventory.InventoryItem, error) {
	var model models.InventoryItemModel
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns items matching the filter with a total count
func (r *GormInventoryItemRepository) FindAll(ctx context.Context, filter inventory.InventoryItemFilter) ([]*inventory.InventoryItem, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.InventoryItemModel{})

	if filter.Keyword != "" {
		searchPattern := "%" + filter.Keyword + "%"
		query = query.Where("name ILIKE ?", searchPattern)
	}
	if filter.BelowMinStock {
		query = query.Where("quantity < min_stock")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var itemModels []models.InventoryItemModel
	if err := query.Order("name ASC").Find(&itemModels).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*inventory.InventoryItem, len(itemModels))
	for i := range itemModels {
		items[i] = itemModels[i].ToDomain()
	}
	return items, total, nil
}

// FindBelowMinStock returns all items needing restock
func (r *GormInventoryItemRepository) FindBelowMinStock(ctx context.Context) ([]*inventory.InventoryItem, error) {
	var itemModels []models.InventoryItemModel
	if err := r.db.WithContext(ctx).
		Where("quantity < min_stock").
		Order("name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]*inventory.InventoryItem, len(itemModels))
	for i := range itemModels {
		items[i] = itemModels[i].ToDomain()
	}
	return items, nil
}

// Count returns the total number of items
func (r *GormInventoryItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.InventoryItemModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
