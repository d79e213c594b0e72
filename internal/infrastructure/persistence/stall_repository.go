package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/palengke/backend/internal/domain/leasing"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/infrastructure/persistence/models"
)

// GormStallRepository implements StallRepository using GORM
type GormStallRepository struct {
	db *gorm.DB
}

// NewGormStallRepository creates a new GormStallRepository
func NewGormStallRepository(db *gorm.DB) *GormStallRepository {
	return &GormStallRepository{db: db}
}

// FindByID finds a stall by its ID
func (r *GormStallRepository) FindByID(ctx context.Context, id uuid.UUID) (*leasing.Stall, error) {
	var model models.StallModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByStallNumber finds a stall by its number
func (r *GormStallRepository) FindByStallNumber(ctx context.Context, stallNumber string) (*leasing.Stall, error) {
	var model models.StallModel
	if err := r.db.WithContext(ctx).
		Where("stall_number = ?", stallNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all stalls matching the filter
func (r *GormStallRepository) FindAll(ctx context.Context, filter shared.Filter) ([]leasing.Stall, error) {
	var stallModels []models.StallModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.StallModel{}), filter)

	if err := query.Find(&stallModels).Error; err != nil {
		return nil, err
	}

	stalls := make([]leasing.Stall, len(stallModels))
	for i, model := range stallModels {
		stalls[i] = *model.ToDomain()
	}
	return stalls, nil
}

// FindByStatus finds stalls by occupancy status
func (r *GormStallRepository) FindByStatus(ctx context.Context, status leasing.StallStatus) ([]leasing.Stall, error) {
	var stallModels []models.StallModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("stall_number ASC").
		Find(&stallModels).Error; err != nil {
		return nil, err
	}

	stalls := make([]leasing.Stall, len(stallModels))
	for i, model := range stallModels {
		stalls[i] = *model.ToDomain()
	}
	return stalls, nil
}

// Save creates or updates a stall
func (r *GormStallRepository) Save(ctx context.Context, stall *leasing.Stall) error {
	model := models.StallModelFromDomain(stall)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete permanently removes a stall
func (r *GormStallRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.StallModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts stalls matching the filter
func (r *GormStallRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.StallModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormStallRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("stall_number ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormStallRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("stall_number ILIKE ? OR zone ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "zone":
			query = query.Where("zone = ?", value)
		}
	}

	return query
}
