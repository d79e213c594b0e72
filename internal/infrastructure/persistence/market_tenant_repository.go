package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/palengke/backend/internal/domain/leasing"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/infrastructure/persistence/models"
)

// GormMarketTenantRepository implements MarketTenantRepository using GORM
type GormMarketTenantRepository struct {
	db *gorm.DB
}

// NewGormMarketTenantRepository creates a new GormMarketTenantRepository
func NewGormMarketTenantRepository(db *gorm.DB) *GormMarketTenantRepository {
	return &GormMarketTenantRepository{db: db}
}

// FindByID finds a market tenant by its ID
func (r *GormMarketTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*leasing.MarketTenant, error) {
	var model models.MarketTenantModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTenantNumber finds a market tenant by tenant number
func (r *GormMarketTenantRepository) FindByTenantNumber(ctx context.Context, tenantNumber string) (*leasing.MarketTenant, error) {
	var model models.MarketTenantModel
	if err := r.db.WithContext(ctx).
		Where("tenant_number = ?", tenantNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all market tenants matching the filter
func (r *GormMarketTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]leasing.MarketTenant, error) {
	var tenantModels []models.MarketTenantModel
	query := r.db.WithContext(ctx).Model(&models.MarketTenantModel{})

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("tenant_number ILIKE ? OR name ILIKE ? OR contact_phone ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

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
		query = query.Order("name ASC")
	}

	if err := query.Find(&tenantModels).Error; err != nil {
		return nil, err
	}

	tenants := make([]leasing.MarketTenant, len(tenantModels))
	for i, model := range tenantModels {
		tenants[i] = *model.ToDomain()
	}
	return tenants, nil
}

// Save creates or updates a market tenant
func (r *GormMarketTenantRepository) Save(ctx context.Context, tenant *leasing.MarketTenant) error {
	model := models.MarketTenantModelFromDomain(tenant)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete permanently removes a market tenant
func (r *GormMarketTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.MarketTenantModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GenerateTenantNumber generates a unique tenant number.
// Format: TNT-YYYY-NNNN (e.g., TNT-2026-0001)
func (r *GormMarketTenantRepository) GenerateTenantNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("TNT-%d-", year)

	var lastTenant models.MarketTenantModel
	err := r.db.WithContext(ctx).
		Where("tenant_number LIKE ?", prefix+"%").
		Order("tenant_number DESC").
		First(&lastTenant).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	var nextNum int64 = 1
	if err == nil && lastTenant.TenantNumber != "" {
		parts := strings.Split(lastTenant.TenantNumber, "-")
		if len(parts) == 3 {
			var num int64
			if _, parseErr := fmt.Sscanf(parts[2], "%d", &num); parseErr == nil {
				nextNum = num + 1
			}
		}
	}

	return fmt.Sprintf("%s%04d", prefix, nextNum), nil
}
