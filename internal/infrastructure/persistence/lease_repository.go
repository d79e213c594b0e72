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

// GormLeaseRepository implements LeaseRepository using GORM
type GormLeaseRepository struct {
	db *gorm.DB
}

// NewGormLeaseRepository creates a new GormLeaseRepository
func NewGormLeaseRepository(db *gorm.DB) *GormLeaseRepository {
	return &GormLeaseRepository{db: db}
}

// FindByID finds a lease by its ID
func (r *GormLeaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*leasing.Lease, error) {
	var model models.LeaseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByLeaseNumber finds a lease by its lease number
func (r *GormLeaseRepository) FindByLeaseNumber(ctx context.Context, leaseNumber string) (*leasing.Lease, error) {
	var model models.LeaseModel
	if err := r.db.WithContext(ctx).
		Where("lease_number = ?", leaseNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all leases matching the filter
func (r *GormLeaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]leasing.Lease, error) {
	var leaseModels []models.LeaseModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.LeaseModel{}), filter)

	if err := query.Find(&leaseModels).Error; err != nil {
		return nil, err
	}

	leases := make([]leasing.Lease, len(leaseModels))
	for i, model := range leaseModels {
		leases[i] = *model.ToDomain()
	}
	return leases, nil
}

// FindByStatus finds leases by stored status
func (r *GormLeaseRepository) FindByStatus(ctx context.Context, status leasing.LeaseStatus, filter shared.Filter) ([]leasing.Lease, error) {
	var leaseModels []models.LeaseModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.LeaseModel{}).Where("status = ?", status),
		filter,
	)

	if err := query.Find(&leaseModels).Error; err != nil {
		return nil, err
	}

	leases := make([]leasing.Lease, len(leaseModels))
	for i, model := range leaseModels {
		leases[i] = *model.ToDomain()
	}
	return leases, nil
}

// FindByStall finds leases for a stall
func (r *GormLeaseRepository) FindByStall(ctx context.Context, stallID uuid.UUID) ([]leasing.Lease, error) {
	var leaseModels []models.LeaseModel
	if err := r.db.WithContext(ctx).
		Where("stall_id = ?", stallID).
		Order("created_at DESC").
		Find(&leaseModels).Error; err != nil {
		return nil, err
	}

	leases := make([]leasing.Lease, len(leaseModels))
	for i, model := range leaseModels {
		leases[i] = *model.ToDomain()
	}
	return leases, nil
}

// FindActiveEndingBefore finds active leases whose end date falls before the cutoff
func (r *GormLeaseRepository) FindActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]leasing.Lease, error) {
	var leaseModels []models.LeaseModel
	if err := r.db.WithContext(ctx).
		Where("status = ? AND lease_end < ?", leasing.LeaseStatusActive, cutoff).
		Order("lease_end ASC").
		Find(&leaseModels).Error; err != nil {
		return nil, err
	}

	leases := make([]leasing.Lease, len(leaseModels))
	for i, model := range leaseModels {
		leases[i] = *model.ToDomain()
	}
	return leases, nil
}

// Save creates or updates a lease
func (r *GormLeaseRepository) Save(ctx context.Context, lease *leasing.Lease) error {
	model := models.LeaseModelFromDomain(lease)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves a lease using optimistic locking on the version column
func (r *GormLeaseRepository) SaveWithLock(ctx context.Context, lease *leasing.Lease) error {
	model := models.LeaseModelFromDomain(lease)
	result := r.db.WithContext(ctx).
		Model(&models.LeaseModel{}).
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

// Delete permanently removes a lease
func (r *GormLeaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.LeaseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts leases matching the filter
func (r *GormLeaseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.LeaseModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GenerateLeaseNumber generates a unique lease number.
// Format: LSE-YYYY-NNNN (e.g., LSE-2026-0001)
func (r *GormLeaseRepository) GenerateLeaseNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("LSE-%d-", year)

	var lastLease models.LeaseModel
	err := r.db.WithContext(ctx).
		Where("lease_number LIKE ?", prefix+"%").
		Order("lease_number DESC").
		First(&lastLease).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	var nextNum int64 = 1
	if err == nil && lastLease.LeaseNumber != "" {
		parts := strings.Split(lastLease.LeaseNumber, "-")
		if len(parts) == 3 {
			var num int64
			if _, parseErr := fmt.Sscanf(parts[2], "%d", &num); parseErr == nil {
				nextNum = num + 1
			}
		}
	}

	return fmt.Sprintf("%s%04d", prefix, nextNum), nil
}

// applyFilter applies filter options to the query
func (r *GormLeaseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormLeaseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("lease_number ILIKE ? OR applicant_name ILIKE ?",
			searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "stall_id":
			query = query.Where("stall_id = ?", value)
		case "tenant_id":
			query = query.Where("tenant_id = ?", value)
		}
	}

	return query
}
