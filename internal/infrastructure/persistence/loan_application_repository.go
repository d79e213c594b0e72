package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/palengke/backend/internal/domain/lending"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/infrastructure/persistence/models"
)

// GormLoanApplicationRepository implements LoanApplicationRepository using GORM
type GormLoanApplicationRepository struct {
	db *gorm.DB
}

// NewGormLoanApplicationRepository creates a new GormLoanApplicationRepository
func NewGormLoanApplicationRepository(db *gorm.DB) *GormLoanApplicationRepository {
	return &GormLoanApplicationRepository{db: db}
}

// Create creates a new application
func (r *GormLoanApplicationRepository) Create(ctx context.Context, application *lending.LoanApplication) error {
	model := models.LoanApplicationModelFromDomain(application)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing application
func (r *GormLoanApplicationRepository) Update(ctx context.Context, application *lending.LoanApplication) error {
	model := models.LoanApplicationModelFromDomain(application)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an application by ID
func (r *GormLoanApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.LoanApplicationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an application by its ID
func (r *GormLoanApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*lending.LoanApplication, error) {
	var model models.LoanApplicationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByApplicationNumber finds an application by its business number
func (r *GormLoanApplicationRepository) FindByApplicationNumber(ctx context.Context, applicationNumber string) (*lending.LoanApplication, error) {
	var model models.LoanApplicationModel
	if err := r.db.WithContext(ctx).
		Where("application_number = ?", applicationNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTenant returns all applications filed by a market tenant
func (r *GormLoanApplicationRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*lending.LoanApplication, error) {
	var applicationModels []models.LoanApplicationModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("applied_at DESC").
		Find(&applicationModels).Error; err != nil {
		return nil, err
	}

	applications := make([]*lending.LoanApplication, len(applicationModels))
	for i := range applicationModels {
		applications[i] = applicationModels[i].ToDomain()
	}
	return applications, nil
}

// FindAll returns applications matching the filter with a total count
func (r *GormLoanApplicationRepository) FindAll(ctx context.Context, filter lending.LoanApplicationFilter) ([]*lending.LoanApplication, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.LoanApplicationModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.TenantID != nil {
		query = query.Where("tenant_id = ?", *filter.TenantID)
	}
	if filter.Keyword != "" {
		searchPattern := "%" + filter.Keyword + "%"
		query = query.Where("application_number ILIKE ? OR purpose ILIKE ?",
			searchPattern, searchPattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var applicationModels []models.LoanApplicationModel
	if err := query.Order("applied_at DESC").Find(&applicationModels).Error; err != nil {
		return nil, 0, err
	}

	applications := make([]*lending.LoanApplication, len(applicationModels))
	for i := range applicationModels {
		applications[i] = applicationModels[i].ToDomain()
	}
	return applications, total, nil
}

// Count returns the total number of applications
func (r *GormLoanApplicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.LoanApplicationModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GenerateApplicationNumber generates a unique loan application number.
// Format: LN-YYYY-NNNN (e.g., LN-2026-0001)
func (r *GormLoanApplicationRepository) GenerateApplicationNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("LN-%d-", year)

	var lastApplication models.LoanApplicationModel
	err := r.db.WithContext(ctx).
		Where("application_number LIKE ?", prefix+"%").
		Order("application_number DESC").
		First(&lastApplication).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	var nextNum int64 = 1
	if err == nil && lastApplication.ApplicationNumber != "" {
		parts := strings.Split(lastApplication.ApplicationNumber, "-")
		if len(parts) == 3 {
			var num int64
			if _, parseErr := fmt.Sscanf(parts[2], "%d", &num); parseErr == nil {
				nextNum = num + 1
			}
		}
	}

	return fmt.Sprintf("%s%04d", prefix, nextNum), nil
}
