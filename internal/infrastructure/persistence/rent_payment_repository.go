package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/palengke/backend/internal/domain/finance"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/infrastructure/persistence/models"
)

// GormRentPaymentRepository implements RentPaymentRepository using GORM.
// Payments are append-only rows, there is no update or delete.
type GormRentPaymentRepository struct {
	db *gorm.DB
}

// NewGormRentPaymentRepository creates a new GormRentPaymentRepository
func NewGormRentPaymentRepository(db *gorm.DB) *GormRentPaymentRepository {
	return &GormRentPaymentRepository{db: db}
}

// Create records a new payment
func (r *GormRentPaymentRepository) Create(ctx context.Context, payment *finance.RentPayment) error {
	model := models.RentPaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a payment by its ID
func (r *GormRentPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.RentPayment, error) {
	var model models.RentPaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByLease returns all payments recorded against a lease
func (r *GormRentPaymentRepository) FindByLease(ctx context.Context, leaseID uuid.UUID) ([]*finance.RentPayment, error) {
	var paymentModels []models.RentPaymentModel
	if err := r.db.WithContext(ctx).
		Where("lease_id = ?", leaseID).
		Order("paid_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	return toDomainPayments(paymentModels), nil
}

// FindByTenant returns all payments recorded for a market tenant
func (r *GormRentPaymentRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*finance.RentPayment, error) {
	var paymentModels []models.RentPaymentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("paid_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	return toDomainPayments(paymentModels), nil
}

// FindByPeriod returns payments whose paid-at falls within the range, inclusive
func (r *GormRentPaymentRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]*finance.RentPayment, error) {
	var paymentModels []models.RentPaymentModel
	if err := r.db.WithContext(ctx).
		Where("paid_at >= ? AND paid_at <= ?", from, to).
		Order("paid_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	return toDomainPayments(paymentModels), nil
}

// Count returns the total number of payments
func (r *GormRentPaymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RentPaymentModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GenerateReceiptNumber generates a unique official receipt number.
// Format: OR-YYYY-NNNN (e.g., OR-2026-0001)
func (r *GormRentPaymentRepository) GenerateReceiptNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("OR-%d-", year)

	var lastPayment models.RentPaymentModel
	err := r.db.WithContext(ctx).
		Where("receipt_number LIKE ?", prefix+"%").
		Order("receipt_number DESC").
		First(&lastPayment).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	var nextNum int64 = 1
	if err == nil && lastPayment.ReceiptNumber != "" {
		parts := strings.Split(lastPayment.ReceiptNumber, "-")
		if len(parts) == 3 {
			var num int64
			if _, parseErr := fmt.Sscanf(parts[2], "%d", &num); parseErr == nil {
				nextNum = num + 1
			}
		}
	}

	return fmt.Sprintf("%s%04d", prefix, nextNum), nil
}

func toDomainPayments(paymentModels []models.RentPaymentModel) []*finance.RentPayment {
	payments := make([]*finance.RentPayment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToDomain()
	}
	return payments
}
