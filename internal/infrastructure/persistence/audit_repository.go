package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/palengke/backend/internal/domain/audit"
	"github.com/palengke/backend/internal/infrastructure/persistence/models"
)

// GormAuditRepository implements audit.Repository using GORM
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GormAuditRepository
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Save appends an audit entry
func (r *GormAuditRepository) Save(ctx context.Context, entry *audit.Entry) error {
	model := models.AuditEntryModelFromDomain(entry)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByAggregate returns the most recent entries recorded for an aggregate
func (r *GormAuditRepository) FindByAggregate(ctx context.Context, aggregateID uuid.UUID, limit int) ([]audit.Entry, error) {
	var entryModels []models.AuditEntryModel
	if err := r.db.WithContext(ctx).
		Where("aggregate_id = ?", aggregateID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toDomainEntries(entryModels), nil
}

// FindRecent returns the most recent entries across all aggregates
func (r *GormAuditRepository) FindRecent(ctx context.Context, limit int) ([]audit.Entry, error) {
	var entryModels []models.AuditEntryModel
	if err := r.db.WithContext(ctx).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toDomainEntries(entryModels), nil
}

func toDomainEntries(entryModels []models.AuditEntryModel) []audit.Entry {
	entries := make([]audit.Entry, len(entryModels))
	for i := range entryModels {
		entries[i] = *entryModels[i].ToDomain()
	}
	return entries
}
