package persistence

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/palengke/backend/internal/domain/legacy"
	"github.com/palengke/backend/internal/infrastructure/persistence/models"
)

// GormKeyedStore implements legacy.KeyedStore on a single table of JSON
// documents keyed by (collection, record id).
type GormKeyedStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormKeyedStore creates a new GormKeyedStore
func NewGormKeyedStore(db *gorm.DB, logger *zap.Logger) *GormKeyedStore {
	return &GormKeyedStore{db: db, logger: logger}
}

var _ legacy.KeyedStore = (*GormKeyedStore)(nil)

// Load returns every record in the named collection. Rows whose payload
// no longer parses are skipped and logged rather than failing the read,
// one corrupt document must not take the whole collection down with it.
func (s *GormKeyedStore) Load(ctx context.Context, collection string) ([]legacy.Record, error) {
	var rows []models.LegacyRecordModel
	if err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("record_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]legacy.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := row.ToDomain()
		if err != nil {
			s.logger.Warn("skipping corrupt legacy record",
				zap.String("collection", collection),
				zap.String("record_id", row.RecordID),
				zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Save atomically replaces the named collection with the given records
func (s *GormKeyedStore) Save(ctx context.Context, collection string, records []legacy.Record) error {
	rows := make([]models.LegacyRecordModel, 0, len(records))
	for _, rec := range records {
		row, err := models.LegacyRecordModelFromDomain(collection, rec)
		if err != nil {
			return err
		}
		rows = append(rows, *row)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection = ?", collection).
			Delete(&models.LegacyRecordModel{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// Upsert inserts or replaces a single record by id
func (s *GormKeyedStore) Upsert(ctx context.Context, collection string, record legacy.Record) error {
	row, err := models.LegacyRecordModelFromDomain(collection, record)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "record_id"}},
			UpdateAll: true,
		}).
		Create(row).Error
}

// Remove deletes a record by id; removing an absent id is not an error
func (s *GormKeyedStore) Remove(ctx context.Context, collection string, id string) error {
	return s.db.WithContext(ctx).
		Where("collection = ? AND record_id = ?", collection, id).
		Delete(&models.LegacyRecordModel{}).Error
}
