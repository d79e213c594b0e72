package models

import (
	"encoding/json"
	"time"

	"github.com/palengke/backend/internal/domain/legacy"
)

// LegacyRecordModel stores one legacy record as a JSON document keyed
// by (collection, record id). The payload carries the full flat JSON
// object so unknown fields from old exports survive round trips.
type LegacyRecordModel struct {
	Collection string    `gorm:"type:varchar(100);primaryKey"`
	RecordID   string    `gorm:"type:varchar(100);primaryKey;column:record_id"`
	Payload    []byte    `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (LegacyRecordModel) TableName() string {
	return "legacy_records"
}

// ToDomain decodes the stored payload into a legacy Record
func (m *LegacyRecordModel) ToDomain() (legacy.Record, error) {
	var rec legacy.Record
	if err := json.Unmarshal(m.Payload, &rec); err != nil {
		return legacy.Record{}, err
	}
	return rec, nil
}

// LegacyRecordModelFromDomain encodes a legacy Record into a row
func LegacyRecordModelFromDomain(collection string, rec legacy.Record) (*LegacyRecordModel, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	return &LegacyRecordModel{
		Collection: collection,
		RecordID:   rec.ID,
		Payload:    payload,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}, nil
}
