package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/palengke/backend/internal/domain/audit"
)

// AuditEntryModel is the persistence model for audit trail entries.
// Entries are append-only rows, not aggregate roots.
type AuditEntryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	EventType     string    `gorm:"type:varchar(100);not null;index"`
	AggregateID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AggregateType string    `gorm:"type:varchar(50);not null;index"`
	ActorID       uuid.UUID `gorm:"type:uuid;index"`
	OccurredAt    time.Time `gorm:"not null;index"`
	RecordedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (AuditEntryModel) TableName() string {
	return "audit_entries"
}

// ToDomain converts the persistence model to a domain Entry
func (m *AuditEntryModel) ToDomain() *audit.Entry {
	return &audit.Entry{
		ID:            m.ID,
		EventID:       m.EventID,
		EventType:     m.EventType,
		AggregateID:   m.AggregateID,
		AggregateType: m.AggregateType,
		ActorID:       m.ActorID,
		OccurredAt:    m.OccurredAt,
		RecordedAt:    m.RecordedAt,
	}
}

// AuditEntryModelFromDomain converts a domain Entry to the persistence model
func AuditEntryModelFromDomain(entry *audit.Entry) *AuditEntryModel {
	return &AuditEntryModel{
		ID:            entry.ID,
		EventID:       entry.EventID,
		EventType:     entry.EventType,
		AggregateID:   entry.AggregateID,
		AggregateType: entry.AggregateType,
		ActorID:       entry.ActorID,
		OccurredAt:    entry.OccurredAt,
		RecordedAt:    entry.RecordedAt,
	}
}
