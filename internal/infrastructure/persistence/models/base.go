package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/palengke/backend/internal/domain/shared"
)

// AuditedAggregateModel carries the columns every aggregate table has:
// uuid key, timestamps, optimistic-lock version and the creating user.
type AuditedAggregateModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time  `gorm:"not null;index"`
	UpdatedAt time.Time  `gorm:"not null"`
	Version   int        `gorm:"not null;default:1"`
	CreatedBy *uuid.UUID `gorm:"type:uuid;index"`
}

// toDomainRoot rebuilds the embedded aggregate root from the columns
func (m AuditedAggregateModel) toDomainRoot() shared.AuditedAggregateRoot {
	return shared.AuditedAggregateRoot{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		CreatedBy: m.CreatedBy,
	}
}

// fromDomainRoot extracts the common columns from an aggregate root
func fromDomainRoot(root shared.AuditedAggregateRoot) AuditedAggregateModel {
	return AuditedAggregateModel{
		ID:        root.ID,
		CreatedAt: root.CreatedAt,
		UpdatedAt: root.UpdatedAt,
		Version:   root.Version,
		CreatedBy: root.CreatedBy,
	}
}
