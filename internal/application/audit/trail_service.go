package audit

import (
	"context"

	"github.com/google/uuid"

	"github.com/palengke/backend/internal/domain/audit"
)

const defaultTrailLimit = 50

// TrailService exposes the audit trail for reading
type TrailService struct {
	repo audit.Repository
}

// NewTrailService creates a new TrailService
func NewTrailService(repo audit.Repository) *TrailService {
	return &TrailService{repo: repo}
}

// ForRecord returns the trail of one record, newest first
func (s *TrailService) ForRecord(ctx context.Context, aggregateID uuid.UUID, limit int) ([]audit.Entry, error) {
	if limit <= 0 {
		limit = defaultTrailLimit
	}
	return s.repo.FindByAggregate(ctx, aggregateID, limit)
}

// Recent returns the latest entries across all records
func (s *TrailService) Recent(ctx context.Context, limit int) ([]audit.Entry, error) {
	if limit <= 0 {
		limit = defaultTrailLimit
	}
	return s.repo.FindRecent(ctx, limit)
}
