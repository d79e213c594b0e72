package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/palengke/backend/internal/domain/shared"
)

// Entry is one row of the audit trail: who did what to which record,
// and when. Entries are append-only.
type Entry struct {
	ID            uuid.UUID `json:"id"`
	EventID       uuid.UUID `json:"event_id"`
	EventType     string    `json:"event_type"`
	AggregateID   uuid.UUID `json:"aggregate_id"`
	AggregateType string    `json:"aggregate_type"`
	ActorID       uuid.UUID `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// NewEntry builds an audit entry from a domain event
func NewEntry(event shared.DomainEvent) *Entry {
	return &Entry{
		ID:            uuid.New(),
		EventID:       event.EventID(),
		EventType:     event.EventType(),
		AggregateID:   event.AggregateID(),
		AggregateType: event.AggregateType(),
		ActorID:       event.ActorID(),
		OccurredAt:    event.OccurredAt(),
		RecordedAt:    time.Now(),
	}
}

// Repository defines the interface for audit trail persistence
type Repository interface {
	// Save appends an entry to the trail
	Save(ctx context.Context, entry *Entry) error

	// FindByAggregate returns the trail for one record, newest first
	FindByAggregate(ctx context.Context, aggregateID uuid.UUID, limit int) ([]Entry, error)

	// FindRecent returns the latest entries across all records
	FindRecent(ctx context.Context, limit int) ([]Entry, error)
}
