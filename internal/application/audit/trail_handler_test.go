package audit

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/palengke/backend/internal/domain/audit"
	"github.com/palengke/backend/internal/domain/leasing"
	"github.com/palengke/backend/internal/domain/shared"
)

// memoryTrail is an in-memory audit.Repository for tests
type memoryTrail struct {
	entries []audit.Entry
	failing bool
}

func (r *memoryTrail) Save(ctx context.Context, entry *audit.Entry) error {
	if r.failing {
		return errors.New("storage unavailable")
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memoryTrail) FindByAggregate(ctx context.Context, aggregateID uuid.UUID, limit int) ([]audit.Entry, error) {
	out := make([]audit.Entry, 0)
	for _, entry := range r.entries {
		if entry.AggregateID == aggregateID {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryTrail) FindRecent(ctx context.Context, limit int) ([]audit.Entry, error) {
	if len(r.entries) > limit {
		return r.entries[len(r.entries)-limit:], nil
	}
	return r.entries, nil
}

func testEvent(aggID, actor uuid.UUID) shared.DomainEvent {
	event := shared.NewBaseDomainEvent(leasing.EventTypeLeaseApproved, leasing.AggregateTypeLease, aggID, actor)
	return &event
}

func TestHandleRecordsActorAndAggregate(t *testing.T) {
	trail := &memoryTrail{}
	handler := NewTrailHandler(trail, zap.NewNop())

	aggID := uuid.New()
	actor := uuid.New()
	require.NoError(t, handler.Handle(context.Background(), testEvent(aggID, actor)))

	require.Len(t, trail.entries, 1)
	entry := trail.entries[0]
	assert.Equal(t, leasing.EventTypeLeaseApproved, entry.EventType)
	assert.Equal(t, aggID, entry.AggregateID)
	assert.Equal(t, actor, entry.ActorID)
	assert.False(t, entry.RecordedAt.IsZero())
}

func TestHandleSurfacesStorageError(t *testing.T) {
	handler := NewTrailHandler(&memoryTrail{failing: true}, zap.NewNop())

	err := handler.Handle(context.Background(), testEvent(uuid.New(), uuid.New()))
	assert.Error(t, err)
}

func TestForRecordFiltersByAggregate(t *testing.T) {
	trail := &memoryTrail{}
	handler := NewTrailHandler(trail, zap.NewNop())
	service := NewTrailService(trail)

	target := uuid.New()
	require.NoError(t, handler.Handle(context.Background(), testEvent(target, uuid.New())))
	require.NoError(t, handler.Handle(context.Background(), testEvent(uuid.New(), uuid.New())))

	entries, err := service.ForRecord(context.Background(), target, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, target, entries[0].AggregateID)
}
