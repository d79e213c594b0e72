package archive

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/palengke/backend/internal/domain/legacy"
)

// memoryStore is a map-backed KeyedStore for tests. Collections listed
// in failRemove return an error from Remove to exercise partial purges.
type memoryStore struct {
	collections map[string][]legacy.Record
	failRemove  map[string]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		collections: make(map[string][]legacy.Record),
		failRemove:  make(map[string]bool),
	}
}

func (s *memoryStore) Load(ctx context.Context, collection string) ([]legacy.Record, error) {
	return append([]legacy.Record(nil), s.collections[collection]...), nil
}

func (s *memoryStore) Save(ctx context.Context, collection string, records []legacy.Record) error {
	s.collections[collection] = append([]legacy.Record(nil), records...)
	return nil
}

func (s *memoryStore) Upsert(ctx context.Context, collection string, record legacy.Record) error {
	records := s.collections[collection]
	for i, rec := range records {
		if rec.ID == record.ID {
			records[i] = record
			return nil
		}
	}
	s.collections[collection] = append(records, record)
	return nil
}

func (s *memoryStore) Remove(ctx context.Context, collection string, id string) error {
	if s.failRemove[collection] {
		return errors.New("storage unavailable")
	}
	records := s.collections[collection]
	for i, rec := range records {
		if rec.ID == id {
			s.collections[collection] = append(records[:i], records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memoryStore) has(collection, id string) bool {
	_, ok := legacy.FindByID(s.collections[collection], id)
	return ok
}

func seedPendingLease(t *testing.T, store *memoryStore) legacy.Record {
	t.Helper()
	rec := legacy.NewRecord("lease", "PENDING_APPROVAL")
	rec.Set("applicantName", "Maricel Reyes")
	rec.Set("monthlyRate", 3500.0)
	require.NoError(t, store.Upsert(context.Background(), legacy.CollectionLeaseRequests, rec))
	require.NoError(t, store.Upsert(context.Background(), legacy.CollectionLeases, rec))
	return rec
}

func TestArchiveLeaseMovesToArchivePartition(t *testing.T) {
	store := newMemoryStore()
	service := NewArchiveService(store, zap.NewNop())
	rec := seedPendingLease(t, store)

	archived, err := service.Archive(context.Background(), EntityLease, rec.ID, "incomplete papers")
	require.NoError(t, err)

	assert.Equal(t, "REJECTED", archived.Status)
	assert.Equal(t, "PENDING_APPROVAL", archived.GetString(legacy.FieldPriorStatus))
	assert.Equal(t, "incomplete papers", archived.GetString(legacy.FieldRejectionReason))
	assert.NotEmpty(t, archived.GetString(legacy.FieldArchivedAt))

	assert.False(t, store.has(legacy.CollectionLeaseRequests, rec.ID))
	assert.True(t, store.has(legacy.CollectionRejectedLeases, rec.ID))
	assert.True(t, store.has(legacy.CollectionLeases, rec.ID))
}

func TestRestoreReturnsLeaseToPriorPartition(t *testing.T) {
	store := newMemoryStore()
	service := NewArchiveService(store, zap.NewNop())
	rec := seedPendingLease(t, store)

	_, err := service.Archive(context.Background(), EntityLease, rec.ID, "incomplete papers")
	require.NoError(t, err)

	restored, err := service.Restore(context.Background(), EntityLease, rec.ID)
	require.NoError(t, err)

	assert.Equal(t, "PENDING_APPROVAL", restored.Status)
	_, hasStamp := restored.Get(legacy.FieldArchivedAt)
	assert.False(t, hasStamp)
	_, hasPrior := restored.Get(legacy.FieldPriorStatus)
	assert.False(t, hasPrior)
	assert.Equal(t, "", restored.GetString(legacy.FieldRejectionReason))

	// Payload survives the round trip untouched.
	assert.Equal(t, "Maricel Reyes", restored.GetString("applicantName"))

	assert.True(t, store.has(legacy.CollectionLeaseRequests, rec.ID))
	assert.False(t, store.has(legacy.CollectionRejectedLeases, rec.ID))
}

func TestRestoreWithoutPriorStatusFallsBackToPending(t *testing.T) {
	store := newMemoryStore()
	service := NewArchiveService(store, zap.NewNop())

	// Archived record from an old export, no bookkeeping stamps.
	rec := legacy.NewRecord("lease", "REJECTED")
	require.NoError(t, store.Upsert(context.Background(), legacy.CollectionRejectedLeases, rec))

	restored, err := service.Restore(context.Background(), EntityLease, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "PENDING_APPROVAL", restored.Status)
	assert.True(t, store.has(legacy.CollectionLeaseRequests, rec.ID))
}

func TestArchiveExpenseStampsInPlace(t *testing.T) {
	store := newMemoryStore()
	service := NewArchiveService(store, zap.NewNop())

	rec := legacy.NewRecord("exp", "APPROVED")
	require.NoError(t, store.Upsert(context.Background(), legacy.CollectionExpenses, rec))

	archived, err := service.Archive(context.Background(), EntityExpense, rec.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "ARCHIVED", archived.Status)
	assert.True(t, store.has(legacy.CollectionExpenses, rec.ID))

	restored, err := service.Restore(context.Background(), EntityExpense, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", restored.Status)
}

func TestRestoreActiveExpenseFails(t *testing.T) {
	store := newMemoryStore()
	service := NewArchiveService(store, zap.NewNop())

	rec := legacy.NewRecord("exp", "APPROVED")
	require.NoError(t, store.Upsert(context.Background(), legacy.CollectionExpenses, rec))

	_, err := service.Restore(context.Background(), EntityExpense, rec.ID)
	assert.Error(t, err)
}

func TestArchiveUnknownRecord(t *testing.T) {
	service := NewArchiveService(newMemoryStore(), zap.NewNop())

	_, err := service.Archive(context.Background(), EntityLease, "lease-123", "")
	assert.Error(t, err)
}

func TestPurgeRemovesFromEveryCollection(t *testing.T) {
	store := newMemoryStore()
	service := NewArchiveService(store, zap.NewNop())
	rec := seedPendingLease(t, store)
	require.NoError(t, store.Upsert(context.Background(), legacy.CollectionRejectedLeases, rec))

	results, err := service.Purge(context.Background(), EntityLease, rec.ID)
	require.NoError(t, err)
	assert.Len(t, results, 4)

	for _, collection := range []string{
		legacy.CollectionLeaseRequests,
		legacy.CollectionApprovedLeases,
		legacy.CollectionRejectedLeases,
		legacy.CollectionLeases,
	} {
		assert.False(t, store.has(collection, rec.ID), collection)
	}
}

func TestPurgeReportsPartialFailure(t *testing.T) {
	store := newMemoryStore()
	store.failRemove[legacy.CollectionLeases] = true
	service := NewArchiveService(store, zap.NewNop())
	rec := seedPendingLease(t, store)

	results, err := service.Purge(context.Background(), EntityLease, rec.ID)
	require.Error(t, err)

	assert.False(t, store.has(legacy.CollectionLeaseRequests, rec.ID))
	assert.True(t, store.has(legacy.CollectionLeases, rec.ID))

	byCollection := make(map[string]PurgeResult, len(results))
	for _, r := range results {
		byCollection[r.Collection] = r
	}
	assert.True(t, byCollection[legacy.CollectionLeaseRequests].Removed)
	assert.False(t, byCollection[legacy.CollectionLeases].Removed)
	assert.NotEmpty(t, byCollection[legacy.CollectionLeases].Error)
}
