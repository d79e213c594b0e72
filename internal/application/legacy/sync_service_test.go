package legacy

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/palengke/backend/internal/domain/leasing"
	"github.com/palengke/backend/internal/domain/legacy"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
)

// memoryStore is a map-backed KeyedStore for tests
type memoryStore struct {
	mu          sync.Mutex
	collections map[string][]legacy.Record
}

func newMemoryStore() *memoryStore {
	return &memoryStore{collections: make(map[string][]legacy.Record)}
}

func (s *memoryStore) Load(ctx context.Context, collection string) ([]legacy.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]legacy.Record, len(s.collections[collection]))
	copy(out, s.collections[collection])
	return out, nil
}

func (s *memoryStore) Save(ctx context.Context, collection string, records []legacy.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append([]legacy.Record(nil), records...)
	return nil
}

func (s *memoryStore) Upsert(ctx context.Context, collection string, record legacy.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
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
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.collections[collection]
	for i, rec := range records {
		if rec.ID == id {
			s.collections[collection] = append(records[:i], records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memoryStore) ids(collection string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.collections[collection]))
	for _, rec := range s.collections[collection] {
		out = append(out, rec.ID)
	}
	return out
}

func newTestLease(t *testing.T) *leasing.Lease {
	t.Helper()
	start := time.Now().AddDate(0, 0, -3)
	lease, err := leasing.NewLease("LSE-2026-0010", "Aling Nena", uuid.New(),
		valueobject.NewMoneyPHPFromFloat(4200), start, start.AddDate(1, 0, 0))
	require.NoError(t, err)
	lease.SetIDArtifact("uploads/ids/aling-nena.jpg")
	return lease
}

func TestSyncLeaseFollowsStatusPartition(t *testing.T) {
	store := newMemoryStore()
	service := NewSyncService(store, zap.NewNop())
	ctx := context.Background()

	lease := newTestLease(t)
	id := lease.ID.String()

	require.NoError(t, service.SyncLease(ctx, lease))
	assert.Equal(t, []string{id}, store.ids(legacy.CollectionLeaseRequests))
	assert.Equal(t, []string{id}, store.ids(legacy.CollectionLeases))
	assert.Empty(t, store.ids(legacy.CollectionApprovedLeases))

	require.NoError(t, lease.Approve(uuid.New(), uuid.New()))
	require.NoError(t, service.SyncLease(ctx, lease))
	assert.Empty(t, store.ids(legacy.CollectionLeaseRequests))
	assert.Equal(t, []string{id}, store.ids(legacy.CollectionApprovedLeases))
	assert.Equal(t, []string{id}, store.ids(legacy.CollectionLeases))
}

func TestSyncLeaseRejectionMovesToArchive(t *testing.T) {
	store := newMemoryStore()
	service := NewSyncService(store, zap.NewNop())
	ctx := context.Background()

	lease := newTestLease(t)
	require.NoError(t, service.SyncLease(ctx, lease))
	require.NoError(t, lease.Reject(uuid.New(), "incomplete papers"))
	require.NoError(t, service.SyncLease(ctx, lease))

	assert.Empty(t, store.ids(legacy.CollectionLeaseRequests))
	assert.Empty(t, store.ids(legacy.CollectionApprovedLeases))
	require.Len(t, store.ids(legacy.CollectionRejectedLeases), 1)

	records, err := store.Load(ctx, legacy.CollectionRejectedLeases)
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", records[0].Status)
	assert.Equal(t, "incomplete papers", records[0].GetString("rejectionReason"))
}

func TestSyncLeaseUpsertDoesNotDuplicate(t *testing.T) {
	store := newMemoryStore()
	service := NewSyncService(store, zap.NewNop())
	ctx := context.Background()

	lease := newTestLease(t)
	require.NoError(t, service.SyncLease(ctx, lease))
	require.NoError(t, service.SyncLease(ctx, lease))

	assert.Len(t, store.ids(legacy.CollectionLeaseRequests), 1)
	assert.Len(t, store.ids(legacy.CollectionLeases), 1)
}
