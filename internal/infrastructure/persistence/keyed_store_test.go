package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/palengke/backend/internal/domain/legacy"
	"github.com/palengke/backend/internal/infrastructure/persistence/models"
)

func setupKeyedStoreTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.LegacyRecordModel{})
	require.NoError(t, err)

	return db
}

func newTestKeyedStore(t *testing.T) (*GormKeyedStore, *gorm.DB) {
	db := setupKeyedStoreTestDB(t)
	return NewGormKeyedStore(db, zap.NewNop()), db
}

func TestGormKeyedStore_UpsertAndLoad(t *testing.T) {
	store, _ := newTestKeyedStore(t)
	ctx := context.Background()

	rec := legacy.NewRecord("lease", "PENDING_APPROVAL")
	rec.Set("applicantName", "Aling Nena")
	rec.Set("monthlyRate", 3500.0)

	err := store.Upsert(ctx, legacy.CollectionLeaseRequests, rec)
	require.NoError(t, err)

	loaded, err := store.Load(ctx, legacy.CollectionLeaseRequests)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	assert.Equal(t, rec.ID, loaded[0].ID)
	assert.Equal(t, "PENDING_APPROVAL", loaded[0].Status)
	assert.Equal(t, "Aling Nena", loaded[0].GetString("applicantName"))
	assert.WithinDuration(t, rec.CreatedAt, loaded[0].CreatedAt, time.Second)
}

func TestGormKeyedStore_UpsertReplacesExisting(t *testing.T) {
	store, _ := newTestKeyedStore(t)
	ctx := context.Background()

	rec := legacy.NewRecord("lease", "PENDING_APPROVAL")
	require.NoError(t, store.Upsert(ctx, legacy.CollectionLeases, rec))

	rec.Status = "APPROVED"
	rec.Set("approvedBy", "market-master")
	require.NoError(t, store.Upsert(ctx, legacy.CollectionLeases, rec))

	loaded, err := store.Load(ctx, legacy.CollectionLeases)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "APPROVED", loaded[0].Status)
	assert.Equal(t, "market-master", loaded[0].GetString("approvedBy"))
}

func TestGormKeyedStore_SaveReplacesCollection(t *testing.T) {
	store, _ := newTestKeyedStore(t)
	ctx := context.Background()

	old := legacy.NewRecord("expense", "PENDING")
	require.NoError(t, store.Upsert(ctx, legacy.CollectionExpenses, old))

	fresh := []legacy.Record{
		legacy.NewRecord("expense", "APPROVED"),
		legacy.NewRecord("expense", "PAID"),
	}
	require.NoError(t, store.Save(ctx, legacy.CollectionExpenses, fresh))

	loaded, err := store.Load(ctx, legacy.CollectionExpenses)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	for _, rec := range loaded {
		assert.NotEqual(t, old.ID, rec.ID)
	}
}

func TestGormKeyedStore_SaveEmptyClearsCollection(t *testing.T) {
	store, _ := newTestKeyedStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, legacy.CollectionInventory, legacy.NewRecord("item", "ACTIVE")))
	require.NoError(t, store.Save(ctx, legacy.CollectionInventory, nil))

	loaded, err := store.Load(ctx, legacy.CollectionInventory)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestGormKeyedStore_RemoveAbsentIsNotAnError(t *testing.T) {
	store, _ := newTestKeyedStore(t)
	ctx := context.Background()

	err := store.Remove(ctx, legacy.CollectionLeases, "lease-0-deadbeef")
	assert.NoError(t, err)
}

func TestGormKeyedStore_CorruptPayloadIsSkipped(t *testing.T) {
	store, db := newTestKeyedStore(t)
	ctx := context.Background()

	good := legacy.NewRecord("loan", "PENDING")
	require.NoError(t, store.Upsert(ctx, legacy.CollectionLoanApplications, good))

	corrupt := models.LegacyRecordModel{
		Collection: legacy.CollectionLoanApplications,
		RecordID:   "loan-0-corrupt",
		Payload:    []byte("{not json"),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	require.NoError(t, db.Create(&corrupt).Error)

	loaded, err := store.Load(ctx, legacy.CollectionLoanApplications)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, good.ID, loaded[0].ID)
}

func TestGormKeyedStore_CollectionsAreIsolated(t *testing.T) {
	store, _ := newTestKeyedStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, legacy.CollectionLeaseRequests, legacy.NewRecord("lease", "PENDING_APPROVAL")))
	require.NoError(t, store.Upsert(ctx, legacy.CollectionApprovedLeases, legacy.NewRecord("lease", "APPROVED")))

	pending, err := store.Load(ctx, legacy.CollectionLeaseRequests)
	require.NoError(t, err)
	approved, err := store.Load(ctx, legacy.CollectionApprovedLeases)
	require.NoError(t, err)

	assert.Len(t, pending, 1)
	assert.Len(t, approved, 1)
	assert.NotEqual(t, pending[0].ID, approved[0].ID)
}
