package settings

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/palengke/backend/internal/domain/identity"
	"github.com/palengke/backend/internal/domain/legacy"
)

// memoryStore is a map-backed KeyedStore for tests
type memoryStore struct {
	collections map[string][]legacy.Record
}

func newMemoryStore() *memoryStore {
	return &memoryStore{collections: make(map[string][]legacy.Record)}
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
	records := s.collections[collection]
	for i, rec := range records {
		if rec.ID == id {
			s.collections[collection] = append(records[:i], records[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestGetReturnsDefaultsWhenEmpty(t *testing.T) {
	service := NewSettingsService(newMemoryStore(), zap.NewNop())

	settings, err := service.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Palengke Public Market", settings.MarketName)
	assert.True(t, settings.DefaultStallRate.Equal(decimal.NewFromInt(3500)))
	assert.Empty(t, settings.Thresholds)
}

func TestUpdateRoundTrip(t *testing.T) {
	service := NewSettingsService(newMemoryStore(), zap.NewNop())
	ctx := context.Background()

	limit := decimal.NewFromInt(25000)
	err := service.Update(ctx, &MarketSettings{
		MarketName:       "Bagong Palengke ng San Roque",
		Address:          "G. del Pilar St, San Roque",
		DefaultStallRate: decimal.NewFromInt(4000),
		Thresholds: map[string]*decimal.Decimal{
			"Manager":   &limit,
			"Executive": nil,
		},
	})
	require.NoError(t, err)

	stored, err := service.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bagong Palengke ng San Roque", stored.MarketName)
	assert.True(t, stored.DefaultStallRate.Equal(decimal.NewFromInt(4000)))
	require.Contains(t, stored.Thresholds, "Manager")
	assert.True(t, stored.Thresholds["Manager"].Equal(limit))
	require.Contains(t, stored.Thresholds, "Executive")
	assert.Nil(t, stored.Thresholds["Executive"])
}

func TestUpdateRejectsUnknownRole(t *testing.T) {
	service := NewSettingsService(newMemoryStore(), zap.NewNop())

	err := service.Update(context.Background(), &MarketSettings{
		MarketName:       "Palengke",
		DefaultStallRate: decimal.NewFromInt(3500),
		Thresholds:       map[string]*decimal.Decimal{"Janitor": nil},
	})
	assert.Error(t, err)
}

func TestApprovalPolicyUsesOverrides(t *testing.T) {
	service := NewSettingsService(newMemoryStore(), zap.NewNop())
	ctx := context.Background()

	limit := decimal.NewFromInt(20000)
	require.NoError(t, service.Update(ctx, &MarketSettings{
		MarketName:       "Palengke",
		DefaultStallRate: decimal.NewFromInt(3500),
		Thresholds: map[string]*decimal.Decimal{
			"Manager": &limit,
		},
	}))

	policy, err := service.ApprovalPolicy(ctx)
	require.NoError(t, err)

	assert.NoError(t, policy.CanApprove(identity.RoleManager, decimal.NewFromInt(20000)))
	assert.Error(t, policy.CanApprove(identity.RoleManager, decimal.NewFromInt(20001)))
	// Roles outside the override table are not granted approval.
	assert.Error(t, policy.CanApprove(identity.RoleExecutive, decimal.NewFromInt(5)))
}

func TestApprovalPolicyDefaultsWithoutOverrides(t *testing.T) {
	service := NewSettingsService(newMemoryStore(), zap.NewNop())

	policy, err := service.ApprovalPolicy(context.Background())
	require.NoError(t, err)
	assert.NoError(t, policy.CanApprove(identity.RoleManager, decimal.NewFromInt(10000)))
	assert.Error(t, policy.CanApprove(identity.RoleManager, decimal.NewFromInt(10001)))
	assert.NoError(t, policy.CanApprove(identity.RoleFinanceHead, decimal.NewFromInt(1000000)))
}
