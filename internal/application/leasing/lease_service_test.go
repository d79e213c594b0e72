package leasing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/palengke/backend/internal/domain/leasing"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
)

// MockLeaseRepository is a mock implementation of LeaseRepository
type MockLeaseRepository struct {
	mock.Mock
}

func (m *MockLeaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*leasing.Lease, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leasing.Lease), args.Error(1)
}

func (m *MockLeaseRepository) FindByLeaseNumber(ctx context.Context, leaseNumber string) (*leasing.Lease, error) {
	args := m.Called(ctx, leaseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leasing.Lease), args.Error(1)
}

func (m *MockLeaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]leasing.Lease, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leasing.Lease), args.Error(1)
}

func (m *MockLeaseRepository) FindByStatus(ctx context.Context, status leasing.LeaseStatus, filter shared.Filter) ([]leasing.Lease, error) {
	args := m.Called(ctx, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leasing.Lease), args.Error(1)
}

func (m *MockLeaseRepository) FindByStall(ctx context.Context, stallID uuid.UUID) ([]leasing.Lease, error) {
	args := m.Called(ctx, stallID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leasing.Lease), args.Error(1)
}

func (m *MockLeaseRepository) FindActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]leasing.Lease, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leasing.Lease), args.Error(1)
}

func (m *MockLeaseRepository) Save(ctx context.Context, lease *leasing.Lease) error {
	args := m.Called(ctx, lease)
	return args.Error(0)
}

func (m *MockLeaseRepository) SaveWithLock(ctx context.Context, lease *leasing.Lease) error {
	args := m.Called(ctx, lease)
	return args.Error(0)
}

func (m *MockLeaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeaseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeaseRepository) GenerateLeaseNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockStallRepository is a mock implementation of StallRepository
type MockStallRepository struct {
	mock.Mock
}

func (m *MockStallRepository) FindByID(ctx context.Context, id uuid.UUID) (*leasing.Stall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leasing.Stall), args.Error(1)
}

func (m *MockStallRepository) FindByStallNumber(ctx context.Context, stallNumber string) (*leasing.Stall, error) {
	args := m.Called(ctx, stallNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leasing.Stall), args.Error(1)
}

func (m *MockStallRepository) FindAll(ctx context.Context, filter shared.Filter) ([]leasing.Stall, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leasing.Stall), args.Error(1)
}

func (m *MockStallRepository) FindByStatus(ctx context.Context, status leasing.StallStatus) ([]leasing.Stall, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leasing.Stall), args.Error(1)
}

func (m *MockStallRepository) Save(ctx context.Context, stall *leasing.Stall) error {
	args := m.Called(ctx, stall)
	return args.Error(0)
}

func (m *MockStallRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStallRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockMarketTenantRepository is a mock implementation of MarketTenantRepository
type MockMarketTenantRepository struct {
	mock.Mock
}

func (m *MockMarketTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*leasing.MarketTenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leasing.MarketTenant), args.Error(1)
}

func (m *MockMarketTenantRepository) FindByTenantNumber(ctx context.Context, tenantNumber string) (*leasing.MarketTenant, error) {
	args := m.Called(ctx, tenantNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leasing.MarketTenant), args.Error(1)
}

func (m *MockMarketTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]leasing.MarketTenant, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leasing.MarketTenant), args.Error(1)
}

func (m *MockMarketTenantRepository) Save(ctx context.Context, tenant *leasing.MarketTenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockMarketTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMarketTenantRepository) GenerateTenantNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func newService(leaseRepo *MockLeaseRepository, stallRepo *MockStallRepository, tenantRepo *MockMarketTenantRepository) *LeaseService {
	return NewLeaseService(leaseRepo, stallRepo, tenantRepo)
}

func vacantStall(t *testing.T) *leasing.Stall {
	t.Helper()
	stall, err := leasing.NewStall("A-12", "Wet Section", decimal.NewFromFloat(6.5), valueobject.NewMoneyPHPFromFloat(3500))
	require.NoError(t, err)
	return stall
}

func pendingLease(t *testing.T, stallID uuid.UUID) *leasing.Lease {
	t.Helper()
	start := time.Now().AddDate(0, 0, -7)
	lease, err := leasing.NewLease("LSE-2026-0001", "Maricel Reyes", stallID,
		valueobject.NewMoneyPHPFromFloat(3500), start, start.AddDate(1, 0, 0))
	require.NoError(t, err)
	lease.SetIDArtifact("uploads/ids/maricel-reyes.jpg")
	lease.ClearDomainEvents()
	return lease
}

func TestSubmitLease(t *testing.T) {
	leaseRepo := new(MockLeaseRepository)
	stallRepo := new(MockStallRepository)
	tenantRepo := new(MockMarketTenantRepository)
	service := newService(leaseRepo, stallRepo, tenantRepo)

	stall := vacantStall(t)
	stallRepo.On("FindByID", mock.Anything, stall.ID).Return(stall, nil)
	leaseRepo.On("GenerateLeaseNumber", mock.Anything).Return("LSE-2026-0001", nil)
	leaseRepo.On("Save", mock.Anything, mock.AnythingOfType("*leasing.Lease")).Return(nil)

	start := time.Now()
	resp, err := service.Submit(context.Background(), SubmitLeaseRequest{
		ApplicantName: "Maricel Reyes",
		StallID:       stall.ID,
		MonthlyRate:   decimal.NewFromInt(3500),
		LeaseStart:    start,
		LeaseEnd:      start.AddDate(1, 0, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, "PENDING_APPROVAL", resp.Status)
	assert.Equal(t, "LSE-2026-0001", resp.LeaseNumber)
}

func TestSubmitLeaseOccupiedStall(t *testing.T) {
	leaseRepo := new(MockLeaseRepository)
	stallRepo := new(MockStallRepository)
	tenantRepo := new(MockMarketTenantRepository)
	service := newService(leaseRepo, stallRepo, tenantRepo)

	stall := vacantStall(t)
	require.NoError(t, stall.Occupy())
	stallRepo.On("FindByID", mock.Anything, stall.ID).Return(stall, nil)

	start := time.Now()
	_, err := service.Submit(context.Background(), SubmitLeaseRequest{
		ApplicantName: "Jun Santos",
		StallID:       stall.ID,
		MonthlyRate:   decimal.NewFromInt(3500),
		LeaseStart:    start,
		LeaseEnd:      start.AddDate(1, 0, 0),
	})

	assert.Error(t, err)
	leaseRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestApproveCreatesMarketTenant(t *testing.T) {
	leaseRepo := new(MockLeaseRepository)
	stallRepo := new(MockStallRepository)
	tenantRepo := new(MockMarketTenantRepository)
	service := newService(leaseRepo, stallRepo, tenantRepo)

	lease := pendingLease(t, uuid.New())
	leaseRepo.On("FindByID", mock.Anything, lease.ID).Return(lease, nil)
	tenantRepo.On("GenerateTenantNumber", mock.Anything).Return("TNT-2026-0042", nil)
	tenantRepo.On("Save", mock.Anything, mock.MatchedBy(func(tenant *leasing.MarketTenant) bool {
		return tenant.Name == "Maricel Reyes" && tenant.TenantNumber == "TNT-2026-0042"
	})).Return(nil)
	leaseRepo.On("SaveWithLock", mock.Anything, lease).Return(nil)

	resp, err := service.Approve(context.Background(), lease.ID, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, "APPROVED", resp.Status)
	require.NotNil(t, resp.TenantID)
	tenantRepo.AssertExpectations(t)
}

func TestApproveWithoutIDArtifact(t *testing.T) {
	leaseRepo := new(MockLeaseRepository)
	stallRepo := new(MockStallRepository)
	tenantRepo := new(MockMarketTenantRepository)
	service := newService(leaseRepo, stallRepo, tenantRepo)

	start := time.Now()
	lease, err := leasing.NewLease("LSE-2026-0002", "Jun Santos", uuid.New(),
		valueobject.NewMoneyPHPFromFloat(3500), start, start.AddDate(1, 0, 0))
	require.NoError(t, err)
	lease.ClearDomainEvents()

	leaseRepo.On("FindByID", mock.Anything, lease.ID).Return(lease, nil)
	tenantRepo.On("GenerateTenantNumber", mock.Anything).Return("TNT-2026-0043", nil)

	_, err = service.Approve(context.Background(), lease.ID, uuid.New())
	assert.Error(t, err)
	leaseRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}

func TestRejectThenRestoreRoundTrip(t *testing.T) {
	leaseRepo := new(MockLeaseRepository)
	stallRepo := new(MockStallRepository)
	tenantRepo := new(MockMarketTenantRepository)
	service := newService(leaseRepo, stallRepo, tenantRepo)

	lease := pendingLease(t, uuid.New())
	leaseRepo.On("FindByID", mock.Anything, lease.ID).Return(lease, nil)
	leaseRepo.On("SaveWithLock", mock.Anything, lease).Return(nil)

	rejected, err := service.Reject(context.Background(), lease.ID, uuid.New(), RejectLeaseRequest{Reason: "incomplete papers"})
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", rejected.Status)
	assert.Equal(t, "incomplete papers", rejected.RejectionReason)
	assert.NotNil(t, rejected.ArchivedAt)

	restored, err := service.Restore(context.Background(), lease.ID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "PENDING_APPROVAL", restored.Status)
	assert.Empty(t, restored.RejectionReason)
	assert.Nil(t, restored.ArchivedAt)
}

func TestExpiredLeaseReportsDerivedStatus(t *testing.T) {
	leaseRepo := new(MockLeaseRepository)
	stallRepo := new(MockStallRepository)
	tenantRepo := new(MockMarketTenantRepository)
	service := newService(leaseRepo, stallRepo, tenantRepo)

	start := time.Now().AddDate(-1, -1, 0)
	lease, err := leasing.NewLease("LSE-2025-0009", "Rosa Cruz", uuid.New(),
		valueobject.NewMoneyPHPFromFloat(3000), start, start.AddDate(1, 0, 0))
	require.NoError(t, err)
	lease.SetIDArtifact("uploads/ids/rosa-cruz.jpg")
	require.NoError(t, lease.Approve(uuid.New(), uuid.New()))
	require.NoError(t, lease.Activate(uuid.New(), start))
	lease.ClearDomainEvents()

	leaseRepo.On("FindByID", mock.Anything, lease.ID).Return(lease, nil)

	resp, err := service.GetByID(context.Background(), lease.ID)
	require.NoError(t, err)

	// Stored status stays ACTIVE; response reports the derived one.
	assert.Equal(t, "EXPIRED", resp.Status)
	assert.Equal(t, leasing.LeaseStatusActive, lease.Status)
}
