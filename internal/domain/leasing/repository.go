package leasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/palengke/backend/internal/domain/shared"
)

// LeaseRepository defines the interface for lease persistence
type LeaseRepository interface {
	// FindByID finds a lease by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Lease, error)

	// FindByLeaseNumber finds a lease by its lease number
	FindByLeaseNumber(ctx context.Context, leaseNumber string) (*Lease, error)

	// FindAll finds all leases with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Lease, error)

	// FindByStatus finds leases by stored status
	FindByStatus(ctx context.Context, status LeaseStatus, filter shared.Filter) ([]Lease, error)

	// FindByStall finds leases for a stall
	FindByStall(ctx context.Context, stallID uuid.UUID) ([]Lease, error)

	// FindActiveEndingBefore finds active leases whose end date falls before the cutoff
	FindActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]Lease, error)

	// Save creates or updates a lease
	Save(ctx context.Context, lease *Lease) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, lease *Lease) error

	// Delete permanently removes a lease
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts leases matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// GenerateLeaseNumber generates the next sequential lease number
	GenerateLeaseNumber(ctx context.Context) (string, error)
}

// StallRepository defines the interface for stall persistence
type StallRepository interface {
	// FindByID finds a stall by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Stall, error)

	// FindByStallNumber finds a stall by its number
	FindByStallNumber(ctx context.Context, stallNumber string) (*Stall, error)

	// FindAll finds all stalls with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Stall, error)

	// FindByStatus finds stalls by occupancy status
	FindByStatus(ctx context.Context, status StallStatus) ([]Stall, error)

	// Save creates or updates a stall
	Save(ctx context.Context, stall *Stall) error

	// Delete permanently removes a stall
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts stalls matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// MarketTenantRepository defines the interface for market tenant persistence
type MarketTenantRepository interface {
	// FindByID finds a market tenant by ID
	FindByID(ctx context.Context, id uuid.UUID) (*MarketTenant, error)

	// FindByTenantNumber finds a market tenant by tenant number
	FindByTenantNumber(ctx context.Context, tenantNumber string) (*MarketTenant, error)

	// FindAll finds all market tenants with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]MarketTenant, error)

	// Save creates or updates a market tenant
	Save(ctx context.Context, tenant *MarketTenant) error

	// Delete permanently removes a market tenant
	Delete(ctx context.Context, id uuid.UUID) error

	// GenerateTenantNumber generates the next sequential tenant number
	GenerateTenantNumber(ctx context.Context) (string, error)
}
