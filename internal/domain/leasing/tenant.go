package leasing

import (
	"fmt"
	"time"

	"github.com/palengke/backend/internal/domain/shared"
)

// MarketTenant represents a stallholder: a person or business holding
// one or more approved leases. A tenant number is assigned when the
// first lease is approved.
type MarketTenant struct {
	shared.AuditedAggregateRoot
	TenantNumber string
	Name         string
	ContactPhone string
	BusinessType string
	Active       bool
}

// NewMarketTenant creates a new market tenant
func NewMarketTenant(tenantNumber, name, contactPhone, businessType string) (*MarketTenant, error) {
	if tenantNumber == "" {
		return nil, shared.NewDomainError("INVALID_TENANT_NUMBER", "Tenant number cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Tenant name cannot be empty")
	}

	return &MarketTenant{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		TenantNumber:         tenantNumber,
		Name:                 name,
		ContactPhone:         contactPhone,
		BusinessType:         businessType,
		Active:               true,
	}, nil
}

// FormatTenantNumber builds the sequential tenant number, e.g. TNT-2026-0042
func FormatTenantNumber(year int, sequence int64) string {
	return fmt.Sprintf("TNT-%d-%04d", year, sequence)
}

// Deactivate marks the tenant inactive (no active leases remain)
func (t *MarketTenant) Deactivate() {
	t.Active = false
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// Reactivate marks the tenant active again
func (t *MarketTenant) Reactivate() {
	t.Active = true
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}
