package leasing

import (
	"context"

	"github.com/google/uuid"

	"github.com/palengke/backend/internal/domain/leasing"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
)

// StallService manages the stall register
type StallService struct {
	stallRepo leasing.StallRepository
}

// NewStallService creates a new StallService
func NewStallService(stallRepo leasing.StallRepository) *StallService {
	return &StallService{stallRepo: stallRepo}
}

// Create registers a new vacant stall
func (s *StallService) Create(ctx context.Context, req CreateStallRequest) (*StallResponse, error) {
	if existing, err := s.stallRepo.FindByStallNumber(ctx, req.StallNumber); err == nil && existing != nil {
		return nil, shared.NewDomainError("STALL_ALREADY_EXISTS", "A stall with this number already exists")
	}

	stall, err := leasing.NewStall(req.StallNumber, req.Zone, req.SizeSqm, valueobject.NewMoneyPHP(req.MonthlyRate))
	if err != nil {
		return nil, err
	}

	if err := s.stallRepo.Save(ctx, stall); err != nil {
		return nil, err
	}

	response := ToStallResponse(stall)
	return &response, nil
}

// GetByID retrieves a stall by ID
func (s *StallService) GetByID(ctx context.Context, stallID uuid.UUID) (*StallResponse, error) {
	stall, err := s.stallRepo.FindByID(ctx, stallID)
	if err != nil {
		return nil, err
	}
	response := ToStallResponse(stall)
	return &response, nil
}

// List retrieves stalls, optionally only those with a given occupancy status
func (s *StallService) List(ctx context.Context, status *leasing.StallStatus) ([]StallResponse, error) {
	var stalls []leasing.Stall
	var err error
	if status != nil {
		stalls, err = s.stallRepo.FindByStatus(ctx, *status)
	} else {
		stalls, err = s.stallRepo.FindAll(ctx, shared.DefaultFilter())
	}
	if err != nil {
		return nil, err
	}

	responses := make([]StallResponse, 0, len(stalls))
	for i := range stalls {
		responses = append(responses, ToStallResponse(&stalls[i]))
	}
	return responses, nil
}

// MarketTenantService manages the market tenant register
type MarketTenantService struct {
	tenantRepo leasing.MarketTenantRepository
}

// NewMarketTenantService creates a new MarketTenantService
func NewMarketTenantService(tenantRepo leasing.MarketTenantRepository) *MarketTenantService {
	return &MarketTenantService{tenantRepo: tenantRepo}
}

// GetByID retrieves a market tenant by ID
func (s *MarketTenantService) GetByID(ctx context.Context, tenantID uuid.UUID) (*MarketTenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	response := ToMarketTenantResponse(tenant)
	return &response, nil
}

// List retrieves all market tenants
func (s *MarketTenantService) List(ctx context.Context) ([]MarketTenantResponse, error) {
	tenants, err := s.tenantRepo.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	responses := make([]MarketTenantResponse, 0, len(tenants))
	for i := range tenants {
		responses = append(responses, ToMarketTenantResponse(&tenants[i]))
	}
	return responses, nil
}

// Deactivate marks a market tenant as no longer trading
func (s *MarketTenantService) Deactivate(ctx context.Context, tenantID uuid.UUID) (*MarketTenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	tenant.Deactivate()

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	response := ToMarketTenantResponse(tenant)
	return &response, nil
}
