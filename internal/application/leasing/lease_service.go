package leasing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/palengke/backend/internal/domain/leasing"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
)

// LeaseService handles the stall lease lifecycle
type LeaseService struct {
	leaseRepo      leasing.LeaseRepository
	stallRepo      leasing.StallRepository
	tenantRepo     leasing.MarketTenantRepository
	eventPublisher shared.EventPublisher
}

// NewLeaseService creates a new LeaseService
func NewLeaseService(
	leaseRepo leasing.LeaseRepository,
	stallRepo leasing.StallRepository,
	tenantRepo leasing.MarketTenantRepository,
) *LeaseService {
	return &LeaseService{
		leaseRepo:  leaseRepo,
		stallRepo:  stallRepo,
		tenantRepo: tenantRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *LeaseService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Submit files a stall lease application
func (s *LeaseService) Submit(ctx context.Context, req SubmitLeaseRequest) (*LeaseResponse, error) {
	stall, err := s.stallRepo.FindByID(ctx, req.StallID)
	if err != nil {
		return nil, err
	}
	if !stall.IsVacant() {
		return nil, shared.NewDomainError("STALL_NOT_VACANT", "Stall is not available for lease")
	}

	leaseNumber, err := s.leaseRepo.GenerateLeaseNumber(ctx)
	if err != nil {
		return nil, err
	}

	lease, err := leasing.NewLease(
		leaseNumber,
		req.ApplicantName,
		req.StallID,
		valueobject.NewMoneyPHP(req.MonthlyRate),
		req.LeaseStart,
		req.LeaseEnd,
	)
	if err != nil {
		return nil, err
	}

	if req.IDArtifactURL != "" {
		lease.SetIDArtifact(req.IDArtifactURL)
	}
	if req.Remark != "" {
		lease.Remark = req.Remark
	}
	if req.CreatedBy != nil {
		lease.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.leaseRepo.Save(ctx, lease); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, lease)

	response := ToLeaseResponse(lease, time.Now())
	return &response, nil
}

// AttachIDArtifact stores the applicant's ID document reference
func (s *LeaseService) AttachIDArtifact(ctx context.Context, leaseID uuid.UUID, req AttachIDArtifactRequest) (*LeaseResponse, error) {
	lease, err := s.leaseRepo.FindByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	lease.SetIDArtifact(req.IDArtifactURL)

	if err := s.leaseRepo.Save(ctx, lease); err != nil {
		return nil, err
	}

	response := ToLeaseResponse(lease, time.Now())
	return &response, nil
}

// Approve approves a pending application. A market tenant record is
// created from the applicant and assigned to the lease; the stall
// occupancy flips through the published event.
func (s *LeaseService) Approve(ctx context.Context, leaseID, approvedBy uuid.UUID) (*LeaseResponse, error) {
	lease, err := s.leaseRepo.FindByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	tenantNumber, err := s.tenantRepo.GenerateTenantNumber(ctx)
	if err != nil {
		return nil, err
	}

	tenant, err := leasing.NewMarketTenant(tenantNumber, lease.ApplicantName, "", "")
	if err != nil {
		return nil, err
	}

	if err := lease.Approve(approvedBy, tenant.ID); err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}
	if err := s.leaseRepo.SaveWithLock(ctx, lease); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, lease)

	response := ToLeaseResponse(lease, time.Now())
	return &response, nil
}

// Reject rejects a pending application with a mandatory reason
func (s *LeaseService) Reject(ctx context.Context, leaseID, rejectedBy uuid.UUID, req RejectLeaseRequest) (*LeaseResponse, error) {
	lease, err := s.leaseRepo.FindByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	if err := lease.Reject(rejectedBy, req.Reason); err != nil {
		return nil, err
	}

	if err := s.leaseRepo.SaveWithLock(ctx, lease); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, lease)

	response := ToLeaseResponse(lease, time.Now())
	return &response, nil
}

// Restore moves a rejected application back to pending, clearing the
// rejection bookkeeping.
func (s *LeaseService) Restore(ctx context.Context, leaseID, restoredBy uuid.UUID) (*LeaseResponse, error) {
	lease, err := s.leaseRepo.FindByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	if err := lease.Restore(restoredBy); err != nil {
		return nil, err
	}

	if err := s.leaseRepo.SaveWithLock(ctx, lease); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, lease)

	response := ToLeaseResponse(lease, time.Now())
	return &response, nil
}

// Activate starts an approved lease once its start date has arrived
func (s *LeaseService) Activate(ctx context.Context, leaseID, activatedBy uuid.UUID) (*LeaseResponse, error) {
	lease, err := s.leaseRepo.FindByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	if err := lease.Activate(activatedBy, time.Now()); err != nil {
		return nil, err
	}

	if err := s.leaseRepo.SaveWithLock(ctx, lease); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, lease)

	response := ToLeaseResponse(lease, time.Now())
	return &response, nil
}

// GetByID retrieves a lease by ID
func (s *LeaseService) GetByID(ctx context.Context, leaseID uuid.UUID) (*LeaseResponse, error) {
	lease, err := s.leaseRepo.FindByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	response := ToLeaseResponse(lease, time.Now())
	return &response, nil
}

// List retrieves leases with filtering and pagination
func (s *LeaseService) List(ctx context.Context, filter LeaseListFilter) ([]LeaseResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Keyword,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}

	var leases []leasing.Lease
	var err error
	if filter.Status != nil {
		leases, err = s.leaseRepo.FindByStatus(ctx, *filter.Status, domainFilter)
	} else {
		leases, err = s.leaseRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.leaseRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToLeaseResponses(leases, time.Now()), total, nil
}

// ListExpiringWithin returns active leases ending within the window.
// Leases already past their end date are not included.
func (s *LeaseService) ListExpiringWithin(ctx context.Context, window time.Duration) ([]LeaseResponse, error) {
	now := time.Now()
	leases, err := s.leaseRepo.FindActiveEndingBefore(ctx, now.Add(window))
	if err != nil {
		return nil, err
	}

	expiring := make([]LeaseResponse, 0, len(leases))
	for i := range leases {
		if leases[i].ExpiresWithin(now, window) {
			expiring = append(expiring, ToLeaseResponse(&leases[i], now))
		}
	}
	return expiring, nil
}

func (s *LeaseService) publishEvents(ctx context.Context, lease *leasing.Lease) {
	if s.eventPublisher == nil {
		return
	}
	events := lease.GetDomainEvents()
	lease.ClearDomainEvents()
	_ = s.eventPublisher.Publish(ctx, events...)
}
