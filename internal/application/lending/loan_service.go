package lending

import (
	"context"

	"github.com/google/uuid"

	"github.com/palengke/backend/internal/domain/leasing"
	"github.com/palengke/backend/internal/domain/lending"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
)

// LoanApplicationService handles micro-loan application operations
type LoanApplicationService struct {
	loanRepo       lending.LoanApplicationRepository
	tenantRepo     leasing.MarketTenantRepository
	eventPublisher shared.EventPublisher
}

// NewLoanApplicationService creates a new LoanApplicationService
func NewLoanApplicationService(
	loanRepo lending.LoanApplicationRepository,
	tenantRepo leasing.MarketTenantRepository,
) *LoanApplicationService {
	return &LoanApplicationService{
		loanRepo:   loanRepo,
		tenantRepo: tenantRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *LoanApplicationService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Submit files a new application for an existing, active market tenant
func (s *LoanApplicationService) Submit(ctx context.Context, req SubmitLoanApplicationRequest) (*LoanApplicationResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}
	if !tenant.Active {
		return nil, shared.NewDomainError("TENANT_INACTIVE", "Cannot file a loan application for an inactive tenant")
	}

	applicationNumber, err := s.loanRepo.GenerateApplicationNumber(ctx)
	if err != nil {
		return nil, err
	}

	application, err := lending.NewLoanApplication(
		applicationNumber,
		tenant.ID,
		valueobject.NewMoneyPHP(req.Amount),
		req.TermMonths,
		req.Purpose,
	)
	if err != nil {
		return nil, err
	}

	if req.Remark != "" {
		application.Remark = req.Remark
	}
	if req.CreatedBy != nil {
		application.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.loanRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, application)

	response := ToLoanApplicationResponse(application)
	return &response, nil
}

// GetByID returns a single application
func (s *LoanApplicationService) GetByID(ctx context.Context, applicationID uuid.UUID) (*LoanApplicationResponse, error) {
	application, err := s.loanRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	response := ToLoanApplicationResponse(application)
	return &response, nil
}

// List returns applications matching the filter with pagination
func (s *LoanApplicationService) List(ctx context.Context, filter LoanApplicationListFilter) ([]LoanApplicationResponse, int64, error) {
	domainFilter := lending.LoanApplicationFilter{
		Status:   filter.Status,
		TenantID: filter.TenantID,
		Keyword:  filter.Keyword,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}

	applications, total, err := s.loanRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToLoanApplicationResponses(applications), total, nil
}

// ListByTenant returns every application filed by a tenant
func (s *LoanApplicationService) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]LoanApplicationResponse, error) {
	applications, err := s.loanRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return ToLoanApplicationResponses(applications), nil
}

// Approve grants the loan
func (s *LoanApplicationService) Approve(ctx context.Context, applicationID, decidedBy uuid.UUID) (*LoanApplicationResponse, error) {
	application, err := s.loanRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if err := application.Approve(decidedBy); err != nil {
		return nil, err
	}

	if err := s.loanRepo.Update(ctx, application); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, application)

	response := ToLoanApplicationResponse(application)
	return &response, nil
}

// Reject declines the loan
func (s *LoanApplicationService) Reject(ctx context.Context, applicationID, decidedBy uuid.UUID, req RejectLoanApplicationRequest) (*LoanApplicationResponse, error) {
	application, err := s.loanRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if err := application.Reject(decidedBy, req.Reason); err != nil {
		return nil, err
	}

	if err := s.loanRepo.Update(ctx, application); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, application)

	response := ToLoanApplicationResponse(application)
	return &response, nil
}

// Delete removes a pending application
func (s *LoanApplicationService) Delete(ctx context.Context, applicationID uuid.UUID) error {
	application, err := s.loanRepo.FindByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if !application.IsPending() {
		return shared.NewDomainError(shared.CodeInvalidTransition, "Only pending loan applications can be deleted")
	}
	return s.loanRepo.Delete(ctx, applicationID)
}

func (s *LoanApplicationService) publishEvents(ctx context.Context, application *lending.LoanApplication) {
	if s.eventPublisher == nil {
		return
	}
	events := application.GetDomainEvents()
	application.ClearDomainEvents()
	// Delivery failures are the handlers' concern, not the caller's.
	_ = s.eventPublisher.Publish(ctx, events...)
}
