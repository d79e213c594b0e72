package finance

import (
	"context"

	"github.com/google/uuid"

	"github.com/palengke/backend/internal/domain/finance"
	"github.com/palengke/backend/internal/domain/identity"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
)

// PolicyProvider resolves the approval policy currently in force.
// Resolved per decision so threshold changes apply without a restart.
type PolicyProvider interface {
	ApprovalPolicy(ctx context.Context) (*finance.ApprovalPolicy, error)
}

// PolicyProviderFunc adapts a function to the PolicyProvider interface
type PolicyProviderFunc func(ctx context.Context) (*finance.ApprovalPolicy, error)

// ApprovalPolicy calls f
func (f PolicyProviderFunc) ApprovalPolicy(ctx context.Context) (*finance.ApprovalPolicy, error) {
	return f(ctx)
}

// ExpenseService handles expense approval and disbursement operations.
// Role thresholds come from the injected policy provider.
type ExpenseService struct {
	expenseRepo    finance.ExpenseRepository
	policies       PolicyProvider
	eventPublisher shared.EventPublisher
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRepository, policies PolicyProvider) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		policies:    policies,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ExpenseService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create records a new expense awaiting approval
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	expenseNumber, err := s.expenseRepo.GenerateExpenseNumber(ctx)
	if err != nil {
		return nil, err
	}

	expense, err := finance.NewExpense(
		expenseNumber,
		req.Category,
		valueobject.NewMoneyPHP(req.Amount),
		req.Description,
		req.IncurredAt,
	)
	if err != nil {
		return nil, err
	}

	if req.Remark != "" {
		expense.SetRemark(req.Remark)
	}
	if req.CreatedBy != nil {
		expense.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, expense)

	response := ToExpenseResponse(expense)
	return &response, nil
}

// GetByID retrieves an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, expenseID uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	response := ToExpenseResponse(expense)
	return &response, nil
}

// List retrieves expenses with filtering and pagination
func (s *ExpenseService) List(ctx context.Context, filter ExpenseListFilter) ([]ExpenseResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	expenses, total, err := s.expenseRepo.FindAll(ctx, finance.ExpenseFilter{
		ApprovalStatus: filter.ApprovalStatus,
		PaymentStatus:  filter.PaymentStatus,
		Category:       filter.Category,
		IncurredFrom:   filter.IncurredFrom,
		IncurredTo:     filter.IncurredTo,
		Keyword:        filter.Keyword,
		Page:           filter.Page,
		PageSize:       filter.PageSize,
	})
	if err != nil {
		return nil, 0, err
	}

	return ToExpenseResponses(expenses), total, nil
}

// Update edits a pending expense
func (s *ExpenseService) Update(ctx context.Context, expenseID uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if err := expense.Update(req.Category, valueobject.NewMoneyPHP(req.Amount), req.Description, req.IncurredAt); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.UpdateWithLock(ctx, expense); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// Approve approves an expense if the actor's role threshold allows it
func (s *ExpenseService) Approve(ctx context.Context, expenseID, actor uuid.UUID, role identity.Role) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	policy, err := s.policies.ApprovalPolicy(ctx)
	if err != nil {
		return nil, err
	}

	if err := expense.Approve(actor, role, policy); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.UpdateWithLock(ctx, expense); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, expense)

	response := ToExpenseResponse(expense)
	return &response, nil
}

// Reject rejects a pending expense
func (s *ExpenseService) Reject(ctx context.Context, expenseID, actor uuid.UUID, req RejectExpenseRequest) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if err := expense.Reject(actor, req.Reason); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.UpdateWithLock(ctx, expense); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, expense)

	response := ToExpenseResponse(expense)
	return &response, nil
}

// GenerateCheckRequest advances an approved expense to READY_FOR_PAYMENT
func (s *ExpenseService) GenerateCheckRequest(ctx context.Context, expenseID, actor uuid.UUID, role identity.Role) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	policy, err := s.policies.ApprovalPolicy(ctx)
	if err != nil {
		return nil, err
	}

	if err := expense.GenerateCheckRequest(actor, role, policy); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.UpdateWithLock(ctx, expense); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, expense)

	response := ToExpenseResponse(expense)
	return &response, nil
}

// AuthorizeRelease marks an expense as PAID
func (s *ExpenseService) AuthorizeRelease(ctx context.Context, expenseID, actor uuid.UUID, role identity.Role) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	policy, err := s.policies.ApprovalPolicy(ctx)
	if err != nil {
		return nil, err
	}

	if err := expense.AuthorizeRelease(actor, role, policy); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.UpdateWithLock(ctx, expense); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, expense)

	response := ToExpenseResponse(expense)
	return &response, nil
}

func (s *ExpenseService) publishEvents(ctx context.Context, expense *finance.Expense) {
	if s.eventPublisher == nil {
		return
	}
	events := expense.GetDomainEvents()
	expense.ClearDomainEvents()
	_ = s.eventPublisher.Publish(ctx, events...)
}
