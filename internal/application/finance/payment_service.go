package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/palengke/backend/internal/domain/finance"
	"github.com/palengke/backend/internal/domain/leasing"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
)

// RentPaymentService records stall rent payments against active leases
type RentPaymentService struct {
	paymentRepo    finance.RentPaymentRepository
	leaseRepo      leasing.LeaseRepository
	eventPublisher shared.EventPublisher
}

// NewRentPaymentService creates a new RentPaymentService
func NewRentPaymentService(paymentRepo finance.RentPaymentRepository, leaseRepo leasing.LeaseRepository) *RentPaymentService {
	return &RentPaymentService{
		paymentRepo: paymentRepo,
		leaseRepo:   leaseRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *RentPaymentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Record records a rent payment. The lease must be active at the time
// of payment.
func (s *RentPaymentService) Record(ctx context.Context, req RecordRentPaymentRequest) (*RentPaymentResponse, error) {
	lease, err := s.leaseRepo.FindByID(ctx, req.LeaseID)
	if err != nil {
		return nil, err
	}
	if lease.EffectiveStatus(time.Now()) != leasing.LeaseStatusActive {
		return nil, shared.NewDomainError(shared.CodeInvalidTransition,
			"Rent payments can only be recorded against active leases")
	}

	receiptNumber, err := s.paymentRepo.GenerateReceiptNumber(ctx)
	if err != nil {
		return nil, err
	}

	payment, err := finance.NewRentPayment(
		receiptNumber,
		req.LeaseID,
		req.TenantID,
		valueobject.NewMoneyPHP(req.Amount),
		req.Method,
		req.PeriodStart,
		req.PeriodEnd,
		req.RecordedBy,
	)
	if err != nil {
		return nil, err
	}
	if req.Remark != "" {
		payment.Remark = req.Remark
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, payment)

	response := ToRentPaymentResponse(payment)
	return &response, nil
}

// Correct records a reversing entry for a mistaken payment
func (s *RentPaymentService) Correct(ctx context.Context, paymentID uuid.UUID, req CorrectRentPaymentRequest) (*RentPaymentResponse, error) {
	original, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	receiptNumber, err := s.paymentRepo.GenerateReceiptNumber(ctx)
	if err != nil {
		return nil, err
	}

	correction, err := finance.NewRentPaymentCorrection(original, receiptNumber, req.Remark, req.RecordedBy)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Create(ctx, correction); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, correction)

	response := ToRentPaymentResponse(correction)
	return &response, nil
}

// HistoryByLease returns all payments recorded against a lease
func (s *RentPaymentService) HistoryByLease(ctx context.Context, leaseID uuid.UUID) ([]RentPaymentResponse, error) {
	payments, err := s.paymentRepo.FindByLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	return ToRentPaymentResponses(payments), nil
}

// HistoryByTenant returns all payments recorded for a market tenant
func (s *RentPaymentService) HistoryByTenant(ctx context.Context, tenantID uuid.UUID) ([]RentPaymentResponse, error) {
	payments, err := s.paymentRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return ToRentPaymentResponses(payments), nil
}

func (s *RentPaymentService) publishEvents(ctx context.Context, payment *finance.RentPayment) {
	if s.eventPublisher == nil {
		return
	}
	events := payment.GetDomainEvents()
	payment.ClearDomainEvents()
	_ = s.eventPublisher.Publish(ctx, events...)
}
