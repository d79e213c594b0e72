package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
	"github.com/palengke/backend/internal/domain/trade"
)

// PurchaseOrderService handles purchase order business operations
type PurchaseOrderService struct {
	orderRepo      trade.PurchaseOrderRepository
	eventPublisher shared.EventPublisher
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(orderRepo trade.PurchaseOrderRepository) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo: orderRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *PurchaseOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new purchase order
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	orderNumber, err := s.orderRepo.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order, err := trade.NewPurchaseOrder(orderNumber, req.SupplierName)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		unitCost := valueobject.NewMoneyPHP(item.UnitCost)
		if _, err := order.AddItem(item.ItemName, item.Quantity, unitCost); err != nil {
			return nil, err
		}
	}

	if req.Remark != "" {
		order.SetRemark(req.Remark)
	}
	if req.CreatedBy != nil {
		order.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List retrieves purchase orders with filtering and pagination
func (s *PurchaseOrderService) List(ctx context.Context, filter PurchaseOrderListFilter) ([]PurchaseOrderResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := trade.PurchaseOrderFilter{
		Status:      filter.Status,
		OrderedFrom: filter.OrderedFrom,
		OrderedTo:   filter.OrderedTo,
		Keyword:     filter.Keyword,
		Page:        filter.Page,
		PageSize:    filter.PageSize,
	}

	orders, total, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPurchaseOrderResponses(orders), total, nil
}

// Receive marks the whole order as received. The published event drives
// the inventory stock increase.
func (s *PurchaseOrderService) Receive(ctx context.Context, orderID, receivedBy uuid.UUID) (*ReceiveResultResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	receivedInfos, err := order.Receive(receivedBy)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateWithLock(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	return &ReceiveResultResponse{
		Order:         ToPurchaseOrderResponse(order),
		ReceivedItems: ToReceivedItemResponses(receivedInfos),
	}, nil
}

// Cancel abandons a pending purchase order
func (s *PurchaseOrderService) Cancel(ctx context.Context, orderID, cancelledBy uuid.UUID, req CancelPurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Cancel(cancelledBy, req.Reason); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateWithLock(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Delete removes a pending purchase order
func (s *PurchaseOrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.IsPending() {
		return shared.NewDomainError(shared.CodeInvalidTransition, "Only pending orders can be deleted")
	}
	return s.orderRepo.Delete(ctx, orderID)
}

func (s *PurchaseOrderService) publishEvents(ctx context.Context, order *trade.PurchaseOrder) {
	if s.eventPublisher == nil {
		return
	}
	events := order.GetDomainEvents()
	order.ClearDomainEvents()
	// Delivery failures are the handlers' concern, not the caller's.
	_ = s.eventPublisher.Publish(ctx, events...)
}
