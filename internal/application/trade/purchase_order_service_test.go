package trade

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
	"github.com/palengke/backend/internal/domain/trade"
)

// MockPurchaseOrderRepository is a mock implementation of PurchaseOrderRepository
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) Create(ctx context.Context, order *trade.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Update(ctx context.Context, order *trade.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) UpdateWithLock(ctx context.Context, order *trade.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*trade.PurchaseOrder, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindAll(ctx context.Context, filter trade.PurchaseOrderFilter) ([]*trade.PurchaseOrder, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*trade.PurchaseOrder), args.Get(1).(int64), args.Error(2)
}

func (m *MockPurchaseOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseOrderRepository) GenerateOrderNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockEventPublisher records the events it saw
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func pendingOrder(t *testing.T) *trade.PurchaseOrder {
	t.Helper()
	order, err := trade.NewPurchaseOrder("PO-2026-0007", "Bayanihan Supplies")
	require.NoError(t, err)
	_, err = order.AddItem("Trash bags 50L", decimal.NewFromInt(50), valueobject.NewMoneyPHPFromFloat(120))
	require.NoError(t, err)
	order.ClearDomainEvents()
	return order
}

func TestCreatePurchaseOrder(t *testing.T) {
	repo := new(MockPurchaseOrderRepository)
	service := NewPurchaseOrderService(repo)

	repo.On("GenerateOrderNumber", mock.Anything).Return("PO-2026-0007", nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*trade.PurchaseOrder")).Return(nil)

	resp, err := service.Create(context.Background(), CreatePurchaseOrderRequest{
		SupplierName: "Bayanihan Supplies",
		Items: []CreatePurchaseOrderItemInput{
			{ItemName: "Trash bags 50L", Quantity: decimal.NewFromInt(50), UnitCost: decimal.NewFromInt(120)},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "PO-2026-0007", resp.OrderNumber)
	assert.Equal(t, "PENDING", resp.Status)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(6000)))
	repo.AssertExpectations(t)
}

func TestCreatePurchaseOrderInvalidItem(t *testing.T) {
	repo := new(MockPurchaseOrderRepository)
	service := NewPurchaseOrderService(repo)

	repo.On("GenerateOrderNumber", mock.Anything).Return("PO-2026-0008", nil)

	_, err := service.Create(context.Background(), CreatePurchaseOrderRequest{
		SupplierName: "Bayanihan Supplies",
		Items: []CreatePurchaseOrderItemInput{
			{ItemName: "", Quantity: decimal.NewFromInt(1), UnitCost: decimal.NewFromInt(10)},
		},
	})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReceivePublishesEvent(t *testing.T) {
	repo := new(MockPurchaseOrderRepository)
	publisher := new(MockEventPublisher)
	service := NewPurchaseOrderService(repo)
	service.SetEventPublisher(publisher)

	order := pendingOrder(t)
	receiver := uuid.New()

	repo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	repo.On("UpdateWithLock", mock.Anything, order).Return(nil)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(events []shared.DomainEvent) bool {
		return len(events) == 1 && events[0].EventType() == trade.EventTypePurchaseOrderReceived
	})).Return(nil)

	resp, err := service.Receive(context.Background(), order.ID, receiver)

	require.NoError(t, err)
	assert.Equal(t, "RECEIVED", resp.Order.Status)
	require.Len(t, resp.ReceivedItems, 1)
	assert.Equal(t, "Trash bags 50L", resp.ReceivedItems[0].ItemName)
	publisher.AssertExpectations(t)
}

func TestReceiveNotFound(t *testing.T) {
	repo := new(MockPurchaseOrderRepository)
	service := NewPurchaseOrderService(repo)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, errors.New("not found"))

	_, err := service.Receive(context.Background(), id, uuid.New())
	assert.Error(t, err)
}

func TestCancelOrder(t *testing.T) {
	repo := new(MockPurchaseOrderRepository)
	service := NewPurchaseOrderService(repo)

	order := pendingOrder(t)
	repo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	repo.On("UpdateWithLock", mock.Anything, order).Return(nil)

	resp, err := service.Cancel(context.Background(), order.ID, uuid.New(), CancelPurchaseOrderRequest{
		Reason: "supplier closed",
	})

	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.Status)
}

func TestDeleteOnlyPending(t *testing.T) {
	repo := new(MockPurchaseOrderRepository)
	service := NewPurchaseOrderService(repo)

	order := pendingOrder(t)
	_, err := order.Receive(uuid.New())
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

	err = service.Delete(context.Background(), order.ID)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
