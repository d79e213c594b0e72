package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/trade"
)

// CreatePurchaseOrderRequest represents a request to create a purchase order
type CreatePurchaseOrderRequest struct {
	SupplierName string                         `json:"supplier_name" binding:"required,min=1,max=200"`
	Items        []CreatePurchaseOrderItemInput `json:"items" binding:"required,min=1"`
	Remark       string                         `json:"remark"`
	CreatedBy    *uuid.UUID                     `json:"-"`
}

// CreatePurchaseOrderItemInput represents an item in the create order request
type CreatePurchaseOrderItemInput struct {
	ItemName string          `json:"item_name" binding:"required,min=1,max=200"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	UnitCost decimal.Decimal `json:"unit_cost" binding:"required"`
}

// CancelPurchaseOrderRequest represents a request to cancel a purchase order
type CancelPurchaseOrderRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// PurchaseOrderItemResponse represents an order line in responses
type PurchaseOrderItemResponse struct {
	ID       uuid.UUID       `json:"id"`
	ItemName string          `json:"item_name"`
	Quantity decimal.Decimal `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Amount   decimal.Decimal `json:"amount"`
}

// PurchaseOrderResponse represents a purchase order in responses
type PurchaseOrderResponse struct {
	ID           uuid.UUID                   `json:"id"`
	OrderNumber  string                      `json:"order_number"`
	SupplierName string                      `json:"supplier_name"`
	Status       string                      `json:"status"`
	Items        []PurchaseOrderItemResponse `json:"items"`
	TotalAmount  decimal.Decimal             `json:"total_amount"`
	OrderedAt    time.Time                   `json:"ordered_at"`
	ReceivedAt   *time.Time                  `json:"received_at,omitempty"`
	CancelledAt  *time.Time                  `json:"cancelled_at,omitempty"`
	CancelReason string                      `json:"cancel_reason,omitempty"`
	Remark       string                      `json:"remark,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

// ReceivedItemResponse describes one received line
type ReceivedItemResponse struct {
	ItemID   uuid.UUID       `json:"item_id"`
	ItemName string          `json:"item_name"`
	Quantity decimal.Decimal `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// ReceiveResultResponse is returned after receiving an order
type ReceiveResultResponse struct {
	Order         PurchaseOrderResponse  `json:"order"`
	ReceivedItems []ReceivedItemResponse `json:"received_items"`
}

// PurchaseOrderListFilter contains list query options
type PurchaseOrderListFilter struct {
	Status      *trade.PurchaseOrderStatus `form:"status"`
	OrderedFrom *time.Time                 `form:"ordered_from" time_format:"2006-01-02"`
	OrderedTo   *time.Time                 `form:"ordered_to" time_format:"2006-01-02"`
	Keyword     string                     `form:"keyword"`
	Page        int                        `form:"page"`
	PageSize    int                        `form:"page_size"`
}

// ToPurchaseOrderResponse converts a domain order to a response DTO
func ToPurchaseOrderResponse(order *trade.PurchaseOrder) PurchaseOrderResponse {
	items := make([]PurchaseOrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, PurchaseOrderItemResponse{
			ID:       item.ID,
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			UnitCost: item.UnitCost,
			Amount:   item.Amount,
		})
	}

	return PurchaseOrderResponse{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		SupplierName: order.SupplierName,
		Status:       order.Status.String(),
		Items:        items,
		TotalAmount:  order.TotalAmount,
		OrderedAt:    order.OrderedAt,
		ReceivedAt:   order.ReceivedAt,
		CancelledAt:  order.CancelledAt,
		CancelReason: order.CancelReason,
		Remark:       order.Remark,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

// ToPurchaseOrderResponses converts a slice of domain orders
func ToPurchaseOrderResponses(orders []*trade.PurchaseOrder) []PurchaseOrderResponse {
	responses := make([]PurchaseOrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, ToPurchaseOrderResponse(order))
	}
	return responses
}

// ToReceivedItemResponses converts received line infos
func ToReceivedItemResponses(infos []trade.ReceivedItemInfo) []ReceivedItemResponse {
	responses := make([]ReceivedItemResponse, 0, len(infos))
	for _, info := range infos {
		responses = append(responses, ReceivedItemResponse{
			ItemID:   info.ItemID,
			ItemName: info.ItemName,
			Quantity: info.Quantity,
			UnitCost: info.UnitCost,
		})
	}
	return responses
}
