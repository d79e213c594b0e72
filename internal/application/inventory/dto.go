package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/inventory"
)

// CreateInventoryItemRequest represents a request to stock a new item
type CreateInventoryItemRequest struct {
	Name      string          `json:"name" binding:"required,min=1,max=200"`
	Unit      string          `json:"unit" binding:"max=20"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	MinStock  decimal.Decimal `json:"min_stock"`
	CreatedBy *uuid.UUID      `json:"-"`
}

// AdjustStockRequest represents a physical-count correction
type AdjustStockRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Reason   string          `json:"reason" binding:"required,min=1,max=500"`
}

// ConsumeStockRequest represents taking supplies out of stock
type ConsumeStockRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// SetMinStockRequest changes the restock threshold
type SetMinStockRequest struct {
	MinStock decimal.Decimal `json:"min_stock" binding:"required"`
}

// InventoryItemResponse represents an item in responses
type InventoryItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	MinStock      decimal.Decimal `json:"min_stock"`
	BelowMinStock bool            `json:"below_min_stock"`
	Remark        string          `json:"remark,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InventoryItemListFilter contains list query options
type InventoryItemListFilter struct {
	Keyword       string `form:"keyword"`
	BelowMinStock bool   `form:"below_min_stock"`
	Page          int    `form:"page"`
	PageSize      int    `form:"page_size"`
}

// ToInventoryItemResponse converts a domain item to a response DTO
func ToInventoryItemResponse(item *inventory.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Unit:          item.Unit,
		Quantity:      item.Quantity,
		UnitPrice:     item.UnitPrice,
		MinStock:      item.MinStock,
		BelowMinStock: item.IsBelowMinStock(),
		Remark:        item.Remark,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

// ToInventoryItemResponses converts a slice of domain items
func ToInventoryItemResponses(items []*inventory.InventoryItem) []InventoryItemResponse {
	responses := make([]InventoryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToInventoryItemResponse(item))
	}
	return responses
}
