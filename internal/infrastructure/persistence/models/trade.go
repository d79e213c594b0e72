package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/trade"
)

// PurchaseOrderModel is the persistence model for the PurchaseOrder aggregate
type PurchaseOrderModel struct {
	AuditedAggregateModel
	OrderNumber  string                    `gorm:"type:varchar(50);not null;uniqueIndex"`
	SupplierName string                    `gorm:"type:varchar(200);not null"`
	Status       trade.PurchaseOrderStatus `gorm:"type:varchar(30);not null;index"`
	TotalAmount  decimal.Decimal           `gorm:"type:decimal(18,4);not null;default:0"`
	OrderedAt    time.Time                 `gorm:"not null;index"`
	ReceivedAt   *time.Time
	ReceivedBy   *uuid.UUID `gorm:"type:uuid"`
	CancelledAt  *time.Time
	CancelledBy  *uuid.UUID `gorm:"type:uuid"`
	CancelReason string     `gorm:"type:text"`
	Remark       string     `gorm:"type:text"`

	Items []PurchaseOrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItemModel is one order line
type PurchaseOrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemName  string          `gorm:"type:varchar(200);not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitCost  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Remark    string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItemModel) TableName() string {
	return "purchase_order_items"
}

// ToDomain converts the persistence model to a domain PurchaseOrder
func (m *PurchaseOrderModel) ToDomain() *trade.PurchaseOrder {
	items := make([]trade.PurchaseOrderItem, len(m.Items))
	for i, line := range m.Items {
		items[i] = trade.PurchaseOrderItem{
			BaseEntity: shared.BaseEntity{
				ID:        line.ID,
				CreatedAt: line.CreatedAt,
				UpdatedAt: line.UpdatedAt,
			},
			OrderID:  line.OrderID,
			ItemName: line.ItemName,
			Quantity: line.Quantity,
			UnitCost: line.UnitCost,
			Amount:   line.Amount,
			Remark:   line.Remark,
		}
	}

	return &trade.PurchaseOrder{
		AuditedAggregateRoot: m.toDomainRoot(),
		OrderNumber:          m.OrderNumber,
		SupplierName:         m.SupplierName,
		Status:               m.Status,
		Items:                items,
		TotalAmount:          m.TotalAmount,
		OrderedAt:            m.OrderedAt,
		ReceivedAt:           m.ReceivedAt,
		ReceivedBy:           m.ReceivedBy,
		CancelledAt:          m.CancelledAt,
		CancelledBy:          m.CancelledBy,
		CancelReason:         m.CancelReason,
		Remark:               m.Remark,
	}
}

// PurchaseOrderModelFromDomain converts a domain PurchaseOrder to the persistence model
func PurchaseOrderModelFromDomain(order *trade.PurchaseOrder) *PurchaseOrderModel {
	items := make([]PurchaseOrderItemModel, len(order.Items))
	for i, line := range order.Items {
		items[i] = PurchaseOrderItemModel{
			ID:        line.ID,
			CreatedAt: line.CreatedAt,
			UpdatedAt: line.UpdatedAt,
			OrderID:   line.OrderID,
			ItemName:  line.ItemName,
			Quantity:  line.Quantity,
			UnitCost:  line.UnitCost,
			Amount:    line.Amount,
			Remark:    line.Remark,
		}
	}

	return &PurchaseOrderModel{
		AuditedAggregateModel: fromDomainRoot(order.AuditedAggregateRoot),
		OrderNumber:           order.OrderNumber,
		SupplierName:          order.SupplierName,
		Status:                order.Status,
		TotalAmount:           order.TotalAmount,
		OrderedAt:             order.OrderedAt,
		ReceivedAt:            order.ReceivedAt,
		ReceivedBy:            order.ReceivedBy,
		CancelledAt:           order.CancelledAt,
		CancelledBy:           order.CancelledBy,
		CancelReason:          order.CancelReason,
		Remark:                order.Remark,
		Items:                 items,
	}
}
