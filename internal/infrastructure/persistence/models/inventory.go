package models

import (
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/inventory"
)

// InventoryItemModel is the persistence model for the InventoryItem aggregate
type InventoryItemModel struct {
	AuditedAggregateModel
	Name      string          `gorm:"type:varchar(200);not null;index"`
	Unit      string          `gorm:"type:varchar(50)"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	MinStock  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Remark    string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}

// ToDomain converts the persistence model to a domain InventoryItem
func (m *InventoryItemModel) ToDomain() *inventory.InventoryItem {
	return &inventory.InventoryItem{
		AuditedAggregateRoot: m.toDomainRoot(),
		Name:                 m.Name,
		Unit:                 m.Unit,
		Quantity:             m.Quantity,
		UnitPrice:            m.UnitPrice,
		MinStock:             m.MinStock,
		Remark:               m.Remark,
	}
}

// InventoryItemModelFromDomain converts a domain InventoryItem to the persistence model
func InventoryItemModelFromDomain(item *inventory.InventoryItem) *InventoryItemModel {
	return &InventoryItemModel{
		AuditedAggregateModel: fromDomainRoot(item.AuditedAggregateRoot),
		Name:                  item.Name,
		Unit:                  item.Unit,
		Quantity:              item.Quantity,
		UnitPrice:             item.UnitPrice,
		MinStock:              item.MinStock,
		Remark:                item.Remark,
	}
}
