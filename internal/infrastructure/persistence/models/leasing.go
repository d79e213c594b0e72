package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/leasing"
)

// LeaseModel is the persistence model for the Lease aggregate
type LeaseModel struct {
	AuditedAggregateModel
	LeaseNumber     string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	ApplicantName   string              `gorm:"type:varchar(200);not null"`
	StallID         uuid.UUID           `gorm:"type:uuid;not null;index"`
	TenantID        *uuid.UUID          `gorm:"type:uuid;index"`
	MonthlyRate     decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	LeaseStart      time.Time           `gorm:"not null"`
	LeaseEnd        time.Time           `gorm:"not null;index"`
	IDArtifactURL   string              `gorm:"type:text"`
	Status          leasing.LeaseStatus `gorm:"type:varchar(30);not null;index"`
	ApprovedAt      *time.Time
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ActivatedAt     *time.Time
	RejectedAt      *time.Time
	RejectedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason string     `gorm:"type:text"`
	ArchivedAt      *time.Time
	Remark          string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (LeaseModel) TableName() string {
	return "leases"
}

// ToDomain converts the persistence model to a domain Lease
func (m *LeaseModel) ToDomain() *leasing.Lease {
	return &leasing.Lease{
		AuditedAggregateRoot: m.toDomainRoot(),
		LeaseNumber:          m.LeaseNumber,
		ApplicantName:        m.ApplicantName,
		StallID:              m.StallID,
		TenantID:             m.TenantID,
		MonthlyRate:          m.MonthlyRate,
		LeaseStart:           m.LeaseStart,
		LeaseEnd:             m.LeaseEnd,
		IDArtifactURL:        m.IDArtifactURL,
		Status:               m.Status,
		ApprovedAt:           m.ApprovedAt,
		ApprovedBy:           m.ApprovedBy,
		ActivatedAt:          m.ActivatedAt,
		RejectedAt:           m.RejectedAt,
		RejectedBy:           m.RejectedBy,
		RejectionReason:      m.RejectionReason,
		ArchivedAt:           m.ArchivedAt,
		Remark:               m.Remark,
	}
}

// LeaseModelFromDomain converts a domain Lease to the persistence model
func LeaseModelFromDomain(lease *leasing.Lease) *LeaseModel {
	return &LeaseModel{
		AuditedAggregateModel: fromDomainRoot(lease.AuditedAggregateRoot),
		LeaseNumber:           lease.LeaseNumber,
		ApplicantName:         lease.ApplicantName,
		StallID:               lease.StallID,
		TenantID:              lease.TenantID,
		MonthlyRate:           lease.MonthlyRate,
		LeaseStart:            lease.LeaseStart,
		LeaseEnd:              lease.LeaseEnd,
		IDArtifactURL:         lease.IDArtifactURL,
		Status:                lease.Status,
		ApprovedAt:            lease.ApprovedAt,
		ApprovedBy:            lease.ApprovedBy,
		ActivatedAt:           lease.ActivatedAt,
		RejectedAt:            lease.RejectedAt,
		RejectedBy:            lease.RejectedBy,
		RejectionReason:       lease.RejectionReason,
		ArchivedAt:            lease.ArchivedAt,
		Remark:                lease.Remark,
	}
}

// StallModel is the persistence model for the Stall aggregate
type StallModel struct {
	AuditedAggregateModel
	StallNumber string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	Zone        string              `gorm:"type:varchar(100);not null;index"`
	SizeSqm     decimal.Decimal     `gorm:"type:decimal(10,2);not null"`
	MonthlyRate decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	Status      leasing.StallStatus `gorm:"type:varchar(30);not null;index"`
	Remark      string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (StallModel) TableName() string {
	return "stalls"
}

// ToDomain converts the persistence model to a domain Stall
func (m *StallModel) ToDomain() *leasing.Stall {
	return &leasing.Stall{
		AuditedAggregateRoot: m.toDomainRoot(),
		StallNumber:          m.StallNumber,
		Zone:                 m.Zone,
		SizeSqm:              m.SizeSqm,
		MonthlyRate:          m.MonthlyRate,
		Status:               m.Status,
		Remark:               m.Remark,
	}
}

// StallModelFromDomain converts a domain Stall to the persistence model
func StallModelFromDomain(stall *leasing.Stall) *StallModel {
	return &StallModel{
		AuditedAggregateModel: fromDomainRoot(stall.AuditedAggregateRoot),
		StallNumber:           stall.StallNumber,
		Zone:                  stall.Zone,
		SizeSqm:               stall.SizeSqm,
		MonthlyRate:           stall.MonthlyRate,
		Status:                stall.Status,
		Remark:                stall.Remark,
	}
}

// MarketTenantModel is the persistence model for the MarketTenant aggregate
type MarketTenantModel struct {
	AuditedAggregateModel
	TenantNumber string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string `gorm:"type:varchar(200);not null;index"`
	ContactPhone string `gorm:"type:varchar(50)"`
	BusinessType string `gorm:"type:varchar(100)"`
	Active       bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (MarketTenantModel) TableName() string {
	return "market_tenants"
}

// ToDomain converts the persistence model to a domain MarketTenant
func (m *MarketTenantModel) ToDomain() *leasing.MarketTenant {
	return &leasing.MarketTenant{
		AuditedAggregateRoot: m.toDomainRoot(),
		TenantNumber:         m.TenantNumber,
		Name:                 m.Name,
		ContactPhone:         m.ContactPhone,
		BusinessType:         m.BusinessType,
		Active:               m.Active,
	}
}

// MarketTenantModelFromDomain converts a domain MarketTenant to the persistence model
func MarketTenantModelFromDomain(tenant *leasing.MarketTenant) *MarketTenantModel {
	return &MarketTenantModel{
		AuditedAggregateModel: fromDomainRoot(tenant.AuditedAggregateRoot),
		TenantNumber:          tenant.TenantNumber,
		Name:                  tenant.Name,
		ContactPhone:          tenant.ContactPhone,
		BusinessType:          tenant.BusinessType,
		Active:                tenant.Active,
	}
}
