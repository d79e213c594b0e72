package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/lending"
)

// LoanApplicationModel is the persistence model for the LoanApplication aggregate
type LoanApplicationModel struct {
	AuditedAggregateModel
	ApplicationNumber string             `gorm:"type:varchar(50);not null;uniqueIndex"`
	TenantID          uuid.UUID          `gorm:"type:uuid;not null;index"`
	Amount            decimal.Decimal    `gorm:"type:decimal(18,4);not null"`
	TermMonths        int                `gorm:"not null"`
	Purpose           string             `gorm:"type:text"`
	Status            lending.LoanStatus `gorm:"type:varchar(30);not null;index"`
	AppliedAt         time.Time          `gorm:"not null;index"`
	DecidedAt         *time.Time
	DecidedBy         *uuid.UUID `gorm:"type:uuid"`
	RejectionReason   string     `gorm:"type:text"`
	Remark            string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (LoanApplicationModel) TableName() string {
	return "loan_applications"
}

// ToDomain converts the persistence model to a domain LoanApplication
func (m *LoanApplicationModel) ToDomain() *lending.LoanApplication {
	return &lending.LoanApplication{
		AuditedAggregateRoot: m.toDomainRoot(),
		ApplicationNumber:    m.ApplicationNumber,
		TenantID:             m.TenantID,
		Amount:               m.Amount,
		TermMonths:           m.TermMonths,
		Purpose:              m.Purpose,
		Status:               m.Status,
		AppliedAt:            m.AppliedAt,
		DecidedAt:            m.DecidedAt,
		DecidedBy:            m.DecidedBy,
		RejectionReason:      m.RejectionReason,
		Remark:               m.Remark,
	}
}

// LoanApplicationModelFromDomain converts a domain LoanApplication to the persistence model
func LoanApplicationModelFromDomain(application *lending.LoanApplication) *LoanApplicationModel {
	return &LoanApplicationModel{
		AuditedAggregateModel: fromDomainRoot(application.AuditedAggregateRoot),
		ApplicationNumber:     application.ApplicationNumber,
		TenantID:              application.TenantID,
		Amount:                application.Amount,
		TermMonths:            application.TermMonths,
		Purpose:               application.Purpose,
		Status:                application.Status,
		AppliedAt:             application.AppliedAt,
		DecidedAt:             application.DecidedAt,
		DecidedBy:             application.DecidedBy,
		RejectionReason:       application.RejectionReason,
		Remark:                application.Remark,
	}
}
