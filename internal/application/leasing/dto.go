package leasing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/leasing"
)

// SubmitLeaseRequest represents a stall lease application
type SubmitLeaseRequest struct {
	ApplicantName string          `json:"applicant_name" binding:"required,min=1,max=200"`
	StallID       uuid.UUID       `json:"stall_id" binding:"required"`
	MonthlyRate   decimal.Decimal `json:"monthly_rate" binding:"required"`
	LeaseStart    time.Time       `json:"lease_start" binding:"required"`
	LeaseEnd      time.Time       `json:"lease_end" binding:"required"`
	IDArtifactURL string          `json:"id_artifact_url"`
	Remark        string          `json:"remark"`
	CreatedBy     *uuid.UUID      `json:"-"`
}

// AttachIDArtifactRequest attaches the applicant's ID document
type AttachIDArtifactRequest struct {
	IDArtifactURL string `json:"id_artifact_url" binding:"required,min=1,max=500"`
}

// RejectLeaseRequest carries the mandatory rejection reason
type RejectLeaseRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// LeaseResponse represents a lease in responses. Status is the
// effective status: expired leases report EXPIRED even though the
// stored status stays ACTIVE.
type LeaseResponse struct {
	ID              uuid.UUID       `json:"id"`
	LeaseNumber     string          `json:"lease_number"`
	ApplicantName   string          `json:"applicant_name"`
	StallID         uuid.UUID       `json:"stall_id"`
	TenantID        *uuid.UUID      `json:"tenant_id,omitempty"`
	MonthlyRate     decimal.Decimal `json:"monthly_rate"`
	LeaseStart      time.Time       `json:"lease_start"`
	LeaseEnd        time.Time       `json:"lease_end"`
	IDArtifactURL   string          `json:"id_artifact_url,omitempty"`
	Status          string          `json:"status"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
	ActivatedAt     *time.Time      `json:"activated_at,omitempty"`
	RejectedAt      *time.Time      `json:"rejected_at,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	ArchivedAt      *time.Time      `json:"archived_at,omitempty"`
	Remark          string          `json:"remark,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// LeaseListFilter contains list query options
type LeaseListFilter struct {
	Status   *leasing.LeaseStatus `form:"status"`
	Keyword  string               `form:"keyword"`
	Page     int                  `form:"page"`
	PageSize int                  `form:"page_size"`
}

// CreateStallRequest registers a market stall
type CreateStallRequest struct {
	StallNumber string          `json:"stall_number" binding:"required,min=1,max=50"`
	Zone        string          `json:"zone" binding:"required,min=1,max=50"`
	SizeSqm     decimal.Decimal `json:"size_sqm" binding:"required"`
	MonthlyRate decimal.Decimal `json:"monthly_rate" binding:"required"`
}

// StallResponse represents a stall in responses
type StallResponse struct {
	ID          uuid.UUID       `json:"id"`
	StallNumber string          `json:"stall_number"`
	Zone        string          `json:"zone"`
	SizeSqm     decimal.Decimal `json:"size_sqm"`
	MonthlyRate decimal.Decimal `json:"monthly_rate"`
	Status      string          `json:"status"`
	Remark      string          `json:"remark,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MarketTenantResponse represents a market tenant in responses
type MarketTenantResponse struct {
	ID           uuid.UUID `json:"id"`
	TenantNumber string    `json:"tenant_number"`
	Name         string    `json:"name"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	BusinessType string    `json:"business_type,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToLeaseResponse converts a domain lease to a response DTO, reporting
// the effective status as of now.
func ToLeaseResponse(lease *leasing.Lease, now time.Time) LeaseResponse {
	return LeaseResponse{
		ID:              lease.ID,
		LeaseNumber:     lease.LeaseNumber,
		ApplicantName:   lease.ApplicantName,
		StallID:         lease.StallID,
		TenantID:        lease.TenantID,
		MonthlyRate:     lease.MonthlyRate,
		LeaseStart:      lease.LeaseStart,
		LeaseEnd:        lease.LeaseEnd,
		IDArtifactURL:   lease.IDArtifactURL,
		Status:          lease.EffectiveStatus(now).String(),
		ApprovedAt:      lease.ApprovedAt,
		ActivatedAt:     lease.ActivatedAt,
		RejectedAt:      lease.RejectedAt,
		RejectionReason: lease.RejectionReason,
		ArchivedAt:      lease.ArchivedAt,
		Remark:          lease.Remark,
		CreatedAt:       lease.CreatedAt,
		UpdatedAt:       lease.UpdatedAt,
	}
}

// ToLeaseResponses converts a slice of domain leases
func ToLeaseResponses(leases []leasing.Lease, now time.Time) []LeaseResponse {
	responses := make([]LeaseResponse, 0, len(leases))
	for i := range leases {
		responses = append(responses, ToLeaseResponse(&leases[i], now))
	}
	return responses
}

// ToStallResponse converts a domain stall to a response DTO
func ToStallResponse(stall *leasing.Stall) StallResponse {
	return StallResponse{
		ID:          stall.ID,
		StallNumber: stall.StallNumber,
		Zone:        stall.Zone,
		SizeSqm:     stall.SizeSqm,
		MonthlyRate: stall.MonthlyRate,
		Status:      stall.Status.String(),
		Remark:      stall.Remark,
		CreatedAt:   stall.CreatedAt,
	}
}

// ToMarketTenantResponse converts a domain market tenant to a response DTO
func ToMarketTenantResponse(tenant *leasing.MarketTenant) MarketTenantResponse {
	return MarketTenantResponse{
		ID:           tenant.ID,
		TenantNumber: tenant.TenantNumber,
		Name:         tenant.Name,
		ContactPhone: tenant.ContactPhone,
		BusinessType: tenant.BusinessType,
		Active:       tenant.Active,
		CreatedAt:    tenant.CreatedAt,
	}
}
