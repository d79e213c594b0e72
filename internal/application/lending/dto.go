package lending

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/lending"
)

// SubmitLoanApplicationRequest files a micro-loan application for a tenant
type SubmitLoanApplicationRequest struct {
	TenantID   uuid.UUID       `json:"tenant_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	TermMonths int             `json:"term_months" binding:"required,min=1,max=60"`
	Purpose    string          `json:"purpose" binding:"required,min=1,max=500"`
	Remark     string          `json:"remark"`
	CreatedBy  *uuid.UUID      `json:"-"`
}

// RejectLoanApplicationRequest declines an application. The reason is optional.
type RejectLoanApplicationRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// LoanApplicationResponse represents a loan application in responses
type LoanApplicationResponse struct {
	ID                uuid.UUID       `json:"id"`
	ApplicationNumber string          `json:"application_number"`
	TenantID          uuid.UUID       `json:"tenant_id"`
	Amount            decimal.Decimal `json:"amount"`
	TermMonths        int             `json:"term_months"`
	Purpose           string          `json:"purpose"`
	Status            string          `json:"status"`
	AppliedAt         time.Time       `json:"applied_at"`
	DecidedAt         *time.Time      `json:"decided_at,omitempty"`
	DecidedBy         *uuid.UUID      `json:"decided_by,omitempty"`
	RejectionReason   string          `json:"rejection_reason,omitempty"`
	Remark            string          `json:"remark,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// LoanApplicationListFilter contains query parameters for listing applications
type LoanApplicationListFilter struct {
	Status   *lending.LoanStatus `form:"status"`
	TenantID *uuid.UUID          `form:"tenant_id"`
	Keyword  string              `form:"keyword"`
	Page     int                 `form:"page"`
	PageSize int                 `form:"page_size"`
}

// ToLoanApplicationResponse converts a domain aggregate to a response DTO
func ToLoanApplicationResponse(application *lending.LoanApplication) LoanApplicationResponse {
	return LoanApplicationResponse{
		ID:                application.ID,
		ApplicationNumber: application.ApplicationNumber,
		TenantID:          application.TenantID,
		Amount:            application.Amount,
		TermMonths:        application.TermMonths,
		Purpose:           application.Purpose,
		Status:            application.Status.String(),
		AppliedAt:         application.AppliedAt,
		DecidedAt:         application.DecidedAt,
		DecidedBy:         application.DecidedBy,
		RejectionReason:   application.RejectionReason,
		Remark:            application.Remark,
		CreatedAt:         application.CreatedAt,
		UpdatedAt:         application.UpdatedAt,
	}
}

// ToLoanApplicationResponses converts a slice of aggregates to response DTOs
func ToLoanApplicationResponses(applications []*lending.LoanApplication) []LoanApplicationResponse {
	responses := make([]LoanApplicationResponse, len(applications))
	for i, application := range applications {
		responses[i] = ToLoanApplicationResponse(application)
	}
	return responses
}
