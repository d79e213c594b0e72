package lending

import (
	"context"

	"github.com/google/uuid"
)

// LoanApplicationRepository defines the interface for loan application persistence
type LoanApplicationRepository interface {
	// Create creates a new application
	Create(ctx context.Context, application *LoanApplication) error

	// Update updates an existing application
	Update(ctx context.Context, application *LoanApplication) error

	// Delete deletes an application by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds an application by ID
	FindByID(ctx context.Context, id uuid.UUID) (*LoanApplication, error)

	// FindByApplicationNumber finds an application by its business number
	FindByApplicationNumber(ctx context.Context, applicationNumber string) (*LoanApplication, error)

	// FindByTenant returns all applications filed by a market tenant
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*LoanApplication, error)

	// FindAll returns applications matching the filter with pagination
	FindAll(ctx context.Context, filter LoanApplicationFilter) ([]*LoanApplication, int64, error)

	// Count returns the total number of applications
	Count(ctx context.Context) (int64, error)

	// GenerateApplicationNumber generates the next application number
	GenerateApplicationNumber(ctx context.Context) (string, error)
}

// LoanApplicationFilter contains filter options for querying applications
type LoanApplicationFilter struct {
	Status   *LoanStatus
	TenantID *uuid.UUID

	Keyword  string
	Page     int
	PageSize int
}
