package leasing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/palengke/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// LeaseStatus represents the stored status of a stall lease
type LeaseStatus string

const (
	LeaseStatusPendingApproval LeaseStatus = "PENDING_APPROVAL"
	LeaseStatusApproved        LeaseStatus = "APPROVED"
	LeaseStatusActive          LeaseStatus = "ACTIVE"
	LeaseStatusRejected        LeaseStatus = "REJECTED"

	// LeaseStatusExpired is never stored; it is derived at read time
	// from the lease end date via EffectiveStatus.
	LeaseStatusExpired LeaseStatus = "EXPIRED"
)

// IsValid checks if the status is a valid stored LeaseStatus
func (s LeaseStatus) IsValid() bool {
	switch s {
	case LeaseStatusPendingApproval, LeaseStatusApproved, LeaseStatusActive, LeaseStatusRejected:
		return true
	}
	return false
}

// String returns the string representation of LeaseStatus
func (s LeaseStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s LeaseStatus) CanTransitionTo(target LeaseStatus) bool {
	switch s {
	case LeaseStatusPendingApproval:
		return target == LeaseStatusApproved || target == LeaseStatusRejected
	case LeaseStatusApproved:
		return target == LeaseStatusActive
	case LeaseStatusRejected:
		return target == LeaseStatusPendingApproval
	case LeaseStatusActive:
		return false
	}
	return false
}

// Lease represents a stall lease aggregate root.
// It moves from application (PENDING_APPROVAL) through approval to an
// active tenancy, or into the rejected archive with a restorable prior
// status.
type Lease struct {
	shared.AuditedAggregateRoot
	LeaseNumber     string          `json:"lease_number"`
	ApplicantName   string          `json:"applicant_name"`
	StallID         uuid.UUID       `json:"stall_id"`
	TenantID        *uuid.UUID      `json:"tenant_id"` // nil until approval assigns a market tenant
	MonthlyRate     decimal.Decimal `json:"monthly_rate"`
	LeaseStart      time.Time       `json:"lease_start"`
	LeaseEnd        time.Time       `json:"lease_end"`
	IDArtifactURL   string          `json:"id_artifact_url"` // reference to the applicant's uploaded ID document
	Status          LeaseStatus     `json:"status"`
	ApprovedAt      *time.Time      `json:"approved_at"`
	ApprovedBy      *uuid.UUID      `json:"approved_by"`
	ActivatedAt     *time.Time      `json:"activated_at"`
	RejectedAt      *time.Time      `json:"rejected_at"`
	RejectedBy      *uuid.UUID      `json:"rejected_by"`
	RejectionReason string          `json:"rejection_reason"` // present iff Status == REJECTED
	ArchivedAt      *time.Time      `json:"archived_at"`
	Remark          string          `json:"remark"`
}

// NewLease creates a new lease application in PENDING_APPROVAL status
func NewLease(leaseNumber, applicantName string, stallID uuid.UUID, monthlyRate valueobject.Money, leaseStart, leaseEnd time.Time) (*Lease, error) {
	if leaseNumber == "" {
		return nil, shared.NewDomainError("INVALID_LEASE_NUMBER", "Lease number cannot be empty")
	}
	if applicantName == "" {
		return nil, shared.NewDomainError("INVALID_APPLICANT", "Applicant name cannot be empty")
	}
	if stallID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STALL", "Stall ID cannot be empty")
	}
	if monthlyRate.Amount().LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_RATE", "Monthly rate must be positive")
	}
	if !leaseEnd.After(leaseStart) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Lease end must be after lease start")
	}

	lease := &Lease{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		LeaseNumber:          leaseNumber,
		ApplicantName:        applicantName,
		StallID:              stallID,
		MonthlyRate:          monthlyRate.Amount(),
		LeaseStart:           leaseStart,
		LeaseEnd:             leaseEnd,
		Status:               LeaseStatusPendingApproval,
	}

	lease.AddDomainEvent(NewLeaseSubmittedEvent(lease, uuid.Nil))

	return lease, nil
}

// SetIDArtifact records the applicant's uploaded ID document reference
func (l *Lease) SetIDArtifact(url string) {
	l.IDArtifactURL = url
	l.UpdatedAt = time.Now()
}

// Approve approves the lease, assigning the market tenant created for
// the applicant. An uploaded ID artifact must be on file.
func (l *Lease) Approve(approvedBy, tenantID uuid.UUID) error {
	if !l.Status.CanTransitionTo(LeaseStatusApproved) {
		return shared.NewDomainError(shared.CodeInvalidTransition, fmt.Sprintf("Cannot approve lease in %s status", l.Status))
	}
	if approvedBy == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Approver user ID cannot be empty")
	}
	if tenantID == uuid.Nil {
		return shared.NewDomainError("INVALID_TENANT", "Tenant ID cannot be empty")
	}
	if l.IDArtifactURL == "" {
		return shared.NewDomainError("MISSING_ID_ARTIFACT", "An uploaded ID document is required before approval")
	}

	now := time.Now()
	l.Status = LeaseStatusApproved
	l.TenantID = &tenantID
	l.ApprovedAt = &now
	l.ApprovedBy = &approvedBy
	l.UpdatedAt = now
	l.IncrementVersion()

	l.AddDomainEvent(NewLeaseApprovedEvent(l, approvedBy))

	return nil
}

// Reject rejects the lease application with a mandatory reason and
// moves it into the archive partition.
func (l *Lease) Reject(rejectedBy uuid.UUID, reason string) error {
	if !l.Status.CanTransitionTo(LeaseStatusRejected) {
		return shared.NewDomainError(shared.CodeInvalidTransition, fmt.Sprintf("Cannot reject lease in %s status", l.Status))
	}
	if rejectedBy == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Rejector user ID cannot be empty")
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Rejection reason is required")
	}

	now := time.Now()
	l.Status = LeaseStatusRejected
	l.RejectedAt = &now
	l.RejectedBy = &rejectedBy
	l.RejectionReason = reason
	l.ArchivedAt = &now
	l.UpdatedAt = now
	l.IncrementVersion()

	l.AddDomainEvent(NewLeaseRejectedEvent(l, rejectedBy, reason))

	return nil
}

// Restore returns a rejected lease to PENDING_APPROVAL, clearing the
// rejection reason and archive stamps. The record must match its
// pre-rejection state except for bookkeeping timestamps.
func (l *Lease) Restore(restoredBy uuid.UUID) error {
	if !l.Status.CanTransitionTo(LeaseStatusPendingApproval) {
		return shared.NewDomainError(shared.CodeInvalidTransition, fmt.Sprintf("Cannot restore lease in %s status", l.Status))
	}

	l.Status = LeaseStatusPendingApproval
	l.RejectedAt = nil
	l.RejectedBy = nil
	l.RejectionReason = ""
	l.ArchivedAt = nil
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	l.AddDomainEvent(NewLeaseRestoredEvent(l, restoredBy))

	return nil
}

// Activate marks an approved lease active. Activation is effective on
// or after the lease start date.
func (l *Lease) Activate(activatedBy uuid.UUID, now time.Time) error {
	if !l.Status.CanTransitionTo(LeaseStatusActive) {
		return shared.NewDomainError(shared.CodeInvalidTransition, fmt.Sprintf("Cannot activate lease in %s status", l.Status))
	}
	if now.Before(l.LeaseStart) {
		return shared.NewDomainError("NOT_YET_EFFECTIVE", fmt.Sprintf("Lease does not start until %s", l.LeaseStart.Format("2006-01-02")))
	}

	l.Status = LeaseStatusActive
	l.ActivatedAt = &now
	l.UpdatedAt = now
	l.IncrementVersion()

	l.AddDomainEvent(NewLeaseActivatedEvent(l, activatedBy))

	return nil
}

// EffectiveStatus returns the stored status, or EXPIRED when an active
// lease has run past its end date. Expiry is derived, never persisted.
func (l *Lease) EffectiveStatus(now time.Time) LeaseStatus {
	if l.Status == LeaseStatusActive && l.LeaseEnd.Before(now) {
		return LeaseStatusExpired
	}
	return l.Status
}

// ExpiresWithin reports whether an active lease ends within d from now
func (l *Lease) ExpiresWithin(now time.Time, d time.Duration) bool {
	if l.Status != LeaseStatusActive {
		return false
	}
	remaining := l.LeaseEnd.Sub(now)
	return remaining > 0 && remaining <= d
}

// GetMonthlyRateMoney returns the monthly rate as Money
func (l *Lease) GetMonthlyRateMoney() valueobject.Money {
	return valueobject.NewMoneyPHP(l.MonthlyRate)
}

// IsPendingApproval returns true if the lease awaits approval
func (l *Lease) IsPendingApproval() bool {
	return l.Status == LeaseStatusPendingApproval
}

// IsRejected returns true if the lease is in the rejected archive
func (l *Lease) IsRejected() bool {
	return l.Status == LeaseStatusRejected
}

// IsActive returns true if the lease is active (including expired-by-date)
func (l *Lease) IsActive() bool {
	return l.Status == LeaseStatusActive
}
