package leasing

import (
	"time"

	"github.com/google/uuid"
	"github.com/palengke/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeLease  = "Lease"
	AggregateTypeStall  = "Stall"
	AggregateTypeTenant = "MarketTenant"
)

// Event type constants
const (
	EventTypeLeaseSubmitted = "LeaseSubmitted"
	EventTypeLeaseApproved  = "LeaseApproved"
	EventTypeLeaseRejected  = "LeaseRejected"
	EventTypeLeaseRestored  = "LeaseRestored"
	EventTypeLeaseActivated = "LeaseActivated"
)

// LeaseSubmittedEvent is raised when a new lease application is filed
type LeaseSubmittedEvent struct {
	shared.BaseDomainEvent
	LeaseID       uuid.UUID       `json:"lease_id"`
	LeaseNumber   string          `json:"lease_number"`
	ApplicantName string          `json:"applicant_name"`
	StallID       uuid.UUID       `json:"stall_id"`
	MonthlyRate   decimal.Decimal `json:"monthly_rate"`
}

// NewLeaseSubmittedEvent creates a new LeaseSubmittedEvent
func NewLeaseSubmittedEvent(lease *Lease, actor uuid.UUID) *LeaseSubmittedEvent {
	return &LeaseSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseSubmitted, AggregateTypeLease, lease.ID, actor),
		LeaseID:         lease.ID,
		LeaseNumber:     lease.LeaseNumber,
		ApplicantName:   lease.ApplicantName,
		StallID:         lease.StallID,
		MonthlyRate:     lease.MonthlyRate,
	}
}

// EventType returns the event type name
func (e *LeaseSubmittedEvent) EventType() string {
	return EventTypeLeaseSubmitted
}

// LeaseApprovedEvent is raised when a lease application is approved
type LeaseApprovedEvent struct {
	shared.BaseDomainEvent
	LeaseID       uuid.UUID `json:"lease_id"`
	LeaseNumber   string    `json:"lease_number"`
	ApplicantName string    `json:"applicant_name"`
	StallID       uuid.UUID `json:"stall_id"`
	TenantID      uuid.UUID `json:"tenant_id"`
	LeaseStart    time.Time `json:"lease_start"`
	LeaseEnd      time.Time `json:"lease_end"`
}

// NewLeaseApprovedEvent creates a new LeaseApprovedEvent
func NewLeaseApprovedEvent(lease *Lease, actor uuid.UUID) *LeaseApprovedEvent {
	var tenantID uuid.UUID
	if lease.TenantID != nil {
		tenantID = *lease.TenantID
	}
	return &LeaseApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseApproved, AggregateTypeLease, lease.ID, actor),
		LeaseID:         lease.ID,
		LeaseNumber:     lease.LeaseNumber,
		ApplicantName:   lease.ApplicantName,
		StallID:         lease.StallID,
		TenantID:        tenantID,
		LeaseStart:      lease.LeaseStart,
		LeaseEnd:        lease.LeaseEnd,
	}
}

// EventType returns the event type name
func (e *LeaseApprovedEvent) EventType() string {
	return EventTypeLeaseApproved
}

// LeaseRejectedEvent is raised when a lease application is rejected
type LeaseRejectedEvent struct {
	shared.BaseDomainEvent
	LeaseID     uuid.UUID `json:"lease_id"`
	LeaseNumber string    `json:"lease_number"`
	StallID     uuid.UUID `json:"stall_id"`
	Reason      string    `json:"reason"`
}

// NewLeaseRejectedEvent creates a new LeaseRejectedEvent
func NewLeaseRejectedEvent(lease *Lease, actor uuid.UUID, reason string) *LeaseRejectedEvent {
	return &LeaseRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseRejected, AggregateTypeLease, lease.ID, actor),
		LeaseID:         lease.ID,
		LeaseNumber:     lease.LeaseNumber,
		StallID:         lease.StallID,
		Reason:          reason,
	}
}

// EventType returns the event type name
func (e *LeaseRejectedEvent) EventType() string {
	return EventTypeLeaseRejected
}

// LeaseRestoredEvent is raised when a rejected lease returns to the queue
type LeaseRestoredEvent struct {
	shared.BaseDomainEvent
	LeaseID     uuid.UUID `json:"lease_id"`
	LeaseNumber string    `json:"lease_number"`
}

// NewLeaseRestoredEvent creates a new LeaseRestoredEvent
func NewLeaseRestoredEvent(lease *Lease, actor uuid.UUID) *LeaseRestoredEvent {
	return &LeaseRestoredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseRestored, AggregateTypeLease, lease.ID, actor),
		LeaseID:         lease.ID,
		LeaseNumber:     lease.LeaseNumber,
	}
}

// EventType returns the event type name
func (e *LeaseRestoredEvent) EventType() string {
	return EventTypeLeaseRestored
}

// LeaseActivatedEvent is raised when an approved lease becomes active
type LeaseActivatedEvent struct {
	shared.BaseDomainEvent
	LeaseID     uuid.UUID `json:"lease_id"`
	LeaseNumber string    `json:"lease_number"`
	StallID     uuid.UUID `json:"stall_id"`
	TenantID    uuid.UUID `json:"tenant_id"`
}

// NewLeaseActivatedEvent creates a new LeaseActivatedEvent
func NewLeaseActivatedEvent(lease *Lease, actor uuid.UUID) *LeaseActivatedEvent {
	var tenantID uuid.UUID
	if lease.TenantID != nil {
		tenantID = *lease.TenantID
	}
	return &LeaseActivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseActivated, AggregateTypeLease, lease.ID, actor),
		LeaseID:         lease.ID,
		LeaseNumber:     lease.LeaseNumber,
		StallID:         lease.StallID,
		TenantID:        tenantID,
	}
}

// EventType returns the event type name
func (e *LeaseActivatedEvent) EventType() string {
	return EventTypeLeaseActivated
}
