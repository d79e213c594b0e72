package archive

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/palengke/backend/internal/domain/legacy"
	"github.com/palengke/backend/internal/domain/shared"
)

// Entity names accepted by the archive endpoints
const (
	EntityLease         = "lease"
	EntityExpense       = "expense"
	EntityInventoryItem = "inventoryItem"
	EntityPurchaseOrder = "purchaseOrder"
	EntityRentPayment   = "rentPayment"
	EntityLoan          = "loanApplication"
)

// entitySpec describes where records of one entity live in the legacy
// store. Leases keep the original three-way partition with a dedicated
// archive collection; every other entity archives in place by stamping.
type entitySpec struct {
	// collections a live record may occupy
	active []string
	// dedicated archive partition, "" means stamp in place
	archive string
	// umbrella collections holding an extra copy regardless of status
	mirrors []string
	// status stamped onto an archived record
	archivedStatus string
	// collection a restored record returns to, given its prior status
	activeFor func(status string) string
	// status used when an archived record carries no prior-status stamp
	restoreFallback string
}

var entities = map[string]entitySpec{
	EntityLease: {
		active:         []string{legacy.CollectionLeaseRequests, legacy.CollectionApprovedLeases},
		archive:        legacy.CollectionRejectedLeases,
		mirrors:        []string{legacy.CollectionLeases},
		archivedStatus:  "REJECTED",
		restoreFallback: "PENDING_APPROVAL",
		activeFor: func(status string) string {
			if status == "PENDING_APPROVAL" {
				return legacy.CollectionLeaseRequests
			}
			return legacy.CollectionApprovedLeases
		},
	},
	EntityExpense:       {active: []string{legacy.CollectionExpenses}, archivedStatus: "ARCHIVED"},
	EntityInventoryItem: {active: []string{legacy.CollectionInventory}, archivedStatus: "ARCHIVED"},
	EntityPurchaseOrder: {active: []string{legacy.CollectionPurchaseOrders}, archivedStatus: "ARCHIVED"},
	EntityRentPayment:   {active: []string{legacy.CollectionPaymentHistory}, archivedStatus: "ARCHIVED"},
	EntityLoan:          {active: []string{legacy.CollectionLoanApplications}, archivedStatus: "ARCHIVED"},
}

// PurgeResult reports the outcome of a purge per collection
type PurgeResult struct {
	Collection string `json:"collection"`
	Removed    bool   `json:"removed"`
	Error      string `json:"error,omitempty"`
}

// ArchiveService moves legacy records between their active and
// archived partitions and handles permanent deletion across every
// collection an id may occupy.
type ArchiveService struct {
	store  legacy.KeyedStore
	logger *zap.Logger
}

// NewArchiveService creates a new ArchiveService
func NewArchiveService(store legacy.KeyedStore, logger *zap.Logger) *ArchiveService {
	return &ArchiveService{store: store, logger: logger}
}

func lookupEntity(entity string) (entitySpec, error) {
	spec, ok := entities[entity]
	if !ok {
		return entitySpec{}, shared.NewDomainError("VALIDATION_ERROR", fmt.Sprintf("Unknown entity %q", entity))
	}
	return spec, nil
}

// findIn searches a list of collections for an id
func (s *ArchiveService) findIn(ctx context.Context, collections []string, id string) (legacy.Record, string, error) {
	for _, collection := range collections {
		records, err := s.store.Load(ctx, collection)
		if err != nil {
			return legacy.Record{}, "", err
		}
		if rec, ok := legacy.FindByID(records, id); ok {
			return rec, collection, nil
		}
	}
	return legacy.Record{}, "", shared.NewDomainError("NOT_FOUND", "Record not found")
}

// Archive moves a record out of its active partition, stamping the
// archive bookkeeping fields. The prior status is kept so Restore can
// put the record back exactly where it was.
func (s *ArchiveService) Archive(ctx context.Context, entity, id, reason string) (legacy.Record, error) {
	spec, err := lookupEntity(entity)
	if err != nil {
		return legacy.Record{}, err
	}

	rec, from, err := s.findIn(ctx, spec.active, id)
	if err != nil {
		return legacy.Record{}, err
	}

	archived := rec.Clone()
	archived.Set(legacy.FieldPriorStatus, rec.Status)
	archived.Set(legacy.FieldArchivedAt, time.Now().Format(time.RFC3339))
	if reason != "" {
		archived.Set(legacy.FieldRejectionReason, reason)
	}
	archived.Status = spec.archivedStatus

	target := spec.archive
	if target == "" {
		target = from
	} else if err := s.store.Remove(ctx, from, id); err != nil {
		return legacy.Record{}, err
	}
	if err := s.store.Upsert(ctx, target, archived); err != nil {
		return legacy.Record{}, err
	}
	for _, mirror := range spec.mirrors {
		if err := s.store.Upsert(ctx, mirror, archived); err != nil {
			return legacy.Record{}, err
		}
	}

	s.logger.Info("record archived",
		zap.String("entity", entity),
		zap.String("record_id", id),
		zap.String("from", from),
	)
	return archived, nil
}

// Restore reverses Archive: the record returns to the active partition
// matching its prior status with the bookkeeping stamps cleared.
func (s *ArchiveService) Restore(ctx context.Context, entity, id string) (legacy.Record, error) {
	spec, err := lookupEntity(entity)
	if err != nil {
		return legacy.Record{}, err
	}

	searchIn := spec.active
	if spec.archive != "" {
		searchIn = []string{spec.archive}
	}
	rec, from, err := s.findIn(ctx, searchIn, id)
	if err != nil {
		return legacy.Record{}, err
	}

	if spec.archive == "" && rec.Status != spec.archivedStatus {
		return legacy.Record{}, shared.NewDomainError("INVALID_TRANSITION", "Record is not archived")
	}
	// Records imported from old exports may predate the prior-status stamp.
	prior := rec.GetString(legacy.FieldPriorStatus)
	if prior == "" {
		prior = spec.restoreFallback
	}

	restored := rec.Clone()
	restored.Status = prior
	restored.Unset(legacy.FieldPriorStatus)
	restored.Unset(legacy.FieldArchivedAt)
	restored.Unset(legacy.FieldRejectionReason)

	target := from
	if spec.activeFor != nil {
		target = spec.activeFor(prior)
	}
	if target != from {
		if err := s.store.Remove(ctx, from, id); err != nil {
			return legacy.Record{}, err
		}
	}
	if err := s.store.Upsert(ctx, target, restored); err != nil {
		return legacy.Record{}, err
	}
	for _, mirror := range spec.mirrors {
		if err := s.store.Upsert(ctx, mirror, restored); err != nil {
			return legacy.Record{}, err
		}
	}

	s.logger.Info("record restored",
		zap.String("entity", entity),
		zap.String("record_id", id),
		zap.String("to", target),
	)
	return restored, nil
}

// Purge removes an id from every collection the entity touches. Each
// collection is attempted even when an earlier one fails; the caller
// gets the per-collection outcome so a retry can target what is left.
func (s *ArchiveService) Purge(ctx context.Context, entity, id string) ([]PurgeResult, error) {
	spec, err := lookupEntity(entity)
	if err != nil {
		return nil, err
	}

	collections := append([]string{}, spec.active...)
	if spec.archive != "" {
		collections = append(collections, spec.archive)
	}
	collections = append(collections, spec.mirrors...)

	results := make([]PurgeResult, 0, len(collections))
	failed := 0
	for _, collection := range collections {
		result := PurgeResult{Collection: collection, Removed: true}
		if err := s.store.Remove(ctx, collection, id); err != nil {
			result.Removed = false
			result.Error = err.Error()
			failed++
		}
		results = append(results, result)
	}

	if failed > 0 {
		s.logger.Warn("purge incomplete",
			zap.String("entity", entity),
			zap.String("record_id", id),
			zap.Int("failed_collections", failed),
		)
		return results, shared.NewDomainError("PARTIAL_FAILURE", fmt.Sprintf("Purge failed in %d of %d collections", failed, len(collections)))
	}

	s.logger.Info("record purged",
		zap.String("entity", entity),
		zap.String("record_id", id),
	)
	return results, nil
}
