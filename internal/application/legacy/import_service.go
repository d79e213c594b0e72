package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/palengke/backend/internal/domain/legacy"
	"github.com/palengke/backend/internal/domain/shared"
)

// knownCollections is the closed set of collection names an export may
// carry. Anything else in an upload is a sign of the wrong file.
var knownCollections = map[string]bool{
	legacy.CollectionLeaseRequests:    true,
	legacy.CollectionApprovedLeases:   true,
	legacy.CollectionRejectedLeases:   true,
	legacy.CollectionLeases:           true,
	legacy.CollectionExpenses:         true,
	legacy.CollectionInventory:        true,
	legacy.CollectionPurchaseOrders:   true,
	legacy.CollectionPaymentHistory:   true,
	legacy.CollectionLoanApplications: true,
	legacy.CollectionSettings:         true,
}

// CollectionImportResult reports what an import did to one collection
type CollectionImportResult struct {
	Collection string `json:"collection"`
	Imported   int    `json:"imported"`
	Existing   int    `json:"existing"`
	Total      int    `json:"total"`
}

// ImportResult is the full outcome of one import run
type ImportResult struct {
	Collections []CollectionImportResult `json:"collections"`
}

// ImportService loads a JSON export produced by the original
// application (or by ExportService) back into the legacy store.
type ImportService struct {
	store  legacy.KeyedStore
	logger *zap.Logger
}

// NewImportService creates a new ImportService
func NewImportService(store legacy.KeyedStore, logger *zap.Logger) *ImportService {
	return &ImportService{store: store, logger: logger}
}

// Import merges the uploaded export into the store. Records already
// present keep their stored version; only unseen ids are added. The
// export is a single JSON object keyed by collection name.
func (s *ImportService) Import(ctx context.Context, data []byte) (*ImportResult, error) {
	var export map[string][]legacy.Record
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", fmt.Sprintf("Invalid export file: %v", err))
	}

	for name := range export {
		if !knownCollections[name] {
			return nil, shared.NewDomainError("VALIDATION_ERROR", fmt.Sprintf("Unknown collection %q in export file", name))
		}
	}

	result := &ImportResult{}
	names := make([]string, 0, len(export))
	for name := range export {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		imported := export[name]
		existing, err := s.store.Load(ctx, name)
		if err != nil {
			return nil, err
		}

		// Imported first, existing last: stored records win on conflict.
		merged := legacy.Merge(imported, existing)
		if err := s.store.Save(ctx, name, merged); err != nil {
			return nil, err
		}

		result.Collections = append(result.Collections, CollectionImportResult{
			Collection: name,
			Imported:   len(imported),
			Existing:   len(existing),
			Total:      len(merged),
		})
		s.logger.Info("legacy collection imported",
			zap.String("collection", name),
			zap.Int("imported", len(imported)),
			zap.Int("total", len(merged)),
		)
	}

	return result, nil
}

// Export serializes every known collection into the flat JSON object
// shape the original application produced, so a round trip through
// Import is lossless.
func (s *ImportService) Export(ctx context.Context) ([]byte, error) {
	export := make(map[string][]legacy.Record, len(knownCollections))
	for name := range knownCollections {
		records, err := s.store.Load(ctx, name)
		if err != nil {
			return nil, err
		}
		export[name] = records
	}
	return json.MarshalIndent(export, "", "  ")
}
