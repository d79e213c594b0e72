package legacy

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Well-known collection names carried over from the original browser
// storage layout. These must not change while imported data from the
// old application is still in circulation.
const (
	CollectionLeaseRequests    = "leaseRequests"
	CollectionApprovedLeases   = "approvedLeases"
	CollectionRejectedLeases   = "rejectedLeasesArchive"
	CollectionLeases           = "leases"
	CollectionExpenses         = "expenses"
	CollectionInventory        = "inventory"
	CollectionPurchaseOrders   = "purchaseOrders"
	CollectionPaymentHistory   = "paymentHistory"
	CollectionLoanApplications = "loanApplications"
	CollectionSettings         = "palengke_settings"
)

// Bookkeeping field keys stamped onto records by the archive controller.
const (
	FieldArchivedAt      = "archivedAt"
	FieldPriorStatus     = "statusBeforeArchive"
	FieldRejectionReason = "rejectionReason"
)

// Record is one schemaless entry in a legacy collection. The original
// application stored free-form JSON objects; everything beyond the id,
// status and timestamps lives in Fields and round-trips untouched.
type Record struct {
	ID        string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Fields    map[string]any
}

// NewRecord creates a record with a generated id and current timestamps
func NewRecord(prefix, status string) Record {
	now := time.Now()
	return Record{
		ID:        NewRecordID(prefix),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
		Fields:    make(map[string]any),
	}
}

// NewRecordID generates a collision-resistant record id using the
// legacy scheme: prefix, millisecond timestamp, random suffix.
func NewRecordID(prefix string) string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(suffix))
}

// Get returns a free-form field value
func (r Record) Get(key string) (any, bool) {
	v, ok := r.Fields[key]
	return v, ok
}

// GetString returns a free-form field as a string, or "" if absent
func (r Record) GetString(key string) string {
	if v, ok := r.Fields[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Set stores a free-form field value and bumps the update stamp
func (r *Record) Set(key string, value any) {
	if r.Fields == nil {
		r.Fields = make(map[string]any)
	}
	r.Fields[key] = value
	r.UpdatedAt = time.Now()
}

// Unset removes a free-form field and bumps the update stamp
func (r *Record) Unset(key string) {
	delete(r.Fields, key)
	r.UpdatedAt = time.Now()
}

// Clone returns a deep copy of the record
func (r Record) Clone() Record {
	out := r
	out.Fields = make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		out.Fields[k] = v
	}
	return out
}

// recordEnvelope is the flat JSON shape of a legacy record
type recordEnvelope map[string]json.RawMessage

// reserved keys lifted out of the flat object into typed fields
const (
	keyID        = "id"
	keyStatus    = "status"
	keyCreatedAt = "createdAt"
	keyUpdatedAt = "updatedAt"
)

// MarshalJSON flattens the record back into the legacy object shape:
// id, status and timestamps live alongside the free-form fields.
func (r Record) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Fields)+4)
	for k, v := range r.Fields {
		flat[k] = v
	}
	flat[keyID] = r.ID
	if r.Status != "" {
		flat[keyStatus] = r.Status
	}
	if !r.CreatedAt.IsZero() {
		flat[keyCreatedAt] = r.CreatedAt.Format(time.RFC3339Nano)
	}
	if !r.UpdatedAt.IsZero() {
		flat[keyUpdatedAt] = r.UpdatedAt.Format(time.RFC3339Nano)
	}
	return json.Marshal(flat)
}

// UnmarshalJSON parses the flat legacy object shape. Timestamps are
// accepted as RFC3339 strings or as epoch milliseconds, both of which
// occur in exported browser data.
func (r *Record) UnmarshalJSON(data []byte) error {
	var env recordEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	out := Record{Fields: make(map[string]any)}
	for key, raw := range env {
		switch key {
		case keyID:
			if err := json.Unmarshal(raw, &out.ID); err != nil {
				return fmt.Errorf("invalid record id: %w", err)
			}
		case keyStatus:
			if err := json.Unmarshal(raw, &out.Status); err != nil {
				return fmt.Errorf("invalid record status: %w", err)
			}
		case keyCreatedAt:
			t, err := parseLegacyTime(raw)
			if err != nil {
				return fmt.Errorf("invalid createdAt: %w", err)
			}
			out.CreatedAt = t
		case keyUpdatedAt:
			t, err := parseLegacyTime(raw)
			if err != nil {
				return fmt.Errorf("invalid updatedAt: %w", err)
			}
			out.UpdatedAt = t
		default:
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			out.Fields[key] = v
		}
	}

	if out.ID == "" {
		return fmt.Errorf("legacy record is missing an id")
	}

	*r = out
	return nil
}

// parseLegacyTime accepts RFC3339 strings and epoch-millisecond numbers
func parseLegacyTime(raw json.RawMessage) (time.Time, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return time.Parse(time.RFC3339Nano, s)
	}
	var millis int64
	if err := json.Unmarshal(raw, &millis); err == nil {
		return time.UnixMilli(millis), nil
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp encoding: %s", string(raw))
}
