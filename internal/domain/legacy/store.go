package legacy

import "context"

// KeyedStore is the persistent mapping from collection name to record
// set that backs the legacy compatibility layer.
//
// Load fails soft: an absent or unparsable collection yields an empty
// slice, never an error. Save atomically replaces the whole collection
// and is durable once it returns.
type KeyedStore interface {
	// Load returns every record in the named collection
	Load(ctx context.Context, collection string) ([]Record, error)
	// Save atomically replaces the named collection with the given records
	Save(ctx context.Context, collection string, records []Record) error
	// Upsert inserts or replaces a single record by id
	Upsert(ctx context.Context, collection string, record Record) error
	// Remove deletes a record by id; removing an absent id is not an error
	Remove(ctx context.Context, collection string, id string) error
}

// FindByID returns the record with the given id from a loaded collection
func FindByID(records []Record, id string) (Record, bool) {
	for _, rec := range records {
		if rec.ID == id {
			return rec, true
		}
	}
	return Record{}, false
}
