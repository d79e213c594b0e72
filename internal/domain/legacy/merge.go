package legacy

import "sort"

// Merge combines several collections holding records of one logical
// entity into a single deduplicated view. Records are deduplicated by
// id with the LAST occurrence in input order winning, so callers must
// pass collections from least to most authoritative (canonical last).
// The winning record is taken whole; fields are never merged.
//
// The result is ordered by CreatedAt descending (newest first), with
// id as a stable tiebreaker. Merge is idempotent: merging an already
// merged view with further collections yields the same result as one
// flat merge.
func Merge(collections ...[]Record) []Record {
	return MergeOrdered(byCreatedAtDesc, collections...)
}

// MergeOrdered is Merge with a caller-supplied sort order.
func MergeOrdered(less func(a, b Record) bool, collections ...[]Record) []Record {
	byID := make(map[string]Record)
	order := make([]string, 0)

	for _, collection := range collections {
		for _, rec := range collection {
			if rec.ID == "" {
				continue
			}
			if _, seen := byID[rec.ID]; !seen {
				order = append(order, rec.ID)
			}
			byID[rec.ID] = rec
		}
	}

	merged := make([]Record, 0, len(order))
	for _, id := range order {
		merged = append(merged, byID[id])
	}

	if less != nil {
		sort.SliceStable(merged, func(i, j int) bool {
			return less(merged[i], merged[j])
		})
	}

	return merged
}

// byCreatedAtDesc orders newest first, id ascending on equal stamps
func byCreatedAtDesc(a, b Record) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}
