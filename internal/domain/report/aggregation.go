package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/palengke/backend/internal/domain/legacy"
	"github.com/palengke/backend/internal/domain/shared"
)

// Aggregate is one bucket of a summary: how many records fell into the
// bucket and the sum of the chosen numeric field across them.
type Aggregate struct {
	Count int             `json:"count"`
	Sum   decimal.Decimal `json:"sum"`
}

// Query describes a summary over a record collection. GroupBy names the
// field whose values become bucket keys; SumField names the numeric
// field to total (empty means count-only). Filters are applied before
// grouping.
type Query struct {
	GroupBy  string
	SumField string
	Filters  []Filter
}

// Filter is a predicate over a record
type Filter func(legacy.Record) bool

// StatusIs keeps records with the given status
func StatusIs(status string) Filter {
	return func(r legacy.Record) bool {
		return r.Status == status
	}
}

// CreatedBetween keeps records created within the range, inclusive on
// both ends.
func CreatedBetween(from, to time.Time) Filter {
	return func(r legacy.Record) bool {
		return !r.CreatedAt.Before(from) && !r.CreatedAt.After(to)
	}
}

// FieldEquals keeps records whose field holds the given string value
func FieldEquals(key, value string) Filter {
	return func(r legacy.Record) bool {
		return r.GetString(key) == value
	}
}

// Summarize buckets the records by the GroupBy field and totals the
// SumField within each bucket. It never mutates its input. Records
// missing the GroupBy field fall into the empty-string bucket; values
// of the SumField that are not numeric count toward Count but add
// nothing to Sum.
func Summarize(records []legacy.Record, query Query) (map[string]Aggregate, error) {
	if query.GroupBy == "" {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Summary requires a group-by field")
	}

	result := make(map[string]Aggregate)
	for _, record := range records {
		if !matchesAll(record, query.Filters) {
			continue
		}

		key := groupKey(record, query.GroupBy)
		bucket := result[key]
		bucket.Count++
		if query.SumField != "" {
			if value, ok := numericField(record, query.SumField); ok {
				bucket.Sum = bucket.Sum.Add(value)
			}
		}
		result[key] = bucket
	}

	return result, nil
}

// SummarizeByStatus is the common status-breakdown summary
func SummarizeByStatus(records []legacy.Record, sumField string, filters ...Filter) map[string]Aggregate {
	result, _ := Summarize(records, Query{GroupBy: "status", SumField: sumField, Filters: filters})
	return result
}

// Total collapses the records into a single aggregate
func Total(records []legacy.Record, sumField string, filters ...Filter) Aggregate {
	total := Aggregate{Sum: decimal.Zero}
	for _, record := range records {
		if !matchesAll(record, filters) {
			continue
		}
		total.Count++
		if sumField != "" {
			if value, ok := numericField(record, sumField); ok {
				total.Sum = total.Sum.Add(value)
			}
		}
	}
	return total
}

// ExpiringWithin returns the records whose end-date field falls after
// now and no later than now+window. Records already past their end
// date are excluded.
func ExpiringWithin(records []legacy.Record, endField string, now time.Time, window time.Duration) []legacy.Record {
	matched := make([]legacy.Record, 0)
	for _, record := range records {
		end, ok := timeField(record, endField)
		if !ok {
			continue
		}
		remaining := end.Sub(now)
		if remaining > 0 && remaining <= window {
			matched = append(matched, record)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		a, _ := timeField(matched[i], endField)
		b, _ := timeField(matched[j], endField)
		return a.Before(b)
	})
	return matched
}

func matchesAll(record legacy.Record, filters []Filter) bool {
	for _, filter := range filters {
		if !filter(record) {
			return false
		}
	}
	return true
}

func groupKey(record legacy.Record, field string) string {
	if field == "status" {
		return record.Status
	}
	return record.GetString(field)
}

func numericField(record legacy.Record, field string) (decimal.Decimal, bool) {
	raw, ok := record.Get(field)
	if !ok {
		return decimal.Zero, false
	}
	switch v := raw.(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case decimal.Decimal:
		return v, true
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, false
		}
		return parsed, true
	default:
		return decimal.Zero, false
	}
}

func timeField(record legacy.Record, field string) (time.Time, bool) {
	raw, ok := record.Get(field)
	if !ok {
		return time.Time{}, false
	}
	switch v := raw.(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	case float64:
		return time.UnixMilli(int64(v)).UTC(), true
	default:
		return time.Time{}, false
	}
}
