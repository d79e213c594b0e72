package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palengke/backend/internal/domain/legacy"
)

func recordWithAmount(status string, amount float64) legacy.Record {
	r := legacy.NewRecord("exp_", status)
	r.Set("amount", amount)
	return r
}

func TestSummarizeByStatusWithSums(t *testing.T) {
	records := []legacy.Record{
		recordWithAmount("Pending", 100),
		recordWithAmount("Approved", 200),
		recordWithAmount("Approved", 300),
	}

	result := SummarizeByStatus(records, "amount")

	require.Len(t, result, 2)
	assert.Equal(t, 1, result["Pending"].Count)
	assert.True(t, result["Pending"].Sum.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 2, result["Approved"].Count)
	assert.True(t, result["Approved"].Sum.Equal(decimal.NewFromInt(500)))
}

func TestSummarizeRequiresGroupBy(t *testing.T) {
	_, err := Summarize(nil, Query{SumField: "amount"})
	assert.Error(t, err)
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	records := []legacy.Record{
		recordWithAmount("Pending", 100),
		recordWithAmount("Approved", 200),
	}
	before := make([]legacy.Record, len(records))
	for i, r := range records {
		before[i] = r.Clone()
	}

	_, err := Summarize(records, Query{GroupBy: "status", SumField: "amount"})
	require.NoError(t, err)

	for i := range records {
		assert.Equal(t, before[i].Status, records[i].Status)
		assert.Equal(t, before[i].Fields, records[i].Fields)
	}
}

func TestSummarizeWithFilters(t *testing.T) {
	old := recordWithAmount("Approved", 100)
	old.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := recordWithAmount("Approved", 200)
	recent.CreatedAt = time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)

	result, err := Summarize([]legacy.Record{old, recent}, Query{
		GroupBy:  "status",
		SumField: "amount",
		Filters:  []Filter{CreatedBetween(from, to)},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result["Approved"].Count)
	assert.True(t, result["Approved"].Sum.Equal(decimal.NewFromInt(200)))
}

func TestSummarizeInclusiveDateBounds(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	atFrom := recordWithAmount("Paid", 50)
	atFrom.CreatedAt = from
	atTo := recordWithAmount("Paid", 70)
	atTo.CreatedAt = to
	outside := recordWithAmount("Paid", 999)
	outside.CreatedAt = to.Add(time.Second)

	total := Total([]legacy.Record{atFrom, atTo, outside}, "amount", CreatedBetween(from, to))
	assert.Equal(t, 2, total.Count)
	assert.True(t, total.Sum.Equal(decimal.NewFromInt(120)))
}

func TestSummarizeNonNumericSumField(t *testing.T) {
	bad := legacy.NewRecord("exp_", "Approved")
	bad.Set("amount", "not-a-number")
	good := recordWithAmount("Approved", 80)

	result := SummarizeByStatus([]legacy.Record{bad, good}, "amount")

	// The malformed record still counts, it just adds nothing to the sum.
	assert.Equal(t, 2, result["Approved"].Count)
	assert.True(t, result["Approved"].Sum.Equal(decimal.NewFromInt(80)))
}

func TestExpiringWithin(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	window := 30 * 24 * time.Hour

	ending := legacy.NewRecord("lease_", "Active")
	ending.Set("leaseEnd", now.AddDate(0, 0, 14).Format(time.RFC3339))
	endingLater := legacy.NewRecord("lease_", "Active")
	endingLater.Set("leaseEnd", now.AddDate(0, 0, 29).Format(time.RFC3339))
	farOff := legacy.NewRecord("lease_", "Active")
	farOff.Set("leaseEnd", now.AddDate(0, 6, 0).Format(time.RFC3339))
	alreadyOver := legacy.NewRecord("lease_", "Active")
	alreadyOver.Set("leaseEnd", now.AddDate(0, 0, -1).Format(time.RFC3339))

	matched := ExpiringWithin([]legacy.Record{farOff, endingLater, ending, alreadyOver}, "leaseEnd", now, window)

	require.Len(t, matched, 2)
	// Soonest ending first.
	assert.Equal(t, ending.ID, matched[0].ID)
	assert.Equal(t, endingLater.ID, matched[1].ID)
}

func TestExpiringWithinBoundary(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	window := 30 * 24 * time.Hour

	exactlyAtWindow := legacy.NewRecord("lease_", "Active")
	exactlyAtWindow.Set("leaseEnd", now.Add(window).Format(time.RFC3339))
	exactlyNow := legacy.NewRecord("lease_", "Active")
	exactlyNow.Set("leaseEnd", now.Format(time.RFC3339))

	matched := ExpiringWithin([]legacy.Record{exactlyAtWindow, exactlyNow}, "leaseEnd", now, window)

	// The window is inclusive at the far end, exclusive at now.
	require.Len(t, matched, 1)
	assert.Equal(t, exactlyAtWindow.ID, matched[0].ID)
}
