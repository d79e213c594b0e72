package legacy

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id, status string, createdAt time.Time) Record {
	return Record{
		ID:        id,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
		Fields:    map[string]any{},
	}
}

func TestMerge_LastOccurrenceWins(t *testing.T) {
	now := time.Now()
	pending := []Record{rec("LR-1", "PendingApproval", now)}
	approved := []Record{rec("LR-1", "Approved", now)}

	merged := Merge(pending, approved)

	require.Len(t, merged, 1)
	assert.Equal(t, "Approved", merged[0].Status, "later collection is authoritative")
}

func TestMerge_NoFieldLevelMerge(t *testing.T) {
	now := time.Now()
	a := rec("LR-1", "PendingApproval", now)
	a.Fields["stallId"] = "S-01"
	a.Fields["note"] = "only in a"
	b := rec("LR-1", "Approved", now)
	b.Fields["stallId"] = "S-02"

	merged := Merge([]Record{a}, []Record{b})

	require.Len(t, merged, 1)
	assert.Equal(t, "S-02", merged[0].GetString("stallId"))
	_, hasNote := merged[0].Get("note")
	assert.False(t, hasNote, "losing record's fields must not leak into the winner")
}

func TestMerge_SortedNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	old := rec("LR-old", "Approved", base)
	mid := rec("LR-mid", "Approved", base.Add(24*time.Hour))
	new_ := rec("LR-new", "PendingApproval", base.Add(48*time.Hour))

	merged := Merge([]Record{old, new_}, []Record{mid})

	require.Len(t, merged, 3)
	assert.Equal(t, []string{"LR-new", "LR-mid", "LR-old"}, []string{merged[0].ID, merged[1].ID, merged[2].ID})
}

func TestMerge_Idempotent(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	a := []Record{rec("1", "Pending", base), rec("2", "Pending", base.Add(time.Hour))}
	b := []Record{rec("2", "Approved", base.Add(time.Hour)), rec("3", "Pending", base.Add(2*time.Hour))}
	c := []Record{rec("1", "Rejected", base)}

	flat := Merge(a, b, c)
	nested := Merge(Merge(a, b), c)

	require.Equal(t, len(flat), len(nested))
	for i := range flat {
		assert.Equal(t, flat[i].ID, nested[i].ID)
		assert.Equal(t, flat[i].Status, nested[i].Status)
	}
}

func TestMergeOrdered_CallerSort(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	records := []Record{rec("b", "x", base.Add(time.Hour)), rec("a", "x", base)}

	merged := MergeOrdered(func(x, y Record) bool { return x.ID < y.ID }, records)

	assert.Equal(t, "a", merged[0].ID)
	assert.Equal(t, "b", merged[1].ID)
}

func TestRecord_JSONRoundTrip(t *testing.T) {
	r := NewRecord("EXP", "Pending")
	r.Set("amount", 1500.75)
	r.Set("category", "Utilities")

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var back Record
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r.ID, back.ID)
	assert.Equal(t, "Pending", back.Status)
	assert.Equal(t, "Utilities", back.GetString("category"))
	assert.WithinDuration(t, r.CreatedAt, back.CreatedAt, time.Millisecond)
}

func TestRecord_UnmarshalEpochMillis(t *testing.T) {
	raw := []byte(`{"id":"LR-123","status":"PendingApproval","createdAt":1717200000000,"stallId":"S-07"}`)

	var r Record
	require.NoError(t, json.Unmarshal(raw, &r))
	assert.Equal(t, "LR-123", r.ID)
	assert.Equal(t, int64(1717200000000), r.CreatedAt.UnixMilli())
	assert.Equal(t, "S-07", r.GetString("stallId"))
}

func TestRecord_UnmarshalMissingID(t *testing.T) {
	var r Record
	err := json.Unmarshal([]byte(`{"status":"Pending"}`), &r)
	assert.Error(t, err)
}

func TestNewRecordID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := NewRecordID("LR")
		assert.False(t, seen[id], "generated id collided: %s", id)
		seen[id] = true
	}
}
