package pricetrack

import (
	"reflect"
	"testing"
)

func trackedRow(name, ts string, price float64) TrackedRow {
	return TrackedRow{
		Name:            name,
		Timestamp:       MustParseTimestamp(ts),
		Quantity:        1,
		Price:           M(price, "USD"),
		RunningAverage:  M(price, "USD"),
		DiffFromAverage: M(0, "USD"),
	}
}

func TestMerge_PreservesUntouchedEntities(t *testing.T) {
	previous := []TrackedRow{
		trackedRow("A", "2025-01-02 10:00:00", 12.00),
		trackedRow("A", "2025-01-01 10:00:00", 10.00),
		trackedRow("B", "2025-01-01 09:00:00", 50.00),
	}
	fresh := []TrackedRow{
		trackedRow("A", "2025-01-01 10:00:00", 10.00),
		trackedRow("A", "2025-01-02 10:00:00", 12.00),
		trackedRow("A", "2025-01-03 10:00:00", 14.00),
	}

	merged := Merge(previous, fresh, map[string]bool{"A": true})

	var gotB []TrackedRow
	countA := 0
	for _, row := range merged {
		switch row.Name {
		case "A":
			countA++
		case "B":
			gotB = append(gotB, row)
		}
	}
	if countA != 3 {
		t.Errorf("touched entity A has %d rows, want the 3 recomputed ones", countA)
	}
	if len(gotB) != 1 {
		t.Fatalf("untouched entity B has %d rows, want 1", len(gotB))
	}
	// B's row must survive unchanged, down to its encoded form
	wantLine := encodeTrackedRow(previous[2])
	gotLine := encodeTrackedRow(gotB[0])
	if !reflect.DeepEqual(gotLine, wantLine) {
		t.Errorf("untouched row changed: got %v, want %v", gotLine, wantLine)
	}
}

func TestMerge_SortOrderInvariant(t *testing.T) {
	previous := []TrackedRow{
		trackedRow("B", "2025-01-01 09:00:00", 50.00),
		trackedRow("C", "2025-01-05 09:00:00", 5.00),
	}
	fresh := []TrackedRow{
		trackedRow("A", "2025-01-01 10:00:00", 10.00),
		trackedRow("A", "2025-01-03 10:00:00", 14.00),
	}

	merged := Merge(previous, fresh, map[string]bool{"A": true})

	for i := 1; i < len(merged); i++ {
		prev, curr := merged[i-1], merged[i]
		if prev.Name > curr.Name {
			t.Fatalf("rows %d/%d out of entity order: %q > %q", i-1, i, prev.Name, curr.Name)
		}
		if prev.Name == curr.Name && prev.Timestamp.Before(curr.Timestamp) {
			t.Fatalf("rows %d/%d: timestamps must descend within an entity", i-1, i)
		}
	}
	if merged[0].Name != "A" || !merged[0].Timestamp.Equal(MustParseTimestamp("2025-01-03 10:00:00")) {
		t.Errorf("first row should be A's most recent observation, got %q %s", merged[0].Name, merged[0].Timestamp)
	}
}

func TestMerge_NoTouchedEntities(t *testing.T) {
	previous := []TrackedRow{
		trackedRow("A", "2025-01-01 10:00:00", 10.00),
	}
	merged := Merge(previous, nil, map[string]bool{})
	if len(merged) != 1 {
		t.Fatalf("got %d rows, want 1", len(merged))
	}
}
