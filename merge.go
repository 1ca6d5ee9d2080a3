package pricetrack

import (
	"slices"
	"strings"
)

// Merge combines the previously persisted table with freshly computed rows.
//
// Rows of previous whose entity is in touched are discarded (their recompute
// is in fresh); all other rows are kept unchanged, so an entity is either
// fully replaced or fully preserved, never partially updated. The result is
// sorted for display.
func Merge(previous, fresh []TrackedRow, touched map[string]bool) []TrackedRow {
	merged := make([]TrackedRow, 0, len(previous)+len(fresh))
	for _, row := range previous {
		if touched[row.Name] {
			continue
		}
		merged = append(merged, row)
	}
	merged = append(merged, fresh...)
	SortTracked(merged)
	return merged
}

// SortTracked sorts rows for display: entity name ascending, then timestamp
// descending within an entity. The delta computation itself always walks
// chronologically ascending; this order is presentation only.
func SortTracked(rows []TrackedRow) {
	slices.SortStableFunc(rows, func(a, b TrackedRow) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return b.Timestamp.Compare(a.Timestamp)
	})
}
