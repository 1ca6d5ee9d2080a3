package pricetrack

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PriceObservation is a read-only projection of a ledger record used as input
// to the delta engine.
type PriceObservation struct {
	Name      string
	Timestamp Timestamp
	Quantity  int // 0 for scrape-sourced observations
	Price     Money
}

// TrackedRow is one materialized row of the price tracker: the observation
// plus its deltas against the entity's own history up to that instant.
type TrackedRow struct {
	Name      string
	Timestamp Timestamp
	Quantity  int // 0 means absent
	Price     Money

	// Deltas against the chronologically preceding observation. All absent
	// (HasPrevious false) on the entity's first observation. PercentChange is
	// additionally absent when the previous price is zero.
	PreviousPrice Money
	PriceChange   Money
	PercentChange Percent
	HasPrevious   bool
	HasPercent    bool

	// Causal running statistics: mean over this entity's prices up to and
	// including this observation, never using future data.
	RunningAverage  Money
	DiffFromAverage Money
}

// ComputeDeltas computes one TrackedRow per observation.
//
// Observations are partitioned by entity name and walked in chronological
// order within each partition, carrying a running sum and count. The caller
// re-sorts the merged output for display; display order must never affect the
// carried statistics, so the walk here is always timestamp ascending.
//
// Duplicate or non-monotonic timestamps within a partition are accepted
// as-is: the sort is stable, so equal timestamps keep input order.
func ComputeDeltas(observations []PriceObservation) []TrackedRow {
	partitions := make(map[string][]PriceObservation)
	var names []string
	for _, o := range observations {
		if _, ok := partitions[o.Name]; !ok {
			names = append(names, o.Name)
		}
		partitions[o.Name] = append(partitions[o.Name], o)
	}

	var rows []TrackedRow
	for _, name := range names {
		partition := partitions[name]
		sort.SliceStable(partition, func(i, j int) bool {
			return partition[i].Timestamp.Before(partition[j].Timestamp)
		})

		sum := decimal.Zero
		var previous Money
		for i, o := range partition {
			sum = sum.Add(o.Price.Decimal())
			average := M(sum, o.Price.Currency()).DivCount(int64(i + 1))

			row := TrackedRow{
				Name:            o.Name,
				Timestamp:       o.Timestamp,
				Quantity:        o.Quantity,
				Price:           o.Price,
				RunningAverage:  average,
				DiffFromAverage: o.Price.Sub(average),
			}
			if i > 0 {
				row.HasPrevious = true
				row.PreviousPrice = previous
				row.PriceChange = o.Price.Sub(previous)
				// division by zero must yield an absent percent, not an
				// infinity or a panic
				if !previous.IsZero() {
					row.HasPercent = true
					row.PercentChange = Percent(100 * row.PriceChange.InexactFloat64() / previous.InexactFloat64())
				}
			}
			previous = o.Price
			rows = append(rows, row)
		}
	}
	return rows
}
