package pricetrack

import "fmt"

// Percent is a percentage computed in floating point, e.g. a price change
// relative to the previous price.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String formats the percentage rounded to two decimals with a trailing "%".
func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
