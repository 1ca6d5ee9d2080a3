package pricetrack

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Candidate is a freshly observed listing: the name a live page spells the
// entity with, and the price it shows.
type Candidate struct {
	Name  string
	Price Money
}

// Matcher resolves an observed listing name to the closest catalog entity,
// tolerating renames, typos and truncation.
//
// MinScore is the minimum similarity (0-100) below which a best candidate is
// still treated as absent. Zero keeps the historical behavior of always
// returning the best candidate, however poor.
type Matcher struct {
	MinScore int
}

// Match returns the single candidate whose name scores strictly highest
// against target, or false if candidates is empty or no score reaches
// MinScore.
//
// Ties resolve to the candidate encountered first: the scan is a
// deterministic linear walk and only a strictly greater score displaces the
// current best. Match is pure and performs no I/O.
func (m Matcher) Match(candidates []Candidate, target string) (Candidate, bool) {
	var best Candidate
	bestScore := -1
	for _, c := range candidates {
		score := Ratio(target, c.Name)
		if score > bestScore {
			best = c
			bestScore = score
		}
	}
	if bestScore < 0 || bestScore < m.MinScore {
		return Candidate{}, false
	}
	return best, true
}

// Ratio returns a normalized similarity score between 0 and 100 based on the
// edit distance (insertions, deletions, substitutions) between the two names,
// compared case-insensitively. Identical names score 100.
func Ratio(a, b string) int {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 100
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 100 * (longest - distance) / longest
}
