package okapi

import (
	"math"
	"sort"
)

// Rank returns a copy of records sorted by score, highest first.
// Equal scores keep their input order. NaN scores sort last.
func Rank(records []ScoredRecord) []ScoredRecord {
	ranked := make([]ScoredRecord, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Score, ranked[j].Score
		if math.IsNaN(b) {
			return !math.IsNaN(a)
		}
		return a > b
	})
	return ranked
}
