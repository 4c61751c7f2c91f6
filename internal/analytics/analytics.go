// Package analytics computes derived performance series and statistics
// from a collection of trade records. Every function in this package is
// pure: no I/O, no shared mutable state, and no panics on malformed
// input. Records with invalid timestamps or non-finite P&L are silently
// excluded before any aggregation, so running on a dirty collection is
// identical to running on its valid subset.
package analytics

import (
	"sort"

	"daytrade-tracker/internal/models"
)

// Valid filters a collection down to the trades eligible for analytics.
// The returned slice is freshly allocated; the input is never mutated.
func Valid(trades []models.Trade) []models.Trade {
	valid := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if t.Valid() {
			valid = append(valid, t)
		}
	}
	return valid
}

// sortedByTime returns the valid subset ordered by ascending timestamp.
func sortedByTime(trades []models.Trade) []models.Trade {
	valid := Valid(trades)
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Timestamp.Before(valid[j].Timestamp)
	})
	return valid
}

// clampNonNegative maps negative user-supplied parameters to 0. Callers
// are supposed to sanitize input, but the engine must not misbehave if
// handed a negative capital or contribution.
func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
