// Package ledger stores the history of completed optimization runs.
package ledger

import "github.com/eagowl/fleet-optimizer/core/model"

// Ledger records completed optimization runs and serves recent history.
// Implementations must serialize Record calls so concurrent optimizations
// never lose an entry; reads return consistent snapshots.
type Ledger interface {
	// Record appends a completed run. Callers only record runs that
	// finished fully, so a failed optimization never shows up in history.
	Record(run model.OptimizationRun)
	// Recent returns up to n of the most recent runs in chronological
	// order, oldest first.
	Recent(n int) []model.OptimizationRun
	// Len reports the number of runs currently retained.
	Len() int
	// Count reports the number of runs recorded over the process lifetime,
	// including runs already evicted.
	Count() int
}
