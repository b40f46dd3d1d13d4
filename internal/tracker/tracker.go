// Package tracker keeps the longest cycle seen across all graphs of a run.
package tracker

import (
	"strconv"

	"github.com/specialistvlad/routecycle/internal/hop"
)

// Record is one graph's longest cycle.
type Record struct {
	GraphID hop.GraphID
	Length  int
}

// String returns the canonical "claim_id,status_code,length" form.
func (r Record) String() string {
	return r.GraphID.String() + "," + strconv.Itoa(r.Length)
}

// Tracker is a single-owner accumulator for the best Record. It is not safe
// for concurrent use; parallel searches must reduce their results into one
// Tracker from a single goroutine.
type Tracker struct {
	best  Record
	found bool
}

// New returns a Tracker in the "no cycle found" state.
func New() *Tracker {
	return &Tracker{}
}

// Consider offers one graph's search result. The stored record is replaced
// only by a strictly longer cycle, so among equal lengths the first one
// offered wins. It reports whether the record changed.
func (t *Tracker) Consider(id hop.GraphID, found bool, length int) bool {
	if !found || length <= t.best.Length {
		return false
	}
	t.best = Record{GraphID: id, Length: length}
	t.found = true
	return true
}

// Best returns the current best length, or 0 when no cycle has been found.
func (t *Tracker) Best() int {
	return t.best.Length
}

// Final returns the best record and whether any cycle was found.
func (t *Tracker) Final() (Record, bool) {
	return t.best, t.found
}
