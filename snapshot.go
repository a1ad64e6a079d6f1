package gorolling

import (
	"fmt"
	"strings"
)

// Snapshot copies the live chain, smallest value first
func (v *PriorityList) Snapshot() []PriorityEntry {
	return ToList[PriorityEntry](v.GetIterator())
}

// SnapshotWhere copies the live entries the callback accepts, in chain
// order
func (v *PriorityList) SnapshotWhere(callback FilterCallback[PriorityEntry]) []PriorityEntry {
	return ToList[PriorityEntry](NewFilterIterator(v.GetIterator(), callback))
}

// FormatSnapshot renders entries one line each in chain order. Intended
// for tests and troubleshooting, the hot path never formats anything.
func FormatSnapshot(entries []PriorityEntry) string {
	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "[%d] val: %f, death: %d\n", i, e.Value, e.Death)
	}
	return b.String()
}
