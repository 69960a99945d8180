package timeline

import (
	"errors"

	"github.com/orbital-ops/missionplanner/ftr"
)

// Sentinel errors for timeline construction and validation.
var (
	// ErrConflictingPin indicates two FTRs assigned to the same role demand
	// different locations at the same timepoint (a CSP/overlap bug upstream:
	// spec §3's "concurrent FTRs share at most one instance of any role"
	// should have prevented this).
	ErrConflictingPin = errors.New("timeline: conflicting location pin at timepoint")

	// ErrFork indicates a cell ended up with more than one outgoing edge,
	// violating the IsPath propagator's invariant (spec §4.5).
	ErrFork = errors.New("timeline: cell has more than one outgoing edge")

	// ErrNotAPath indicates the timeline's edges don't chain into a single
	// path from timepoint 0 through timepoint T-1.
	ErrNotAPath = errors.New("timeline: edges do not form a single path")
)

// Cell is a space-time node (location, timepoint).
type Cell struct {
	T, L int
}

// Pin asserts that role Role must occupy Location at every timepoint in
// [FromT, ToT] (inclusive), derived from one FTR assignment.
type Pin struct {
	Role   ftr.Role
	FromT  int
	ToT    int
	FTRIdx int
	Location int
}

// RoleTimeline is the realized path for one role: Edges[t] is the location
// the role occupies at timepoint t; Edges has length T (one location per
// timepoint, including the terminal one, which has no outgoing edge).
type RoleTimeline struct {
	Role       ftr.Role
	T, L       int
	Locations  []int // Locations[t] = location occupied at timepoint t
}

// Stop is a contiguous run of timepoints a role spends at one location,
// derived from a RoleTimeline — the "ordered sequence of (location,
// interval) stops" of spec §4.6.
type Stop struct {
	Location int
	FromT    int
	ToT      int
}
