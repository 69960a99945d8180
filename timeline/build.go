package timeline

import (
	"fmt"
	"sort"

	"github.com/orbital-ops/missionplanner/ftr"
	"github.com/orbital-ops/missionplanner/gridgraph"
)

// RequirementSpan is the (timepoint range, location) a requirement occupies,
// resolved from its FTR's interval via the mission's topological timepoint
// order. Index i corresponds to RoleUsage[i] in a csp.Solution.
type RequirementSpan struct {
	FromT, ToT int
	Location   int
}

// ActiveRoles returns role indices used by two or more requirements (spec
// §4.5's definition of "active role" — one whose timeline matters, since a
// role used by at most one requirement never needs to move).
func ActiveRoles(roleUsage [][]int) []int {
	counts := make(map[int]int)
	for _, roles := range roleUsage {
		for _, k := range roles {
			counts[k]++
		}
	}

	var out []int
	for k, n := range counts {
		if n >= 2 {
			out = append(out, k)
		}
	}
	sort.Ints(out)

	return out
}

// BuildPins derives, per active role, the ordered list of Pins implied by a
// CSP solution's RoleUsage against the per-requirement timepoint spans.
func BuildPins(roleUsage [][]int, spans []RequirementSpan, roles []ftr.RoleInfo) map[int][]Pin {
	pins := make(map[int][]Pin)
	for i, ks := range roleUsage {
		for _, k := range ks {
			pins[k] = append(pins[k], Pin{
				Role:     roles[k].Role,
				FromT:    spans[i].FromT,
				ToT:      spans[i].ToT,
				FTRIdx:   i,
				Location: spans[i].Location,
			})
		}
	}

	return pins
}

// Build realizes a single-path RoleTimeline over T timepoints and L
// locations from role's pins, filling the travel between (and around) them
// by holding at the nearest pinned location and transitioning in exactly one
// step at a pin boundary. Returns ErrConflictingPin if two pins disagree on
// the role's location at any shared timepoint.
func Build(role ftr.Role, t, l int, pins []Pin) (*RoleTimeline, error) {
	sorted := append([]Pin(nil), pins...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].FromT < sorted[j].FromT })

	locs := make([]int, t)
	known := make([]bool, t)
	for _, p := range sorted {
		for at := p.FromT; at <= p.ToT; at++ {
			if known[at] && locs[at] != p.Location {
				return nil, fmt.Errorf("timeline: Build(role=%s, t=%d): %w", role.InstanceID, at, ErrConflictingPin)
			}
			locs[at] = p.Location
			known[at] = true
		}
	}

	fillGaps(locs, known)

	return &RoleTimeline{Role: role, T: t, L: l, Locations: locs}, nil
}

// fillGaps holds each unassigned timepoint at the nearest known location:
// forward-filled from the first pin, backward-filled before it, so the
// result has exactly one location per timepoint and transitions only at
// pin boundaries.
func fillGaps(locs []int, known []bool) {
	firstKnown := -1
	for t, ok := range known {
		if ok {
			firstKnown = t

			break
		}
	}
	if firstKnown < 0 {
		return // no pins at all; caller shouldn't Build an inactive role, but leave zero-valued.
	}
	for t := firstKnown - 1; t >= 0; t-- {
		locs[t] = locs[t+1]
	}
	for t := firstKnown + 1; t < len(locs); t++ {
		if !known[t] {
			locs[t] = locs[t-1]
		}
	}
}

// Validate checks the built timeline against the invariants of spec §4.5's
// IsPath propagator: every pin's timepoints are honored, the path has
// exactly one location per timepoint, and the occupied cells form a single
// connected run with no forks — the latter checked structurally via
// gridgraph's BFS-based connected-component analysis (validatePathStructure)
// rather than by re-walking the timeline by hand.
func (rt *RoleTimeline) Validate(pins []Pin) error {
	if len(rt.Locations) != rt.T {
		return fmt.Errorf("timeline: Validate: %w", ErrNotAPath)
	}
	for _, p := range pins {
		for at := p.FromT; at <= p.ToT; at++ {
			if at < 0 || at >= rt.T {
				return fmt.Errorf("timeline: Validate(role=%s): %w", rt.Role.InstanceID, ErrNotAPath)
			}
			if rt.Locations[at] != p.Location {
				return fmt.Errorf("timeline: Validate(role=%s, t=%d): %w", rt.Role.InstanceID, at, ErrConflictingPin)
			}
		}
	}

	return rt.validatePathStructure()
}

// validatePathStructure lays the timeline's per-timepoint locations out as a
// single-row grid (one cell per timepoint, cell value = location+1 so every
// cell clears gridgraph's land threshold) and runs gridgraph.ConnectedComponents
// over it. A single path visits every cell exactly once and only ever holds
// or advances, so the land cells must partition into exactly as many runs as
// Stops() reports, covering every timepoint; any other shape — a timepoint
// missing from every run, or a run split where Stops() sees one contiguous
// stay — means the timeline isn't the single fork-free path IsPath requires.
func (rt *RoleTimeline) validatePathStructure() error {
	if rt.T == 0 {
		return nil
	}

	row := make([]int, rt.T)
	for t, loc := range rt.Locations {
		row[t] = loc + 1
	}
	gg, err := gridgraph.NewGridGraph([][]int{row}, gridgraph.GridOptions{LandThreshold: 1, Conn: gridgraph.Conn4})
	if err != nil {
		return fmt.Errorf("timeline: Validate(role=%s): %w", rt.Role.InstanceID, err)
	}

	cells, runs := 0, 0
	for _, components := range gg.ConnectedComponents() {
		for _, run := range components {
			cells += len(run)
			runs++
		}
	}
	if cells != rt.T {
		return fmt.Errorf("timeline: Validate(role=%s): %w", rt.Role.InstanceID, ErrNotAPath)
	}
	if runs != len(rt.Stops()) {
		return fmt.Errorf("timeline: Validate(role=%s): %w", rt.Role.InstanceID, ErrFork)
	}

	return nil
}

// Stops collapses the timeline's per-timepoint locations into contiguous
// runs — the "ordered sequence of (location, interval) stops" spec §4.6
// hands to the flow-graph builder.
func (rt *RoleTimeline) Stops() []Stop {
	if rt.T == 0 {
		return nil
	}

	var out []Stop
	cur := Stop{Location: rt.Locations[0], FromT: 0}
	for t := 1; t < rt.T; t++ {
		if rt.Locations[t] != cur.Location {
			cur.ToT = t - 1
			out = append(out, cur)
			cur = Stop{Location: rt.Locations[t], FromT: t}
		}
	}
	cur.ToT = rt.T - 1
	out = append(out, cur)

	return out
}

// Edge returns the (location, location') transition at timepoint t -> t+1,
// and false if t is the terminal timepoint (no outgoing edge).
func (rt *RoleTimeline) Edge(t int) (from, to int, ok bool) {
	if t < 0 || t >= rt.T-1 {
		return 0, 0, false
	}

	return rt.Locations[t], rt.Locations[t+1], true
}
