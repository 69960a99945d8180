package refine

import (
	"errors"
	"time"

	"github.com/orbital-ops/missionplanner/csp"
	"github.com/orbital-ops/missionplanner/flow"
	"github.com/orbital-ops/missionplanner/mcmcf"
)

// Sentinel errors for the refinement driver.
var (
	// ErrSearchExhausted indicates every flaw index was consumed without
	// reaching a flawless solution (spec §4.7: "search completes
	// unsuccessfully"). It is a normal terminal state, not a failure to
	// surface as fatal (spec §7).
	ErrSearchExhausted = errors.New("refine: flaw indices exhausted without a feasible solution")

	// ErrMaxRestartsExceeded indicates Config.MaxRestarts was reached before
	// either a flawless solution or flaw exhaustion.
	ErrMaxRestartsExceeded = errors.New("refine: maximum restart count exceeded")
)

// Config bounds a refinement run.
type Config struct {
	// SolveDeadline bounds each individual csp.Solve call; zero disables it.
	SolveDeadline time.Duration

	// MaxRestarts bounds the number of restart iterations; zero means
	// unbounded (bounded only by flaw-index exhaustion).
	MaxRestarts int

	// T, L are the space-time grid dimensions every RoleTimeline and flow
	// graph is built over (number of timepoints, number of locations).
	T, L int

	// FlowOptions configures every mcmcf.Check call.
	FlowOptions flow.FlowOptions

	// LocationNames, indexed the same way as ftr.FluentTimeResource's
	// LocationIdx, names every declared location. LocationEdges is the
	// travel-time-estimate adjacency between them. Both are optional: when
	// LocationNames is empty, applyFlaw skips the travel-time sanity check
	// below entirely.
	LocationNames []string
	LocationEdges []timeline.LocationEdge

	// Logf, if non-nil, receives one line per translated flaw, including the
	// dijkstra-estimated travel time between the flaw's two FTR locations —
	// a plain diagnostic, not a gate: an unreachable estimate doesn't stop
	// addDistinct from being posted, since mcmcf's flow check (not this
	// estimate) is the system's authoritative feasibility signal.
	Logf func(format string, args ...interface{})

	// OnRestart, if non-nil, is called once per restart iteration with that
	// iteration's cost and whether it was flawless — the hook package
	// planner uses to append one row to the per-iteration CSV artifact of
	// spec §6 without refine needing to import package session itself.
	OnRestart func(restart int, cost csp.Cost, flawless bool)
}

// Outcome is a completed (or best-effort, on ErrSearchExhausted) refinement
// run.
type Outcome struct {
	Solution csp.Solution
	Cost     csp.Cost
	Restarts int
	Flaws    []mcmcf.Flaw // residual flaws of Solution (empty iff Cost == 0)
}
