package session

// Stats mirrors the original's Logger.cpp per-session incrementing counters
// (node/fail/restart counts), reimplemented as an explicit, non-global
// struct incremented by the CSP search and the refinement driver and
// flushed to the per-iteration CSV artifact (spec §6) on every restart.
type Stats struct {
	Propagate       int
	Fail            int
	Node            int
	Depth           int
	Restart         int
	NoGood          int
	SolutionFound   bool
	SolutionStopped bool
}

// IncrPropagate counts one propagation pass (a QTCN/STN fixpoint iteration
// or a CSP constraint check).
func (s *Stats) IncrPropagate() { s.Propagate++ }

// IncrFail counts one search-node failure (a branch that violated a posted
// constraint).
func (s *Stats) IncrFail() { s.Fail++ }

// IncrNode counts one search-node visit.
func (s *Stats) IncrNode() { s.Node++ }

// SetDepth records the current search depth (not cumulative, unlike the
// other counters — it's a snapshot of where the search currently is).
func (s *Stats) SetDepth(d int) { s.Depth = d }

// IncrRestart counts one restart/refinement iteration (package refine).
func (s *Stats) IncrRestart() { s.Restart++ }

// IncrNoGood counts one no-good (DistinctConstraint) posted across restarts.
func (s *Stats) IncrNoGood() { s.NoGood++ }

// MarkSolutionFound records that this iteration produced a solution.
func (s *Stats) MarkSolutionFound() { s.SolutionFound = true }

// MarkSolutionStopped records that this iteration stopped early (deadline or
// Stop predicate) without certainly exhausting the search space.
func (s *Stats) MarkSolutionStopped() { s.SolutionStopped = true }

// Snapshot returns a copy of the current counters — the row csvHeader's
// columns are derived from, suitable for appending to the per-iteration CSV
// artifact without aliasing the live Stats a caller keeps incrementing.
func (s *Stats) Snapshot() Stats { return *s }
