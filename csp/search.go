package csp

import (
	"sort"
	"time"

	"github.com/orbital-ops/missionplanner/ftr"
)

// Solution is a satisfying assignment of the TransportNetwork's two decision
// matrices, indexed parallel to TransportNetwork.Requirements: ModelUsage[i]
// is the coalition chosen for requirement i, RoleUsage[i] the concrete role
// indices realizing it.
type Solution struct {
	ModelUsage []ftr.ModelPool
	RoleUsage  [][]int
}

// searchEngine mirrors tsp.bbEngine's shape: a dedicated struct
// carrying configuration, a sparse deadline counter, and mutate/undo search
// state, rather than closures capturing loop variables.
type searchEngine struct {
	net *TransportNetwork

	useDeadline bool
	deadline    time.Time
	steps       int
	expired     bool

	chosen []ftr.ModelPool

	solution Solution
}

// deadlineCheck performs a rare deadline test (every 4096 node events),
// matching tsp.bbEngine's steps&4095 cadence.
func (e *searchEngine) deadlineCheck() bool {
	if e.expired {
		return true
	}
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.expired = true
	}

	return e.expired
}

// Solve runs Phase 1 (model-coalition assignment) and, for every Phase 1
// leaf, Phase 2 (concrete role assignment), backtracking Phase 1 whenever
// Phase 2 cannot realize the chosen coalitions. A zero deadline disables
// the soft time budget.
func Solve(net *TransportNetwork, deadline time.Duration) (Solution, error) {
	e := &searchEngine{net: net, chosen: make([]ftr.ModelPool, len(net.Requirements))}
	if deadline > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(deadline)
	}

	ok, err := e.phase1(0)
	if err != nil {
		return Solution{}, err
	}
	if e.expired {
		return Solution{}, ErrDeadlineExceeded
	}
	if !ok {
		return Solution{}, ErrNoFeasibleAssignment
	}

	return e.solution, nil
}

// phase1 assigns a model coalition to requirement i from its precomputed
// domain, pruning candidates that would exceed the pool's capacity among
// requirements overlapping i (see fitsCapacity), then recurses. Reaching
// the end of the requirement list hands off to Phase 2; a Phase 2 failure
// backtracks into further Phase 1 candidates rather than giving up.
func (e *searchEngine) phase1(i int) (bool, error) {
	if e.deadlineCheck() {
		return false, nil
	}
	if i == len(e.net.Requirements) {
		roleUsage, ok := e.phase2()
		if !ok {
			return false, nil
		}
		e.solution.ModelUsage = cloneModelUsage(e.chosen)
		e.solution.RoleUsage = roleUsage

		return true, nil
	}

	req := e.net.Requirements[i]
	for _, candidate := range req.Domain {
		if !e.fitsCapacity(i, candidate) {
			continue
		}
		e.chosen[i] = candidate
		ok, err := e.phase1(i + 1)
		if err != nil || ok {
			return ok, err
		}
	}
	e.chosen[i] = nil

	return false, nil
}

// fitsCapacity enforces spec §4.4's concurrent-supply constraint: for every
// model, the sum of usage across requirement i and every already-assigned
// requirement overlapping it must not exceed the pool. This checks each
// requirement's overlap neighborhood rather than enumerating maximal
// overlap cliques (see DESIGN.md); mcmcf's exact flow check is the system's
// backstop for anything this approximation misses.
func (e *searchEngine) fitsCapacity(i int, candidate ftr.ModelPool) bool {
	for m, n := range candidate {
		if n == 0 {
			continue
		}
		if _, ok := e.net.Pool[m]; !ok {
			return false
		}
	}

	for m, cap := range e.net.Pool {
		sum := candidate[m]
		for j := 0; j < i; j++ {
			if e.net.Overlaps(i, j) {
				sum += e.chosen[j][m]
			}
		}
		if sum > cap {
			return false
		}
	}

	return true
}

// phase2 assigns concrete role indices realizing the coalitions Phase 1
// chose, honoring unary role usage: a role may serve at most one
// requirement among any set of mutually overlapping requirements.
func (e *searchEngine) phase2() ([][]int, bool) {
	assigned := make([][]int, len(e.net.Requirements))
	roleHolders := make(map[int][]int)
	if e.assignRoles(0, assigned, roleHolders) {
		return assigned, true
	}

	return nil, false
}

func (e *searchEngine) assignRoles(i int, assigned [][]int, roleHolders map[int][]int) bool {
	if e.deadlineCheck() {
		return false
	}
	if i == len(e.net.Requirements) {
		return e.satisfiesDistincts(assigned)
	}

	slots := roleSlots(e.chosen[i])

	return e.fillRoles(i, slots, 0, nil, assigned, roleHolders)
}

// fillRoles picks, one slot at a time, the lowest-index free role of the
// required model (symmetry breaking per spec §4.4 constraint 7), and
// backtracks on failure.
func (e *searchEngine) fillRoles(i int, slots []string, p int, picked []int, assigned [][]int, roleHolders map[int][]int) bool {
	if p == len(slots) {
		assigned[i] = append([]int(nil), picked...)
		for _, k := range picked {
			roleHolders[k] = append(roleHolders[k], i)
		}
		if e.assignRoles(i+1, assigned, roleHolders) {
			return true
		}
		for _, k := range picked {
			roleHolders[k] = roleHolders[k][:len(roleHolders[k])-1]
		}
		assigned[i] = nil

		return false
	}

	model := slots[p]
	for _, k := range e.net.rolesOfModel(model) {
		if containsInt(picked, k) || e.roleBusy(k, i, roleHolders) {
			continue
		}
		if e.fillRoles(i, slots, p+1, append(picked, k), assigned, roleHolders) {
			return true
		}
	}

	return false
}

// satisfiesDistincts checks every posted DistinctConstraint against a
// completed role assignment: the union of roles of the constrained model
// serving A or B must reach at least Min distinct instances.
func (e *searchEngine) satisfiesDistincts(assigned [][]int) bool {
	for _, dc := range e.net.Distincts {
		seen := make(map[int]struct{})
		for _, k := range assigned[dc.A] {
			if e.net.Roles[k].Role.ModelIri == dc.Model {
				seen[k] = struct{}{}
			}
		}
		for _, k := range assigned[dc.B] {
			if e.net.Roles[k].Role.ModelIri == dc.Model {
				seen[k] = struct{}{}
			}
		}
		if len(seen) < dc.Min {
			return false
		}
	}

	return true
}

func (e *searchEngine) roleBusy(k, i int, roleHolders map[int][]int) bool {
	for _, j := range roleHolders[k] {
		if e.net.Overlaps(i, j) {
			return true
		}
	}

	return false
}

// roleSlots flattens a coalition into a deterministic, model-sorted list of
// per-unit role slots to fill.
func roleSlots(pool ftr.ModelPool) []string {
	names := make([]string, 0, len(pool))
	for m, n := range pool {
		if n > 0 {
			names = append(names, m)
		}
	}
	sort.Strings(names)

	var slots []string
	for _, m := range names {
		for c := 0; c < pool[m]; c++ {
			slots = append(slots, m)
		}
	}

	return slots
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}

	return false
}

func cloneModelUsage(chosen []ftr.ModelPool) []ftr.ModelPool {
	out := make([]ftr.ModelPool, len(chosen))
	for i, p := range chosen {
		out[i] = p.Clone()
	}

	return out
}
