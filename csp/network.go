package csp

import (
	"fmt"
	"sort"

	"github.com/orbital-ops/missionplanner/ftr"
	"github.com/orbital-ops/missionplanner/pointalgebra"
)

// Requirement pairs one FTR with its feasible coalition domain: the model
// combinations the organization model reports as capable of jointly
// fulfilling it, already filtered to the FTR's own [min,max] cardinality
// bounds (constraint 1 of spec §4.4).
type Requirement struct {
	FTR      *ftr.FluentTimeResource
	Interval *pointalgebra.Interval
	Domain   []ftr.ModelPool
}

// TransportNetwork is the CSP space of spec §4.4: ModelUsage and RoleUsage
// are represented implicitly by the Solution a Solve call returns rather
// than as persistent matrices mutated in place — the copy-on-write-trail
// design note of spec §9 is realized here as plain
// recursive mutate/undo over Go call stack frames, which gives the same
// backtracking semantics for a single-threaded synchronous search without a
// generic trail abstraction (see DESIGN.md).
type TransportNetwork struct {
	Requirements []Requirement
	Roles        []ftr.RoleInfo
	Pool         ftr.ModelPool
	Distincts    []DistinctConstraint
	overlaps     [][]bool
}

// DistinctConstraint is the CSP-side translation of an mcmcf.Flaw, posted by
// the restart driver's slave (spec §4.7): the number of distinct role
// instances of Model used by requirement A or requirement B (or both) must
// be at least Min. Min already folds in the previous solution's distinct
// count plus the flaw's delta — the constraint itself is a plain threshold.
type DistinctConstraint struct {
	Model string
	A, B  int
	Min   int
}

// AddDistinct posts a new DistinctConstraint onto the space, narrowing
// future Solve calls the way a no-good does (constraints only ever
// accumulate across restarts, never retracted).
func (t *TransportNetwork) AddDistinct(model string, a, b, min int) {
	t.Distincts = append(t.Distincts, DistinctConstraint{Model: model, A: a, B: b, Min: min})
}

// NewTransportNetwork builds a TransportNetwork, computing the pairwise FTR
// overlap table from each requirement's interval and verifying every
// requirement's coalition domain is non-empty.
func NewTransportNetwork(reqs []Requirement, roles []ftr.RoleInfo, pool ftr.ModelPool) (*TransportNetwork, error) {
	for i, r := range reqs {
		if len(r.Domain) == 0 {
			return nil, fmt.Errorf("csp: requirement %d: %w", i, ErrEmptyCoalitionDomain)
		}
	}

	n := len(reqs)
	overlaps := make([][]bool, n)
	for i := range overlaps {
		overlaps[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if reqs[i].Interval.Overlaps(reqs[j].Interval) {
				overlaps[i][j] = true
				overlaps[j][i] = true
			}
		}
	}

	return &TransportNetwork{Requirements: reqs, Roles: roles, Pool: pool, overlaps: overlaps}, nil
}

// Overlaps reports whether requirements i and j were computed to overlap.
func (t *TransportNetwork) Overlaps(i, j int) bool {
	if i == j {
		return true
	}

	return t.overlaps[i][j]
}

// rolesOfModel returns role indices whose model matches modelIri, in
// ascending index order — the fixed order Phase 2's symmetry-breaking
// role choice always tries first (spec §4.4 constraint 7: roles of an
// identical model are interchangeable, so always preferring the
// lowest-index free one loses no solutions).
func (t *TransportNetwork) rolesOfModel(modelIri string) []int {
	var out []int
	for k, ri := range t.Roles {
		if ri.Role.ModelIri == modelIri {
			out = append(out, k)
		}
	}

	return out
}

// String renders a compact human-readable dump of the space, used by
// logging and the CSV artifact writer's solution annotation (the human-
// readable constraint dump of spec §5.2).
func (t *TransportNetwork) String() string {
	models := make(map[string]struct{})
	for _, ri := range t.Roles {
		models[ri.Role.ModelIri] = struct{}{}
	}
	names := make([]string, 0, len(models))
	for m := range models {
		names = append(names, m)
	}
	sort.Strings(names)

	return fmt.Sprintf("TransportNetwork{requirements=%d, roles=%d, models=%v}", len(t.Requirements), len(t.Roles), names)
}
