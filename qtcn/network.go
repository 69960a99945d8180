package qtcn

import (
	"errors"
	"fmt"
	"sort"

	"github.com/orbital-ops/missionplanner/core"
	"github.com/orbital-ops/missionplanner/pointalgebra"
)

// Sentinel errors for QTCN operations.
var (
	// ErrInconsistent indicates a triangle (or pairwise label) collapsed to Empty.
	ErrInconsistent = errors.New("qtcn: inconsistent temporal network")

	// ErrUnknownTimepoint indicates an operation referenced a timepoint never
	// registered with the network.
	ErrUnknownTimepoint = errors.New("qtcn: unknown timepoint")

	// ErrCycle indicates Sort found a cycle of strict "<" relations.
	ErrCycle = errors.New("qtcn: cycle of strict precedence relations")
)

type edgeKey struct{ from, to string }

// Network is a constraint graph over timepoint labels (qualitative or
// quantitative timepoints are both identified here by their String() key so
// the network never needs to dereference the Mission's timepoint arena).
//
// label[(a,b)] holds the set of allowed primitives on the directed pair
// (a,b); addConstraint always writes both (a,b) and its inverse on (b,a), so
// the network is symmetric by construction (invariant in spec §3).
type Network struct {
	labels map[edgeKey]pointalgebra.Relation
	known  map[string]struct{} // timepoints ever mentioned, for ErrUnknownTimepoint
	order  []string            // insertion order, for stable sort tie-breaking
}

// NewNetwork returns an empty QTCN.
func NewNetwork() *Network {
	return &Network{
		labels: make(map[edgeKey]pointalgebra.Relation),
		known:  make(map[string]struct{}),
	}
}

func (n *Network) register(tp string) {
	if _, ok := n.known[tp]; !ok {
		n.known[tp] = struct{}{}
		n.order = append(n.order, tp)
	}
}

// AddConstraint appends relation r on (a,b) and r.Inverse() on (b,a). Each
// call *intersects into* any existing label on that directed pair (the
// network is a multigraph of constraints: several addConstraint calls on the
// same pair narrow the label, they never simply overwrite it), matching
// "multiple edges between the same pair mean intersection" (§4.1).
func (n *Network) AddConstraint(a, b string, r pointalgebra.Relation) {
	n.register(a)
	n.register(b)

	fwd := edgeKey{a, b}
	bwd := edgeKey{b, a}

	if existing, ok := n.labels[fwd]; ok {
		n.labels[fwd] = existing.Intersect(r)
	} else {
		n.labels[fwd] = r
	}
	inv := r.Inverse()
	if existing, ok := n.labels[bwd]; ok {
		n.labels[bwd] = existing.Intersect(inv)
	} else {
		n.labels[bwd] = inv
	}
}

// directionalLabel returns the allowed relation set known directly for (a,b),
// defaulting to Universal when no constraint has ever been posted there.
func (n *Network) directionalLabel(a, b string) pointalgebra.Relation {
	if r, ok := n.labels[edgeKey{a, b}]; ok {
		return r
	}

	return pointalgebra.Universal
}

// GetBidirectionalConstraint intersects the forward label (a,b) with the
// inverse of the backward label (b,a) and returns the consolidated relation.
// Returns ErrInconsistent if the result is Empty.
func (n *Network) GetBidirectionalConstraint(a, b string) (pointalgebra.Relation, error) {
	if err := n.requireKnown(a, b); err != nil {
		return pointalgebra.Empty, err
	}

	fwd := n.directionalLabel(a, b)
	bwd := n.directionalLabel(b, a).Inverse()
	consolidated := fwd.Intersect(bwd)
	if consolidated == pointalgebra.Empty {
		return pointalgebra.Empty, fmt.Errorf("qtcn: GetBidirectionalConstraint(%s,%s): %w", a, b, ErrInconsistent)
	}

	return consolidated, nil
}

func (n *Network) requireKnown(tps ...string) error {
	for _, tp := range tps {
		if _, ok := n.known[tp]; !ok {
			return fmt.Errorf("qtcn: %q: %w", tp, ErrUnknownTimepoint)
		}
	}

	return nil
}

// IsConsistent runs 3-path consistency to a fixpoint: for every triple
// (i,j,k), label(i,j) is tightened to label(i,j) ∩ (label(i,k) ∘ label(k,j)).
// Returns false (without mutating further) the moment any label collapses to
// Empty; returns true once a full pass produces no change.
//
// This is triangle-based (3-consistency), not full path-consistency over
// arbitrary path length; spec §4.1 calls this "sufficient and cheaper than
// full 4-consistency for this problem size".
func (n *Network) IsConsistent() bool {
	tps := n.order
	for {
		changed := false
		for _, i := range tps {
			for _, k := range tps {
				if i == k {
					continue
				}
				lik := n.directionalLabel(i, k)
				for _, j := range tps {
					if j == i || j == k {
						continue
					}
					lkj := n.directionalLabel(k, j)
					composed := lik.Compose(lkj)
					current := n.directionalLabel(i, j)
					tightened := current.Intersect(composed)
					if tightened == pointalgebra.Empty {
						return false
					}
					if tightened != current {
						n.labels[edgeKey{i, j}] = tightened
						n.labels[edgeKey{j, i}] = tightened.Inverse()
						changed = true
					}
				}
			}
		}
		if !changed {
			return true
		}
	}
}

// Clone returns a deep copy: the returned Network shares no mutable state
// with n, so mutating one never affects the other (mission.Mission.Clone's
// all-deep-clone discipline, see DESIGN.md).
func (n *Network) Clone() *Network {
	out := &Network{
		labels: make(map[edgeKey]pointalgebra.Relation, len(n.labels)),
		known:  make(map[string]struct{}, len(n.known)),
		order:  append([]string(nil), n.order...),
	}
	for k, v := range n.labels {
		out.labels[k] = v
	}
	for k, v := range n.known {
		out.known[k] = v
	}

	return out
}

// Sort returns timepoints in an order consistent with "<"/"<=" edges,
// tie-breaking by insertion order, via a deterministic DFS-based topological
// sort over a core.Graph built from those edges. Returns ErrCycle if a cycle
// of strict "<" edges is detected.
func (n *Network) Sort(timepoints []string) ([]string, error) {
	if err := n.requireKnown(timepoints...); err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithDirected(true))
	for _, tp := range timepoints {
		_ = g.AddVertex(tp)
	}
	for _, a := range timepoints {
		for _, b := range timepoints {
			if a == b {
				continue
			}
			label := n.directionalLabel(a, b)
			if label&pointalgebra.Less != 0 && label != pointalgebra.Universal {
				if _, err := g.AddEdge(a, b, 1); err != nil {
					return nil, fmt.Errorf("qtcn: Sort: %w", err)
				}
			}
		}
	}

	const (
		white = iota
		gray
		black
	)
	color := make(map[string]int, len(timepoints))
	var out []string
	var visit func(string) error
	visit = func(v string) error {
		color[v] = gray
		nbrIDs, err := g.NeighborIDs(v)
		if err != nil {
			return err
		}
		sort.Strings(nbrIDs)
		for _, w := range nbrIDs {
			switch color[w] {
			case white:
				if err := visit(w); err != nil {
					return err
				}
			case gray:
				return fmt.Errorf("qtcn: Sort(%s -> %s): %w", v, w, ErrCycle)
			}
		}
		color[v] = black
		out = append(out, v)

		return nil
	}

	for _, v := range timepoints {
		if color[v] == white {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}

	// visit appends in reverse-topological (post) order; reverse for "<" first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}
