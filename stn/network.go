package stn

import (
	"errors"
	"fmt"
	"math"

	"github.com/orbital-ops/missionplanner/matrix"
)

// Sentinel errors for STN operations.
var (
	// ErrUnknownTimepoint indicates an operation referenced a timepoint never
	// registered with the network.
	ErrUnknownTimepoint = errors.New("stn: unknown timepoint")

	// ErrInconsistent indicates minNetwork found a negative diagonal entry:
	// some timepoint would have to precede itself.
	ErrInconsistent = errors.New("stn: inconsistent temporal network")

	// ErrEmptyBounds indicates a constraint pair has no posted bounds at all,
	// so there is nothing for upperLowerTightening to reduce.
	ErrEmptyBounds = errors.New("stn: no bounds posted for pair")
)

// Bound is a closed numeric interval [Lo, Hi] on the duration a -> b.
type Bound struct {
	Lo, Hi int64
}

type pairKey struct{ from, to string }

// Network is a quantitative temporal constraint network: timepoints related
// by directed numeric intervals. Multiple AddConstraint calls on the same
// pair accumulate a *disjunction* of bounds (spec's "disjunctive edge"),
// reduced to a single interval by stp during UpperLowerTightening.
type Network struct {
	index   map[string]int
	order   []string
	bounds  map[pairKey][]Bound
	reduced map[pairKey]Bound // result of the most recent stp() reduction
}

// NewNetwork returns an empty STN.
func NewNetwork() *Network {
	return &Network{
		index:   make(map[string]int),
		bounds:  make(map[pairKey][]Bound),
		reduced: make(map[pairKey]Bound),
	}
}

func (n *Network) register(tp string) {
	if _, ok := n.index[tp]; !ok {
		n.index[tp] = len(n.order)
		n.order = append(n.order, tp)
	}
}

// AddConstraint posts a −[lo,hi]→ b onto the network.
func (n *Network) AddConstraint(a, b string, lo, hi int64) {
	n.register(a)
	n.register(b)
	key := pairKey{a, b}
	n.bounds[key] = append(n.bounds[key], Bound{Lo: lo, Hi: hi})
}

func (n *Network) requireKnown(tps ...string) error {
	for _, tp := range tps {
		if _, ok := n.index[tp]; !ok {
			return fmt.Errorf("stn: %q: %w", tp, ErrUnknownTimepoint)
		}
	}

	return nil
}

// stp reduces every pair's disjunction of bounds to [minLo, maxHi], per
// spec §4.2's upperLowerTightening step. Pairs with no posted bound are left
// absent from n.reduced (ToWeightedGraph treats them as unconstrained).
func (n *Network) stp() {
	for key, bs := range n.bounds {
		minLo, maxHi := bs[0].Lo, bs[0].Hi
		for _, b := range bs[1:] {
			if b.Lo < minLo {
				minLo = b.Lo
			}
			if b.Hi > maxHi {
				maxHi = b.Hi
			}
		}
		n.reduced[key] = Bound{Lo: minLo, Hi: maxHi}
	}
}

// ToWeightedGraph expands every reduced interval a-[lo,hi]->b into the two
// weighted edges a->(hi) b and b->(-lo) a, returning a dense distance matrix
// indexed by timepoint registration order. Unconstrained directed pairs are
// left at +Inf ("no known bound yet"); the diagonal is 0.
func (n *Network) ToWeightedGraph() (*matrix.Dense, error) {
	n.stp()

	size := len(n.order)
	if size == 0 {
		return matrix.NewDense(1, 1, matrix.WithValidateNaNInf(false))
	}

	d, err := matrix.NewDense(size, size, matrix.WithValidateNaNInf(false))
	if err != nil {
		return nil, fmt.Errorf("stn: ToWeightedGraph: %w", err)
	}
	d.Fill(math.Inf(1))
	for i := 0; i < size; i++ {
		if err := d.Set(i, i, 0); err != nil {
			return nil, fmt.Errorf("stn: ToWeightedGraph: %w", err)
		}
	}

	for key, b := range n.reduced {
		i, j := n.index[key.from], n.index[key.to]
		if err := relax(d, i, j, float64(b.Hi)); err != nil {
			return nil, fmt.Errorf("stn: ToWeightedGraph: %w", err)
		}
		if err := relax(d, j, i, float64(-b.Lo)); err != nil {
			return nil, fmt.Errorf("stn: ToWeightedGraph: %w", err)
		}
	}

	return d, nil
}

// relax sets d(i,j) to w only if w improves on whatever is already there,
// so two disjoint AddConstraint pairs that happen to touch the same directed
// edge (e.g. via distinct intermediate timepoints) don't clobber a tighter
// bound already written by another pair.
func relax(d *matrix.Dense, i, j int, w float64) error {
	cur, err := d.At(i, j)
	if err != nil {
		return err
	}
	if w < cur {
		return d.Set(i, j, w)
	}

	return nil
}

// MinNetwork runs Floyd-Warshall on the weighted form and rewrites every
// known pair's interval to [-d(b,a), d(a,b)]. Returns ErrInconsistent if any
// diagonal entry goes negative (a timepoint would have to precede itself).
func (n *Network) MinNetwork() error {
	d, err := n.ToWeightedGraph()
	if err != nil {
		return err
	}
	if err := matrix.FloydWarshall(d); err != nil {
		return fmt.Errorf("stn: MinNetwork: %w", err)
	}

	for i := range n.order {
		diag, err := d.At(i, i)
		if err != nil {
			return fmt.Errorf("stn: MinNetwork: %w", err)
		}
		if diag < 0 {
			return fmt.Errorf("stn: MinNetwork(%s): %w", n.order[i], ErrInconsistent)
		}
	}

	for key := range n.reduced {
		i, j := n.index[key.from], n.index[key.to]
		dab, err := d.At(i, j)
		if err != nil {
			return fmt.Errorf("stn: MinNetwork: %w", err)
		}
		dba, err := d.At(j, i)
		if err != nil {
			return fmt.Errorf("stn: MinNetwork: %w", err)
		}
		n.reduced[key] = Bound{Lo: int64(-dba), Hi: int64(dab)}
	}

	return nil
}

// UpperLowerTightening iterates stp and MinNetwork to a fixpoint: it stops
// once a full pass leaves every reduced bound unchanged. Returns
// ErrInconsistent immediately if MinNetwork ever detects a negative cycle.
func (n *Network) UpperLowerTightening() error {
	for {
		before := n.snapshot()
		if err := n.MinNetwork(); err != nil {
			return err
		}
		if n.sameAs(before) {
			return nil
		}
	}
}

func (n *Network) snapshot() map[pairKey]Bound {
	cp := make(map[pairKey]Bound, len(n.reduced))
	for k, v := range n.reduced {
		cp[k] = v
	}

	return cp
}

func (n *Network) sameAs(prior map[pairKey]Bound) bool {
	if len(prior) != len(n.reduced) {
		return false
	}
	for k, v := range n.reduced {
		pv, ok := prior[k]
		if !ok || pv != v {
			return false
		}
	}

	return true
}

// Clone returns a deep copy sharing no mutable state with n (mission.Mission.Clone's
// all-deep-clone discipline, see DESIGN.md).
func (n *Network) Clone() *Network {
	out := &Network{
		index:   make(map[string]int, len(n.index)),
		order:   append([]string(nil), n.order...),
		bounds:  make(map[pairKey][]Bound, len(n.bounds)),
		reduced: make(map[pairKey]Bound, len(n.reduced)),
	}
	for k, v := range n.index {
		out.index[k] = v
	}
	for k, v := range n.bounds {
		out.bounds[k] = append([]Bound(nil), v...)
	}
	for k, v := range n.reduced {
		out.reduced[k] = v
	}

	return out
}

// Bound returns the current reduced interval for (a, b).
func (n *Network) Bound(a, b string) (Bound, error) {
	if err := n.requireKnown(a, b); err != nil {
		return Bound{}, err
	}
	bound, ok := n.reduced[pairKey{a, b}]
	if !ok {
		return Bound{}, fmt.Errorf("stn: Bound(%s,%s): %w", a, b, ErrEmptyBounds)
	}

	return bound, nil
}
