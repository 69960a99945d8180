package ftr

import (
	"errors"
	"fmt"
)

// Sentinel errors for FTR extraction.
var (
	// ErrUnknownSymbol indicates a persistence condition referenced an
	// interval, resource, or location the mission never declared.
	ErrUnknownSymbol = errors.New("ftr: unknown symbol")
)

// FluentTimeResource is the canonical requirement: a resource set needed at
// one location over one interval, with per-model cardinality bounds.
type FluentTimeResource struct {
	MissionRef       string
	ResourceIdxSet   map[int]struct{}
	IntervalIdx      int
	LocationIdx      int
	MinCardinalities ModelPool
	MaxCardinalities ModelPool
}

func newFTR(missionRef string, resourceIdx, intervalIdx, locationIdx int) *FluentTimeResource {
	return &FluentTimeResource{
		MissionRef:       missionRef,
		ResourceIdxSet:   map[int]struct{}{resourceIdx: {}},
		IntervalIdx:      intervalIdx,
		LocationIdx:      locationIdx,
		MinCardinalities: ModelPool{},
		MaxCardinalities: ModelPool{},
	}
}

// ResourceCatalog resolves a resource IRI to whether it's a Functionality
// (queried for its saturation bound) or an Actor model directly, and
// resolves interval/location labels to indices. It is the narrow surface
// FTR extraction needs from the mission, kept separate so this package
// doesn't import package mission (avoiding an import cycle: mission will
// itself call into ftr).
type ResourceCatalog interface {
	// IntervalIndex resolves an interval label to its index, or ok=false if
	// the mission never declared it.
	IntervalIndex(label string) (idx int, ok bool)

	// ResourceIndex resolves a resource IRI to its index in the mission's
	// resource table.
	ResourceIndex(iri string) (idx int, ok bool)

	// IsFunctionality reports whether the resource at idx is a Functionality
	// (as opposed to a directly-named Actor model).
	IsFunctionality(idx int) bool

	// FunctionalSaturationBound queries the organization model for the
	// per-model cap beyond which more instances don't help fulfil idx.
	FunctionalSaturationBound(idx int) ModelPool

	// AvailablePool returns the mission's declared model-pool.
	AvailablePool() ModelPool
}

// Extract builds one FTR per LocationCardinality persistence condition,
// resolving symbols against catalog and applying the functionality/actor
// cardinality rules of spec §4.3 steps 1-3. It does not compact or cap the
// result; call Compact and then UpdateMaxCardinalities for that.
func Extract(missionRef string, conditions []PersistenceCondition, catalog ResourceCatalog) ([]*FluentTimeResource, error) {
	var out []*FluentTimeResource
	for _, pc := range conditions {
		lc, ok := pc.Value.(LocationCardinality)
		if !ok {
			continue
		}

		intervalIdx, ok := catalog.IntervalIndex(pc.FromTp + ".." + pc.ToTp)
		if !ok {
			return nil, fmt.Errorf("ftr: Extract: interval %s..%s: %w", pc.FromTp, pc.ToTp, ErrUnknownSymbol)
		}
		locationIdx := lc.LocationIdx
		resourceIdx, ok := catalog.ResourceIndex(pc.StateVar.Resource)
		if !ok {
			return nil, fmt.Errorf("ftr: Extract: resource %q: %w", pc.StateVar.Resource, ErrUnknownSymbol)
		}

		f := newFTR(missionRef, resourceIdx, intervalIdx, locationIdx)
		applyCardinality(f, pc.StateVar.Resource, catalog, resourceIdx, lc)
		out = append(out, f)
	}

	return out, nil
}

func applyCardinality(f *FluentTimeResource, modelIri string, catalog ResourceCatalog, resourceIdx int, lc LocationCardinality) {
	if catalog.IsFunctionality(resourceIdx) {
		bound := catalog.FunctionalSaturationBound(resourceIdx)
		f.MaxCardinalities = f.MaxCardinalities.Max(bound)

		return
	}

	switch lc.Kind {
	case Min:
		f.MinCardinalities[modelIri] = maxInt(f.MinCardinalities[modelIri], lc.N)
		f.MaxCardinalities[modelIri] = unboundedCap
	case Max:
		f.MaxCardinalities[modelIri] = minCapped(f.MaxCardinalities, modelIri, lc.N)
		f.MinCardinalities[modelIri] = 0
	case Exact:
		f.MinCardinalities[modelIri] = lc.N
		f.MaxCardinalities[modelIri] = lc.N
	}
}

// unboundedCap stands in for "no declared upper bound yet"; UpdateMaxCardinalities
// always intersects against the mission's finite available pool before a
// solution can be built, so this never reaches the CSP layer unresolved.
const unboundedCap = 1 << 30

func minCapped(pool ModelPool, key string, n int) int {
	if existing, ok := pool[key]; ok && existing < n {
		return existing
	}

	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// Compact merges FTRs that share (IntervalIdx, LocationIdx): resource sets
// union, MinCardinalities take the per-model max, MaxCardinalities take the
// per-model min, then MaxCardinalities is raised to at least MinCardinalities
// per model (restoring the min<=max invariant). Compacting an
// already-compacted list is a no-op, and the result doesn't depend on input
// order (spec §8 property 8).
func Compact(ftrs []*FluentTimeResource) []*FluentTimeResource {
	type key struct{ interval, location int }
	merged := make(map[key]*FluentTimeResource)
	var order []key

	for _, f := range ftrs {
		k := key{f.IntervalIdx, f.LocationIdx}
		existing, ok := merged[k]
		if !ok {
			cp := *f
			cp.ResourceIdxSet = cloneIntSet(f.ResourceIdxSet)
			cp.MinCardinalities = f.MinCardinalities.Clone()
			cp.MaxCardinalities = f.MaxCardinalities.Clone()
			merged[k] = &cp
			order = append(order, k)

			continue
		}
		for idx := range f.ResourceIdxSet {
			existing.ResourceIdxSet[idx] = struct{}{}
		}
		existing.MinCardinalities = existing.MinCardinalities.Max(f.MinCardinalities)
		existing.MaxCardinalities = existing.MaxCardinalities.Min(f.MaxCardinalities)
		restoreMinMax(existing)
	}

	out := make([]*FluentTimeResource, 0, len(order))
	for _, k := range order {
		out = append(out, merged[k])
	}

	return out
}

func restoreMinMax(f *FluentTimeResource) {
	for m, min := range f.MinCardinalities {
		if f.MaxCardinalities[m] < min {
			f.MaxCardinalities[m] = min
		}
	}
}

func cloneIntSet(s map[int]struct{}) map[int]struct{} {
	cp := make(map[int]struct{}, len(s))
	for k := range s {
		cp[k] = struct{}{}
	}

	return cp
}

// UpdateMaxCardinalities intersects every FTR's MaxCardinalities with the
// mission's available pool (spec §4.3 step 5), so a saturation bound or an
// unbounded MIN cardinality never exceeds what's actually in the pool.
func UpdateMaxCardinalities(ftrs []*FluentTimeResource, available ModelPool) {
	for _, f := range ftrs {
		f.MaxCardinalities = f.MaxCardinalities.Min(available)
	}
}
