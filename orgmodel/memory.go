package orgmodel

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/orbital-ops/missionplanner/ftr"
)

// Memory is an in-memory Model: a flat "iri -> immediate superclasses" map,
// per-resource saturation bounds, and a precomputed coalition domain per
// resource set key. It's the reference implementation used by tests and by
// small missions that ship their organization model inline rather than as a
// separate RDF/XML document.
type Memory struct {
	superclasses map[string][]string
	satBounds    map[string]ftr.ModelPool
	coalitions   map[string][]ftr.ModelPool
}

// NewMemory builds a Memory model from explicit tables. coalitions is keyed
// by a caller-chosen string built from the sorted resource IRI set (callers
// typically use CoalitionKey).
func NewMemory(superclasses map[string][]string, satBounds map[string]ftr.ModelPool, coalitions map[string][]ftr.ModelPool) *Memory {
	return &Memory{superclasses: superclasses, satBounds: satBounds, coalitions: coalitions}
}

var _ Model = (*Memory)(nil)

// IsSubClassOf walks the superclass map transitively.
func (m *Memory) IsSubClassOf(_ context.Context, iri, classIri string) (bool, error) {
	visited := map[string]bool{}
	var walk func(string) bool
	walk = func(cur string) bool {
		if cur == classIri {
			return true
		}
		if visited[cur] {
			return false
		}
		visited[cur] = true
		for _, super := range m.superclasses[cur] {
			if walk(super) {
				return true
			}
		}

		return false
	}

	return walk(iri), nil
}

// AllSubClassesOf returns every IRI whose transitive superclass chain
// includes classIri.
func (m *Memory) AllSubClassesOf(ctx context.Context, classIri string) ([]string, error) {
	var out []string
	for iri := range m.superclasses {
		ok, err := m.IsSubClassOf(ctx, iri, classIri)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, iri)
		}
	}

	return out, nil
}

// FunctionalSaturationBound returns the declared bound for resourceIri, or
// an empty (unbounded) pool if none was configured.
func (m *Memory) FunctionalSaturationBound(_ context.Context, resourceIri string) (ftr.ModelPool, error) {
	if bound, ok := m.satBounds[resourceIri]; ok {
		return bound.Clone(), nil
	}

	return ftr.ModelPool{}, nil
}

// CoalitionDomain looks up the precomputed domain for resourceIris (keyed via
// CoalitionKey), intersecting every candidate with available and dropping
// any that no longer fit. Returns ErrInfeasibleCoalition if the result is
// empty.
func (m *Memory) CoalitionDomain(_ context.Context, resourceIris []string, available ftr.ModelPool) ([]ftr.ModelPool, error) {
	key := CoalitionKey(resourceIris)
	candidates, ok := m.coalitions[key]
	if !ok {
		return nil, fmt.Errorf("orgmodel: CoalitionDomain(%s): %w", key, ErrInfeasibleCoalition)
	}

	var feasible []ftr.ModelPool
	for _, c := range candidates {
		if fitsWithin(c, available) {
			feasible = append(feasible, c)
		}
	}
	if len(feasible) == 0 {
		return nil, fmt.Errorf("orgmodel: CoalitionDomain(%s): %w", key, ErrInfeasibleCoalition)
	}

	return feasible, nil
}

func fitsWithin(coalition, available ftr.ModelPool) bool {
	for model, count := range coalition {
		if available[model] < count {
			return false
		}
	}

	return true
}

// CoalitionKey builds a deterministic lookup key for a resource IRI set.
func CoalitionKey(resourceIris []string) string {
	sorted := append([]string(nil), resourceIris...)
	sort.Strings(sorted)

	return strings.Join(sorted, "|")
}
