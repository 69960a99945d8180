package mission

import (
	"context"
	"fmt"

	"github.com/orbital-ops/missionplanner/csp"
	"github.com/orbital-ops/missionplanner/ftr"
	"github.com/orbital-ops/missionplanner/orgmodel"
)

// missionRef identifies this mission's FTRs to downstream packages; a single
// planner run only ever builds requirements for one mission at a time, so a
// fixed constant is enough to keep FluentTimeResource.MissionRef non-empty.
const missionRef = "mission"

// BuildRequirements runs FTR extraction (spec §4.3) and resolves each
// resulting FluentTimeResource's feasible coalition domain against
// m.OrgModel (spec §4.4 constraint 1), returning the csp.Requirement slice
// and expanded csp.RoleInfo pool a TransportNetwork is built from.
//
// Unlike catalog.go's narrow ResourceCatalog queries, CoalitionDomain is
// called directly here with ctx, so an ontology failure surfaces as
// ErrOntology instead of degrading silently.
func (m *Mission) BuildRequirements(ctx context.Context) ([]csp.Requirement, []ftr.RoleInfo, error) {
	ftrs, err := ftr.Extract(missionRef, m.PersistenceConditions, m)
	if err != nil {
		return nil, nil, fmt.Errorf("mission: BuildRequirements: %w", err)
	}
	ftrs = ftr.Compact(ftrs)
	ftr.UpdateMaxCardinalities(ftrs, m.ModelPool)

	octx, cancel := context.WithTimeout(ctx, m.OntologyTimeout)
	defer cancel()

	reqs := make([]csp.Requirement, len(ftrs))
	for i, f := range ftrs {
		resourceIRIs := m.resourceIRIsOf(f)

		domain, err := m.OrgModel.CoalitionDomain(octx, resourceIRIs, f.MaxCardinalities)
		if err != nil {
			return nil, nil, fmt.Errorf("mission: BuildRequirements: %s: %w: %w", resourceIRIs, ErrOntology, err)
		}

		filtered := filterDomain(domain, f)
		if len(filtered) == 0 {
			return nil, nil, fmt.Errorf("mission: BuildRequirements: %s: %w", resourceIRIs, orgmodel.ErrInfeasibleCoalition)
		}

		reqs[i] = csp.Requirement{FTR: f, Interval: m.Intervals[f.IntervalIdx], Domain: filtered}
	}

	return reqs, ftr.ExpandPool(m.ModelPool, m.Mobility), nil
}

func (m *Mission) resourceIRIsOf(f *ftr.FluentTimeResource) []string {
	iris := make([]string, 0, len(f.ResourceIdxSet))
	for idx := range f.ResourceIdxSet {
		iris = append(iris, m.Resources[idx])
	}

	return iris
}

// filterDomain keeps only the coalitions whose per-model counts fit within
// f's own [min,max] cardinality bounds (spec §4.4 constraint 1: the
// organization model's answer is necessary but not sufficient — the FTR's
// own bounds still apply).
func filterDomain(domain []ftr.ModelPool, f *ftr.FluentTimeResource) []ftr.ModelPool {
	var out []ftr.ModelPool
	for _, coalition := range domain {
		if fitsBounds(coalition, f.MinCardinalities, f.MaxCardinalities) {
			out = append(out, coalition)
		}
	}

	return out
}

func fitsBounds(coalition, min, max ftr.ModelPool) bool {
	for model, lo := range min {
		if coalition[model] < lo {
			return false
		}
	}
	for model, count := range coalition {
		if hi, ok := max[model]; ok && count > hi {
			return false
		}
	}

	return true
}
