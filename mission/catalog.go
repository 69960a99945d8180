package mission

import (
	"context"

	"github.com/orbital-ops/missionplanner/ftr"
)

// FunctionalityIRI is the organization-model class every Functionality
// resource is a (possibly indirect) subclass of; anything else named as a
// resource is an Actor model instead. Grounded on original Mission.cpp's
// fromLocationCardinality, which classifies a resource the same way via a
// live ask.isSubClassOf(resourceModel, OM::Functionality()) query rather
// than a static table.
const FunctionalityIRI = "http://www.rock-robotics.org/2014/01/om-schema#Functionality"

var _ ftr.ResourceCatalog = (*Mission)(nil)

// IntervalIndex implements ftr.ResourceCatalog.
func (m *Mission) IntervalIndex(label string) (int, bool) {
	idx, ok := m.intervalIdx[label]

	return idx, ok
}

// ResourceIndex implements ftr.ResourceCatalog.
func (m *Mission) ResourceIndex(iri string) (int, bool) {
	idx, ok := m.resourceIdx[iri]

	return idx, ok
}

// AvailablePool implements ftr.ResourceCatalog.
func (m *Mission) AvailablePool() ftr.ModelPool {
	return m.ModelPool.Clone()
}

// IsFunctionality implements ftr.ResourceCatalog. The interface has no room
// for an error return, so an ontology failure degrades to false (treat the
// resource as a directly-named Actor model) rather than propagating —
// BuildRequirements's CoalitionDomain call is where an ontology failure is
// meant to surface as ErrOntology (see DESIGN.md).
func (m *Mission) IsFunctionality(idx int) bool {
	ctx, cancel := context.WithTimeout(context.Background(), m.OntologyTimeout)
	defer cancel()

	ok, err := m.OrgModel.IsSubClassOf(ctx, m.Resources[idx], FunctionalityIRI)

	return err == nil && ok
}

// FunctionalSaturationBound implements ftr.ResourceCatalog, degrading an
// ontology failure to an empty (unbounded) pool for the same reason
// IsFunctionality degrades to false.
func (m *Mission) FunctionalSaturationBound(idx int) ftr.ModelPool {
	ctx, cancel := context.WithTimeout(context.Background(), m.OntologyTimeout)
	defer cancel()

	bound, err := m.OrgModel.FunctionalSaturationBound(ctx, m.Resources[idx])
	if err != nil {
		return ftr.ModelPool{}
	}

	return bound
}
