package mission

import (
	"fmt"
	"time"
)

// MissionOption configures a Mission at construction time. Matching
// builder.BuilderOption's convention, options panic on invalid input rather
// than returning an error: a bad option is a programmer mistake the caller
// should fix, not a runtime condition to handle (see DESIGN.md).
type MissionOption func(*Mission)

// WithOntologyTimeout overrides the default timeout applied to every
// ontology query issued through the ftr.ResourceCatalog surface. Panics if d
// is not positive.
func WithOntologyTimeout(d time.Duration) MissionOption {
	if d <= 0 {
		panic(fmt.Sprintf("mission: WithOntologyTimeout: non-positive duration %s", d))
	}

	return func(m *Mission) { m.OntologyTimeout = d }
}

// WithModelPoolOverride sets the available count of modelIri to count,
// overriding whatever a mission file declared for it. Panics if count is
// negative.
func WithModelPoolOverride(modelIri string, count int) MissionOption {
	if count < 0 {
		panic(fmt.Sprintf("mission: WithModelPoolOverride(%s): negative count %d", modelIri, count))
	}

	return func(m *Mission) { m.ModelPool[modelIri] = count }
}

// WithMobility marks modelIri as mobile (true) or immobile (false),
// overriding whatever a mission file declared for it.
func WithMobility(modelIri string, mobile bool) MissionOption {
	return func(m *Mission) { m.Mobility[modelIri] = mobile }
}
