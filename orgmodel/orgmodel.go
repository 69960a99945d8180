package orgmodel

import (
	"context"

	"github.com/orbital-ops/missionplanner/ftr"
)

// Model is the organization-model query interface of spec §6. Implementations
// must be read-only and safe for concurrent use: the planner treats a model
// as immutable for the duration of a plan (spec §5).
type Model interface {
	// IsSubClassOf reports whether iri is a (possibly indirect) subclass of
	// classIri.
	IsSubClassOf(ctx context.Context, iri, classIri string) (bool, error)

	// AllSubClassesOf returns every IRI that is a subclass of classIri.
	AllSubClassesOf(ctx context.Context, classIri string) ([]string, error)

	// FunctionalSaturationBound returns the maximum useful per-model
	// cardinality for resourceIri; beyond it, more instances don't help.
	FunctionalSaturationBound(ctx context.Context, resourceIri string) (ftr.ModelPool, error)

	// CoalitionDomain enumerates the feasible model combinations capable of
	// jointly fulfilling resourceIris, each bounded by available. Returns
	// ErrInfeasibleCoalition if no combination is feasible.
	CoalitionDomain(ctx context.Context, resourceIris []string, available ftr.ModelPool) ([]ftr.ModelPool, error)
}
