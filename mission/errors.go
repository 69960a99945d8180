package mission

import "errors"

// Sentinel errors for mission construction and loading.
var (
	// ErrParse indicates malformed mission-file input (bad XML, an attribute
	// that doesn't parse as the expected type).
	ErrParse = errors.New("mission: parse error")

	// ErrInconsistentMission indicates a structurally-decoded mission that
	// still can't possibly produce a feasible plan: no resources or no
	// intervals declared at all (spec §7).
	ErrInconsistentMission = errors.New("mission: inconsistent mission: no resources or no intervals declared")

	// ErrOntology wraps a failure from the organization-model query made by
	// BuildRequirements. Narrower ftr.ResourceCatalog queries (IsFunctionality,
	// FunctionalSaturationBound) have no error return and degrade silently
	// instead of producing this (see catalog.go).
	ErrOntology = errors.New("mission: organization-model query failed")

	// ErrInconsistentTemporalNetwork indicates the mission's QTCN fails
	// path-consistency (spec §4.1 isConsistent, scenario D): a cycle of
	// strict relations makes the temporal network unsatisfiable, which is
	// fatal at mission construction (spec §7), never surfaced as a
	// per-FTR or per-search failure downstream.
	ErrInconsistentTemporalNetwork = errors.New("mission: inconsistent temporal network")
)
