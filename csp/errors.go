package csp

import "errors"

var (
	// ErrNoFeasibleAssignment indicates the search exhausted its space (or
	// its deadline) without finding a solution satisfying every constraint.
	ErrNoFeasibleAssignment = errors.New("csp: no feasible assignment")

	// ErrDeadlineExceeded indicates the search stopped because its deadline
	// passed, independent of whether a solution exists.
	ErrDeadlineExceeded = errors.New("csp: search deadline exceeded")

	// ErrEmptyCoalitionDomain indicates an FTR's coalition domain (from the
	// organization model) was empty before search even began.
	ErrEmptyCoalitionDomain = errors.New("csp: empty coalition domain")
)
