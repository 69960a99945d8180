package orgmodel

import "errors"

var (
	// ErrInfeasibleCoalition indicates CoalitionDomain found no combination
	// of models able to jointly fulfil the requested resources.
	ErrInfeasibleCoalition = errors.New("orgmodel: no feasible coalition")

	// ErrUnknownClass indicates a query referenced an IRI the model has
	// never declared.
	ErrUnknownClass = errors.New("orgmodel: unknown class")
)
