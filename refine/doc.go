// Package refine implements the restart/refinement driver of spec §4.7: it
// repeatedly solves a csp.TransportNetwork, builds the resulting space-time
// flow network, checks it for flow feasibility, and — for every residual
// flaw — posts one new csp.DistinctConstraint before trying again.
//
// The loop mirrors tsp.bbEngine's incumbent-and-deadline shape (a dedicated
// driver struct, a sparse deadline counter, a monotonically improving best-
// known cost) generalized from tour search to constraint-space search, and
// the master/slave split of the original rbs.hpp: Run plays both roles in
// one loop body — "master" when it calls csp.Solve fresh, "slave" when it
// translates the next flaw into a constraint before the next call.
package refine
