// Package stn implements the Simple Temporal Network of spec §4.2: the
// quantitative counterpart to package qtcn, where each directed pair of
// timepoints carries a numeric interval [lo, hi] rather than a set of
// qualitative primitives.
//
// Network builds a weighted distance matrix (matrix.Dense) the way
// ToWeightedGraph describes, and MinNetwork runs matrix.FloydWarshall over it
// to compute the network's minimal (tightest) form. UpperLowerTightening
// iterates disjunctive-edge reduction and MinNetwork to a fixpoint, matching
// lvlath's style of expressing fixpoint propagation as a bounded loop
// guarded by a "did anything change" flag (see qtcn.Network.IsConsistent).
package stn
