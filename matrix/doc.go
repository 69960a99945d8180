// Package matrix defines a small dense-matrix abstraction used by stn (numeric
// temporal bound tightening).
//
// It carries only what that caller exercises: a Matrix interface, a
// Dense row-major implementation, shape/NaN-Inf validation, and an in-place
// Floyd-Warshall all-pairs shortest path closure. Earlier drafts of this
// package grew adjacency/incidence conversions, linear-algebra decompositions
// and elementwise statistics that nothing in this module calls; they're gone
// rather than carried as dead weight (see DESIGN.md).
package matrix
