// Package qtcn implements the Qualitative Temporal Constraint Network of
// spec §4.1: a graph of timepoints where each directed pair carries a set of
// allowed point-algebra primitives (package pointalgebra), consistency is
// checked by 3-path (triangle) propagation to a fixpoint, and a consistent
// total order is recovered by topological sort over the network's "<"/"<="
// edges.
//
// The timepoint relation graph is stored as a native map rather than on top
// of core.Graph: QTCN edges are relation *sets*, not scalar weights, so they
// don't fit core.Edge.Weight. Network.Sort, however, does build a core.Graph
// of the network's strict-order edges and walks it with its own
// white/gray/black DFS to get a deterministic, cycle-checked topological
// order.
//
// Errors:
//
//	ErrInconsistent  - isConsistent() found a triangle whose composed label
//	                   is Empty, or getBidirectionalConstraint collapsed to Empty.
//	ErrUnknownTimepoint - a constraint or sort request named a timepoint the
//	                   network has never seen.
//	ErrCycle         - Sort found a cycle of strict "<" edges.
package qtcn
