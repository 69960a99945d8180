// Package timeline builds per-role space-time timelines (spec §4.5): for
// every "active" role (one used by two or more FTRs), a path over
// (location, timepoint) cells that pins the role's location for the
// duration of every FTR it fills and fills in the travel between them.
//
// The grid-as-graph technique is grounded on gridgraph.GridGraph: cells are
// identified the same way (a row-major index plus an "x,y" style vertex
// key), and the single-path invariant is checked by walking successors the
// way gridgraph's ConnectedComponents walks 4-neighbor adjacency, not by a
// generic graph library's path-finding (there is no search here — the path
// is built directly from the CSP solution, then validated).
package timeline
