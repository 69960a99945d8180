// Package csp implements the TransportNetwork constraint space of spec §4.4:
// two integer decision matrices (ModelUsage, RoleUsage) over the mission's
// FTRs, searched by a deterministic depth-first branch-and-bound engine in
// the shape of tsp.bbEngine (sparse deadline
// checks, incumbent-free feasibility search rather than optimization, since
// this space asks "does any assignment satisfy every constraint" rather than
// "what is the cheapest tour").
//
// AFC (accumulated-failure-count) variable selection is approximated here
// by a fixed, deterministic ordering (FTRs by
// declaration order, role slots by ascending model name then role index) —
// see DESIGN.md for why a full AFC statistic was judged out of scope.
package csp
