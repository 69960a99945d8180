// Package mcmcf checks whether the aggregated space-time transport demand of
// a CSP solution's immobile-role commodities is feasible against the
// capacity mobile roles' timelines provide, and extracts Flaws (spec §4.7)
// when it isn't.
//
// The flow graph and its feasibility probe are grounded on flow.Dinic: mcmcf
// builds one shared capacity graph (hold + transport edges over
// (location,timepoint) vertices) and runs a Dinic max-flow probe per
// commodity, threading each probe's returned residual graph into the next
// probe — successive single-commodity checks standing in for a true
// multi-commodity LP-style relaxation (see DESIGN.md for why: lvlath carries
// no min-cost or multi-commodity flow solver to start from, only Dinic's
// single-commodity max-flow).
package mcmcf
