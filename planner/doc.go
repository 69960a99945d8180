// Package planner wires modules A-I of spec §2's data flow into one call:
// tighten the mission's temporal networks, extract and resolve
// FluentTimeResources into a csp.TransportNetwork, compute each
// requirement's space-time span, and hand both to the restart/refinement
// driver (package refine). It is the "top-level wiring" collaborator
// SPEC_FULL.md's package table names; cmd/planner is the only importer
// outside of tests.
package planner
