// Package orgmodel defines the narrow, read-only query interface the
// planner uses to consult an external organization-model ontology (spec §6):
// subclass queries, functional-saturation bounds, and coalition feasibility
// enumeration. The planner never interprets the ontology directly — every
// access goes through this interface, so a production ontology store (RDF,
// SPARQL, or otherwise) can be swapped in behind it without touching csp or
// ftr.
//
// Memory is the in-memory reference implementation used by tests and small
// missions: a flat subclass map plus per-resource saturation bounds and
// coalition domains, all supplied at construction.
package orgmodel
