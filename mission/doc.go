// Package mission owns a plan's static input: timepoints, intervals,
// locations, the available model pool, persistence conditions, the
// qualitative and (optional) quantitative temporal networks, and the
// organization-model handle FTR extraction queries.
//
// Mission is the external collaborator every other package is written
// against through a narrow interface (ftr.ResourceCatalog) rather than a
// direct dependency, so packages qtcn/stn/ftr/csp never import mission
// (avoiding a cycle: mission is the one package that imports all of them).
// Grounded on original Mission.cpp/Mission.hpp.
package mission
