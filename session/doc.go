// Package session replaces the original's global logger/session singleton
// (spec §9 DESIGN NOTE "Global logger/session. Replace with an explicit
// Session value threaded through the planner") with a plain value every
// component takes as an explicit argument: a hclog.Logger, a uuid.UUID
// identifying the run, and the Stats counters the original's Logger.cpp
// incremented as package-level state.
//
// Session never becomes a package global itself; package planner constructs
// one per run and passes it down.
package session
