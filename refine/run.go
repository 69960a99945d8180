package refine

import (
	"math"

	"github.com/orbital-ops/missionplanner/core"
	"github.com/orbital-ops/missionplanner/csp"
	"github.com/orbital-ops/missionplanner/mcmcf"
	"github.com/orbital-ops/missionplanner/timeline"
)

// Run drives the restart/refinement loop of spec §4.7: solve the
// TransportNetwork, check the resulting space-time timelines for flow
// feasibility, translate the residual flaw at the current flaw index into a
// DistinctConstraint, and retry — until a flawless solution is found, the
// flaw list is exhausted (ErrSearchExhausted), or Config.MaxRestarts is
// reached (ErrMaxRestartsExceeded). On ErrSearchExhausted the returned
// Outcome still carries the best (lowest-flaw-count) solution seen.
//
// net accumulates DistinctConstraints across restarts — they are never
// retracted, matching "no-goods are posted on restart" (spec §4.4 Search).
// There is no persistent Cost variable to post "cost < previousCost" onto
// (see DESIGN.md): each restart's cost is compared against the best seen so
// far purely as bookkeeping for the returned Outcome.
func Run(net *csp.TransportNetwork, spans []timeline.RequirementSpan, cfg Config) (Outcome, error) {
	startFlawIndex := 0
	best := Outcome{Cost: -1}

	for restart := 0; ; restart++ {
		if cfg.MaxRestarts > 0 && restart >= cfg.MaxRestarts {
			return best, ErrMaxRestartsExceeded
		}

		sol, err := csp.Solve(net, cfg.SolveDeadline)
		if err != nil {
			return best, err
		}

		flaws, err := checkFlow(net, sol, spans, cfg)
		if err != nil {
			return best, err
		}

		cost := csp.Cost(len(flaws))
		if best.Cost < 0 || cost.Less(best.Cost) {
			best = Outcome{Solution: sol, Cost: cost, Restarts: restart, Flaws: flaws}
		}
		if cfg.OnRestart != nil {
			cfg.OnRestart(restart, cost, cost == 0)
		}
		if cost == 0 {
			return best, nil
		}

		if startFlawIndex >= len(flaws) {
			return best, ErrSearchExhausted
		}
		applyFlaw(net, sol, flaws[startFlawIndex], cfg)
		startFlawIndex++
	}
}

// checkFlow builds per-role RoleTimelines from sol against spans, splits
// active roles (used by >=2 requirements) into mobile carriers and immobile
// consumers by RoleInfo.Mobility, and runs the flow feasibility probe of
// spec §4.6-4.7.
func checkFlow(net *csp.TransportNetwork, sol csp.Solution, spans []timeline.RequirementSpan, cfg Config) ([]mcmcf.Flaw, error) {
	g, immobilePins, err := BuildSpaceTimeGraph(net, sol, spans, cfg)
	if err != nil {
		return nil, err
	}

	return mcmcf.Check(g, mcmcf.BuildCommodities(immobilePins), cfg.FlowOptions)
}

// BuildSpaceTimeGraph reconstructs the space-time flow graph a solution's
// mobile-role timelines produce against spans, alongside the immobile-role
// pins mcmcf.BuildCommodities needs. Exported so package planner can
// serialize the graph of a converged Outcome as an artifact (spec §6)
// without duplicating checkFlow's split-by-mobility logic.
func BuildSpaceTimeGraph(net *csp.TransportNetwork, sol csp.Solution, spans []timeline.RequirementSpan, cfg Config) (*core.Graph, map[int][]timeline.Pin, error) {
	pinsByRole := timeline.BuildPins(sol.RoleUsage, spans, net.Roles)
	active := timeline.ActiveRoles(sol.RoleUsage)

	var mobile []*timeline.RoleTimeline
	immobilePins := make(map[int][]timeline.Pin)
	for _, k := range active {
		role := net.Roles[k]
		if role.Mobility {
			rt, err := timeline.Build(role.Role, cfg.T, cfg.L, pinsByRole[k])
			if err != nil {
				return nil, nil, err
			}
			if err := rt.Validate(pinsByRole[k]); err != nil {
				return nil, nil, err
			}
			mobile = append(mobile, rt)

			continue
		}
		immobilePins[k] = pinsByRole[k]
	}

	g, err := mcmcf.BuildGraph(cfg.T, cfg.L, mobile)
	if err != nil {
		return nil, nil, err
	}

	return g, immobilePins, nil
}

// applyFlaw translates flaw into a DistinctConstraint posted on net,
// following the original TransportNetwork.cpp switch: TransFlow and MinFlow
// carry a concrete (A,B) pair and are translated; the aggregate
// TotalTransFlow/TotalMinFlow kinds have no single pair to constrain and are
// left as a no-op (only the flaw index advances, matching the original's
// default case). Before translating a concrete pair, routeFeasible gates it
// against the dijkstra travel-time estimate: a flaw asking for transport
// between locations with no estimated route at all is spurious — no
// DistinctConstraint can manufacture a route that doesn't exist — so it's
// skipped rather than posted, same as the aggregate kinds.
func applyFlaw(net *csp.TransportNetwork, sol csp.Solution, flaw mcmcf.Flaw, cfg Config) {
	switch flaw.Kind {
	case mcmcf.TransFlow:
		if !routeFeasible(net, flaw.FTR, flaw.SubsequentFTR, cfg) {
			return
		}
		min := distinctCount(net, sol, flaw.Role.ModelIri, flaw.FTR, flaw.SubsequentFTR) + 1
		net.AddDistinct(flaw.Role.ModelIri, flaw.FTR, flaw.SubsequentFTR, min)
	case mcmcf.MinFlow:
		if !routeFeasible(net, flaw.PreviousFTR, flaw.FTR, cfg) {
			return
		}
		min := distinctCount(net, sol, flaw.Role.ModelIri, flaw.PreviousFTR, flaw.FTR) + flaw.Delta
		net.AddDistinct(flaw.Role.ModelIri, flaw.PreviousFTR, flaw.FTR, min)
	}
}

// routeFeasible reports whether requirements a and b's locations have any
// dijkstra-estimated route between them at all, per cfg.LocationEdges.
// Reports true (no gate applied) when the caller configured no location
// graph, when a or b don't resolve to a requirement (an aggregate flaw's
// NoFTR), or when the estimate itself errors — in every such case there's
// nothing to check the flaw against, so it's translated as before. Reports
// false only when a route was estimated and found unreachable
// (math.MaxInt64), per timeline.EstimateTravelTime's documented contract.
func routeFeasible(net *csp.TransportNetwork, a, b int, cfg Config) bool {
	if len(cfg.LocationNames) == 0 {
		return true
	}
	if a < 0 || a >= len(net.Requirements) || b < 0 || b >= len(net.Requirements) {
		return true
	}

	fromIdx := net.Requirements[a].FTR.LocationIdx
	toIdx := net.Requirements[b].FTR.LocationIdx
	if fromIdx < 0 || fromIdx >= len(cfg.LocationNames) || toIdx < 0 || toIdx >= len(cfg.LocationNames) {
		return true
	}

	d, err := timeline.EstimateTravelTime(cfg.LocationNames, cfg.LocationEdges, cfg.LocationNames[fromIdx], cfg.LocationNames[toIdx])
	if err != nil {
		if cfg.Logf != nil {
			cfg.Logf("refine: travel-time estimate failed between requirement %d and %d: %v", a, b, err)
		}

		return true
	}
	if d == math.MaxInt64 {
		if cfg.Logf != nil {
			cfg.Logf("refine: requirement %d -> %d has no estimated route; treating flaw as spurious", a, b)
		}

		return false
	}
	if cfg.Logf != nil {
		cfg.Logf("refine: estimated travel time requirement %d -> %d: %d", a, b, d)
	}

	return true
}

// distinctCount counts role instances of model used by requirement a or b
// (or both) in sol — the "previous solution's role usage" baseline spec
// §4.7's addDistinct folds its delta onto.
func distinctCount(net *csp.TransportNetwork, sol csp.Solution, model string, a, b int) int {
	seen := make(map[int]struct{})
	for _, k := range sol.RoleUsage[a] {
		if net.Roles[k].Role.ModelIri == model {
			seen[k] = struct{}{}
		}
	}
	for _, k := range sol.RoleUsage[b] {
		if net.Roles[k].Role.ModelIri == model {
			seen[k] = struct{}{}
		}
	}

	return len(seen)
}
