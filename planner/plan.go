package planner

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/orbital-ops/missionplanner/csp"
	"github.com/orbital-ops/missionplanner/flow"
	"github.com/orbital-ops/missionplanner/mission"
	"github.com/orbital-ops/missionplanner/refine"
	"github.com/orbital-ops/missionplanner/session"
	"github.com/orbital-ops/missionplanner/timeline"
)

// Config bounds a single Plan call; it's the planner-level counterpart of
// refine.Config, translated into one once the mission's timepoint order is
// known.
type Config struct {
	// SolveDeadline bounds each csp.Solve call within the restart loop.
	SolveDeadline time.Duration

	// MaxRestarts bounds the restart/refinement loop (spec §4.7); zero means
	// unbounded (bounded only by flaw-index exhaustion).
	MaxRestarts int

	// FlowOptions configures every mcmcf.Check call the restart loop makes.
	FlowOptions flow.FlowOptions

	// LocationEdges is the optional travel-time-estimate adjacency used for
	// the dijkstra sanity check on translated flaws (see refine.Config).
	LocationEdges []timeline.LocationEdge

	// ArtifactsDir, if non-empty, receives one CSV row per restart iteration
	// (spec §6).
	ArtifactsDir string
}

// Plan runs the full data flow of spec §2: tighten m's temporal networks,
// extract and resolve FluentTimeResources into a csp.TransportNetwork,
// compute each requirement's space-time span via the mission's topological
// timepoint order, and drive the restart/refinement loop (package refine)
// to a flawless (or best-effort) solution.
func Plan(ctx context.Context, m *mission.Mission, sess *session.Session, cfg Config) (refine.Outcome, error) {
	if m.STN != nil {
		if err := m.STN.UpperLowerTightening(); err != nil {
			return refine.Outcome{}, fmt.Errorf("planner: Plan: %w", err)
		}
	}
	if !m.QTCN.IsConsistent() {
		return refine.Outcome{}, fmt.Errorf("planner: Plan: %w", mission.ErrInconsistentTemporalNetwork)
	}

	sess.Logger.Debug("building requirements")
	reqs, roles, err := m.BuildRequirements(ctx)
	if err != nil {
		return refine.Outcome{}, err
	}

	net, err := csp.NewTransportNetwork(reqs, roles, m.ModelPool)
	if err != nil {
		return refine.Outcome{}, err
	}

	spans, t, err := buildSpans(m, reqs)
	if err != nil {
		return refine.Outcome{}, err
	}

	var statsWriter *session.StatsWriter
	if cfg.ArtifactsDir != "" {
		statsWriter, err = session.NewStatsWriter(cfg.ArtifactsDir, sess.ID)
		if err != nil {
			return refine.Outcome{}, fmt.Errorf("planner: Plan: %w", err)
		}
		defer statsWriter.Close()
	}

	rcfg := refine.Config{
		SolveDeadline: cfg.SolveDeadline,
		MaxRestarts:   cfg.MaxRestarts,
		T:             t,
		L:             len(m.Locations),
		FlowOptions:   cfg.FlowOptions,
		LocationNames: m.Locations,
		LocationEdges: cfg.LocationEdges,
		Logf:          func(format string, args ...interface{}) { sess.Logger.Debug(fmt.Sprintf(format, args...)) },
		OnRestart: func(restart int, cost csp.Cost, flawless bool) {
			sess.Stats.IncrRestart()
			sess.Stats.SetDepth(restart)
			if flawless {
				sess.Stats.MarkSolutionFound()
			}
			if statsWriter != nil {
				_ = statsWriter.WriteRow(sess.Stats.Snapshot())
			}
			sess.Logger.Info("restart completed", "restart", restart, "cost", int(cost), "flawless", flawless)
		},
	}

	outcome, err := refine.Run(net, spans, rcfg)
	if err != nil {
		sess.Stats.MarkSolutionStopped()
		sess.Logger.Warn("planning did not converge", "error", err, "restarts", outcome.Restarts)

		return outcome, err
	}

	sess.Logger.Info("planning converged", "restarts", outcome.Restarts, "cost", int(outcome.Cost))

	if cfg.ArtifactsDir != "" {
		g, _, err := refine.BuildSpaceTimeGraph(net, outcome.Solution, spans, rcfg)
		if err != nil {
			return outcome, fmt.Errorf("planner: Plan: %w", err)
		}
		if err := session.WriteSpaceTimeNetwork(cfg.ArtifactsDir, sess.ID, g); err != nil {
			return outcome, fmt.Errorf("planner: Plan: %w", err)
		}
	}

	return outcome, nil
}

// buildSpans resolves a topological timepoint order from m.QTCN.Sort and
// translates every requirement's interval endpoints into a
// timeline.RequirementSpan over that order. Returns the span slice (parallel
// to reqs) and the order's length (the T dimension of every space-time grid
// this plan builds).
func buildSpans(m *mission.Mission, reqs []csp.Requirement) ([]timeline.RequirementSpan, int, error) {
	labels := make([]string, 0, len(m.Timepoints))
	for label := range m.Timepoints {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	order, err := m.QTCN.Sort(labels)
	if err != nil {
		return nil, 0, fmt.Errorf("planner: buildSpans: %w", err)
	}

	index := make(map[string]int, len(order))
	for i, label := range order {
		index[label] = i
	}

	spans := make([]timeline.RequirementSpan, len(reqs))
	for i, r := range reqs {
		fromT, ok := index[r.Interval.From.Label]
		if !ok {
			return nil, 0, fmt.Errorf("planner: buildSpans: requirement %d: unresolved interval start", i)
		}
		toT, ok := index[r.Interval.To.Label]
		if !ok {
			return nil, 0, fmt.Errorf("planner: buildSpans: requirement %d: unresolved interval end", i)
		}
		spans[i] = timeline.RequirementSpan{FromT: fromT, ToT: toT, Location: r.FTR.LocationIdx}
	}

	return spans, len(order), nil
}
