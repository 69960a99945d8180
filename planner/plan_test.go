package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orbital-ops/missionplanner/ftr"
	"github.com/orbital-ops/missionplanner/mission"
	"github.com/orbital-ops/missionplanner/orgmodel"
	"github.com/orbital-ops/missionplanner/pointalgebra"
	"github.com/orbital-ops/missionplanner/qtcn"
	"github.com/orbital-ops/missionplanner/session"
)

// TestPlanScenarioATrivialFeasibility reproduces spec §8 Scenario A: two
// locations, one mobile Actor, one requirement per location over
// back-to-back intervals. A single role should satisfy both with zero
// residual flaws and zero restarts.
func TestPlanScenarioATrivialFeasibility(t *testing.T) {
	t0 := pointalgebra.NewQualitative("t0")
	t1 := pointalgebra.NewQualitative("t1")
	t2 := pointalgebra.NewQualitative("t2")
	timepoints := map[string]*pointalgebra.Timepoint{"t0": t0, "t1": t1, "t2": t2}

	qtcnNet := qtcn.NewNetwork()
	qtcnNet.AddConstraint("t0", "t1", pointalgebra.Less)
	qtcnNet.AddConstraint("t1", "t2", pointalgebra.Less)

	intervals := []*pointalgebra.Interval{
		pointalgebra.NewInterval(t0, t1, nil),
		pointalgebra.NewInterval(t1, t2, nil),
	}
	intervalLabels := []string{mission.IntervalLabel("t0", "t1"), mission.IntervalLabel("t1", "t2")}

	locations := []string{"L1", "L2"}
	resources := []string{"Actor"}
	pool := ftr.ModelPool{"Actor": 1}
	mobility := map[string]bool{"Actor": true}

	conditions := []ftr.PersistenceCondition{
		{
			StateVar: ftr.StateVariable{Function: "at", Resource: "Actor"},
			Value:    ftr.LocationCardinality{LocationIdx: 0, N: 1, Kind: ftr.Min},
			FromTp:   "t0", ToTp: "t1",
		},
		{
			StateVar: ftr.StateVariable{Function: "at", Resource: "Actor"},
			Value:    ftr.LocationCardinality{LocationIdx: 1, N: 1, Kind: ftr.Min},
			FromTp:   "t1", ToTp: "t2",
		},
	}

	org := orgmodel.NewMemory(nil, nil, map[string][]ftr.ModelPool{
		orgmodel.CoalitionKey([]string{"Actor"}): {{"Actor": 1}},
	})

	m, err := mission.NewMission(timepoints, intervals, intervalLabels, locations, resources, pool, mobility, conditions, qtcnNet, org)
	require.NoError(t, err)

	sess := session.New()
	outcome, err := Plan(context.Background(), m, sess, Config{MaxRestarts: 5})
	require.NoError(t, err)
	require.Equal(t, 0, outcome.Restarts)
	require.Zero(t, outcome.Cost)
	require.Equal(t, outcome.Solution.RoleUsage[0], outcome.Solution.RoleUsage[1])
}

// TestPlanRejectsInconsistentTemporalNetwork covers spec §8 Scenario D at
// the planner level: an already-inconsistent QTCN is caught by
// mission.NewMission before Plan is ever called, so Plan itself only needs
// to guard against a QTCN mutated into inconsistency after construction
// (e.g. by a later AddConstraint) — exercised here directly.
func TestPlanRejectsInconsistentTemporalNetwork(t *testing.T) {
	t0 := pointalgebra.NewQualitative("t0")
	t1 := pointalgebra.NewQualitative("t1")
	timepoints := map[string]*pointalgebra.Timepoint{"t0": t0, "t1": t1}

	qtcnNet := qtcn.NewNetwork()
	qtcnNet.AddConstraint("t0", "t1", pointalgebra.Less)

	iv := pointalgebra.NewInterval(t0, t1, nil)
	org := orgmodel.NewMemory(nil, nil, map[string][]ftr.ModelPool{
		orgmodel.CoalitionKey([]string{"Actor"}): {{"Actor": 1}},
	})

	m, err := mission.NewMission(
		timepoints,
		[]*pointalgebra.Interval{iv},
		[]string{mission.IntervalLabel("t0", "t1")},
		[]string{"L1"},
		[]string{"Actor"},
		ftr.ModelPool{"Actor": 1},
		map[string]bool{"Actor": true},
		nil,
		qtcnNet,
		org,
	)
	require.NoError(t, err)

	qtcnNet.AddConstraint("t1", "t0", pointalgebra.Less)

	sess := session.New()
	_, err = Plan(context.Background(), m, sess, Config{})
	require.ErrorIs(t, err, mission.ErrInconsistentTemporalNetwork)
}
