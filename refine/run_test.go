package refine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orbital-ops/missionplanner/csp"
	"github.com/orbital-ops/missionplanner/ftr"
	"github.com/orbital-ops/missionplanner/pointalgebra"
	"github.com/orbital-ops/missionplanner/timeline"
)

func quantInterval(t *testing.T, lo, hi int64) *pointalgebra.Interval {
	t.Helper()
	from, err := pointalgebra.NewQuantitative(lo, lo)
	require.NoError(t, err)
	to, err := pointalgebra.NewQuantitative(hi, hi)
	require.NoError(t, err)

	return pointalgebra.NewInterval(from, to, nil)
}

func fakeFTR(idx int) *ftr.FluentTimeResource {
	return &ftr.FluentTimeResource{MissionRef: "mission", ResourceIdxSet: map[int]struct{}{idx: {}}, IntervalIdx: idx}
}

// TestRunRefinesStationaryPairIntoDistinctInstances reproduces spec §4.7's
// MinFlow refinement: two non-overlapping requirements at different
// locations with no mobile transport capacity can't be served by one
// travelling instance of an immobile model, so the driver should add a
// DistinctConstraint forcing a second instance, which removes the flaw.
func TestRunRefinesStationaryPairIntoDistinctInstances(t *testing.T) {
	reqs := []csp.Requirement{
		{FTR: fakeFTR(0), Interval: quantInterval(t, 0, 0), Domain: []ftr.ModelPool{{"Payload": 1}}},
		{FTR: fakeFTR(1), Interval: quantInterval(t, 2, 2), Domain: []ftr.ModelPool{{"Payload": 1}}},
	}
	roles := []ftr.RoleInfo{
		{Role: ftr.Role{InstanceID: "Payload#0", ModelIri: "Payload"}, Mobility: false},
		{Role: ftr.Role{InstanceID: "Payload#1", ModelIri: "Payload"}, Mobility: false},
	}
	net, err := csp.NewTransportNetwork(reqs, roles, ftr.ModelPool{"Payload": 2})
	require.NoError(t, err)

	spans := []timeline.RequirementSpan{
		{FromT: 0, ToT: 0, Location: 0},
		{FromT: 2, ToT: 2, Location: 1},
	}

	var restarts []int
	cfg := Config{T: 3, L: 2, MaxRestarts: 5, OnRestart: func(restart int, _ csp.Cost, _ bool) {
		restarts = append(restarts, restart)
	}}

	outcome, err := Run(net, spans, cfg)
	require.NoError(t, err)
	require.Equal(t, csp.Cost(0), outcome.Cost)
	require.Equal(t, 1, outcome.Restarts)
	require.NotEqual(t, outcome.Solution.RoleUsage[0][0], outcome.Solution.RoleUsage[1][0])
	require.Equal(t, []int{0, 1}, restarts)
}

// TestRunLogsTravelEstimateOnFlaw exercises the optional dijkstra-backed
// sanity check applyFlaw attaches to every translated flaw when the caller
// supplies a location graph.
func TestRunLogsTravelEstimateOnFlaw(t *testing.T) {
	reqs := []csp.Requirement{
		{FTR: fakeFTR(0), Interval: quantInterval(t, 0, 0), Domain: []ftr.ModelPool{{"Payload": 1}}},
		{FTR: fakeFTR(1), Interval: quantInterval(t, 2, 2), Domain: []ftr.ModelPool{{"Payload": 1}}},
	}
	roles := []ftr.RoleInfo{
		{Role: ftr.Role{InstanceID: "Payload#0", ModelIri: "Payload"}, Mobility: false},
		{Role: ftr.Role{InstanceID: "Payload#1", ModelIri: "Payload"}, Mobility: false},
	}
	net, err := csp.NewTransportNetwork(reqs, roles, ftr.ModelPool{"Payload": 2})
	require.NoError(t, err)

	spans := []timeline.RequirementSpan{
		{FromT: 0, ToT: 0, Location: 0},
		{FromT: 2, ToT: 2, Location: 1},
	}

	var logged []string
	cfg := Config{
		T: 3, L: 2, MaxRestarts: 5,
		LocationNames: []string{"L0", "L1"},
		Logf:          func(format string, args ...interface{}) { logged = append(logged, format) },
	}

	_, err = Run(net, spans, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, logged)
}

func TestRunReturnsFirstSolutionWhenAlreadyFlawless(t *testing.T) {
	reqs := []csp.Requirement{
		{FTR: fakeFTR(0), Interval: quantInterval(t, 0, 0), Domain: []ftr.ModelPool{{"Drone": 1}}},
	}
	roles := []ftr.RoleInfo{{Role: ftr.Role{InstanceID: "Drone#0", ModelIri: "Drone"}, Mobility: true}}
	net, err := csp.NewTransportNetwork(reqs, roles, ftr.ModelPool{"Drone": 1})
	require.NoError(t, err)

	spans := []timeline.RequirementSpan{{FromT: 0, ToT: 0, Location: 0}}

	outcome, err := Run(net, spans, Config{T: 2, L: 1, MaxRestarts: 3})
	require.NoError(t, err)
	require.Equal(t, csp.Cost(0), outcome.Cost)
	require.Equal(t, 0, outcome.Restarts)
}
