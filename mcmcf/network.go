package mcmcf

import (
	"fmt"

	"github.com/orbital-ops/missionplanner/core"

	"github.com/orbital-ops/missionplanner/timeline"
)

// unboundedCap stands in for "staying put is always allowed" (spec §4.6's
// hold edges have unbounded capacity); large enough that no real mission's
// transport demand could saturate it.
const unboundedCap = int64(1) << 30

func vertex(location, t int) string {
	return fmt.Sprintf("%d,%d", location, t)
}

// BuildGraph constructs the space-time flow graph of spec §4.6: a hold edge
// (l,t)->(l,t+1) of unbounded capacity for every location and timepoint, plus
// a transport edge (l,t)->(l',t+1) for every location pair a mobile role's
// timeline actually traverses at that hop, capacity equal to the number of
// mobile roles making that traversal (spec's "payload-transport-supply-
// demand", here taken as one unit per mobile role — see DESIGN.md).
func BuildGraph(t, l int, mobile []*timeline.RoleTimeline) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())

	for loc := 0; loc < l; loc++ {
		for at := 0; at < t; at++ {
			if err := g.AddVertex(vertex(loc, at)); err != nil {
				return nil, fmt.Errorf("mcmcf: BuildGraph: %w", err)
			}
		}
	}

	for loc := 0; loc < l; loc++ {
		for at := 0; at < t-1; at++ {
			if _, err := g.AddEdge(vertex(loc, at), vertex(loc, at+1), unboundedCap); err != nil {
				return nil, fmt.Errorf("mcmcf: BuildGraph: hold edge: %w", err)
			}
		}
	}

	type pair struct{ from, to string }
	transport := make(map[pair]int64)
	for _, rt := range mobile {
		for at := 0; at < t-1; at++ {
			from, to, ok := rt.Edge(at)
			if !ok || from == to {
				continue
			}
			transport[pair{vertex(from, at), vertex(to, at+1)}]++
		}
	}
	for p, cap := range transport {
		if _, err := g.AddEdge(p.from, p.to, cap); err != nil {
			return nil, fmt.Errorf("mcmcf: BuildGraph: transport edge: %w", err)
		}
	}

	return g, nil
}
