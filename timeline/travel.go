package timeline

import (
	"fmt"
	"math"

	"github.com/orbital-ops/missionplanner/core"
	"github.com/orbital-ops/missionplanner/dijkstra"
)

// LocationEdge is one declared adjacency between two locations, weighted by
// an external travel-time estimate (spec §1: "travel time is an external
// estimate" — this package never simulates physical dynamics, it only
// shortest-paths over estimates a caller supplies).
type LocationEdge struct {
	From, To string
	Weight   int64
}

// EstimateTravelTime shortest-paths from from to to over the adjacency
// edges, used by the restart driver as a sanity check on a flaw's delta
// before it's folded into a DistinctConstraint: a flaw asking for transport
// between locations with no feasible route at all is a signal the flaw is
// spurious rather than something addDistinct can fix. Grounded on
// dijkstra.Dijkstra run over a small location-adjacency core.Graph built
// from edges.
//
// Returns math.MaxInt64 if to is unreachable from from.
func EstimateTravelTime(locations []string, edges []LocationEdge, from, to string) (int64, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, loc := range locations {
		if err := g.AddVertex(loc); err != nil {
			return 0, fmt.Errorf("timeline: EstimateTravelTime: %w", err)
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return 0, fmt.Errorf("timeline: EstimateTravelTime: %w", err)
		}
	}

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(from))
	if err != nil {
		return 0, fmt.Errorf("timeline: EstimateTravelTime: %w", err)
	}

	d, ok := dist[to]
	if !ok {
		return math.MaxInt64, nil
	}

	return d, nil
}
