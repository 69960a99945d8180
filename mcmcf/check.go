package mcmcf

import (
	"sort"

	"github.com/orbital-ops/missionplanner/core"
	"github.com/orbital-ops/missionplanner/flow"

	"github.com/orbital-ops/missionplanner/timeline"
)

// requiredFlow is the unit of flow a single role-transport commodity asks
// for: one role instance moving between two space-time nodes.
const requiredFlow = 1

// Check runs a feasibility probe for every commodity against g, consuming
// capacity across commodities by threading each probe's residual graph into
// the next (see DESIGN.md). Commodities whose endpoints coincide (the role
// never needs to move for that hop) are skipped. Returns the Flaws for every
// short commodity plus, when two or more commodities of the same shape are
// short, one Total* aggregate flaw (spec §4.7).
func Check(g *core.Graph, commodities []Commodity, opts flow.FlowOptions) ([]Flaw, error) {
	if len(commodities) == 0 {
		return nil, nil
	}

	ordered := append([]Commodity(nil), commodities...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].FromT < ordered[j].FromT })

	current := g
	var flaws []Flaw
	minFlowTotal, transFlowTotal := 0, 0
	minFlowHops, transFlowHops := 0, 0

	for _, c := range ordered {
		if c.FromLocation == c.ToLocation {
			continue
		}
		if !current.HasVertex(vertex(c.FromLocation, c.FromT)) || !current.HasVertex(vertex(c.ToLocation, c.ToT)) {
			continue
		}

		achieved, residual, err := flow.Dinic(current, vertex(c.FromLocation, c.FromT), vertex(c.ToLocation, c.ToT), opts)
		if err != nil {
			return nil, err
		}
		current = residual

		if achieved+1e-9 >= float64(requiredFlow) {
			continue
		}
		delta := requiredFlow - int(achieved)

		if c.IsFinalHop {
			flaws = append(flaws, Flaw{Kind: MinFlow, Role: c.Role, PreviousFTR: c.PreviousFTR, FTR: c.FTR, SubsequentFTR: NoFTR, Delta: delta})
			minFlowTotal += delta
			minFlowHops++
		} else {
			flaws = append(flaws, Flaw{Kind: TransFlow, Role: c.Role, PreviousFTR: NoFTR, FTR: c.FTR, SubsequentFTR: c.SubsequentFTR, Delta: delta})
			transFlowTotal += delta
			transFlowHops++
		}
	}

	if minFlowHops >= 2 {
		flaws = append(flaws, Flaw{Kind: TotalMinFlow, PreviousFTR: NoFTR, FTR: NoFTR, SubsequentFTR: NoFTR, Delta: minFlowTotal})
	}
	if transFlowHops >= 2 {
		flaws = append(flaws, Flaw{Kind: TotalTransFlow, PreviousFTR: NoFTR, FTR: NoFTR, SubsequentFTR: NoFTR, Delta: transFlowTotal})
	}

	return flaws, nil
}

// BuildCommodities derives one Commodity per (previous, current) hop in each
// immobile role's ordered pin sequence where the location changes — the
// "one commodity per immobile role" of spec §4.6, with waypoints implicit in
// the per-hop decomposition (every intermediate pinned stop is both the sink
// of one commodity hop and the source of the next).
func BuildCommodities(pinsByRole map[int][]timeline.Pin) []Commodity {
	var out []Commodity
	for _, pins := range pinsByRole {
		sorted := append([]timeline.Pin(nil), pins...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].FromT < sorted[j].FromT })

		for i := 1; i < len(sorted); i++ {
			prev, cur := sorted[i-1], sorted[i]
			if prev.Location == cur.Location {
				continue
			}
			out = append(out, Commodity{
				Role:          prev.Role,
				PreviousFTR:   prev.FTRIdx,
				FTR:           cur.FTRIdx,
				SubsequentFTR: nextFTR(sorted, i),
				FromLocation:  prev.Location,
				FromT:         prev.ToT,
				ToLocation:    cur.Location,
				ToT:           cur.FromT,
				IsFinalHop:    i == len(sorted)-1,
			})
		}
	}

	return out
}

func nextFTR(spans []timeline.Pin, i int) int {
	if i+1 < len(spans) {
		return spans[i+1].FTRIdx
	}

	return NoFTR
}
