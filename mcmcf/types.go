package mcmcf

import (
	"errors"

	"github.com/orbital-ops/missionplanner/ftr"
)

// ErrNoCommodities names the zero-commodity case. Check does not return it:
// called with zero commodities, Check returns no flaws and a nil error.
var ErrNoCommodities = errors.New("mcmcf: no commodities to check")

// NoFTR marks a Flaw or Commodity field that has no corresponding requirement
// (a TransFlow flaw's PreviousFTR, every FTR field of an aggregate flaw, a
// final hop's SubsequentFTR).
const NoFTR = -1

// FlawKind is one of the four MCMCF constraint-violation kinds of spec §4.7.
type FlawKind int

const (
	// MinFlow is a single commodity's required delivery flow into FTR, from
	// PreviousFTR, short by Delta.
	MinFlow FlawKind = iota
	// TotalMinFlow is the aggregate MinFlow shortfall across every commodity.
	TotalMinFlow
	// TransFlow is a single commodity's transit capacity between FTR and
	// SubsequentFTR, short by Delta.
	TransFlow
	// TotalTransFlow is the aggregate TransFlow shortfall across every
	// commodity.
	TotalTransFlow
)

// String renders the flaw kind's name.
func (k FlawKind) String() string {
	switch k {
	case MinFlow:
		return "MinFlow"
	case TotalMinFlow:
		return "TotalMinFlow"
	case TransFlow:
		return "TransFlow"
	case TotalTransFlow:
		return "TotalTransFlow"
	default:
		return "Unknown"
	}
}

// Flaw wraps one MCMCF constraint violation (spec §4.7): the affected role,
// the FTRs bounding the short arc, and the shortfall amount.
type Flaw struct {
	Kind          FlawKind
	Role          ftr.Role
	PreviousFTR   int
	FTR           int
	SubsequentFTR int
	Delta         int
}

// Commodity is one immobile role's requirement to move from one FTR's
// location to the next (spec §4.6's "one commodity per immobile role").
// PreviousFTR is the FTR the hop departs from (BuildCommodities always sets
// it); SubsequentFTR is NoFTR for its last hop (nothing follows).
type Commodity struct {
	Role          ftr.Role
	PreviousFTR   int
	FTR           int
	SubsequentFTR int
	FromLocation  int
	FromT         int
	ToLocation    int
	ToT           int
	IsFinalHop    bool
}
