package mission

import (
	"fmt"
	"time"

	"github.com/orbital-ops/missionplanner/ftr"
	"github.com/orbital-ops/missionplanner/orgmodel"
	"github.com/orbital-ops/missionplanner/pointalgebra"
	"github.com/orbital-ops/missionplanner/qtcn"
	"github.com/orbital-ops/missionplanner/stn"
)

// defaultOntologyTimeout bounds every ontology query issued through the
// ftr.ResourceCatalog surface (IsFunctionality, FunctionalSaturationBound),
// which carry no context of their own (see catalog.go). BuildRequirements's
// richer CoalitionDomain call is bounded by the same default unless
// WithOntologyTimeout overrides it.
const defaultOntologyTimeout = 5 * time.Second

// Mission is a plan's static input: the timepoint/interval/location/resource
// universe, the available model pool and its mobility classification, the
// qualitative (and optionally quantitative) temporal network, the
// persistence conditions FTR extraction consumes, and the organization-model
// handle used to resolve resource coalitions. Grounded on original
// Mission.hpp/Mission.cpp.
type Mission struct {
	Timepoints map[string]*pointalgebra.Timepoint

	Intervals   []*pointalgebra.Interval
	intervalIdx map[string]int // "from..to" label -> index into Intervals

	Locations   []string
	locationIdx map[string]int

	Resources   []string
	resourceIdx map[string]int

	ModelPool ftr.ModelPool
	Mobility  map[string]bool

	PersistenceConditions []ftr.PersistenceCondition

	QTCN *qtcn.Network
	STN  *stn.Network // nil if the mission declared no quantitative constraints

	OrgModel        orgmodel.Model
	OntologyTimeout time.Duration
}

// IntervalLabel is the "from..to" key ftr.Extract resolves a persistence
// condition's interval against (matching ftr.Extract's own construction of
// that key from PersistenceCondition.FromTp/ToTp).
func IntervalLabel(fromTp, toTp string) string { return fromTp + ".." + toTp }

// NewMission assembles a Mission from its decoded parts and validates it.
// intervalLabels must be parallel to intervals (intervalLabels[i] is
// intervals[i]'s IntervalLabel key). Returns ErrInconsistentMission if
// resources or intervals is empty — no plan can possibly be built from such
// a mission (spec §7).
func NewMission(
	timepoints map[string]*pointalgebra.Timepoint,
	intervals []*pointalgebra.Interval,
	intervalLabels []string,
	locations []string,
	resources []string,
	pool ftr.ModelPool,
	mobility map[string]bool,
	conditions []ftr.PersistenceCondition,
	qtcnNet *qtcn.Network,
	orgModel orgmodel.Model,
	opts ...MissionOption,
) (*Mission, error) {
	if len(resources) == 0 || len(intervals) == 0 {
		return nil, ErrInconsistentMission
	}
	if len(intervals) != len(intervalLabels) {
		return nil, fmt.Errorf("mission: NewMission: %d intervals but %d labels", len(intervals), len(intervalLabels))
	}
	if qtcnNet != nil && !qtcnNet.IsConsistent() {
		return nil, fmt.Errorf("mission: NewMission: %w", ErrInconsistentTemporalNetwork)
	}

	intervalIdx := make(map[string]int, len(intervals))
	for i, label := range intervalLabels {
		intervalIdx[label] = i
	}

	locationIdx := make(map[string]int, len(locations))
	for i, l := range locations {
		locationIdx[l] = i
	}

	resourceIdx := make(map[string]int, len(resources))
	for i, r := range resources {
		resourceIdx[r] = i
	}

	if pool == nil {
		pool = ftr.ModelPool{}
	}
	if mobility == nil {
		mobility = make(map[string]bool)
	}

	m := &Mission{
		Timepoints:            timepoints,
		Intervals:             intervals,
		intervalIdx:           intervalIdx,
		Locations:             locations,
		locationIdx:           locationIdx,
		Resources:             resources,
		resourceIdx:           resourceIdx,
		ModelPool:             pool,
		Mobility:              mobility,
		PersistenceConditions: conditions,
		QTCN:                  qtcnNet,
		OrgModel:              orgModel,
		OntologyTimeout:       defaultOntologyTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// LocationIndex resolves a location id to its index, or ok=false if the
// mission never declared it.
func (m *Mission) LocationIndex(id string) (int, bool) {
	idx, ok := m.locationIdx[id]

	return idx, ok
}

// Clone returns a deep copy of m sharing no mutable state: mutating one
// mission's QTCN, STN, ModelPool, or persistence conditions never affects
// the other. Timepoints and Intervals are deep-copied together so cloned
// Intervals reference the clone's own Timepoint instances rather than the
// original's. OrgModel is shared unchanged — it's treated as an immutable,
// read-only collaborator for the duration of a plan (spec §5).
func (m *Mission) Clone() *Mission {
	tpRemap := make(map[*pointalgebra.Timepoint]*pointalgebra.Timepoint, len(m.Timepoints))
	timepoints := make(map[string]*pointalgebra.Timepoint, len(m.Timepoints))
	for label, tp := range m.Timepoints {
		cp := *tp
		timepoints[label] = &cp
		tpRemap[tp] = &cp
	}

	intervals := make([]*pointalgebra.Interval, len(m.Intervals))
	for i, iv := range m.Intervals {
		intervals[i] = pointalgebra.NewInterval(remapTimepoint(tpRemap, iv.From), remapTimepoint(tpRemap, iv.To), iv.Cmp)
	}

	return &Mission{
		Timepoints:            timepoints,
		Intervals:             intervals,
		intervalIdx:           cloneStringIntMap(m.intervalIdx),
		Locations:             append([]string(nil), m.Locations...),
		locationIdx:           cloneStringIntMap(m.locationIdx),
		Resources:             append([]string(nil), m.Resources...),
		resourceIdx:           cloneStringIntMap(m.resourceIdx),
		ModelPool:             m.ModelPool.Clone(),
		Mobility:              cloneStringBoolMap(m.Mobility),
		PersistenceConditions: append([]ftr.PersistenceCondition(nil), m.PersistenceConditions...),
		QTCN:                  m.QTCN.Clone(),
		STN:                   cloneSTN(m.STN),
		OrgModel:              m.OrgModel,
		OntologyTimeout:       m.OntologyTimeout,
	}
}

func remapTimepoint(remap map[*pointalgebra.Timepoint]*pointalgebra.Timepoint, tp *pointalgebra.Timepoint) *pointalgebra.Timepoint {
	if cp, ok := remap[tp]; ok {
		return cp
	}
	cp := *tp

	return &cp
}

func cloneSTN(n *stn.Network) *stn.Network {
	if n == nil {
		return nil
	}

	return n.Clone()
}

func cloneStringIntMap(m map[string]int) map[string]int {
	cp := make(map[string]int, len(m))
	for k, v := range m {
		cp[k] = v
	}

	return cp
}

func cloneStringBoolMap(m map[string]bool) map[string]bool {
	cp := make(map[string]bool, len(m))
	for k, v := range m {
		cp[k] = v
	}

	return cp
}
