package mission

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/orbital-ops/missionplanner/ftr"
	"github.com/orbital-ops/missionplanner/orgmodel"
	"github.com/orbital-ops/missionplanner/pointalgebra"
	"github.com/orbital-ops/missionplanner/qtcn"
	"github.com/orbital-ops/missionplanner/stn"
)

// xmlMission is the on-disk schema of spec §6's mission file: one element
// per Mission building block, kept deliberately flat (attributes, not
// nested object graphs) so encoding/xml can decode it without custom
// UnmarshalXML methods.
type xmlMission struct {
	XMLName                  xml.Name                  `xml:"mission"`
	Timepoints               []xmlTimepoint             `xml:"timepoints>timepoint"`
	Intervals                []xmlInterval              `xml:"intervals>interval"`
	Locations                []xmlLocation              `xml:"locations>location"`
	TemporalConstraints      []xmlConstraint            `xml:"temporal-constraints>constraint"`
	QuantitativeConstraints  []xmlQuantConstraint       `xml:"quantitative-constraints>constraint"`
	PersistenceConditions    []xmlPersistenceCondition  `xml:"persistence-conditions>persistence-condition"`
	ModelPool                []xmlModel                 `xml:"model-pool>model"`
	Overrides                []xmlOverride              `xml:"overrides>override"`
}

type xmlTimepoint struct {
	Label string `xml:"label,attr"`
}

type xmlInterval struct {
	From string `xml:"from,attr"`
	To   string `xml:"to,attr"`
}

type xmlLocation struct {
	ID string `xml:"id,attr"`
}

type xmlConstraint struct {
	From     string `xml:"from,attr"`
	To       string `xml:"to,attr"`
	Relation string `xml:"relation,attr"`
}

type xmlQuantConstraint struct {
	From string `xml:"from,attr"`
	To   string `xml:"to,attr"`
	Lo   int64  `xml:"lo,attr"`
	Hi   int64  `xml:"hi,attr"`
}

type xmlPersistenceCondition struct {
	Resource string `xml:"resource,attr"`
	Location string `xml:"location,attr"`
	From     string `xml:"from,attr"`
	To       string `xml:"to,attr"`
	Kind     string `xml:"kind,attr"`
	N        int    `xml:"n,attr"`
}

type xmlModel struct {
	IRI    string `xml:"iri,attr"`
	Count  int    `xml:"count,attr"`
	Mobile bool   `xml:"mobile,attr"`
}

type xmlOverride struct {
	Model string `xml:"model,attr"`
	Count int    `xml:"count,attr"`
}

// LoadXML decodes a mission file from r against orgModel and assembles a
// Mission. Quantitative constraints are optional: if the file declares none,
// the returned Mission.STN is nil.
func LoadXML(r io.Reader, orgModel orgmodel.Model, opts ...MissionOption) (*Mission, error) {
	var doc xmlMission
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("mission: LoadXML: %w: %w", ErrParse, err)
	}

	timepoints := make(map[string]*pointalgebra.Timepoint, len(doc.Timepoints))
	for _, tp := range doc.Timepoints {
		timepoints[tp.Label] = pointalgebra.NewQualitative(tp.Label)
	}

	intervals := make([]*pointalgebra.Interval, len(doc.Intervals))
	intervalLabels := make([]string, len(doc.Intervals))
	for i, iv := range doc.Intervals {
		from, ok := timepoints[iv.From]
		if !ok {
			return nil, fmt.Errorf("mission: LoadXML: interval from %q: %w", iv.From, ftr.ErrUnknownSymbol)
		}
		to, ok := timepoints[iv.To]
		if !ok {
			return nil, fmt.Errorf("mission: LoadXML: interval to %q: %w", iv.To, ftr.ErrUnknownSymbol)
		}
		intervals[i] = pointalgebra.NewInterval(from, to, nil)
		intervalLabels[i] = IntervalLabel(iv.From, iv.To)
	}

	locations := make([]string, len(doc.Locations))
	for i, l := range doc.Locations {
		locations[i] = l.ID
	}

	qtcnNet := qtcn.NewNetwork()
	for _, c := range doc.TemporalConstraints {
		rel, err := parseRelation(c.Relation)
		if err != nil {
			return nil, err
		}
		qtcnNet.AddConstraint(c.From, c.To, rel)
	}

	var stnNet *stn.Network
	if len(doc.QuantitativeConstraints) > 0 {
		stnNet = stn.NewNetwork()
		for _, c := range doc.QuantitativeConstraints {
			stnNet.AddConstraint(c.From, c.To, c.Lo, c.Hi)
		}
	}

	pool := ftr.ModelPool{}
	mobility := make(map[string]bool, len(doc.ModelPool))
	for _, mdl := range doc.ModelPool {
		pool[mdl.IRI] = mdl.Count
		mobility[mdl.IRI] = mdl.Mobile
	}

	var resources []string
	seenResource := make(map[string]struct{})
	conditions := make([]ftr.PersistenceCondition, len(doc.PersistenceConditions))
	for i, pc := range doc.PersistenceConditions {
		kind, err := parseCardinalityKind(pc.Kind)
		if err != nil {
			return nil, err
		}
		if _, ok := seenResource[pc.Resource]; !ok {
			seenResource[pc.Resource] = struct{}{}
			resources = append(resources, pc.Resource)
		}
		locIdx := indexOf(locations, pc.Location)
		if locIdx < 0 {
			return nil, fmt.Errorf("mission: LoadXML: location %q: %w", pc.Location, ftr.ErrUnknownSymbol)
		}
		conditions[i] = ftr.PersistenceCondition{
			StateVar: ftr.StateVariable{Function: "at", Resource: pc.Resource},
			Value:    ftr.LocationCardinality{LocationIdx: locIdx, N: pc.N, Kind: kind},
			FromTp:   pc.From,
			ToTp:     pc.To,
		}
	}

	for _, o := range doc.Overrides {
		opts = append(opts, WithModelPoolOverride(o.Model, o.Count))
	}

	m, err := NewMission(timepoints, intervals, intervalLabels, locations, resources, pool, mobility, conditions, qtcnNet, orgModel, opts...)
	if err != nil {
		return nil, err
	}
	m.STN = stnNet

	return m, nil
}

// LoadXMLFile opens path and decodes it via LoadXML.
func LoadXMLFile(path string, orgModel orgmodel.Model, opts ...MissionOption) (*Mission, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mission: LoadXMLFile: %w: %w", ErrParse, err)
	}
	defer f.Close()

	return LoadXML(f, orgModel, opts...)
}

func indexOf(ss []string, s string) int {
	for i, v := range ss {
		if v == s {
			return i
		}
	}

	return -1
}

func parseRelation(s string) (pointalgebra.Relation, error) {
	switch s {
	case "<":
		return pointalgebra.Less, nil
	case ">":
		return pointalgebra.Greater, nil
	case "=":
		return pointalgebra.Equal, nil
	case "<=":
		return pointalgebra.LessEqual, nil
	case ">=":
		return pointalgebra.GreaterEqual, nil
	case "!=":
		return pointalgebra.NotEqual, nil
	default:
		return 0, fmt.Errorf("mission: LoadXML: unknown relation %q: %w", s, ErrParse)
	}
}

func parseCardinalityKind(s string) (ftr.CardinalityKind, error) {
	switch s {
	case "MIN":
		return ftr.Min, nil
	case "MAX":
		return ftr.Max, nil
	case "EXACT":
		return ftr.Exact, nil
	default:
		return 0, fmt.Errorf("mission: LoadXML: unknown cardinality kind %q: %w", s, ErrParse)
	}
}
