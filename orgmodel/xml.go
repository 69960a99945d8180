package orgmodel

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/orbital-ops/missionplanner/ftr"
)

// xmlOrgModel is the on-disk schema for a flat organization-model document:
// a subclass table, per-resource saturation bounds, and per-coalition-key
// candidate pools. Spec §6 treats the organization model as an external
// ontology the planner only ever queries through Model; this loader is a
// pragmatic bridge for missions that ship their org model alongside the
// mission file rather than behind a full ontology store.
type xmlOrgModel struct {
	XMLName     xml.Name          `xml:"org-model"`
	Subclasses  []xmlSubclass     `xml:"subclasses>subclass"`
	Bounds      []xmlBound        `xml:"saturation-bounds>bound"`
	Coalitions  []xmlCoalitionSet `xml:"coalitions>coalition-set"`
}

type xmlSubclass struct {
	IRI        string `xml:"iri,attr"`
	Superclass string `xml:"superclass,attr"`
}

type xmlBound struct {
	Resource string     `xml:"resource,attr"`
	Models   []xmlModel `xml:"model"`
}

type xmlModel struct {
	IRI   string `xml:"iri,attr"`
	Count int    `xml:"count,attr"`
}

type xmlCoalitionSet struct {
	Resources  []xmlResourceRef `xml:"resource"`
	Candidates []xmlCandidate   `xml:"candidate"`
}

type xmlResourceRef struct {
	IRI string `xml:"iri,attr"`
}

type xmlCandidate struct {
	Models []xmlModel `xml:"model"`
}

// LoadXML decodes an organization-model document from r into a Memory.
func LoadXML(r io.Reader) (*Memory, error) {
	var doc xmlOrgModel
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("orgmodel: LoadXML: %w", err)
	}

	superclasses := make(map[string][]string, len(doc.Subclasses))
	for _, s := range doc.Subclasses {
		superclasses[s.IRI] = append(superclasses[s.IRI], s.Superclass)
	}

	satBounds := make(map[string]ftr.ModelPool, len(doc.Bounds))
	for _, b := range doc.Bounds {
		satBounds[b.Resource] = modelPoolOf(b.Models)
	}

	coalitions := make(map[string][]ftr.ModelPool, len(doc.Coalitions))
	for _, cs := range doc.Coalitions {
		resources := make([]string, len(cs.Resources))
		for i, r := range cs.Resources {
			resources[i] = r.IRI
		}
		key := CoalitionKey(resources)
		for _, c := range cs.Candidates {
			coalitions[key] = append(coalitions[key], modelPoolOf(c.Models))
		}
	}

	return NewMemory(superclasses, satBounds, coalitions), nil
}

// LoadXMLFile opens path and decodes it via LoadXML.
func LoadXMLFile(path string) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("orgmodel: LoadXMLFile: %w", err)
	}
	defer f.Close()

	return LoadXML(f)
}

func modelPoolOf(models []xmlModel) ftr.ModelPool {
	pool := make(ftr.ModelPool, len(models))
	for _, m := range models {
		pool[m.IRI] = m.Count
	}

	return pool
}
