package session

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/orbital-ops/missionplanner/core"
)

// csvHeader names the per-iteration search-statistics columns of spec §6,
// in column order.
var csvHeader = []string{
	"propagate", "fail", "node", "depth", "restart", "nogood", "solution-found", "solution-stopped",
}

// StatsWriter appends one CSV row per restart iteration to a file under a
// session's artifact directory (spec §6: "per-iteration CSV of search
// statistics").
type StatsWriter struct {
	f *os.File
	w *csv.Writer
}

// NewStatsWriter creates (or truncates) <dir>/<id>-stats.csv and writes the
// header row.
func NewStatsWriter(dir string, id fmt.Stringer) (*StatsWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("session: NewStatsWriter: %w", err)
	}
	path := filepath.Join(dir, id.String()+"-stats.csv")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("session: NewStatsWriter: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()

		return nil, fmt.Errorf("session: NewStatsWriter: %w", err)
	}

	return &StatsWriter{f: f, w: w}, nil
}

// WriteRow appends one snapshot as a CSV row and flushes it.
func (sw *StatsWriter) WriteRow(s Stats) error {
	row := []string{
		strconv.Itoa(s.Propagate),
		strconv.Itoa(s.Fail),
		strconv.Itoa(s.Node),
		strconv.Itoa(s.Depth),
		strconv.Itoa(s.Restart),
		strconv.Itoa(s.NoGood),
		strconv.FormatBool(s.SolutionFound),
		strconv.FormatBool(s.SolutionStopped),
	}
	if err := sw.w.Write(row); err != nil {
		return fmt.Errorf("session: WriteRow: %w", err)
	}
	sw.w.Flush()

	return sw.w.Error()
}

// Close flushes and closes the underlying file.
func (sw *StatsWriter) Close() error {
	sw.w.Flush()

	return sw.f.Close()
}

// CopyArtifact copies r verbatim into <dir>/<id>-<name> — used for the
// "parsed mission (copy)" and "organisation model (RDF/XML)" artifacts of
// spec §6, both of which are opaque byte streams the planner never
// interprets beyond what mission/orgmodel already decoded.
func CopyArtifact(dir string, id fmt.Stringer, name string, r io.Reader) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("session: CopyArtifact: %w", err)
	}
	path := filepath.Join(dir, id.String()+"-"+name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("session: CopyArtifact: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("session: CopyArtifact: %w", err)
	}

	return nil
}

// graphSnapshot is a minimal JSON-serializable view of a core.Graph: enough
// to reconstruct its topology and edge weights without depending on core's
// internal representation.
type graphSnapshot struct {
	Vertices []string     `json:"vertices"`
	Edges    []edgeRecord `json:"edges"`
}

type edgeRecord struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Weight   int64  `json:"weight"`
	Directed bool   `json:"directed"`
}

// WriteSpaceTimeNetwork serializes g (the final space-time flow graph of
// spec §4.6-4.7) to <dir>/<id>-spacetime.json — the "final space-time
// network (graph serialisation)" artifact of spec §6.
func WriteSpaceTimeNetwork(dir string, id fmt.Stringer, g *core.Graph) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("session: WriteSpaceTimeNetwork: %w", err)
	}

	snap := graphSnapshot{Vertices: g.Vertices()}
	for _, e := range g.Edges() {
		snap.Edges = append(snap.Edges, edgeRecord{From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed})
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("session: WriteSpaceTimeNetwork: %w", err)
	}

	path := filepath.Join(dir, id.String()+"-spacetime.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("session: WriteSpaceTimeNetwork: %w", err)
	}

	return nil
}
