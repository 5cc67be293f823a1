// Package report renders the data a run produces — statistics, column
// provenance, completeness — as human-readable (text, HTML) and
// machine-readable (YAML) artifacts. It consumes pipeline output and
// never mutates it.
package report

import (
	"sort"
	"time"

	"github.com/stx-x/xlmerge/internal/discovery"
	"github.com/stx-x/xlmerge/internal/pipeline"
	"github.com/stx-x/xlmerge/internal/provenance"
)

// Data is everything the renderers need about one run.
type Data struct {
	Root        string
	Marker      string
	GeneratedAt time.Time

	Scan         discovery.Summary
	Stats        pipeline.Stats
	Columns      []string // merged schema, unified order
	TotalRows    int
	Sources      map[string][]provenance.SourceRef
	Completeness []provenance.Completeness
}

// DataColumnCount returns the number of merged columns that carry
// extracted data rather than provenance.
func (d Data) DataColumnCount() int {
	n := len(d.Columns) - 3
	if n < 0 {
		return 0
	}
	return n
}

// sortedSourceColumns returns the source-map keys in schema-stable
// order so every renderer lists columns identically.
func (d Data) sortedSourceColumns() []string {
	cols := make([]string, 0, len(d.Sources))
	for c := range d.Sources {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}
