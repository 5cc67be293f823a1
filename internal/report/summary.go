package report

import (
	"time"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/stx-x/xlmerge/internal/discovery"
	"github.com/stx-x/xlmerge/internal/pipeline"
	"github.com/stx-x/xlmerge/internal/provenance"
)

// summaryDoc is the machine-readable run summary schema.
type summaryDoc struct {
	Root        string    `yaml:"root"`
	Marker      string    `yaml:"marker"`
	GeneratedAt time.Time `yaml:"generated_at"`

	Discovery  discovery.Summary `yaml:"discovery"`
	Stats      pipeline.Stats    `yaml:"stats"`
	Columns    []string          `yaml:"columns"`
	TotalRows  int               `yaml:"total_rows"`
	DataColumn int               `yaml:"data_columns"`

	Sources      map[string][]provenance.SourceRef `yaml:"column_sources"`
	Completeness []provenance.Completeness         `yaml:"completeness"`
}

// Summary renders the YAML run summary.
func Summary(d Data) ([]byte, error) {
	doc := summaryDoc{
		Root:         d.Root,
		Marker:       d.Marker,
		GeneratedAt:  d.GeneratedAt,
		Discovery:    d.Scan,
		Stats:        d.Stats,
		Columns:      d.Columns,
		TotalRows:    d.TotalRows,
		DataColumn:   d.DataColumnCount(),
		Sources:      d.Sources,
		Completeness: d.Completeness,
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, eris.Wrap(err, "report: marshal summary")
	}
	return out, nil
}
