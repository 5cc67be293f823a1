// Package provenance derives audit data from extracted tables: which
// worksheets contributed each column, and how complete each column is
// in the merged output.
package provenance

import (
	"sort"

	"github.com/stx-x/xlmerge/internal/table"
)

// SourceRef identifies one worksheet within one workbook.
type SourceRef struct {
	Source string `json:"source" yaml:"source"`
	Sheet  string `json:"sheet" yaml:"sheet"`
}

// ColumnSources maps every data column to the deduplicated, sorted set
// of worksheets whose tagged table carried that column with at least
// one row.
func ColumnSources(tables []table.TaggedTable) map[string][]SourceRef {
	set := make(map[string]map[SourceRef]struct{})
	for _, tt := range tables {
		if len(tt.Rows) == 0 {
			continue
		}
		ref := SourceRef{Source: tt.Source, Sheet: tt.Sheet}
		for _, c := range tt.DataColumns() {
			if set[c] == nil {
				set[c] = make(map[SourceRef]struct{})
			}
			set[c][ref] = struct{}{}
		}
	}

	out := make(map[string][]SourceRef, len(set))
	for c, refs := range set {
		list := make([]SourceRef, 0, len(refs))
		for r := range refs {
			list = append(list, r)
		}
		sort.Slice(list, func(i, j int) bool {
			if list[i].Source != list[j].Source {
				return list[i].Source < list[j].Source
			}
			return list[i].Sheet < list[j].Sheet
		})
		out[c] = list
	}
	return out
}

// Completeness is the non-null fill statistic for one data column of
// the merged table.
type Completeness struct {
	Column  string  `json:"column" yaml:"column"`
	NonNull int     `json:"non_null" yaml:"non_null"`
	Ratio   float64 `json:"ratio" yaml:"ratio"` // percentage, 0-100
}

// CompletenessStats computes per-column non-null counts and fill ratios
// over the merged table's data columns. Results are ordered by ratio
// descending, then column name, matching how the report presents them.
// A merged table with zero rows yields zero ratios rather than a
// division error.
func CompletenessStats(merged table.Table) []Completeness {
	stats := make([]Completeness, 0, len(merged.Columns))
	for i, c := range merged.Columns {
		if table.IsProvenance(c) {
			continue
		}
		nonNull := 0
		for _, r := range merged.Rows {
			if !r[i].IsNull() {
				nonNull++
			}
		}
		s := Completeness{Column: c, NonNull: nonNull}
		if len(merged.Rows) > 0 {
			s.Ratio = float64(nonNull) / float64(len(merged.Rows)) * 100
		}
		stats = append(stats, s)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Ratio != stats[j].Ratio {
			return stats[i].Ratio > stats[j].Ratio
		}
		return stats[i].Column < stats[j].Column
	})
	return stats
}
