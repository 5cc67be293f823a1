// Package merge reconciles heterogeneous tagged tables onto one
// superset schema and concatenates them into the merged table.
package merge

import (
	"sort"

	"github.com/stx-x/xlmerge/internal/table"
)

// UnifiedSchema computes the merged column order: the sorted union of
// all data columns across the tables, with the provenance columns
// appended last in their fixed order. Sorting is plain byte order so
// the result is reproducible across runs and locales.
func UnifiedSchema(tables []table.TaggedTable) []string {
	set := make(map[string]struct{})
	for _, tt := range tables {
		for _, c := range tt.Columns {
			if !table.IsProvenance(c) {
				set[c] = struct{}{}
			}
		}
	}

	cols := make([]string, 0, len(set)+3)
	for c := range set {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return append(cols, table.ProvenanceColumns()...)
}

// Unify reindexes every tagged table onto the unified schema, filling
// absent columns with nulls, and concatenates them in input order.
// No column from any input is dropped and no row is added or removed:
// the merged row count equals the sum of the input row counts.
func Unify(tables []table.TaggedTable) table.Table {
	schema := UnifiedSchema(tables)

	total := 0
	for _, tt := range tables {
		total += len(tt.Rows)
	}

	rows := make([][]table.Cell, 0, total)
	for _, tt := range tables {
		idx := make(map[string]int, len(tt.Columns))
		for i, c := range tt.Columns {
			idx[c] = i
		}
		for _, r := range tt.Rows {
			nr := make([]table.Cell, len(schema))
			for i, c := range schema {
				if j, ok := idx[c]; ok {
					nr[i] = r[j]
				}
			}
			rows = append(rows, nr)
		}
	}

	return table.Table{Columns: schema, Rows: rows}
}
