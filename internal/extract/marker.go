package extract

import (
	"strings"

	"github.com/stx-x/xlmerge/internal/table"
)

// MarkerScanDepth bounds how many leading rows are examined for the
// marker label. Header rows past this depth are treated as absent.
const MarkerScanDepth = 10

// FindMarkerRow scans the first MarkerScanDepth rows of the grid and
// returns the index of the first row where any non-null cell's text
// contains marker as a substring. Matching is case-sensitive.
func FindMarkerRow(grid table.RawGrid, marker string) (int, bool) {
	depth := MarkerScanDepth
	if len(grid) < depth {
		depth = len(grid)
	}
	for i := 0; i < depth; i++ {
		for _, c := range grid[i] {
			if c.IsNull() {
				continue
			}
			if strings.Contains(c.String(), marker) {
				return i, true
			}
		}
	}
	return 0, false
}
