package extract

import (
	"fmt"
	"strings"

	"github.com/stx-x/xlmerge/internal/table"
)

// BuildHeader derives unique column names from a marker row. Blank cells
// (null or whitespace-only) get a positional "unnamed_<i>" placeholder;
// any collision with an already-assigned name is resolved by appending
// the first unused "_<n>" suffix. Output length equals input length and
// order is preserved.
func BuildHeader(row []table.Cell) []string {
	names := make([]string, 0, len(row))
	seen := make(map[string]struct{}, len(row))

	for i, c := range row {
		name := c.String()
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("unnamed_%d", i)
		}
		if _, taken := seen[name]; taken {
			base := name
			for n := 1; ; n++ {
				name = fmt.Sprintf("%s_%d", base, n)
				if _, taken := seen[name]; !taken {
					break
				}
			}
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
