package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"

	"github.com/stx-x/xlmerge/internal/extract"
)

// Text renders the plain-text processing report.
func Text(d Data) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Workbook Consolidation Report\n")
	fmt.Fprintf(&b, "Root: %s\n", d.Root)
	fmt.Fprintf(&b, "Marker: %s\n", d.Marker)
	fmt.Fprintf(&b, "Generated: %s\n\n", d.GeneratedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("## Discovery\n")
	fmt.Fprintf(&b, "- Folders seen: %d (matched: %d)\n", d.Scan.FoldersSeen, d.Scan.FoldersMatched)
	fmt.Fprintf(&b, "- Workbooks seen: %d (matched: %d)\n", d.Scan.WorkbooksSeen, d.Scan.WorkbooksMatched)
	if missed := d.Scan.WorkbooksSeen - d.Scan.WorkbooksMatched; missed > 0 {
		fmt.Fprintf(&b, "- Warning: %d workbook(s) present but outside the folder filter\n", missed)
	}
	b.WriteString("\n")

	b.WriteString("## Processing\n")
	fmt.Fprintf(&b, "- Files: %d scanned, %d succeeded, %d errored\n",
		d.Stats.FilesScanned, d.Stats.FilesSucceeded, d.Stats.FilesErrored)
	fmt.Fprintf(&b, "- Worksheets: %d scanned, %d extracted, %d skipped, %d errored\n",
		d.Stats.SheetsScanned, d.Stats.SheetsExtracted, d.Stats.SheetsSkipped, d.Stats.SheetsErrored)
	fmt.Fprintf(&b, "- Worksheet success rate: %.1f%%\n", d.Stats.SheetSuccessRate())
	fmt.Fprintf(&b, "- Merged rows: %d\n", d.TotalRows)
	fmt.Fprintf(&b, "- Merged columns: %d (%d data + 3 provenance)\n\n",
		len(d.Columns), d.DataColumnCount())

	b.WriteString("## Files\n")
	for _, f := range d.Stats.Files {
		fmt.Fprintf(&b, "- %s/%s", f.Folder, f.File)
		if f.Error != "" {
			fmt.Fprintf(&b, " — ERROR: %s\n", f.Error)
			continue
		}
		fmt.Fprintf(&b, " (%d rows)\n", f.Rows)
		for _, s := range f.Sheets {
			switch s.Status {
			case extract.StatusExtracted:
				fmt.Fprintf(&b, "    %s: extracted %d rows, %d columns\n", s.Sheet, s.Rows, s.Columns)
			default:
				fmt.Fprintf(&b, "    %s: %s (%s)\n", s.Sheet, s.Status, s.Reason)
			}
		}
	}
	b.WriteString("\n")

	if len(d.Sources) > 0 {
		b.WriteString("## Column Sources\n")
		for _, col := range d.sortedSourceColumns() {
			refs := d.Sources[col]
			fmt.Fprintf(&b, "- %s (%d source(s))\n", col, len(refs))
			for _, r := range refs {
				fmt.Fprintf(&b, "    %s -> %s\n", r.Source, r.Sheet)
			}
		}
		b.WriteString("\n")
	}

	if len(d.Completeness) > 0 {
		b.WriteString("## Completeness\n")
		nameWidth := 0
		for _, c := range d.Completeness {
			if w := displayWidth(c.Column); w > nameWidth {
				nameWidth = w
			}
		}
		for _, c := range d.Completeness {
			fmt.Fprintf(&b, "%s  %8d  %5.1f%%\n", pad(c.Column, nameWidth), c.NonNull, c.Ratio)
		}
	}

	return b.String()
}

// displayWidth counts terminal cells: East-Asian wide and fullwidth
// runes occupy two.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

// pad right-pads s with spaces to the given display width.
func pad(s string, target int) string {
	gap := target - displayWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
