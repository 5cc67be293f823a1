package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/stx-x/xlmerge/internal/discovery"
	"github.com/stx-x/xlmerge/internal/extract"
	"github.com/stx-x/xlmerge/internal/workbook"
)

var (
	scanRoot   string
	scanPrefix string
	scanMarker string
	scanDeep   bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Preview which workbooks a merge would pick up",
	Long:  "Walks the source tree and lists the workbooks that match the folder prefix, without extracting or writing anything. With --deep each workbook is opened and its worksheets are checked for the marker header.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		root := cfg.Source.Root
		if scanRoot != "" {
			root = scanRoot
		}
		if root == "" {
			return eris.New("no source root: set source.root or pass --root")
		}
		prefix := cfg.Source.FolderPrefix
		if cmd.Flags().Changed("prefix") {
			prefix = scanPrefix
		}
		marker := cfg.Source.Marker
		if scanMarker != "" {
			marker = scanMarker
		}

		candidates, summary, err := discovery.Discover(root, prefix)
		if err != nil {
			return eris.Wrap(err, "discover workbooks")
		}

		if scanDeep {
			formatScanDeep(os.Stdout, candidates, marker)
		} else {
			formatScanList(os.Stdout, candidates)
		}

		fmt.Printf("\n%d/%d folders matched prefix %q, %d/%d workbooks selected\n",
			summary.FoldersMatched, summary.FoldersSeen, prefix,
			summary.WorkbooksMatched, summary.WorkbooksSeen)
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanRoot, "root", "", "source folder tree (overrides source.root)")
	scanCmd.Flags().StringVar(&scanPrefix, "prefix", "", "folder name prefix filter (overrides source.folder_prefix)")
	scanCmd.Flags().StringVar(&scanMarker, "marker", "", "header label to probe for with --deep (overrides source.marker)")
	scanCmd.Flags().BoolVar(&scanDeep, "deep", false, "open each workbook and check worksheets for the marker")
	rootCmd.AddCommand(scanCmd)
}

// formatScanList writes a tabular list of candidates to w.
func formatScanList(out io.Writer, candidates []discovery.Candidate) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "FOLDER\tFILE")
	_, _ = fmt.Fprintln(w, "------\t----")
	for _, c := range candidates {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", c.Folder, c.File)
	}
	_ = w.Flush()
}

// formatScanDeep opens every candidate and reports, per worksheet,
// whether the marker header is present in the scan window.
func formatScanDeep(out io.Writer, candidates []discovery.Candidate, marker string) {
	reader := workbook.XLSXReader{}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "FOLDER\tFILE\tWORKSHEET\tMARKER")
	_, _ = fmt.Fprintln(w, "------\t----\t---------\t------")
	for _, c := range candidates {
		wb, err := reader.Read(c.Path)
		if err != nil {
			_, _ = fmt.Fprintf(w, "%s\t%s\t-\terror: %s\n", c.Folder, c.File, eris.ToString(err, false))
			continue
		}
		for _, sheet := range wb.Sheets {
			if sheet.Err != nil {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\terror: %s\n", c.Folder, c.File, sheet.Name, eris.ToString(sheet.Err, false))
				continue
			}
			status := "missing"
			if row, ok := extract.FindMarkerRow(sheet.Grid, marker); ok {
				status = fmt.Sprintf("row %d", row+1)
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Folder, c.File, sheet.Name, status)
		}
	}
	_ = w.Flush()
}
