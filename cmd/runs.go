package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/stx-x/xlmerge/internal/store"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List past consolidation runs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initRegistry(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		runs, err := st.ListRuns(ctx, runsLimit)
		if err != nil {
			return eris.Wrap(err, "runs list")
		}

		if len(runs) == 0 {
			fmt.Fprintln(os.Stderr, "No runs recorded.")
			return nil
		}

		formatRunsList(os.Stdout, runs)
		return nil
	},
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 50, "max number of runs to display")
	rootCmd.AddCommand(runsCmd)
}

// formatRunsList writes a tabular list of runs to w.
func formatRunsList(out io.Writer, runs []store.Run) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tROOT\tSTATUS\tROWS\tSHEETS\tCREATED")
	_, _ = fmt.Fprintln(w, "--\t----\t------\t----\t------\t-------")

	for _, r := range runs {
		root := r.Root
		if len(root) > 40 {
			root = "..." + root[len(root)-37:]
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d/%d\t%s\n",
			truncateID(r.ID),
			root,
			r.Status,
			r.Rows,
			r.Stats.SheetsExtracted,
			r.Stats.SheetsScanned,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
