package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stx-x/xlmerge/internal/discovery"
	"github.com/stx-x/xlmerge/internal/pipeline"
	"github.com/stx-x/xlmerge/internal/report"
	"github.com/stx-x/xlmerge/internal/store"
	"github.com/stx-x/xlmerge/internal/workbook"
)

var (
	mergeRoot    string
	mergePrefix  string
	mergeMarker  string
	mergeWorkers int
	mergeOut     string
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge all matching workbooks into one",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		root := cfg.Source.Root
		if mergeRoot != "" {
			root = mergeRoot
		}
		if root == "" {
			return eris.New("no source root: set source.root or pass --root")
		}
		prefix := cfg.Source.FolderPrefix
		if cmd.Flags().Changed("prefix") {
			prefix = mergePrefix
		}
		marker := cfg.Source.Marker
		if mergeMarker != "" {
			marker = mergeMarker
		}
		workers := cfg.Pipeline.Workers
		if mergeWorkers > 0 {
			workers = mergeWorkers
		}
		outDir := cfg.Output.Dir
		if mergeOut != "" {
			outDir = mergeOut
		}

		st, err := initRegistry(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		candidates, scan, err := discovery.Discover(root, prefix)
		if err != nil {
			return eris.Wrap(err, "discover workbooks")
		}
		zap.L().Info("discovery complete",
			zap.Int("folders_matched", scan.FoldersMatched),
			zap.Int("workbooks_matched", scan.WorkbooksMatched),
		)

		p := pipeline.New(workbook.XLSXReader{}, pipeline.Options{Marker: marker, Workers: workers})
		result, err := p.Run(ctx, candidates)
		if err != nil {
			if result != nil {
				recordRun(ctx, st, store.Run{
					Root:   root,
					Status: store.RunStatusFailed,
					Error:  eris.ToString(err, false),
					Stats:  result.Stats,
				})
			}
			return eris.Wrap(err, "merge")
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return eris.Wrapf(err, "create output dir %s", outDir)
		}
		workbookPath := filepath.Join(outDir, cfg.Output.Workbook)
		if err := (workbook.XLSXWriter{}).Write(workbookPath, &result.Merged); err != nil {
			recordRun(ctx, st, store.Run{
				Root:   root,
				Status: store.RunStatusFailed,
				Error:  eris.ToString(err, false),
				Rows:   len(result.Merged.Rows),
				Stats:  result.Stats,
			})
			return eris.Wrap(err, "write merged workbook")
		}

		data := report.Data{
			Root:         root,
			Marker:       marker,
			GeneratedAt:  time.Now(),
			Scan:         scan,
			Stats:        result.Stats,
			Columns:      result.Merged.Columns,
			TotalRows:    len(result.Merged.Rows),
			Sources:      result.Sources,
			Completeness: result.Completeness,
		}
		if err := writeReports(outDir, data); err != nil {
			return err
		}

		id := recordRun(ctx, st, store.Run{
			Root:   root,
			Status: store.RunStatusComplete,
			Rows:   len(result.Merged.Rows),
			Stats:  result.Stats,
		})

		zap.L().Info("merge complete",
			zap.String("run_id", id),
			zap.String("workbook", workbookPath),
			zap.Int("rows", len(result.Merged.Rows)),
			zap.Int("columns", len(result.Merged.Columns)),
			zap.Float64("sheet_success_rate", result.Stats.SheetSuccessRate()),
		)

		fmt.Print(report.Text(data))
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringVar(&mergeRoot, "root", "", "source folder tree (overrides source.root)")
	mergeCmd.Flags().StringVar(&mergePrefix, "prefix", "", "folder name prefix filter (overrides source.folder_prefix)")
	mergeCmd.Flags().StringVar(&mergeMarker, "marker", "", "header label anchoring the data region (overrides source.marker)")
	mergeCmd.Flags().IntVar(&mergeWorkers, "workers", 0, "workbook-level parallelism (overrides pipeline.workers)")
	mergeCmd.Flags().StringVar(&mergeOut, "out", "", "output directory (overrides output.dir)")
	rootCmd.AddCommand(mergeCmd)
}

// initRegistry opens the run registry and applies migrations.
func initRegistry(ctx context.Context) (*store.Store, error) {
	st, err := store.Open(cfg.Registry.Path)
	if err != nil {
		return nil, eris.Wrap(err, "open registry")
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}
	return st, nil
}

// recordRun persists the run outcome. Registry failures are logged,
// not fatal: a finished merge is worth more than its history entry.
func recordRun(ctx context.Context, st *store.Store, run store.Run) string {
	id, err := st.RecordRun(ctx, run)
	if err != nil {
		zap.L().Warn("record run failed", zap.Error(err))
		return ""
	}
	return id
}

// writeReports renders the configured report artifacts into outDir.
// An empty file name in the config disables that artifact.
func writeReports(outDir string, data report.Data) error {
	if cfg.Report.Text != "" {
		if err := os.WriteFile(filepath.Join(outDir, cfg.Report.Text), []byte(report.Text(data)), 0o644); err != nil {
			return eris.Wrap(err, "write text report")
		}
	}
	if cfg.Report.HTML != "" {
		html, err := report.HTML(data)
		if err != nil {
			return eris.Wrap(err, "render html report")
		}
		if err := os.WriteFile(filepath.Join(outDir, cfg.Report.HTML), html, 0o644); err != nil {
			return eris.Wrap(err, "write html report")
		}
	}
	if cfg.Report.Summary != "" {
		sum, err := report.Summary(data)
		if err != nil {
			return eris.Wrap(err, "render summary")
		}
		if err := os.WriteFile(filepath.Join(outDir, cfg.Report.Summary), sum, 0o644); err != nil {
			return eris.Wrap(err, "write summary")
		}
	}
	return nil
}
