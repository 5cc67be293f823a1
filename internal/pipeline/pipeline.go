// Package pipeline orchestrates a full consolidation run: every
// candidate workbook is read, every worksheet is extracted, the tagged
// tables are unified into one merged table, and provenance and
// completeness are derived for reporting. Per-item failures are
// recorded and isolated; only an empty candidate list or a run that
// yields no data at all is fatal.
package pipeline

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/stx-x/xlmerge/internal/discovery"
	"github.com/stx-x/xlmerge/internal/extract"
	"github.com/stx-x/xlmerge/internal/merge"
	"github.com/stx-x/xlmerge/internal/provenance"
	"github.com/stx-x/xlmerge/internal/table"
	"github.com/stx-x/xlmerge/internal/workbook"
)

// Fatal run-level conditions. Everything else is recorded in Stats and
// the run continues.
var (
	ErrNoCandidates = eris.New("no candidate workbooks found")
	ErrNoData       = eris.New("no data extracted from any workbook")
)

// Reader is the workbook source collaborator.
type Reader interface {
	Read(path string) (*workbook.Workbook, error)
}

// Writer is the workbook sink collaborator.
type Writer interface {
	Write(path string, t *table.Table) error
}

// Options configures a run.
type Options struct {
	Marker  string // header label anchoring the data region
	Workers int    // workbook-level parallelism; <=1 means sequential
}

// Result is everything a completed run produces.
type Result struct {
	Merged       table.Table
	Tables       []table.TaggedTable
	Stats        Stats
	Sources      map[string][]provenance.SourceRef
	Completeness []provenance.Completeness
}

// Pipeline drives extraction and merging over a candidate list.
type Pipeline struct {
	reader Reader
	opts   Options
}

// New builds a pipeline around the given workbook reader.
func New(reader Reader, opts Options) *Pipeline {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Pipeline{reader: reader, opts: opts}
}

// fileResult is the outcome of one workbook, kept index-addressed so
// parallel processing still reduces in discovery order.
type fileResult struct {
	tables []table.TaggedTable
	detail FileDetail
}

// Run processes every candidate and returns the merged result. On
// ErrNoData the returned Result still carries the accumulated Stats so
// the caller can report what happened.
func (p *Pipeline) Run(ctx context.Context, candidates []discovery.Candidate) (*Result, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	results := make([]fileResult, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)
	for i, cand := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = p.processWorkbook(cand)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "pipeline: run aborted")
	}

	// Reduce in discovery order so row order and counters are
	// deterministic regardless of worker count.
	var stats Stats
	var tables []table.TaggedTable
	for _, r := range results {
		stats.FilesScanned++
		if r.detail.Error != "" {
			stats.FilesErrored++
		} else {
			stats.FilesSucceeded++
		}
		for _, o := range r.detail.Sheets {
			stats.addOutcome(o)
		}
		stats.Files = append(stats.Files, r.detail)
		tables = append(tables, r.tables...)
	}

	if len(tables) == 0 {
		return &Result{Stats: stats}, ErrNoData
	}

	merged := merge.Unify(tables)
	return &Result{
		Merged:       merged,
		Tables:       tables,
		Stats:        stats,
		Sources:      provenance.ColumnSources(tables),
		Completeness: provenance.CompletenessStats(merged),
	}, nil
}

func (p *Pipeline) processWorkbook(cand discovery.Candidate) fileResult {
	log := zap.L().With(
		zap.String("file", cand.File),
		zap.String("folder", cand.Folder),
	)

	detail := FileDetail{Folder: cand.Folder, File: cand.File}

	wb, err := p.reader.Read(cand.Path)
	if err != nil {
		log.Warn("workbook unreadable", zap.Error(err))
		detail.Error = eris.ToString(err, false)
		return fileResult{detail: detail}
	}

	var tables []table.TaggedTable
	for _, sheet := range wb.Sheets {
		if sheet.Err != nil {
			log.Warn("worksheet failed", zap.String("sheet", sheet.Name), zap.Error(sheet.Err))
			detail.Sheets = append(detail.Sheets, extract.Outcome{
				Sheet:  sheet.Name,
				Status: extract.StatusError,
				Reason: eris.ToString(sheet.Err, false),
			})
			continue
		}

		tt, outcome := extract.ExtractSheet(cand.File, sheet.Name, cand.Folder, sheet.Grid, p.opts.Marker)
		detail.Sheets = append(detail.Sheets, outcome)
		if tt != nil {
			tables = append(tables, *tt)
			detail.Rows += len(tt.Rows)
			log.Info("worksheet extracted",
				zap.String("sheet", sheet.Name),
				zap.Int("rows", outcome.Rows),
				zap.Int("columns", outcome.Columns),
			)
		} else {
			log.Debug("worksheet skipped",
				zap.String("sheet", sheet.Name),
				zap.String("reason", outcome.Reason),
			)
		}
	}

	return fileResult{tables: tables, detail: detail}
}
