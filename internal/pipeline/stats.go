package pipeline

import "github.com/stx-x/xlmerge/internal/extract"

// FileDetail records how one candidate workbook fared.
type FileDetail struct {
	Folder string            `json:"folder" yaml:"folder"`
	File   string            `json:"file" yaml:"file"`
	Error  string            `json:"error,omitempty" yaml:"error,omitempty"`
	Rows   int               `json:"rows" yaml:"rows"`
	Sheets []extract.Outcome `json:"sheets,omitempty" yaml:"sheets,omitempty"`
}

// Stats accumulates run counters and per-file detail. It is owned and
// mutated only by the orchestrator; everything else reads it.
type Stats struct {
	FilesScanned    int `json:"files_scanned" yaml:"files_scanned"`
	FilesSucceeded  int `json:"files_succeeded" yaml:"files_succeeded"`
	FilesErrored    int `json:"files_errored" yaml:"files_errored"`
	SheetsScanned   int `json:"sheets_scanned" yaml:"sheets_scanned"`
	SheetsExtracted int `json:"sheets_extracted" yaml:"sheets_extracted"`
	SheetsSkipped   int `json:"sheets_skipped" yaml:"sheets_skipped"`
	SheetsErrored   int `json:"sheets_errored" yaml:"sheets_errored"`
	TotalRows       int `json:"total_rows" yaml:"total_rows"`

	Files []FileDetail `json:"files" yaml:"files"`
}

// addOutcome folds one worksheet outcome into the counters.
func (s *Stats) addOutcome(o extract.Outcome) {
	s.SheetsScanned++
	switch o.Status {
	case extract.StatusExtracted:
		s.SheetsExtracted++
		s.TotalRows += o.Rows
	case extract.StatusError:
		s.SheetsErrored++
	default:
		s.SheetsSkipped++
	}
}

// SheetSuccessRate returns extracted worksheets as a percentage of all
// scanned worksheets, 0 when nothing was scanned. Value receiver so the
// method is reachable from non-addressable Stats values, report
// templates included.
func (s Stats) SheetSuccessRate() float64 {
	if s.SheetsScanned == 0 {
		return 0
	}
	return float64(s.SheetsExtracted) / float64(s.SheetsScanned) * 100
}
