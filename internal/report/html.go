package report

import (
	"bytes"
	"html/template"

	"github.com/rotisserie/eris"

	"github.com/stx-x/xlmerge/internal/extract"
)

// HTML renders the styled HTML processing report.
func HTML(d Data) ([]byte, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"extracted": func(s extract.Status) bool { return s == extract.StatusExtracted },
		"errored":   func(s extract.Status) bool { return s == extract.StatusError },
	}).Parse(htmlTemplate)
	if err != nil {
		return nil, eris.Wrap(err, "report: parse html template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return nil, eris.Wrap(err, "report: render html")
	}
	return buf.Bytes(), nil
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Workbook Consolidation Report</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; background-color: #f5f5f5; }
.container { max-width: 1100px; margin: 0 auto; background: white; padding: 20px; border-radius: 8px; }
.header { background: #667eea; color: white; padding: 20px; border-radius: 8px; margin-bottom: 20px; text-align: center; }
.section { margin: 20px 0; padding: 15px; border-left: 4px solid #667eea; background: #f8f9ff; }
.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 12px; margin: 16px 0; }
.stats-card { border: 1px solid #e0e0e0; border-radius: 8px; padding: 12px; text-align: center; }
.stats-number { font-size: 1.8em; font-weight: bold; color: #667eea; }
.ok { color: #28a745; } .warn { color: #ffc107; } .err { color: #dc3545; }
table { width: 100%; border-collapse: collapse; margin: 10px 0; }
th, td { border: 1px solid #ddd; padding: 6px 8px; text-align: left; }
th { background-color: #f2f2f2; }
.bar { background: #e0e0e0; border-radius: 10px; overflow: hidden; margin: 10px 0; }
.fill { height: 18px; background: #28a745; color: white; text-align: center; line-height: 18px; font-size: 12px; }
</style>
</head>
<body>
<div class="container">
<div class="header">
  <h1>Workbook Consolidation Report</h1>
  <div>{{.Root}} — generated {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</div>
</div>

<div class="section">
  <h3>Discovery</h3>
  <p>Folders: {{.Scan.FoldersMatched}}/{{.Scan.FoldersSeen}} matched.
     Workbooks: {{.Scan.WorkbooksMatched}}/{{.Scan.WorkbooksSeen}} matched.</p>
</div>

<div class="section">
  <h3>Statistics</h3>
  <div class="stats-grid">
    <div class="stats-card"><div class="stats-number">{{.Stats.FilesScanned}}</div><div>files scanned</div></div>
    <div class="stats-card"><div class="stats-number ok">{{.Stats.FilesSucceeded}}</div><div>files succeeded</div></div>
    <div class="stats-card"><div class="stats-number err">{{.Stats.FilesErrored}}</div><div>files errored</div></div>
    <div class="stats-card"><div class="stats-number ok">{{.Stats.SheetsExtracted}}</div><div>sheets extracted</div></div>
    <div class="stats-card"><div class="stats-number warn">{{.Stats.SheetsSkipped}}</div><div>sheets skipped</div></div>
    <div class="stats-card"><div class="stats-number">{{.TotalRows}}</div><div>merged rows</div></div>
  </div>
  <div class="bar"><div class="fill" style="width: {{printf "%.1f" .Stats.SheetSuccessRate}}%">{{printf "%.1f" .Stats.SheetSuccessRate}}%</div></div>
</div>

<div class="section">
  <h3>Files</h3>
  {{range .Stats.Files}}
  <h4>{{.Folder}}/{{.File}}{{if .Error}} <span class="err">ERROR: {{.Error}}</span>{{end}}</h4>
  {{if .Sheets}}
  <table>
    <thead><tr><th>Worksheet</th><th>Status</th><th>Rows</th><th>Columns</th><th>Reason</th></tr></thead>
    <tbody>
    {{range .Sheets}}
    <tr>
      <td>{{.Sheet}}</td>
      <td class="{{if extracted .Status}}ok{{else if errored .Status}}err{{else}}warn{{end}}">{{.Status}}</td>
      <td>{{.Rows}}</td>
      <td>{{.Columns}}</td>
      <td>{{.Reason}}</td>
    </tr>
    {{end}}
    </tbody>
  </table>
  {{end}}
  {{end}}
</div>

{{if .Completeness}}
<div class="section">
  <h3>Completeness</h3>
  <table>
    <thead><tr><th>Column</th><th>Non-null</th><th>Ratio</th></tr></thead>
    <tbody>
    {{range .Completeness}}
    <tr><td>{{.Column}}</td><td>{{.NonNull}}</td><td>{{printf "%.1f" .Ratio}}%</td></tr>
    {{end}}
    </tbody>
  </table>
</div>
{{end}}

</div>
</body>
</html>
`
