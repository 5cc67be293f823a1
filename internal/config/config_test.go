package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
}

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "优", cfg.Source.FolderPrefix)
	assert.Equal(t, "身份证号", cfg.Source.Marker)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, "merged.xlsx", cfg.Output.Workbook)
	assert.Equal(t, "report.txt", cfg.Report.Text)
	assert.Equal(t, "report.html", cfg.Report.HTML)
	assert.Equal(t, "summary.yaml", cfg.Report.Summary)
	assert.Equal(t, "xlmerge.db", cfg.Registry.Path)
	assert.Equal(t, 1, cfg.Pipeline.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := `
source:
  root: /data/import
  folder_prefix: batch-
  marker: ID-number
output:
  dir: /data/out
pipeline:
  workers: 4
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/import", cfg.Source.Root)
	assert.Equal(t, "batch-", cfg.Source.FolderPrefix)
	assert.Equal(t, "ID-number", cfg.Source.Marker)
	assert.Equal(t, "/data/out", cfg.Output.Dir)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Unset keys keep their defaults.
	assert.Equal(t, "merged.xlsx", cfg.Output.Workbook)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XLMERGE_SOURCE_MARKER", "ID-number")
	t.Setenv("XLMERGE_PIPELINE_WORKERS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ID-number", cfg.Source.Marker)
	assert.Equal(t, 8, cfg.Pipeline.Workers)
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.Error(t, InitLogger(LogConfig{Level: "nope", Format: "json"}))
}
