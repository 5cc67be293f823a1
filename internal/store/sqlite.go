// Package store keeps a local history of consolidation runs in a
// SQLite database so past runs can be listed and inspected.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/stx-x/xlmerge/internal/pipeline"
)

// RunStatus is the terminal state of a recorded run.
type RunStatus string

const (
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run is one recorded consolidation run.
type Run struct {
	ID        string
	Root      string
	Status    RunStatus
	Error     string
	Rows      int
	Stats     pipeline.Stats
	CreatedAt time.Time
}

// Store wraps the registry database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the registry at path and configures
// WAL mode.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "store: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "store: exec %s", pragma)
		}
	}
	return &Store{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	root       TEXT NOT NULL,
	status     TEXT NOT NULL,
	error      TEXT NOT NULL DEFAULT '',
	rows       INTEGER NOT NULL DEFAULT 0,
	stats      TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "store: migrate")
}

func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun persists one finished run and returns its id.
func (s *Store) RecordRun(ctx context.Context, run Run) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	statsJSON, err := json.Marshal(run.Stats)
	if err != nil {
		return "", eris.Wrap(err, "store: marshal stats")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, root, status, error, rows, stats, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, run.Root, string(run.Status), run.Error, run.Rows, string(statsJSON), now,
	)
	if err != nil {
		return "", eris.Wrap(err, "store: insert run")
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, root, status, error, rows, stats, created_at FROM runs
		 ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "store: list runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var statsJSON string
		if err := rows.Scan(&r.ID, &r.Root, &r.Status, &r.Error, &r.Rows, &statsJSON, &r.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "store: scan run")
		}
		if err := json.Unmarshal([]byte(statsJSON), &r.Stats); err != nil {
			return nil, eris.Wrap(err, "store: unmarshal stats")
		}
		runs = append(runs, r)
	}
	return runs, eris.Wrap(rows.Err(), "store: list runs iterate")
}
