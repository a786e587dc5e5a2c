// Package sqlite persists a ledger of scaffold runs. The ledger is opt-in;
// the default invocation never touches it.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"diffscaffold/internal/usecase/scaffold"
)

// Store implements the scaffold.Ledger port using SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a new SQLite store at the given path.
// Use ":memory:" for an in-memory database (useful for testing).
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection keeps :memory: databases coherent and avoids
	// SQLITE_BUSY on concurrent writes.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return s, nil
}

func (s *Store) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp INTEGER NOT NULL,
		project TEXT NOT NULL,
		dir TEXT NOT NULL,
		dirs_created INTEGER NOT NULL,
		files_written INTEGER NOT NULL,
		git_init INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
	`
	_, err := s.db.Exec(schema)
	return err
}

// RecordRun implements scaffold.Ledger.
func (s *Store) RecordRun(ctx context.Context, run scaffold.RunRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (timestamp, project, dir, dirs_created, files_written, git_init)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Timestamp.Unix(), run.Project, run.Dir, run.Dirs, run.Files, boolToInt(run.GitInit),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// ListRuns returns recorded runs, most recent first.
func (s *Store) ListRuns(ctx context.Context) ([]scaffold.RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT timestamp, project, dir, dirs_created, files_written, git_init
		 FROM runs ORDER BY timestamp DESC, run_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []scaffold.RunRecord
	for rows.Next() {
		var r scaffold.RunRecord
		var ts int64
		var gitInit int
		if err := rows.Scan(&ts, &r.Project, &r.Dir, &r.Dirs, &r.Files, &gitInit); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Timestamp = time.Unix(ts, 0).UTC()
		r.GitInit = gitInit != 0
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
