// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records compile runs in a local SQLite database so past
// builds and their failures can be inspected later.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pseudoc/internal/transpile"
	"github.com/pdiddy/pseudoc/pkg/types"
)

const dbFile = "pseudoc.db"

// timeLayout is RFC 3339 with a fixed-width fraction so that the stored
// strings sort chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// defaultMaxResults bounds List when neither the caller nor the config
// supplies a limit.
const defaultMaxResults = 20

// Run is one recorded compile attempt.
type Run struct {
	ID        string           `json:"id"`
	Input     string           `json:"input"`
	Output    string           `json:"output"`
	Status    transpile.Status `json:"status"`
	Error     string           `json:"error,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewRun builds a Run record with a fresh UUID for a finished compile
// attempt. convErr may be nil.
func NewRun(job transpile.Job, status transpile.Status, convErr error) Run {
	r := Run{
		ID:        uuid.NewString(),
		Input:     job.Input,
		Output:    job.Output,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if convErr != nil {
		r.Error = convErr.Error()
	}
	return r
}

// Store manages the run-history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database at cfg.Dir/pseudoc.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		input TEXT NOT NULL,
		output TEXT,
		status TEXT NOT NULL,
		error TEXT,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one run into the database.
func (s *Store) Record(ctx context.Context, r Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, input, output, status, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Input, r.Output, string(r.Status), r.Error,
		r.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first. A limit of zero or less
// uses the store default.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input, output, status, error, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r      Run
			status string
			ts     string
		)
		if err := rows.Scan(&r.ID, &r.Input, &r.Output, &status, &r.Error, &ts); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.Status = transpile.Status(status)
		t, err := time.Parse(timeLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp %q: %w", ts, err)
		}
		r.CreatedAt = t
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
