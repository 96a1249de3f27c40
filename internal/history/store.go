// Package history records past invocations in a per-user SQLite
// database, queryable with the --history wrapper command. Recording is
// best effort: a failure here must never block a dispatch.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS invocations (
	id TEXT PRIMARY KEY,
	ts TIMESTAMP NOT NULL,
	kind TEXT NOT NULL,
	cwd TEXT NOT NULL,
	command TEXT NOT NULL,
	exit_code INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_invocations_ts ON invocations(ts DESC);
`

// Entry is one recorded invocation.
type Entry struct {
	ID       string
	Time     time.Time
	Kind     string // classification name
	Cwd      string
	Command  string // argv summary or prompt
	ExitCode int
}

// Store wraps the invocation database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("history: create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record inserts an entry, filling ID and Time if unset.
func (s *Store) Record(e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Time.IsZero() {
		e.Time = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO invocations (id, ts, kind, cwd, command, exit_code) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Time, e.Kind, e.Cwd, e.Command, e.ExitCode,
	)
	if err != nil {
		return fmt.Errorf("history: record: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, ts, kind, cwd, command, exit_code FROM invocations ORDER BY ts DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Time, &e.Kind, &e.Cwd, &e.Command, &e.ExitCode); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
