// Package history stores parse results in a local SQLite database so past
// commands can be listed and re-inspected.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/uncurl/uncurl/packages/curl"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded parse.
type Entry struct {
	ID         string    `json:"id"`
	Command    string    `json:"command"`
	URL        string    `json:"url"`
	Method     string    `json:"method,omitempty"`
	TokenCount int       `json:"tokenCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Store is a SQLite-backed history store.
type Store struct {
	db           *sql.DB
	queryTimeout time.Duration
}

const schema = `CREATE TABLE IF NOT EXISTS parses (
	id          TEXT PRIMARY KEY,
	command     TEXT NOT NULL,
	url         TEXT NOT NULL,
	method      TEXT NOT NULL DEFAULT '',
	token_count INTEGER NOT NULL,
	created_at  TIMESTAMP NOT NULL
)`

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	store := &Store{
		db:           db,
		queryTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithTimeout(context.Background(), store.queryTimeout)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores one parse and returns the persisted entry.
func (s *Store) Record(command string, req *curl.Request) (*Entry, error) {
	entry := &Entry{
		ID:         uuid.NewString(),
		Command:    command,
		URL:        req.URL.String(),
		Method:     req.Method,
		TokenCount: len(req.Tokens),
		CreatedAt:  time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO parses (id, command, url, method, token_count, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Command, entry.URL, entry.Method, entry.TokenCount, entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record parse: %w", err)
	}
	return entry, nil
}

// List returns the most recent entries, newest first. A non-positive
// limit returns everything.
func (s *Store) List(limit int) ([]Entry, error) {
	query := `SELECT id, command, url, method, token_count, created_at FROM parses ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.Command, &entry.URL, &entry.Method, &entry.TokenCount, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}
	return entries, nil
}

// Clear removes all recorded parses.
func (s *Store) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.queryTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM parses`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
