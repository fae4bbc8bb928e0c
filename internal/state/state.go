// Package state is the client's local persistence: the bearer token and a
// small cache of training-day labels, kept in a SQLite file under the state
// directory. It is the command-line analog of the browser's localStorage and
// in-page memoization.
package state

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB is the local state database.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite state database at dir/state.db.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "state.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS auth_token (
			id    INTEGER PRIMARY KEY CHECK (id = 1),
			token TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS day_labels (
			day_id    TEXT PRIMARY KEY,
			label     TEXT NOT NULL,
			cached_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating state tables: %w", err)
		}
	}

	return &DB{db: db}, nil
}

// Token returns the stored bearer token, or "" when logged out. The
// signature satisfies the API client's TokenSource.
func (s *DB) Token() (string, error) {
	var tok string
	err := s.db.QueryRow(`SELECT token FROM auth_token WHERE id = 1`).Scan(&tok)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return tok, nil
}

// SetToken stores the bearer token, replacing any previous one.
func (s *DB) SetToken(token string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO auth_token (id, token) VALUES (1, ?)`, token)
	if err != nil {
		return fmt.Errorf("storing token: %w", err)
	}
	return nil
}

// ClearToken forgets the stored token.
func (s *DB) ClearToken() error {
	if _, err := s.db.Exec(`DELETE FROM auth_token WHERE id = 1`); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}
	return nil
}

// DayLabel returns the cached label for a training day.
func (s *DB) DayLabel(dayID string) (string, bool, error) {
	var label string
	err := s.db.QueryRow(`SELECT label FROM day_labels WHERE day_id = ?`, dayID).Scan(&label)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading day label: %w", err)
	}
	return label, true, nil
}

// SetDayLabel caches a training day's label.
func (s *DB) SetDayLabel(dayID, label string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO day_labels (day_id, label) VALUES (?, ?)`, dayID, label)
	if err != nil {
		return fmt.Errorf("caching day label: %w", err)
	}
	return nil
}

// Close closes the state database.
func (s *DB) Close() error {
	return s.db.Close()
}
