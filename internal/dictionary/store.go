// Package dictionary resolves the user's custom spelling words from local
// and remote sources.
package dictionary

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Open opens the SQLite database holding locally persisted custom words.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys (disabled by default in SQLite)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the custom-words table. Idempotent.
func Migrate(db *sql.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS custom_words (
		id TEXT PRIMARY KEY,
		word TEXT NOT NULL UNIQUE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// Store is the SQLite-backed custom-word source.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store on an open database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Add persists a custom word. Adding an existing word is a no-op.
func (s *Store) Add(ctx context.Context, word string) error {
	if word == "" {
		return fmt.Errorf("word cannot be empty")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO custom_words (id, word) VALUES (?, ?) ON CONFLICT(word) DO NOTHING`,
		uuid.New().String(), word)
	if err != nil {
		return fmt.Errorf("failed to insert custom word: %w", err)
	}
	return nil
}

// Remove deletes a custom word if present.
func (s *Store) Remove(ctx context.Context, word string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM custom_words WHERE word = ?`, word)
	if err != nil {
		return fmt.Errorf("failed to delete custom word: %w", err)
	}
	return nil
}

// CustomWords lists all locally persisted words. The auth token is unused;
// the local store is not account-scoped.
func (s *Store) CustomWords(ctx context.Context, _ string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word FROM custom_words ORDER BY word`)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom words: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("failed to scan custom word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate custom words: %w", err)
	}
	return words, nil
}
