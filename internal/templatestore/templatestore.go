// Package templatestore persists parsed template source under a name so a
// long-running tmplrun server can reload a changed template from disk
// without re-reading every other template in the set. It is a cache in
// front of TreeSet.ParseString, not a replacement for it — the engine
// itself never talks to a database.
package templatestore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store wraps a sqlite-backed table of named template source.
type Store struct {
	db *sql.DB
}

// Open opens (creating if absent) the sqlite database at path and applies
// any pending goose migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("templatestore: open %s: %w", path, err)
	}

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("templatestore: set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("templatestore: migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts the source text registered under name.
func (s *Store) Save(ctx context.Context, name, source string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO templates (name, source, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET source = excluded.source, updated_at = excluded.updated_at
	`, name, source, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("templatestore: save %q: %w", name, err)
	}
	return nil
}

// Load returns the source registered under name. ok is false if no row
// exists for that name.
func (s *Store) Load(ctx context.Context, name string) (source string, ok bool, err error) {
	row := s.db.QueryRowContext(ctx, `SELECT source FROM templates WHERE name = ?`, name)
	if err := row.Scan(&source); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("templatestore: load %q: %w", name, err)
	}
	return source, true, nil
}

// Names returns every registered template name.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM templates ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("templatestore: list names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("templatestore: scan name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
