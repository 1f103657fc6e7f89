// Package store persists saved workflows in a local SQLite database. It is
// used from the CLI only; the resolution engine itself never touches disk.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/blockflowhq/blockflow/graph"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS workflows (
	name TEXT PRIMARY KEY,
	payload BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`

const (
	defaultStoreDir = ".blockflow"
	defaultStoreDB  = "blockflow.db"
)

// SavedWorkflow is one stored workflow document plus bookkeeping.
type SavedWorkflow struct {
	Name      string          `json:"name"`
	Workflow  *graph.Workflow `json:"workflow"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Store persists workflows in SQLite.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the default SQLite path for CLI storage.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("store: resolve user home: %w", err)
	}
	return filepath.Join(home, defaultStoreDir, defaultStoreDB), nil
}

// Open opens (or creates) a workflow store at the given path. The parent
// directory is created when missing.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store: path is required")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("store: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: set WAL mode: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save inserts or updates a workflow under the given name.
func (s *Store) Save(ctx context.Context, name string, wf *graph.Workflow) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return errors.New("store: store is nil")
	}
	if strings.TrimSpace(name) == "" {
		return errors.New("store: workflow name is required")
	}
	if wf == nil {
		return errors.New("store: workflow is nil")
	}

	payload, err := json.Marshal(wf)
	if err != nil {
		return fmt.Errorf("store: encode workflow: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO workflows (name, payload, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
	payload = excluded.payload,
	updated_at = excluded.updated_at`,
		name,
		payload,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store: upsert workflow: %w", err)
	}
	return nil
}

// Get returns a saved workflow by name.
func (s *Store) Get(ctx context.Context, name string) (SavedWorkflow, bool, error) {
	if err := ctx.Err(); err != nil {
		return SavedWorkflow{}, false, err
	}
	if s == nil || s.db == nil {
		return SavedWorkflow{}, false, errors.New("store: store is nil")
	}

	row := s.db.QueryRowContext(ctx, `
SELECT payload, updated_at
FROM workflows
WHERE name = ?`, name)

	var payload []byte
	var updatedAt string
	if err := row.Scan(&payload, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SavedWorkflow{}, false, nil
		}
		return SavedWorkflow{}, false, fmt.Errorf("store: get workflow: %w", err)
	}

	saved, err := decodeSaved(name, payload, updatedAt)
	if err != nil {
		return SavedWorkflow{}, false, err
	}
	return saved, true, nil
}

// List returns all saved workflows in name-sorted order.
func (s *Store) List(ctx context.Context) ([]SavedWorkflow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, errors.New("store: store is nil")
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT name, payload, updated_at
FROM workflows
ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("store: list workflows: %w", err)
	}
	defer rows.Close()

	var saved []SavedWorkflow
	for rows.Next() {
		var name, updatedAt string
		var payload []byte
		if err := rows.Scan(&name, &payload, &updatedAt); err != nil {
			return nil, fmt.Errorf("store: scan workflow: %w", err)
		}
		sw, err := decodeSaved(name, payload, updatedAt)
		if err != nil {
			return nil, err
		}
		saved = append(saved, sw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: workflow rows: %w", err)
	}

	return saved, nil
}

// Delete removes a saved workflow. Deleting a missing name is a no-op.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return errors.New("store: store is nil")
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM workflows WHERE name = ?`, name); err != nil {
		return fmt.Errorf("store: delete workflow: %w", err)
	}
	return nil
}

func decodeSaved(name string, payload []byte, updatedAt string) (SavedWorkflow, error) {
	var wf graph.Workflow
	if err := json.Unmarshal(payload, &wf); err != nil {
		return SavedWorkflow{}, fmt.Errorf("store: decode workflow %q: %w", name, err)
	}
	ts, err := time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		// Legacy rows without fractional seconds still parse as RFC3339.
		ts, err = time.Parse(time.RFC3339, updatedAt)
		if err != nil {
			return SavedWorkflow{}, fmt.Errorf("store: decode timestamp for %q: %w", name, err)
		}
	}
	return SavedWorkflow{Name: name, Workflow: &wf, UpdatedAt: ts}, nil
}
