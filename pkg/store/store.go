// Package store persists session state as string values under string keys, scoped
// to a workspace.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a sqlite-backed key/value store for one workspace.
type Store struct {
	db        *sql.DB
	dataDir   string
	workspace string
}

// Open opens (or creates) state.db under dataDir and scopes it to workspace.
func Open(dataDir, workspace string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "state.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{
		db:        db,
		dataDir:   dataDir,
		workspace: workspace,
	}

	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	return s, nil
}

// init creates the database schema
func (s *Store) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS state (
		workspace TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (workspace, key)
	);

	CREATE INDEX IF NOT EXISTS idx_state_updated ON state(updated_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Workspace returns the scope this store reads and writes.
func (s *Store) Workspace() string { return s.workspace }

// Get returns the value for key and whether it was present.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM state WHERE workspace = ? AND key = ?",
		s.workspace, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set writes value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	query := `
	INSERT OR REPLACE INTO state (workspace, key, value, updated_at)
	VALUES (?, ?, ?, ?)
	`
	if _, err := s.db.Exec(query, s.workspace, key, value, time.Now()); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM state WHERE workspace = ? AND key = ?", s.workspace, key)
	return err
}

// Keys lists the keys stored for this workspace in sorted order.
func (s *Store) Keys() ([]string, error) {
	rows, err := s.db.Query("SELECT key FROM state WHERE workspace = ? ORDER BY key", s.workspace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// WorkspaceInfo summarizes the state held for one workspace.
type WorkspaceInfo struct {
	Name      string
	Keys      int
	UpdatedAt time.Time
}

// Workspaces lists every workspace with stored state, most recently used first.
func (s *Store) Workspaces() ([]WorkspaceInfo, error) {
	rows, err := s.db.Query(`
	SELECT workspace, COUNT(*), MAX(updated_at)
	FROM state GROUP BY workspace
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []WorkspaceInfo
	for rows.Next() {
		var info WorkspaceInfo
		var updated string
		if err := rows.Scan(&info.Name, &info.Keys, &updated); err != nil {
			return nil, err
		}
		info.UpdatedAt = parseTimestamp(updated)
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].UpdatedAt.After(infos[j].UpdatedAt)
	})
	return infos, nil
}

// parseTimestamp reads the text form sqlite returns for MAX() over a timestamp column.
func parseTimestamp(s string) time.Time {
	layouts := []string{
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02T15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
		time.RFC3339Nano,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Close closes the store database
func (s *Store) Close() error {
	return s.db.Close()
}
