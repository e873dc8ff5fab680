// Package history records performed saves in a local SQLite database
// so status can report which face file is current.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNoHistory is returned by Last when no save has been recorded yet.
var ErrNoHistory = errors.New("no saves recorded")

// Entry is one recorded save.
type Entry struct {
	SavedAt     time.Time
	Mode        string
	CustomPath  string
	FacePath    string
	DisplayKind string
	Themes      []string
	ID          int64
}

type Manager struct {
	db *sql.DB
}

func NewManager(ctx context.Context, dsn string) (*Manager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure WAL mode and other pragmas
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to execute pragma %s: %w", pragma, err)
		}
	}

	manager := &Manager{db: db}

	if err := manager.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return manager, nil
}

func (m *Manager) runMigrations(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		saved_at INTEGER NOT NULL,
		mode TEXT NOT NULL,
		custom_path TEXT NOT NULL,
		face_path TEXT NOT NULL DEFAULT '',
		display_kind TEXT NOT NULL DEFAULT '',
		themes TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_saves_saved_at ON saves(saved_at);`

	if _, err := m.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Record stores one save. A zero SavedAt is filled with the current time.
func (m *Manager) Record(ctx context.Context, entry Entry) error {
	savedAt := entry.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	// Themes are stored as JSON so names are unconstrained.
	themes := ""
	if len(entry.Themes) > 0 {
		data, err := json.Marshal(entry.Themes)
		if err != nil {
			return fmt.Errorf("failed to encode themes: %w", err)
		}
		themes = string(data)
	}

	_, err := m.db.ExecContext(ctx,
		`INSERT INTO saves (saved_at, mode, custom_path, face_path, display_kind, themes)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		savedAt.Unix(), entry.Mode, entry.CustomPath, entry.FacePath,
		entry.DisplayKind, themes)
	if err != nil {
		return fmt.Errorf("failed to record save: %w", err)
	}
	return nil
}

// Recent returns up to limit saves, newest first.
func (m *Manager) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := m.db.QueryContext(ctx,
		`SELECT id, saved_at, mode, custom_path, face_path, display_kind, themes
		 FROM saves ORDER BY saved_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query saves: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read saves: %w", err)
	}
	return entries, nil
}

// Last returns the most recent save, or ErrNoHistory.
func (m *Manager) Last(ctx context.Context) (*Entry, error) {
	entries, err := m.Recent(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoHistory
	}
	return &entries[0], nil
}

func (m *Manager) Close() error {
	if m.db != nil {
		if err := m.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var entry Entry
	var savedAt int64
	var themes string

	err := rows.Scan(&entry.ID, &savedAt, &entry.Mode, &entry.CustomPath,
		&entry.FacePath, &entry.DisplayKind, &themes)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to scan save row: %w", err)
	}

	entry.SavedAt = time.Unix(savedAt, 0)
	if themes != "" {
		if err := json.Unmarshal([]byte(themes), &entry.Themes); err != nil {
			return Entry{}, fmt.Errorf("failed to decode themes: %w", err)
		}
	}
	return entry, nil
}
