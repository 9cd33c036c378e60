package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/retiretime/retiretime/internal/logger"
)

const (
	eventsKey  = "events"
	refreshKey = "widget_refresh_requested"
)

// SQLiteStore persists the collection blob in a single-file sqlite database
// shared between the app and widget processes. One fixed key carries the
// collection, a second carries the widget refresh signal.
type SQLiteStore struct {
	db  *sql.DB
	log logger.Logger
}

// NewSQLiteStore opens (and if needed creates) the database at path.
func NewSQLiteStore(path string, log logger.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS app_state (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize storage schema: %w", err)
	}

	return &SQLiteStore{db: db, log: log}, nil
}

// Load returns the collection blob, or (nil, nil) if none has been saved.
func (s *SQLiteStore) Load(ctx context.Context) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM app_state WHERE key = ?", eventsKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load events blob: %w", err)
	}
	return value, nil
}

// Save replaces the collection blob wholesale.
func (s *SQLiteStore) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		eventsKey, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save events blob: %w", err)
	}
	return nil
}

// RequestRefresh bumps the widget refresh signal key. Fire-and-forget:
// failures are logged and swallowed, per the refresh signal contract.
func (s *SQLiteStore) RequestRefresh() {
	_, err := s.db.Exec(
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		refreshKey, []byte(time.Now().UTC().Format(time.RFC3339Nano)), time.Now().UTC())
	if err != nil {
		s.log.Warn("failed to signal widget refresh", logger.Err(err))
	}
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
