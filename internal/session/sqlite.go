package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// storageKey matches the durable key used by the web build of the wizard, so
// snapshots stay recognizable across renditions.
const storageKey = "patent-search-storage"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS session_state (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// SessionFile persists the durable snapshot as a single JSON value in a
// SQLite key-value table. The completion credential never passes through
// here; it lives only in process memory.
type SessionFile struct {
	db *sqlx.DB
}

func OpenSessionFile(dbPath string) (*SessionFile, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SessionFile{db: db}, nil
}

func (f *SessionFile) Close() error {
	return f.db.Close()
}

// Save writes the store's durable snapshot, replacing any previous value.
func (f *SessionFile) Save(store *Store) error {
	snap := store.SnapshotState()
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = f.db.Exec(
		`INSERT INTO session_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		storageKey, string(blob), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load restores a saved snapshot into the store. A missing row is a cold
// start, not an error.
func (f *SessionFile) Load(store *Store) error {
	var blob string
	err := f.db.Get(&blob, `SELECT value FROM session_state WHERE key = ?`, storageKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(blob), &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	store.Restore(snap)
	return nil
}

// Reset deletes the durable snapshot.
func (f *SessionFile) Reset() error {
	if _, err := f.db.Exec(`DELETE FROM session_state WHERE key = ?`, storageKey); err != nil {
		return fmt.Errorf("reset snapshot: %w", err)
	}
	return nil
}
