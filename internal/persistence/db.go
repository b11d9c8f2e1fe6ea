// Package persistence provides SQLite-based save storage for the store
// simulation. The live save is one JSON snapshot; daily history copies are
// kept gzip-compressed for inspection and rollback.
package persistence

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/klauspost/compress/gzip"
	_ "modernc.org/sqlite"

	"github.com/mkweon/grandmall/internal/sim"
)

// ErrNoSave is returned when the database holds no snapshot yet.
var ErrNoSave = errors.New("no saved game")

// DB wraps a SQLite connection for save storage.
type DB struct {
	conn        *sqlx.DB
	keepHistory bool
}

// Open opens or creates a SQLite database at the given path.
func Open(path string, keepHistory bool) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn, keepHistory: keepHistory}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS world_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day INTEGER NOT NULL,
		saved_at TEXT NOT NULL,
		body BLOB NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_day ON snapshots(day);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveMeta stores a key-value pair in world metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO world_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM world_meta WHERE key = ?", key)
	return value, err
}

// SaveSnapshot writes the live save and, when history is enabled, appends a
// compressed daily copy.
func (db *DB) SaveSnapshot(snap sim.Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := db.SaveMeta("save", string(body)); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := db.SaveMeta("saved_at", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}

	if db.keepHistory {
		if err := db.appendHistory(snap.Day, body); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
	}

	slog.Info("game saved", "day", snap.Day, "gold", snap.Gold, "bytes", len(body))
	return nil
}

// LoadSnapshot reads the live save. A corrupt save is treated as absent so
// the caller falls back to a fresh game rather than crashing on startup.
func (db *DB) LoadSnapshot() (sim.Snapshot, error) {
	var snap sim.Snapshot

	raw, err := db.GetMeta("save")
	if errors.Is(err, sql.ErrNoRows) {
		return snap, ErrNoSave
	}
	if err != nil {
		return snap, fmt.Errorf("load snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		slog.Warn("saved game is corrupt, starting fresh", "error", err)
		return sim.Snapshot{}, ErrNoSave
	}
	return snap, nil
}

func (db *DB) appendHistory(day int, body []byte) error {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestSpeed)
	if err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	_, err = db.conn.Exec(
		"INSERT INTO snapshots (day, saved_at, body) VALUES (?, ?, ?)",
		day, time.Now().UTC().Format(time.RFC3339), buf.Bytes(),
	)
	return err
}

// HistoryDays lists the days that have archived snapshots, newest first.
func (db *DB) HistoryDays(limit int) ([]int, error) {
	var days []int
	err := db.conn.Select(&days,
		"SELECT day FROM snapshots ORDER BY id DESC LIMIT ?", limit)
	return days, err
}

// HistorySnapshot loads the most recent archived snapshot for a day.
func (db *DB) HistorySnapshot(day int) (sim.Snapshot, error) {
	var snap sim.Snapshot

	var body []byte
	err := db.conn.Get(&body,
		"SELECT body FROM snapshots WHERE day = ? ORDER BY id DESC LIMIT 1", day)
	if errors.Is(err, sql.ErrNoRows) {
		return snap, ErrNoSave
	}
	if err != nil {
		return snap, fmt.Errorf("load history: %w", err)
	}

	r, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return snap, fmt.Errorf("decompress history: %w", err)
	}
	defer r.Close()

	raw, err := io.ReadAll(r)
	if err != nil {
		return snap, fmt.Errorf("decompress history: %w", err)
	}
	if err := json.Unmarshal(raw, &snap); err != nil {
		return snap, fmt.Errorf("parse history: %w", err)
	}
	return snap, nil
}

// PruneHistory drops archived snapshots older than the newest keep entries.
func (db *DB) PruneHistory(keep int) error {
	if keep <= 0 {
		return nil
	}
	_, err := db.conn.Exec(`DELETE FROM snapshots WHERE id NOT IN
		(SELECT id FROM snapshots ORDER BY id DESC LIMIT ?)`, keep)
	return err
}
