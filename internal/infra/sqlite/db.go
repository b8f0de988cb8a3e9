// Package sqlite provides SQLite-based persistent storage for Momentum.
// Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode, foreign keys, and a 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// SQLite is single-writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id                TEXT PRIMARY KEY,
			title             TEXT NOT NULL,
			status            TEXT NOT NULL DEFAULT 'pending',
			priority          TEXT NOT NULL,
			estimated_minutes INTEGER NOT NULL DEFAULT 0,
			actual_minutes    INTEGER,
			due_at            INTEGER,
			scheduled_at      INTEGER,
			created_at        INTEGER NOT NULL,
			completed_at      INTEGER,
			energy            INTEGER NOT NULL DEFAULT 3,
			contexts          TEXT NOT NULL DEFAULT '',
			tags              TEXT NOT NULL DEFAULT '',
			base_xp           INTEGER NOT NULL,
			chain_id          TEXT,
			chain_order       INTEGER NOT NULL DEFAULT 0,
			triggers_id       TEXT,
			triggered_by_id   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_completed_at ON tasks(completed_at)`,

		// Cumulative counters, one row per key.
		`CREATE TABLE IF NOT EXISTS stats (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS streaks (
			kind              TEXT PRIMARY KEY,
			current_count     INTEGER NOT NULL DEFAULT 0,
			longest_count     INTEGER NOT NULL DEFAULT 0,
			last_activity     INTEGER,
			shields_available INTEGER NOT NULL DEFAULT 0,
			shields_used      INTEGER NOT NULL DEFAULT 0,
			started_at        INTEGER
		)`,

		// Append-only day log, one row per calendar date.
		`CREATE TABLE IF NOT EXISTS day_ratings (
			date            TEXT PRIMARY KEY,
			type            TEXT NOT NULL,
			energy          INTEGER NOT NULL DEFAULT 0,
			tasks_completed INTEGER NOT NULL DEFAULT 0,
			xp_earned       INTEGER NOT NULL DEFAULT 0,
			note            TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS achievements (
			id          TEXT PRIMARY KEY,
			unlocked_at INTEGER NOT NULL,
			celebrated  BOOLEAN NOT NULL DEFAULT 0
		)`,
	}

	for i, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
