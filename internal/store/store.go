// Package store owns the SQLite database: opening, pragmas, and schema
// migrations. Domain packages query through the raw connection.
package store

import (
	"database/sql"
	"fmt"

	"github.com/alignhq/align/internal/config"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the align database.
func Open() (*DB, error) {
	paths := config.GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("creating data dirs: %w", err)
	}

	conn, err := sql.Open("sqlite", paths.DBFile+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA temp_store=MEMORY",
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the raw sql.DB for direct queries.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// migrate runs all schema migrations. Dates are stored as YYYY-MM-DD TEXT in
// the user's local calendar; timestamps as UTC DATETIME.
func (db *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			color TEXT DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS goals (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			category TEXT DEFAULT 'Personal',
			color TEXT DEFAULT '',
			type TEXT DEFAULT 'boolean',
			target_value REAL,
			archived INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS action_steps (
			id TEXT PRIMARY KEY,
			goal_id TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			type TEXT DEFAULT 'boolean',
			period TEXT DEFAULT 'daily',
			target_value REAL,
			days TEXT DEFAULT '',
			created_at TEXT NOT NULL,
			end_date TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS daily_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			action_step_id TEXT NOT NULL REFERENCES action_steps(id) ON DELETE CASCADE,
			log_date TEXT NOT NULL,
			is_complete INTEGER DEFAULT 0,
			numeric_value REAL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(action_step_id, log_date)
		)`,
		`CREATE TABLE IF NOT EXISTS journal_entries (
			entry_date TEXT PRIMARY KEY,
			diary TEXT DEFAULT '',
			gratitude TEXT DEFAULT '',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS weekly_reviews (
			week_start TEXT PRIMARY KEY,
			scores TEXT DEFAULT '{}',
			wins TEXT DEFAULT '',
			adjustments TEXT DEFAULT '',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_action_steps_goal ON action_steps(goal_id)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_logs_step ON daily_logs(action_step_id)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_logs_date ON daily_logs(log_date)`,
	}

	for _, m := range migrations {
		if _, err := db.conn.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	return db.seedCategories()
}

// seedCategories inserts the default category set on first run.
func (db *DB) seedCategories() error {
	defaults := map[string]string{
		"Faith":    "#8b5cf6",
		"Career":   "#3b82f6",
		"Health":   "#ef4444",
		"Learning": "#f59e0b",
		"Personal": "#50C878",
	}
	for name, color := range defaults {
		if _, err := db.conn.Exec(
			`INSERT INTO categories (name, color) VALUES (?, ?) ON CONFLICT(name) DO NOTHING`,
			name, color,
		); err != nil {
			return fmt.Errorf("seeding category %q: %w", name, err)
		}
	}
	return nil
}
