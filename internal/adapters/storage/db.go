package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLDB is the database interface used by all stores.
// Both *sql.DB and *TimedDB satisfy this interface.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Compile-time check that *sql.DB satisfies SQLDB.
var _ SQLDB = (*sql.DB)(nil)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		tenant_id TEXT NOT NULL,
		person_id TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS season (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		name TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS player (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		season_id TEXT NOT NULL,
		name TEXT NOT NULL,
		FOREIGN KEY (season_id) REFERENCES season(id)
	);

	CREATE TABLE IF NOT EXISTS coach (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		season_id TEXT NOT NULL,
		name TEXT NOT NULL,
		FOREIGN KEY (season_id) REFERENCES season(id)
	);

	CREATE TABLE IF NOT EXISTS team_group (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		season_id TEXT NOT NULL,
		name TEXT NOT NULL,
		FOREIGN KEY (season_id) REFERENCES season(id)
	);

	CREATE TABLE IF NOT EXISTS group_coach (
		group_id TEXT NOT NULL,
		coach_id TEXT NOT NULL,
		PRIMARY KEY (group_id, coach_id),
		FOREIGN KEY (group_id) REFERENCES team_group(id),
		FOREIGN KEY (coach_id) REFERENCES coach(id)
	);

	CREATE TABLE IF NOT EXISTS group_player (
		group_id TEXT NOT NULL,
		player_id TEXT NOT NULL,
		PRIMARY KEY (group_id, player_id),
		FOREIGN KEY (group_id) REFERENCES team_group(id),
		FOREIGN KEY (player_id) REFERENCES player(id)
	);

	CREATE TABLE IF NOT EXISTS session (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		season_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		event_type TEXT NOT NULL,
		title TEXT NOT NULL,
		location TEXT,
		group_id TEXT NOT NULL,
		coach_id TEXT,
		substitute_coach_id TEXT,
		start_at TEXT,
		end_at TEXT,
		day_of_week INTEGER,
		start_time TEXT,
		end_time TEXT,
		opponent TEXT,
		location_type TEXT,
		team_score INTEGER NOT NULL DEFAULT 0,
		opponent_score INTEGER NOT NULL DEFAULT 0,
		is_completed INTEGER NOT NULL DEFAULT 0,
		game_notes TEXT,
		FOREIGN KEY (group_id) REFERENCES team_group(id)
	);

	CREATE TABLE IF NOT EXISTS attendance (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		session_id TEXT NOT NULL,
		player_id TEXT NOT NULL,
		class_date TEXT NOT NULL,
		status TEXT NOT NULL,
		recorded_at TEXT NOT NULL,
		UNIQUE (session_id, player_id, class_date)
	);

	CREATE TABLE IF NOT EXISTS session_note (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		session_id TEXT NOT NULL,
		class_date TEXT NOT NULL,
		coach_id TEXT NOT NULL,
		general_note TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS session_note_entry (
		id TEXT PRIMARY KEY,
		note_id TEXT NOT NULL,
		player_id TEXT NOT NULL,
		note TEXT NOT NULL,
		FOREIGN KEY (note_id) REFERENCES session_note(id)
	);

	CREATE TABLE IF NOT EXISTS calendar_event (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		season_id TEXT NOT NULL,
		title TEXT NOT NULL,
		event_date TEXT NOT NULL,
		event_time TEXT,
		location TEXT,
		description TEXT
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
