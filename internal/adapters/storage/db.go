package storage

import (
	"database/sql"
	"fmt"
)

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

	// Dates are stored as YYYY-MM-DD text and parsed defensively on scan.
	schema := `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT
	);

	CREATE TABLE IF NOT EXISTS athlete (
		id TEXT PRIMARY KEY,
		account_id TEXT,
		coach_id TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		level TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (coach_id) REFERENCES account(id)
	);

	CREATE TABLE IF NOT EXISTS program (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		weeks INTEGER NOT NULL,
		start_date TEXT NOT NULL,
		created_by TEXT NOT NULL,
		created_at TEXT NOT NULL,
		FOREIGN KEY (created_by) REFERENCES account(id)
	);

	CREATE TABLE IF NOT EXISTS program_share (
		id TEXT PRIMARY KEY,
		program_id TEXT NOT NULL,
		athlete_id TEXT NOT NULL,
		granted_by TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE (program_id, athlete_id),
		FOREIGN KEY (program_id) REFERENCES program(id),
		FOREIGN KEY (athlete_id) REFERENCES athlete(id)
	);

	CREATE TABLE IF NOT EXISTS workout (
		id TEXT PRIMARY KEY,
		program_id TEXT NOT NULL,
		title TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL DEFAULT '',
		theme TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		details TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		FOREIGN KEY (program_id) REFERENCES program(id)
	);
	CREATE INDEX IF NOT EXISTS idx_workout_date ON workout(date);

	CREATE TABLE IF NOT EXISTS competition (
		id TEXT PRIMARY KEY,
		program_id TEXT NOT NULL,
		name TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		distance_meters INTEGER NOT NULL,
		level TEXT NOT NULL DEFAULT '',
		is_main INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		FOREIGN KEY (program_id) REFERENCES program(id)
	);
	CREATE INDEX IF NOT EXISTS idx_competition_date ON competition(date);

	CREATE TABLE IF NOT EXISTS theme (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		label TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS feedback (
		id TEXT PRIMARY KEY,
		workout_id TEXT NOT NULL,
		athlete_id TEXT NOT NULL,
		rating INTEGER NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		completed INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT,
		UNIQUE (workout_id, athlete_id),
		FOREIGN KEY (workout_id) REFERENCES workout(id),
		FOREIGN KEY (athlete_id) REFERENCES athlete(id)
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
