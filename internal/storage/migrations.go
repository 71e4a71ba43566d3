package storage

import (
	"context"
	"fmt"
)

// migrate applies the migrations the database has not seen yet, each in its
// own transaction, and returns the resulting schema version. The version is
// kept in SQLite's user_version header field.
func (db *DB) migrate(ctx context.Context) (int, error) {
	current, err := db.SchemaVersion(ctx)
	if err != nil {
		return 0, err
	}
	if current > len(migrations) {
		return current, fmt.Errorf("schema version %d is newer than this binary (%d)", current, len(migrations))
	}

	for v := current; v < len(migrations); v++ {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return v, err
		}
		if _, err := tx.ExecContext(ctx, migrations[v]); err != nil {
			tx.Rollback()
			return v, fmt.Errorf("migration %d: %w", v+1, err)
		}
		// PRAGMA takes no bind parameters.
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d`, v+1)); err != nil {
			tx.Rollback()
			return v, fmt.Errorf("record migration %d: %w", v+1, err)
		}
		if err := tx.Commit(); err != nil {
			return v, fmt.Errorf("commit migration %d: %w", v+1, err)
		}
		db.logger.Debug("migration applied", "version", v+1)
	}
	return len(migrations), nil
}

var migrations = []string{
	// One row per validation run
	`CREATE TABLE IF NOT EXISTS validation_runs (
		run_id        TEXT PRIMARY KEY,
		input         TEXT NOT NULL,
		started_at    TEXT NOT NULL,
		duration_ms   INTEGER NOT NULL DEFAULT 0,
		error_count   INTEGER NOT NULL DEFAULT 0,
		warning_count INTEGER NOT NULL DEFAULT 0
	)`,

	// Notices, seq keeps discovery order
	`CREATE TABLE IF NOT EXISTS notices (
		run_id      TEXT NOT NULL REFERENCES validation_runs(run_id) ON DELETE CASCADE,
		seq         INTEGER NOT NULL,
		code        TEXT NOT NULL,
		severity    TEXT NOT NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL,
		filename    TEXT NOT NULL,
		field_name  TEXT,
		entity_id   TEXT,
		row_index   INTEGER,
		PRIMARY KEY (run_id, seq)
	)`,

	// Entities accepted per file
	`CREATE TABLE IF NOT EXISTS entity_counts (
		run_id   TEXT NOT NULL REFERENCES validation_runs(run_id) ON DELETE CASCADE,
		filename TEXT NOT NULL,
		count    INTEGER NOT NULL,
		PRIMARY KEY (run_id, filename)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notices_code ON notices(run_id, code)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_started ON validation_runs(started_at)`,
}
