// Package storage keeps validation reports in SQLite so runs can be
// compared after the process exits.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultBusyTimeout is how long a write waits on a lock held by another
// gtfsvalidator process before failing.
const DefaultBusyTimeout = 5 * time.Second

// DB wraps a SQLite connection holding validation reports.
type DB struct {
	*sql.DB
	path   string
	logger *slog.Logger
}

// dsn builds the go-sqlite3 connection string for a report database.
// Cascading deletes in PruneRuns depend on foreign keys being on.
func dsn(path string, busy time.Duration) string {
	q := url.Values{}
	q.Set("_busy_timeout", strconv.FormatInt(busy.Milliseconds(), 10))
	q.Set("_foreign_keys", "on")
	q.Set("_journal_mode", "WAL")
	return "file:" + path + "?" + q.Encode()
}

// Open creates or opens the report database at path and brings its schema
// up to date.
func Open(ctx context.Context, path string, logger *slog.Logger) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", dsn(path, DefaultBusyTimeout))
	if err != nil {
		return nil, fmt.Errorf("open report database %s: %w", path, err)
	}
	// One writer at a time; reports are small and a CLI run is short.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping report database %s: %w", path, err)
	}

	db := &DB{DB: sqlDB, path: path, logger: logger.With("db", path)}
	version, err := db.migrate(ctx)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate report database %s: %w", path, err)
	}

	db.logger.Debug("report database opened", "schema_version", version)
	return db, nil
}

// SchemaVersion is the number of migrations applied to the database.
func (db *DB) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	if err := db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}

// Close releases the connection.
func (db *DB) Close() error {
	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("close report database %s: %w", db.path, err)
	}
	db.logger.Debug("report database closed")
	return nil
}
