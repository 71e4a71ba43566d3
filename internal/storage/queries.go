package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gtfsvalidator/internal/notice"
)

// RunRow summarises a stored validation run.
type RunRow struct {
	RunID     uuid.UUID
	Input     string
	StartedAt time.Time
	Duration  time.Duration
	Errors    int
	Warnings  int
}

// Notices returns the notices of a run in the order they were found.
func (db *DB) Notices(ctx context.Context, runID uuid.UUID) ([]notice.Notice, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT code, title, description, filename, field_name, entity_id, row_index
		FROM notices
		WHERE run_id = ?
		ORDER BY seq`,
		runID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("notices query: %w", err)
	}
	defer rows.Close()

	var out []notice.Notice
	for rows.Next() {
		var n notice.Notice
		var field, entity sql.NullString
		var row sql.NullInt64
		if err := rows.Scan(&n.Code, &n.Title, &n.Description, &n.Filename, &field, &entity, &row); err != nil {
			return nil, fmt.Errorf("scan notice: %w", err)
		}
		n.FieldName = field.String
		n.EntityID = entity.String
		n.Row = int(row.Int64)
		out = append(out, n)
	}
	return out, rows.Err()
}

// EntityCounts returns the entities accepted per file in a run.
func (db *DB) EntityCounts(ctx context.Context, runID uuid.UUID) (map[string]int, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT filename, count FROM entity_counts WHERE run_id = ?`, runID.String())
	if err != nil {
		return nil, fmt.Errorf("entity counts query: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var file string
		var n int
		if err := rows.Scan(&file, &n); err != nil {
			return nil, fmt.Errorf("scan entity count: %w", err)
		}
		counts[file] = n
	}
	return counts, rows.Err()
}

// Runs lists the most recent runs first.
func (db *DB) Runs(ctx context.Context, limit int) ([]RunRow, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT run_id, input, started_at, duration_ms, error_count, warning_count
		FROM validation_runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("runs query: %w", err)
	}
	defer rows.Close()

	var runs []RunRow
	for rows.Next() {
		var r RunRow
		var id, started string
		var ms int64
		if err := rows.Scan(&id, &r.Input, &started, &ms, &r.Errors, &r.Warnings); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.RunID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse run id %q: %w", id, err)
		}
		if r.StartedAt, err = time.Parse(time.RFC3339, started); err != nil {
			return nil, fmt.Errorf("parse started_at %q: %w", started, err)
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// PruneRuns deletes all but the keep most recent runs and returns how many
// were removed.
func (db *DB) PruneRuns(ctx context.Context, keep int) (int64, error) {
	res, err := db.ExecContext(ctx, `
		DELETE FROM validation_runs
		WHERE run_id NOT IN (
			SELECT run_id FROM validation_runs ORDER BY started_at DESC, rowid DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	return res.RowsAffected()
}
