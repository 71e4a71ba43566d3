package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"gtfsvalidator/internal/notice"
)

// Report is what gets persisted for one validation run.
type Report struct {
	RunID     uuid.UUID
	Input     string
	StartedAt time.Time
	Duration  time.Duration
	Notices   []notice.Notice
	Counts    map[string]int
}

// SaveReport stores a run with its notices and entity counts. The whole
// report is written in a single transaction.
func (db *DB) SaveReport(ctx context.Context, r Report) error {
	start := time.Now()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var errs, warnings int
	for _, n := range r.Notices {
		if n.Severity() == notice.SeverityWarning {
			warnings++
		} else {
			errs++
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO validation_runs (run_id, input, started_at, duration_ms, error_count, warning_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID.String(), r.Input, r.StartedAt.UTC().Format(time.RFC3339), r.Duration.Milliseconds(),
		errs, warnings,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO notices (run_id, seq, code, severity, title, description, filename, field_name, entity_id, row_index)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare notices: %w", err)
	}
	defer stmt.Close()

	for i, n := range r.Notices {
		if _, err := stmt.ExecContext(ctx, r.RunID.String(), i, n.Code, n.Severity().String(),
			n.Title, n.Description, n.Filename,
			nullString(n.FieldName), nullString(n.EntityID), nullInt(n.Row),
		); err != nil {
			return fmt.Errorf("insert notice %d: %w", i, err)
		}
	}

	countStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entity_counts (run_id, filename, count) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare entity counts: %w", err)
	}
	defer countStmt.Close()

	files := make([]string, 0, len(r.Counts))
	for f := range r.Counts {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		if _, err := countStmt.ExecContext(ctx, r.RunID.String(), f, r.Counts[f]); err != nil {
			return fmt.Errorf("insert entity count %s: %w", f, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	db.logger.Info("report saved",
		"run_id", r.RunID.String(),
		"notices", len(r.Notices),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}
