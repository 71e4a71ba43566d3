package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtfsvalidator/internal/notice"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "reports.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testReport(started time.Time) Report {
	return Report{
		RunID:     uuid.New(),
		Input:     "feed.zip",
		StartedAt: started,
		Duration:  1500 * time.Millisecond,
		Notices: []notice.Notice{
			notice.InvalidRowLength("routes.txt", 4, 3, 2),
			notice.MissingRequiredValue("stops.txt", "stop_name", "S1"),
			notice.NonStandardFile("notes.txt"),
		},
		Counts: map[string]int{"agency.txt": 1, "routes.txt": 0},
	}
}

func TestSaveReport_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	r := testReport(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, db.SaveReport(ctx, r))

	got, err := db.Notices(ctx, r.RunID)
	require.NoError(t, err)
	assert.Equal(t, r.Notices, got)

	counts, err := db.EntityCounts(ctx, r.RunID)
	require.NoError(t, err)
	assert.Equal(t, r.Counts, counts)

	runs, err := db.Runs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, r.RunID, runs[0].RunID)
	assert.Equal(t, 2, runs[0].Errors)
	assert.Equal(t, 1, runs[0].Warnings)
	assert.Equal(t, 1500*time.Millisecond, runs[0].Duration)
	assert.True(t, r.StartedAt.Equal(runs[0].StartedAt))
}

func TestSaveReport_DuplicateRunRollsBack(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	r := testReport(time.Now())
	require.NoError(t, db.SaveReport(ctx, r))

	again := r
	again.Notices = append([]notice.Notice{notice.NonStandardFile("x.txt")}, r.Notices...)
	err := db.SaveReport(ctx, again)
	require.Error(t, err)

	got, err := db.Notices(ctx, r.RunID)
	require.NoError(t, err)
	assert.Len(t, got, len(r.Notices))
}

func TestNotices_UnknownRun(t *testing.T) {
	db := openTestDB(t)

	got, err := db.Notices(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPruneRuns(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var newest uuid.UUID
	for i := 0; i < 3; i++ {
		r := testReport(base.Add(time.Duration(i) * time.Hour))
		require.NoError(t, db.SaveReport(ctx, r))
		newest = r.RunID
	}

	removed, err := db.PruneRuns(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	runs, err := db.Runs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, newest, runs[0].RunID)

	var orphans int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notices WHERE run_id != ?`, newest.String()).Scan(&orphans))
	assert.Zero(t, orphans)
}

func TestOpen_MigratesOnce(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "reports.db")

	db, err := Open(ctx, path, logger)
	require.NoError(t, err)
	v, err := db.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(migrations), v)
	r := testReport(time.Now())
	require.NoError(t, db.SaveReport(ctx, r))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path, logger)
	require.NoError(t, err)
	defer db.Close()
	runs, err := db.Runs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, r.RunID, runs[0].RunID)

	var fk int
	require.NoError(t, db.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestOpen_NewerSchemaRejected(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "reports.db")

	db, err := Open(ctx, path, logger)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d`, len(migrations)+1))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Open(ctx, path, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than this binary")
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "file:/tmp/r.db?_busy_timeout=250&_foreign_keys=on&_journal_mode=WAL", dsn("/tmp/r.db", 250*time.Millisecond))
}
