package validate

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtfsvalidator/internal/feed"
	"gtfsvalidator/internal/gtfs"
	"gtfsvalidator/internal/metrics"
	"gtfsvalidator/internal/schema"
)

func csvFile(lines ...string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(strings.Join(lines, "\n") + "\n")}
}

func validFeed() fstest.MapFS {
	return fstest.MapFS{
		"agency.txt": csvFile(
			"agency_id,agency_name,agency_url,agency_timezone",
			"MTA,Metro,https://metro.example.com,America/New_York",
		),
		"stops.txt": csvFile(
			"stop_id,stop_name,stop_lat,stop_lon",
			"S1,Main St,40.7,-74.0",
			"S2,Park Ave,40.8,-73.9",
		),
		"routes.txt": csvFile(
			"route_id,agency_id,route_short_name,route_type",
			"R1,MTA,1,3",
		),
		"trips.txt": csvFile(
			"route_id,service_id,trip_id",
			"R1,WK,T1",
		),
		"stop_times.txt": csvFile(
			"trip_id,arrival_time,departure_time,stop_id,stop_sequence",
			"T1,08:00:00,08:00:00,S1,1",
			"T1,08:10:00,08:10:30,S2,2",
		),
		"calendar.txt": csvFile(
			"service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date",
			"WK,1,1,1,1,1,0,0,20240101,20241231",
		),
	}
}

func newValidator(t *testing.T, opts Options) *Validator {
	t.Helper()
	v, err := New(schema.Default(), opts, discardLogger())
	require.NoError(t, err)
	return v
}

func TestRun_ValidFeed(t *testing.T) {
	v := newValidator(t, Options{})

	res, err := v.Run(context.Background(), feed.NewFromFS("valid", validFeed(), discardLogger()))

	require.NoError(t, err)
	assert.Empty(t, res.Notices)
	assert.Equal(t, 2, res.Counts[gtfs.StopFile])
	assert.Equal(t, 2, res.Counts[gtfs.StopTimeFile])
	assert.Equal(t, 1, res.Counts[gtfs.CalendarFile])
	assert.NotEqual(t, uuid.Nil, res.RunID)

	trip, ok := res.Repository.Trip("T1")
	require.True(t, ok)
	assert.Equal(t, "WK", trip.ServiceID)
}

func TestRun_LogsFeedPath(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	v, err := New(schema.Default(), Options{}, logger)
	require.NoError(t, err)

	res, err := v.Run(context.Background(), feed.NewFromFS("feeds/metro", validFeed(), discardLogger()))

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "msg=\"validation started\" run_id="+res.RunID.String()+" feed=feeds/metro")
}

func TestRun_MissingRequiredFiles(t *testing.T) {
	v := newValidator(t, Options{})

	res, err := v.Run(context.Background(), feed.NewFromFS("empty", fstest.MapFS{}, discardLogger()))

	require.NoError(t, err)
	var got []string
	for _, n := range res.Notices {
		assert.Equal(t, "E002", n.Code)
		got = append(got, n.Filename)
	}
	assert.Equal(t, []string{
		"agency.txt", "stops.txt", "routes.txt", "trips.txt", "stop_times.txt", "calendar.txt",
	}, got)
}

func TestRun_CalendarDatesSatisfyCalendar(t *testing.T) {
	fsys := validFeed()
	delete(fsys, "calendar.txt")
	fsys["calendar_dates.txt"] = csvFile(
		"service_id,date,exception_type",
		"WK,20240704,2",
	)

	res, err := newValidator(t, Options{}).Run(context.Background(), feed.NewFromFS("dates", fsys, discardLogger()))

	require.NoError(t, err)
	assert.Empty(t, res.Notices)
	assert.Equal(t, 1, res.Counts[gtfs.CalendarDateFile])
}

func TestRun_NoticeOrder(t *testing.T) {
	fsys := validFeed()
	fsys["routes.txt"] = csvFile(
		"route_id,agency_id,route_short_name,route_type",
		"R1,MTA,1,3",
		"R2,MTA,2",
		"R3,MTA,3,99",
		"R1,MTA,1,3",
	)
	fsys["stops.txt"] = csvFile(
		"stop_name,stop_lat,stop_lon",
		"Main St,40.7,-74.0",
	)
	fsys["notes.txt"] = csvFile("hello")

	res, err := newValidator(t, Options{}).Run(context.Background(), feed.NewFromFS("broken", fsys, discardLogger()))

	require.NoError(t, err)
	var got []string
	for _, n := range res.Notices {
		got = append(got, n.Code+" "+n.Filename)
	}
	assert.Equal(t, []string{
		"E003 stops.txt",
		"E015 stops.txt",
		"E004 routes.txt",
		"E015 routes.txt",
		"E016 routes.txt",
		"E019 routes.txt",
		"W001 notes.txt",
	}, got)
	assert.Equal(t, 6, res.Errors())
	assert.Equal(t, 1, res.Warnings())
}

func TestRun_TrailingSpaceIDIsDuplicate(t *testing.T) {
	fsys := validFeed()
	fsys["stops.txt"] = csvFile(
		"stop_id,stop_name,stop_lat,stop_lon",
		"S1,Main St,40.7,-74.0",
		"S2,Park Ave,40.8,-73.9",
		"S1 ,Main St again,40.7,-74.0",
	)

	res, err := newValidator(t, Options{}).Run(context.Background(), feed.NewFromFS("spaces", fsys, discardLogger()))

	require.NoError(t, err)
	require.Len(t, res.Notices, 1)
	assert.Equal(t, "E019", res.Notices[0].Code)
	assert.Equal(t, "S1", res.Notices[0].EntityID)
	assert.Equal(t, 2, res.Counts[gtfs.StopFile])

	stop, ok := res.Repository.Stop("S1")
	require.True(t, ok)
	assert.Equal(t, "Main St", stop.StopName)
	_, ok = res.Repository.Stop("S1 ")
	assert.False(t, ok)
}

func TestRun_Metrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	fsys := validFeed()
	fsys["extra.txt"] = csvFile("x")

	_, err := newValidator(t, Options{Metrics: m}).Run(context.Background(), feed.NewFromFS("valid", fsys, discardLogger()))

	require.NoError(t, err)
	assert.Equal(t, float64(2), testutil.ToFloat64(m.RowsTotal.WithLabelValues("stop_times.txt")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.EntitiesStored.WithLabelValues("stops.txt")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.NoticesTotal.WithLabelValues("W001", "WARNING")))
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := newValidator(t, Options{}).Run(ctx, feed.NewFromFS("valid", validFeed(), discardLogger()))

	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, res.Notices)
}
