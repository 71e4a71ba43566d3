package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtfsvalidator/internal/gtfs"
)

func TestAddCalendar_InsertOnce(t *testing.T) {
	repo := New()
	first := &gtfs.Calendar{ServiceID: "service_id", Monday: true}
	second := &gtfs.Calendar{ServiceID: "service_id", Sunday: true}

	stored, ok := repo.AddCalendar(first)
	require.True(t, ok)
	assert.Same(t, first, stored)

	stored, ok = repo.AddCalendar(second)
	assert.False(t, ok)
	assert.Nil(t, stored)

	got, ok := repo.Calendar("service_id")
	require.True(t, ok)
	assert.Same(t, first, got, "duplicate must not overwrite")
	assert.True(t, got.Monday)
	assert.False(t, got.Sunday)
}

func TestLookupAbsent(t *testing.T) {
	repo := New()
	_, ok := repo.Agency("nope")
	assert.False(t, ok)
	_, ok = repo.StopTime("T1", 1)
	assert.False(t, ok)
}

func TestCompositeKeys(t *testing.T) {
	repo := New()
	d := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)

	_, ok := repo.AddCalendarDate(&gtfs.CalendarDate{ServiceID: "WK", Date: d, ExceptionType: gtfs.ServiceRemoved})
	require.True(t, ok)
	_, ok = repo.AddCalendarDate(&gtfs.CalendarDate{ServiceID: "WK", Date: d.AddDate(0, 0, 1)})
	assert.True(t, ok, "different date is a different key")
	_, ok = repo.AddCalendarDate(&gtfs.CalendarDate{ServiceID: "WK", Date: d})
	assert.False(t, ok)

	got, ok := repo.CalendarDate("WK", d)
	require.True(t, ok)
	assert.Equal(t, gtfs.ServiceRemoved, got.ExceptionType)

	_, ok = repo.AddTransfer(&gtfs.Transfer{FromStopID: "A", ToStopID: "B"})
	require.True(t, ok)
	_, ok = repo.AddTransfer(&gtfs.Transfer{FromStopID: "B", ToStopID: "A"})
	assert.True(t, ok)
	_, ok = repo.Transfer("A", "B")
	assert.True(t, ok)

	_, ok = repo.AddStopTime(&gtfs.StopTime{TripID: "T1", StopSequence: 1})
	require.True(t, ok)
	_, ok = repo.AddStopTime(&gtfs.StopTime{TripID: "T1", StopSequence: 1, StopID: "other"})
	assert.False(t, ok)
}

func TestAddNilPanics(t *testing.T) {
	repo := New()
	assert.Panics(t, func() { repo.AddAgency(nil) })
	assert.Panics(t, func() { repo.AddPathway(nil) })
	assert.Panics(t, func() { repo.AddTranslation(nil) })
}

func TestCounts(t *testing.T) {
	repo := New()
	repo.AddRoute(&gtfs.Route{RouteID: "R1"})
	repo.AddRoute(&gtfs.Route{RouteID: "R2"})
	repo.AddRoute(&gtfs.Route{RouteID: "R1"})
	repo.AddLevel(&gtfs.Level{LevelID: "L"})

	counts := repo.Counts()
	assert.Equal(t, 2, counts[gtfs.RouteFile])
	assert.Equal(t, 1, counts[gtfs.LevelFile])
	assert.Equal(t, 0, counts[gtfs.AgencyFile])
	assert.Len(t, counts, 16)
}

func TestConcurrentInsertStoresOnce(t *testing.T) {
	repo := New()
	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := repo.AddStop(&gtfs.Stop{StopID: "S1"}); ok {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, accepted)
}
