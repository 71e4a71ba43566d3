package gtfs

import (
	"fmt"

	"gtfsvalidator/internal/notice"
)

const FrequencyFile = "frequencies.txt"

type FrequencyKey struct {
	TripID    string
	StartTime int
}

// Frequency describes headway-based service for a trip. Times are seconds
// since midnight of the service day.
type Frequency struct {
	TripID      string
	StartTime   int
	EndTime     int
	HeadwaySecs int
	ExactTimes  ExactTimes
}

func (f *Frequency) Key() FrequencyKey {
	return FrequencyKey{TripID: f.TripID, StartTime: f.StartTime}
}

type FrequencyBuilder struct {
	tripID      *string
	startTime   *int
	endTime     *int
	headwaySecs *int
	exactTimes  *int
}

func NewFrequencyBuilder() *FrequencyBuilder {
	return &FrequencyBuilder{}
}

func (b *FrequencyBuilder) TripID(v *string) *FrequencyBuilder { b.tripID = v; return b }
func (b *FrequencyBuilder) StartTime(v *int) *FrequencyBuilder { b.startTime = v; return b }
func (b *FrequencyBuilder) EndTime(v *int) *FrequencyBuilder { b.endTime = v; return b }
func (b *FrequencyBuilder) HeadwaySecs(v *int) *FrequencyBuilder { b.headwaySecs = v; return b }
func (b *FrequencyBuilder) ExactTimes(v *int) *FrequencyBuilder { b.exactTimes = v; return b }

func (b *FrequencyBuilder) Clear() *FrequencyBuilder {
	*b = FrequencyBuilder{}
	return b
}

func (b *FrequencyBuilder) Build() BuildResult[Frequency] {
	c := newCheck(FrequencyFile, b.tripID)
	f := &Frequency{
		TripID:      requireText(c, "trip_id", b.tripID),
		StartTime:   requireValue(c, "start_time", b.startTime),
		EndTime:     requireValue(c, "end_time", b.endTime),
		HeadwaySecs: requireValue(c, "headway_secs", b.headwaySecs),
		ExactTimes:  optionalEnum(c, "exact_times", b.exactTimes, FrequencyBased, exactTimes),
	}
	if b.startTime != nil && b.endTime != nil && *b.startTime >= *b.endTime {
		c.add(notice.InconsistentTimeRange(FrequencyFile, "start_time", "end_time", c.entityID,
			FormatTime(*b.startTime), FormatTime(*b.endTime)))
	}
	if c.failed() {
		return Failure[Frequency](c.notices...)
	}
	return Success(f)
}

// FormatTime renders seconds since midnight as HH:MM:SS.
func FormatTime(secs int) string {
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}
