package gtfs

const StopTimeFile = "stop_times.txt"

type StopTimeKey struct {
	TripID       string
	StopSequence int
}

// StopTime is one call of a trip at a stop. Times are seconds since midnight
// of the service day and are nil for untimed stops.
type StopTime struct {
	TripID            string
	ArrivalTime       *int
	DepartureTime     *int
	StopID            string
	StopSequence      int
	StopHeadsign      string
	PickupType        PickupType
	DropOffType       PickupType
	ShapeDistTraveled *float64
	Timepoint         Timepoint
}

func (s *StopTime) Key() StopTimeKey {
	return StopTimeKey{TripID: s.TripID, StopSequence: s.StopSequence}
}

type StopTimeBuilder struct {
	tripID            *string
	arrivalTime       *int
	departureTime     *int
	stopID            *string
	stopSequence      *int
	stopHeadsign      *string
	pickupType        *int
	dropOffType       *int
	shapeDistTraveled *float64
	timepoint         *int
}

func NewStopTimeBuilder() *StopTimeBuilder {
	return &StopTimeBuilder{}
}

func (b *StopTimeBuilder) TripID(v *string) *StopTimeBuilder { b.tripID = v; return b }
func (b *StopTimeBuilder) ArrivalTime(v *int) *StopTimeBuilder { b.arrivalTime = v; return b }
func (b *StopTimeBuilder) DepartureTime(v *int) *StopTimeBuilder { b.departureTime = v; return b }
func (b *StopTimeBuilder) StopID(v *string) *StopTimeBuilder { b.stopID = v; return b }
func (b *StopTimeBuilder) StopSequence(v *int) *StopTimeBuilder { b.stopSequence = v; return b }
func (b *StopTimeBuilder) StopHeadsign(v *string) *StopTimeBuilder { b.stopHeadsign = v; return b }
func (b *StopTimeBuilder) PickupType(v *int) *StopTimeBuilder { b.pickupType = v; return b }
func (b *StopTimeBuilder) DropOffType(v *int) *StopTimeBuilder { b.dropOffType = v; return b }
func (b *StopTimeBuilder) ShapeDistTraveled(v *float64) *StopTimeBuilder { b.shapeDistTraveled = v; return b }
func (b *StopTimeBuilder) Timepoint(v *int) *StopTimeBuilder { b.timepoint = v; return b }

func (b *StopTimeBuilder) Clear() *StopTimeBuilder {
	*b = StopTimeBuilder{}
	return b
}

// Build requires arrival and departure times together, and requires both
// when the row explicitly claims to be an exact timepoint.
func (b *StopTimeBuilder) Build() BuildResult[StopTime] {
	c := newCheck(StopTimeFile, b.tripID)
	s := &StopTime{
		TripID:            requireText(c, "trip_id", b.tripID),
		ArrivalTime:       copyPtr(b.arrivalTime),
		DepartureTime:     copyPtr(b.departureTime),
		StopID:            requireText(c, "stop_id", b.stopID),
		StopSequence:      requireValue(c, "stop_sequence", b.stopSequence),
		StopHeadsign:      text(b.stopHeadsign),
		PickupType:        optionalEnum(c, "pickup_type", b.pickupType, PickupRegular, pickupTypes),
		DropOffType:       optionalEnum(c, "drop_off_type", b.dropOffType, PickupRegular, pickupTypes),
		ShapeDistTraveled: copyPtr(b.shapeDistTraveled),
		Timepoint:         optionalEnum(c, "timepoint", b.timepoint, TimepointExact, timepoints),
	}

	switch {
	case b.arrivalTime == nil && b.departureTime != nil:
		c.missing("arrival_time")
	case b.arrivalTime != nil && b.departureTime == nil:
		c.missing("departure_time")
	case b.arrivalTime == nil && b.departureTime == nil && b.timepoint != nil && *b.timepoint == int(TimepointExact):
		c.missing("arrival_time")
		c.missing("departure_time")
	}

	if c.failed() {
		return Failure[StopTime](c.notices...)
	}
	return Success(s)
}
