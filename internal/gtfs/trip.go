package gtfs

const TripFile = "trips.txt"

type Trip struct {
	RouteID              string
	ServiceID            string
	TripID               string
	TripHeadsign         string
	TripShortName        string
	DirectionID          DirectionID
	BlockID              string
	ShapeID              string
	WheelchairAccessible Accessibility
	BikesAllowed         Accessibility
}

func (t *Trip) Key() string {
	return t.TripID
}

type TripBuilder struct {
	routeID              *string
	serviceID            *string
	tripID               *string
	tripHeadsign         *string
	tripShortName        *string
	directionID          *int
	blockID              *string
	shapeID              *string
	wheelchairAccessible *int
	bikesAllowed         *int
}

func NewTripBuilder() *TripBuilder {
	return &TripBuilder{}
}

func (b *TripBuilder) RouteID(v *string) *TripBuilder { b.routeID = v; return b }
func (b *TripBuilder) ServiceID(v *string) *TripBuilder { b.serviceID = v; return b }
func (b *TripBuilder) TripID(v *string) *TripBuilder { b.tripID = v; return b }
func (b *TripBuilder) TripHeadsign(v *string) *TripBuilder { b.tripHeadsign = v; return b }
func (b *TripBuilder) TripShortName(v *string) *TripBuilder { b.tripShortName = v; return b }
func (b *TripBuilder) DirectionID(v *int) *TripBuilder { b.directionID = v; return b }
func (b *TripBuilder) BlockID(v *string) *TripBuilder { b.blockID = v; return b }
func (b *TripBuilder) ShapeID(v *string) *TripBuilder { b.shapeID = v; return b }
func (b *TripBuilder) WheelchairAccessible(v *int) *TripBuilder { b.wheelchairAccessible = v; return b }
func (b *TripBuilder) BikesAllowed(v *int) *TripBuilder { b.bikesAllowed = v; return b }

func (b *TripBuilder) Clear() *TripBuilder {
	*b = TripBuilder{}
	return b
}

func (b *TripBuilder) Build() BuildResult[Trip] {
	c := newCheck(TripFile, b.tripID)
	t := &Trip{
		RouteID:              requireText(c, "route_id", b.routeID),
		ServiceID:            requireText(c, "service_id", b.serviceID),
		TripID:               requireText(c, "trip_id", b.tripID),
		TripHeadsign:         text(b.tripHeadsign),
		TripShortName:        text(b.tripShortName),
		DirectionID:          optionalEnum(c, "direction_id", b.directionID, DirectionUnspecified, directionIDs),
		BlockID:              text(b.blockID),
		ShapeID:              text(b.shapeID),
		WheelchairAccessible: optionalEnum(c, "wheelchair_accessible", b.wheelchairAccessible, AccessibilityUnknown, accessibilities),
		BikesAllowed:         optionalEnum(c, "bikes_allowed", b.bikesAllowed, AccessibilityUnknown, accessibilities),
	}
	if c.failed() {
		return Failure[Trip](c.notices...)
	}
	return Success(t)
}
