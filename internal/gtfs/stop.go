package gtfs

import (
	"strconv"

	"gtfsvalidator/internal/notice"
)

const StopFile = "stops.txt"

// Stop is a stop, station, entrance, generic node or boarding area.
// Coordinates are nil only for location types that do not require them.
type Stop struct {
	StopID             string
	StopCode           string
	StopName           string
	StopDesc           string
	StopLat            *float64
	StopLon            *float64
	ZoneID             string
	StopURL            string
	LocationType       LocationType
	ParentStation      string
	StopTimezone       string
	WheelchairBoarding Accessibility
	LevelID            string
	PlatformCode       string
}

func (s *Stop) Key() string {
	return s.StopID
}

type StopBuilder struct {
	stopID             *string
	stopCode           *string
	stopName           *string
	stopDesc           *string
	stopLat            *float64
	stopLon            *float64
	zoneID             *string
	stopURL            *string
	locationType       *int
	parentStation      *string
	stopTimezone       *string
	wheelchairBoarding *int
	levelID            *string
	platformCode       *string
}

func NewStopBuilder() *StopBuilder {
	return &StopBuilder{}
}

func (b *StopBuilder) StopID(v *string) *StopBuilder { b.stopID = v; return b }
func (b *StopBuilder) StopCode(v *string) *StopBuilder { b.stopCode = v; return b }
func (b *StopBuilder) StopName(v *string) *StopBuilder { b.stopName = v; return b }
func (b *StopBuilder) StopDesc(v *string) *StopBuilder { b.stopDesc = v; return b }
func (b *StopBuilder) StopLat(v *float64) *StopBuilder { b.stopLat = v; return b }
func (b *StopBuilder) StopLon(v *float64) *StopBuilder { b.stopLon = v; return b }
func (b *StopBuilder) ZoneID(v *string) *StopBuilder { b.zoneID = v; return b }
func (b *StopBuilder) StopURL(v *string) *StopBuilder { b.stopURL = v; return b }
func (b *StopBuilder) LocationType(v *int) *StopBuilder { b.locationType = v; return b }
func (b *StopBuilder) ParentStation(v *string) *StopBuilder { b.parentStation = v; return b }
func (b *StopBuilder) StopTimezone(v *string) *StopBuilder { b.stopTimezone = v; return b }
func (b *StopBuilder) WheelchairBoarding(v *int) *StopBuilder { b.wheelchairBoarding = v; return b }
func (b *StopBuilder) LevelID(v *string) *StopBuilder { b.levelID = v; return b }
func (b *StopBuilder) PlatformCode(v *string) *StopBuilder { b.platformCode = v; return b }

func (b *StopBuilder) Clear() *StopBuilder {
	*b = StopBuilder{}
	return b
}

// Build applies the location type rules: stops, stations and entrances need
// a name and coordinates; entrances, generic nodes and boarding areas need a
// parent station, which a station must not have.
func (b *StopBuilder) Build() BuildResult[Stop] {
	c := newCheck(StopFile, b.stopID)
	s := &Stop{
		StopID:             requireText(c, "stop_id", b.stopID),
		StopCode:           text(b.stopCode),
		StopName:           text(b.stopName),
		StopDesc:           text(b.stopDesc),
		StopLat:            copyPtr(b.stopLat),
		StopLon:            copyPtr(b.stopLon),
		ZoneID:             text(b.zoneID),
		StopURL:            text(b.stopURL),
		LocationType:       optionalEnum(c, "location_type", b.locationType, LocationStopOrPlatform, locationTypes),
		ParentStation:      text(b.parentStation),
		StopTimezone:       text(b.stopTimezone),
		WheelchairBoarding: optionalEnum(c, "wheelchair_boarding", b.wheelchairBoarding, AccessibilityUnknown, accessibilities),
		LevelID:            text(b.levelID),
		PlatformCode:       text(b.platformCode),
	}

	switch s.LocationType {
	case LocationStopOrPlatform, LocationStation, LocationEntranceOrExit:
		requireText(c, "stop_name", b.stopName)
		requireValue(c, "stop_lat", b.stopLat)
		requireValue(c, "stop_lon", b.stopLon)
	}
	switch s.LocationType {
	case LocationEntranceOrExit, LocationGenericNode, LocationBoardingArea:
		requireText(c, "parent_station", b.parentStation)
	case LocationStation:
		if s.ParentStation != "" {
			c.add(notice.ForbiddenField(StopFile, "parent_station", c.entityID,
				"when location_type is "+strconv.Itoa(int(LocationStation))))
		}
	}

	if c.failed() {
		return Failure[Stop](c.notices...)
	}
	return Success(s)
}
