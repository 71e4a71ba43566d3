package gtfs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtfsvalidator/internal/notice"
)

func ptr[T any](v T) *T { return &v }

func codes(ns []notice.Notice) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Code
	}
	return out
}

func fields(ns []notice.Notice) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.FieldName
	}
	return out
}

func TestBuildResult(t *testing.T) {
	ok := Success(&Level{LevelID: "L1"})
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, "L1", ok.Entity().LevelID)
	assert.Empty(t, ok.Notices())

	failed := Failure[Level](notice.MissingRequiredValue(LevelFile, "level_id", notice.NoID))
	assert.False(t, failed.IsSuccess())
	assert.Nil(t, failed.Entity())
	assert.Len(t, failed.Notices(), 1)

	assert.Panics(t, func() { Failure[Level]() })
	assert.Panics(t, func() { Success[Level](nil) })
}

func TestAgencyBuilder_MissingRequiredFields(t *testing.T) {
	res := NewAgencyBuilder().AgencyID(ptr("A1")).AgencyName(ptr("")).Build()

	require.False(t, res.IsSuccess())
	assert.Equal(t, []string{"agency_name", "agency_url", "agency_timezone"}, fields(res.Notices()))
	for _, n := range res.Notices() {
		assert.Equal(t, "E015", n.Code)
		assert.Equal(t, "A1", n.EntityID)
		assert.Equal(t, AgencyFile, n.Filename)
	}
}

func TestAgencyBuilder_ClearResetsFields(t *testing.T) {
	b := NewAgencyBuilder().
		AgencyName(ptr("Metro")).
		AgencyURL(ptr("https://metro.example")).
		AgencyTimezone(ptr("UTC"))
	require.True(t, b.Build().IsSuccess())

	res := b.Clear().Build()
	assert.False(t, res.IsSuccess())
	assert.Equal(t, notice.NoID, res.Notices()[0].EntityID)
}

func TestRouteBuilder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		res := NewRouteBuilder().RouteID(ptr("R1")).RouteType(ptr(3)).RouteShortName(ptr("1")).Build()
		require.True(t, res.IsSuccess())
		r := res.Entity()
		assert.Equal(t, RouteTypeBus, r.RouteType)
		assert.Equal(t, DefaultRouteColor, r.RouteColor)
		assert.Equal(t, DefaultRouteTextColor, r.RouteTextColor)
		assert.Nil(t, r.RouteSortOrder)
	})

	t.Run("every violation reported", func(t *testing.T) {
		res := NewRouteBuilder().RouteID(ptr("R1")).RouteType(ptr(9)).Build()
		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{"E016", "E018"}, codes(res.Notices()))
		assert.Equal(t, "route_short_name and route_long_name can not both be undefined", res.Notices()[1].Description)
	})

	t.Run("missing route_type", func(t *testing.T) {
		res := NewRouteBuilder().RouteID(ptr("R1")).RouteLongName(ptr("Main")).Build()
		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{"route_type"}, fields(res.Notices()))
	})
}

func TestStopBuilder(t *testing.T) {
	tests := []struct {
		name    string
		builder *StopBuilder
		want    []string
	}{
		{
			name:    "platform needs name and coordinates",
			builder: NewStopBuilder().StopID(ptr("S1")),
			want:    []string{"stop_name", "stop_lat", "stop_lon"},
		},
		{
			name: "entrance needs parent",
			builder: NewStopBuilder().StopID(ptr("E1")).LocationType(ptr(2)).
				StopName(ptr("Exit")).StopLat(ptr(1.0)).StopLon(ptr(2.0)),
			want: []string{"parent_station"},
		},
		{
			name: "station can not have parent",
			builder: NewStopBuilder().StopID(ptr("ST")).LocationType(ptr(1)).
				StopName(ptr("Central")).StopLat(ptr(1.0)).StopLon(ptr(2.0)).ParentStation(ptr("X")),
			want: []string{"parent_station"},
		},
		{
			name:    "generic node only needs parent",
			builder: NewStopBuilder().StopID(ptr("N1")).LocationType(ptr(3)).ParentStation(ptr("ST")),
		},
		{
			name:    "unknown location type",
			builder: NewStopBuilder().StopID(ptr("S1")).LocationType(ptr(9)).StopName(ptr("A")).StopLat(ptr(1.0)).StopLon(ptr(1.0)),
			want:    []string{"location_type"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.builder.Build()
			if len(tt.want) == 0 {
				require.True(t, res.IsSuccess(), "%v", res.Notices())
				return
			}
			require.False(t, res.IsSuccess())
			assert.Equal(t, tt.want, fields(res.Notices()))
		})
	}

	res := NewStopBuilder().StopID(ptr("ST")).LocationType(ptr(1)).
		StopName(ptr("Central")).StopLat(ptr(1.0)).StopLon(ptr(2.0)).ParentStation(ptr("X")).Build()
	assert.Equal(t, "E020", res.Notices()[0].Code)
	assert.Equal(t, "parent_station can not be defined when location_type is 1", res.Notices()[0].Description)
}

func TestTripBuilder_Defaults(t *testing.T) {
	res := NewTripBuilder().RouteID(ptr("R")).ServiceID(ptr("S")).TripID(ptr("T")).Build()
	require.True(t, res.IsSuccess())
	assert.Equal(t, DirectionUnspecified, res.Entity().DirectionID)
	assert.Equal(t, AccessibilityUnknown, res.Entity().BikesAllowed)

	res = NewTripBuilder().RouteID(ptr("R")).ServiceID(ptr("S")).TripID(ptr("T")).BikesAllowed(ptr(5)).Build()
	require.False(t, res.IsSuccess())
	assert.Equal(t, "Unexpected value: 5 for field: bikes_allowed in file: trips.txt", res.Notices()[0].Description)
}

func TestStopTimeBuilder(t *testing.T) {
	base := func() *StopTimeBuilder {
		return NewStopTimeBuilder().TripID(ptr("T1")).StopID(ptr("S1")).StopSequence(ptr(1))
	}

	res := base().Build()
	require.True(t, res.IsSuccess())
	assert.Equal(t, PickupRegular, res.Entity().PickupType)
	assert.Equal(t, TimepointExact, res.Entity().Timepoint)
	assert.Equal(t, StopTimeKey{TripID: "T1", StopSequence: 1}, res.Entity().Key())

	res = base().ArrivalTime(ptr(3600)).Build()
	require.False(t, res.IsSuccess())
	assert.Equal(t, []string{"departure_time"}, fields(res.Notices()))

	res = base().Timepoint(ptr(1)).Build()
	require.False(t, res.IsSuccess())
	assert.Equal(t, []string{"arrival_time", "departure_time"}, fields(res.Notices()))

	res = base().Timepoint(ptr(0)).Build()
	assert.True(t, res.IsSuccess())
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func calendarBuilder() *CalendarBuilder {
	return NewCalendarBuilder().ServiceID(ptr("WK")).
		Monday(ptr(1)).Tuesday(ptr(1)).Wednesday(ptr(1)).Thursday(ptr(1)).Friday(ptr(1)).
		Saturday(ptr(0)).Sunday(ptr(0)).
		StartDate(date(2024, 1, 1)).EndDate(date(2024, 12, 31))
}

func TestCalendarBuilder(t *testing.T) {
	res := calendarBuilder().Build()
	require.True(t, res.IsSuccess())
	cal := res.Entity()
	assert.True(t, cal.Monday)
	assert.False(t, cal.Sunday)
	assert.True(t, cal.Friday)
	assert.Equal(t, *date(2024, 12, 31), cal.EndDate)

	res = calendarBuilder().StartDate(date(2025, 1, 1)).Build()
	require.False(t, res.IsSuccess())
	assert.Equal(t, "E021", res.Notices()[0].Code)
	assert.Equal(t, "start_date: 20250101 is after end_date: 20241231", res.Notices()[0].Description)

	res = calendarBuilder().ServiceID(nil).Wednesday(nil).Build()
	require.False(t, res.IsSuccess())
	assert.Equal(t, []string{"service_id", "wednesday"}, fields(res.Notices()))
}

func TestCalendarDateBuilder(t *testing.T) {
	res := NewCalendarDateBuilder().ServiceID(ptr("WK")).Date(date(2024, 12, 25)).ExceptionType(ptr(2)).Build()
	require.True(t, res.IsSuccess())
	assert.Equal(t, CalendarDateKey{ServiceID: "WK", Date: "20241225"}, res.Entity().Key())

	res = NewCalendarDateBuilder().ServiceID(ptr("WK")).Date(date(2024, 12, 25)).ExceptionType(ptr(3)).Build()
	assert.Equal(t, []string{"E016"}, codes(res.Notices()))
}

func TestFareAttributeBuilder(t *testing.T) {
	res := NewFareAttributeBuilder().FareID(ptr("F")).Price(ptr(2.5)).CurrencyType(ptr("EUR")).PaymentMethod(ptr(0)).Build()
	require.True(t, res.IsSuccess())
	assert.Equal(t, TransfersUnlimited, res.Entity().Transfers)

	res = NewFareAttributeBuilder().FareID(ptr("F")).Transfers(ptr(4)).Build()
	require.False(t, res.IsSuccess())
	assert.Equal(t, []string{"price", "currency_type", "payment_method", "transfers"}, fields(res.Notices()))
}

func TestFareRuleBuilder_Key(t *testing.T) {
	res := NewFareRuleBuilder().FareID(ptr("F")).RouteID(ptr("R")).Build()
	require.True(t, res.IsSuccess())
	assert.Equal(t, FareRuleKey{FareID: "F", RouteID: "R"}, res.Entity().Key())

	assert.False(t, NewFareRuleBuilder().Build().IsSuccess())
}

func TestShapeBuilder(t *testing.T) {
	res := NewShapeBuilder().ShapeID(ptr("SH")).ShapePtLat(ptr(1.0)).ShapePtSequence(ptr(4)).Build()
	require.False(t, res.IsSuccess())
	assert.Equal(t, []string{"shape_pt_lon"}, fields(res.Notices()))
}

func TestFrequencyBuilder(t *testing.T) {
	res := NewFrequencyBuilder().TripID(ptr("T")).StartTime(ptr(7 * 3600)).EndTime(ptr(6 * 3600)).HeadwaySecs(ptr(600)).Build()
	require.False(t, res.IsSuccess())
	assert.Equal(t, "E024", res.Notices()[0].Code)
	assert.Equal(t, "start_time: 07:00:00 is not before end_time: 06:00:00", res.Notices()[0].Description)

	res = NewFrequencyBuilder().TripID(ptr("T")).StartTime(ptr(6 * 3600)).EndTime(ptr(25 * 3600)).HeadwaySecs(ptr(600)).Build()
	require.True(t, res.IsSuccess())
	assert.Equal(t, FrequencyBased, res.Entity().ExactTimes)
}

func TestTransferBuilder(t *testing.T) {
	res := NewTransferBuilder().FromStopID(ptr("A")).ToStopID(ptr("B")).Build()
	require.True(t, res.IsSuccess())
	assert.Equal(t, TransferRecommended, res.Entity().TransferType)

	res = NewTransferBuilder().FromStopID(ptr("A")).ToStopID(ptr("B")).TransferType(ptr(2)).Build()
	require.False(t, res.IsSuccess())
	assert.Equal(t, []string{"min_transfer_time"}, fields(res.Notices()))
	assert.Equal(t, "A", res.Notices()[0].EntityID)
}

func TestPathwayBuilder(t *testing.T) {
	base := func() *PathwayBuilder {
		return NewPathwayBuilder().PathwayID(ptr("P1")).FromStopID(ptr("A")).ToStopID(ptr("B"))
	}

	res := base().PathwayMode(ptr(2)).IsBidirectional(ptr(1)).StairCount(ptr(-12)).Build()
	require.True(t, res.IsSuccess())
	assert.True(t, res.Entity().IsBidirectional)
	assert.Equal(t, -12, *res.Entity().StairCount)

	res = base().PathwayMode(ptr(7)).IsBidirectional(ptr(1)).Build()
	require.False(t, res.IsSuccess())
	assert.Equal(t, []string{"E020"}, codes(res.Notices()))

	res = base().PathwayMode(ptr(8)).Build()
	assert.Equal(t, []string{"E016", "E015"}, codes(res.Notices()))
}

func TestFeedInfoBuilder(t *testing.T) {
	res := NewFeedInfoBuilder().FeedPublisherName(ptr("Pub")).FeedPublisherURL(ptr("https://pub.example")).
		FeedLang(ptr("en")).FeedStartDate(date(2024, 6, 1)).FeedEndDate(date(2024, 1, 1)).Build()
	require.False(t, res.IsSuccess())
	assert.Equal(t, "feed_start_date: 20240601 is after feed_end_date: 20240101", res.Notices()[0].Description)
	assert.Equal(t, "Pub", res.Notices()[0].EntityID)
}

func translationBuilder(table string) *TranslationBuilder {
	return NewTranslationBuilder().
		TableName(ptr(table)).
		FieldName(ptr("stop_name")).
		Language(ptr("fr")).
		Translation(ptr("Gare"))
}

func TestTranslationBuilder_RecordIDAndFieldValue(t *testing.T) {
	tests := []struct {
		name       string
		recordID   *string
		fieldValue *string
		wantCode   string
		wantDesc   string
	}{
		{name: "both defined", recordID: ptr("S1"), fieldValue: ptr("Station"),
			wantCode: "E017", wantDesc: "record_id and field_value can not both be defined"},
		{name: "neither defined",
			wantCode: "E018", wantDesc: "record_id and field_value can not both be undefined"},
		{name: "only record_id", recordID: ptr("S1")},
		{name: "only field_value", fieldValue: ptr("Station")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := translationBuilder("stops").RecordID(tt.recordID).FieldValue(tt.fieldValue).Build()
			if tt.wantCode == "" {
				require.True(t, res.IsSuccess(), "%v", res.Notices())
				return
			}
			require.False(t, res.IsSuccess())
			require.Len(t, res.Notices(), 1)
			assert.Equal(t, tt.wantCode, res.Notices()[0].Code)
			assert.Equal(t, tt.wantDesc, res.Notices()[0].Description)
			assert.Equal(t, notice.NoID, res.Notices()[0].EntityID)
		})
	}
}

func TestTranslationBuilder_TableRules(t *testing.T) {
	t.Run("feed_info forbids record fields", func(t *testing.T) {
		res := translationBuilder("feed_info").RecordID(ptr("x")).RecordSubID(ptr("y")).FieldValue(ptr("z")).Build()
		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{"E020", "E020", "E020"}, codes(res.Notices()))
		assert.Equal(t, "record_id can not be defined when table_name is feed_info", res.Notices()[0].Description)
		assert.Equal(t, []string{"record_id", "record_sub_id", "field_value"}, fields(res.Notices()))
	})

	t.Run("feed_info without record fields", func(t *testing.T) {
		assert.True(t, translationBuilder("feed_info").Build().IsSuccess())
	})

	t.Run("stop_times by record needs sub id", func(t *testing.T) {
		res := translationBuilder("stop_times").RecordID(ptr("T1")).Build()
		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{"record_sub_id"}, fields(res.Notices()))

		assert.True(t, translationBuilder("stop_times").RecordID(ptr("T1")).RecordSubID(ptr("3")).Build().IsSuccess())
	})

	t.Run("stop_times by value forbids record fields", func(t *testing.T) {
		res := translationBuilder("stop_times").FieldValue(ptr("Gare")).RecordSubID(ptr("3")).Build()
		require.False(t, res.IsSuccess())
		assert.Equal(t, "record_sub_id and field_value can not both be defined", res.Notices()[0].Description)
	})

	t.Run("unknown table", func(t *testing.T) {
		res := translationBuilder("calendar").RecordID(ptr("x")).Build()
		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{"E016"}, codes(res.Notices()))
	})

	t.Run("unknown table still checks record fields", func(t *testing.T) {
		res := translationBuilder("bogus").RecordID(ptr("x")).FieldValue(ptr("y")).Build()
		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{"E016", "E017"}, codes(res.Notices()))
	})

	t.Run("missing table still checks record fields", func(t *testing.T) {
		res := NewTranslationBuilder().FieldName(ptr("stop_name")).Language(ptr("fr")).Translation(ptr("Gare")).
			RecordID(ptr("x")).FieldValue(ptr("y")).Build()
		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{"E015", "E017"}, codes(res.Notices()))
		assert.Equal(t, "table_name", res.Notices()[0].FieldName)
	})

	t.Run("missing required fields accumulate", func(t *testing.T) {
		res := NewTranslationBuilder().RecordID(ptr("x")).Build()
		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{"field_name", "language", "translation", "table_name"}, fields(res.Notices()))
	})
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "25:01:02", FormatTime(25*3600+62))
}
