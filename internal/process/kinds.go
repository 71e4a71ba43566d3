package process

import (
	"gtfsvalidator/internal/gtfs"
	"gtfsvalidator/internal/notice"
	"gtfsvalidator/internal/repository"
	"gtfsvalidator/internal/schema"
)

func NewAgencyProcessor(sink notice.Sink, repo *repository.Repository, b *gtfs.AgencyBuilder) *Processor[gtfs.Agency] {
	return newProcessor(gtfs.AgencyFile, "agency_id", sink, func(row *schema.ParsedRow) gtfs.BuildResult[gtfs.Agency] {
		return b.Clear().
			AgencyID(row.String("agency_id")).
			AgencyName(row.String("agency_name")).
			AgencyURL(row.String("agency_url")).
			AgencyTimezone(row.String("agency_timezone")).
			AgencyLang(row.String("agency_lang")).
			AgencyPhone(row.String("agency_phone")).
			AgencyFareURL(row.String("agency_fare_url")).
			AgencyEmail(row.String("agency_email")).
			Build()
	}, repo.AddAgency)
}

func NewStopProcessor(sink notice.Sink, repo *repository.Repository, b *gtfs.StopBuilder) *Processor[gtfs.Stop] {
	return newProcessor(gtfs.StopFile, "stop_id", sink, func(row *schema.ParsedRow) gtfs.BuildResult[gtfs.Stop] {
		return b.Clear().
			StopID(row.String("stop_id")).
			StopCode(row.String("stop_code")).
			StopName(row.String("stop_name")).
			StopDesc(row.String("stop_desc")).
			StopLat(row.Float("stop_lat")).
			StopLon(row.Float("stop_lon")).
			ZoneID(row.String("zone_id")).
			StopURL(row.String("stop_url")).
			LocationType(row.Int("location_type")).
			ParentStation(row.String("parent_station")).
			StopTimezone(row.String("stop_timezone")).
			WheelchairBoarding(row.Int("wheelchair_boarding")).
			LevelID(row.String("level_id")).
			PlatformCode(row.String("platform_code")).
			Build()
	}, repo.AddStop)
}

func NewRouteProcessor(sink notice.Sink, repo *repository.Repository, b *gtfs.RouteBuilder) *Processor[gtfs.Route] {
	return newProcessor(gtfs.RouteFile, "route_id", sink, func(row *schema.ParsedRow) gtfs.BuildResult[gtfs.Route] {
		return b.Clear().
			RouteID(row.String("route_id")).
			AgencyID(row.String("agency_id")).
			RouteShortName(row.String("route_short_name")).
			RouteLongName(row.String("route_long_name")).
			RouteDesc(row.String("route_desc")).
			RouteType(row.Int("route_type")).
			RouteURL(row.String("route_url")).
			RouteColor(row.String("route_color")).
			RouteTextColor(row.String("route_text_color")).
			RouteSortOrder(row.Int("route_sort_order")).
			Build()
	}, repo.AddRoute)
}

func NewTripProcessor(sink notice.Sink, repo *repository.Repository, b *gtfs.TripBuilder) *Processor[gtfs.Trip] {
	return newProcessor(gtfs.TripFile, "trip_id", sink, func(row *schema.ParsedRow) gtfs.BuildResult[gtfs.Trip] {
		return b.Clear().
			RouteID(row.String("route_id")).
			ServiceID(row.String("service_id")).
			TripID(row.String("trip_id")).
			TripHeadsign(row.String("trip_headsign")).
			TripShortName(row.String("trip_short_name")).
			DirectionID(row.Int("direction_id")).
			BlockID(row.String("block_id")).
			ShapeID(row.String("shape_id")).
			WheelchairAccessible(row.Int("wheelchair_accessible")).
			BikesAllowed(row.Int("bikes_allowed")).
			Build()
	}, repo.AddTrip)
}

func NewStopTimeProcessor(sink notice.Sink, repo *repository.Repository, b *gtfs.StopTimeBuilder) *Processor[gtfs.StopTime] {
	return newProcessor(gtfs.StopTimeFile, "trip_id", sink, func(row *schema.ParsedRow) gtfs.BuildResult[gtfs.StopTime] {
		return b.Clear().
			TripID(row.String("trip_id")).
			ArrivalTime(row.Time("arrival_time")).
			DepartureTime(row.Time("departure_time")).
			StopID(row.String("stop_id")).
			StopSequence(row.Int("stop_sequence")).
			StopHeadsign(row.String("stop_headsign")).
			PickupType(row.Int("pickup_type")).
			DropOffType(row.Int("drop_off_type")).
			ShapeDistTraveled(row.Float("shape_dist_traveled")).
			Timepoint(row.Int("timepoint")).
			Build()
	}, repo.AddStopTime)
}

func NewCalendarProcessor(sink notice.Sink, repo *repository.Repository, b *gtfs.CalendarBuilder) *Processor[gtfs.Calendar] {
	return newProcessor(gtfs.CalendarFile, "service_id", sink, func(row *schema.ParsedRow) gtfs.BuildResult[gtfs.Calendar] {
		return b.Clear().
			ServiceID(row.String("service_id")).
			Monday(row.Int("monday")).
			Tuesday(row.Int("tuesday")).
			Wednesday(row.Int("wednesday")).
			Thursday(row.Int("thursday")).
			Friday(row.Int("friday")).
			Saturday(row.Int("saturday")).
			Sunday(row.Int("sunday")).
			StartDate(row.Date("start_date")).
			EndDate(row.Date("end_date")).
			Build()
	}, repo.AddCalendar)
}

func NewCalendarDateProcessor(sink notice.Sink, repo *repository.Repository, b *gtfs.CalendarDateBuilder) *Processor[gtfs.CalendarDate] {
	return newProcessor(gtfs.CalendarDateFile, "service_id", sink, func(row *schema.ParsedRow) gtfs.BuildResult[gtfs.CalendarDate] {
		return b.Clear().
			ServiceID(row.String("service_id")).
			Date(row.Date("date")).
			ExceptionType(row.Int("exception_type")).
			Build()
	}, repo.AddCalendarDate)
}

func NewFareAttributeProcessor(sink notice.Sink, repo *repository.Repository, b *gtfs.FareAttributeBuilder) *Processor[gtfs.FareAttribute] {
	return newProcessor(gtfs.FareAttributeFile, "fare_id", sink, func(row *schema.ParsedRow) gtfs.BuildResult[gtfs.FareAttribute] {
		return b.Clear().
			FareID(row.String("fare_id")).
			Price(row.Float("price")).
			CurrencyType(row.String("currency_type")).
			PaymentMethod(row.Int("payment_method")).
			Transfers(row.Int("transfers")).
			AgencyID(row.String("agency_id")).
			TransferDuration(row.Int("transfer_duration")).
			Build()
	}, repo.AddFareAttribute)
}

func NewFareRuleProcessor(sink notice.Sink, repo *repository.Repository, b *gtfs.FareRuleBuilder) *Processor[gtfs.FareRule] {
	return newProcessor(gtfs.FareRuleFile, "fare_id", sink, func(row *schema.ParsedRow) gtfs.BuildResult[gtfs.FareRule] {
		return b.Clear().
			FareID(row.String("fare_id")).
			RouteID(row.String("route_id")).
			OriginID(row.String("origin_id")).
			DestinationID(row.String("destination_id")).
			ContainsID(row.String("contains_id")).
			Build()
	}, repo.AddFareRule)
}

func NewShapeProcessor(sink notice.Sink, repo *repository.Repository, b *gtfs.ShapeBuilder) *Processor[gtfs.Shape] {
	return newProcessor(gtfs.ShapeFile, "shape_id", sink, func(row *schema.ParsedRow) gtfs.BuildResult[gtfs.Shape] {
		return b.Clear().
			ShapeID(row.String("shape_id")).
			ShapePtLat(row.Float("shape_pt_lat")).
			ShapePtLon(row.Float("shape_pt_lon")).
			ShapePtSequence(row.Int("shape_pt_sequence")).
			ShapeDistTraveled(row.Float("shape_dist_traveled")).
			Build()
	}, repo.AddShape)
}

func NewFrequencyProcessor(sink notice.Sink, repo *repository.Repository, b *gtfs.FrequencyBuilder) *Processor[gtfs.Frequency] {
	return newProcessor(gtfs.FrequencyFile, "trip_id", sink, func(row *schema.ParsedRow) gtfs.BuildResult[gtfs.Frequency] {
		return b.Clear().
			TripID(row.String("trip_id")).
			StartTime(row.Time("start_time")).
			EndTime(row.Time("end_time")).
			HeadwaySecs(row.Int("headway_secs")).
			ExactTimes(row.Int("exact_times")).
			Build()
	}, repo.AddFrequency)
}

func NewTransferProcessor(sink notice.Sink, repo *repository.Repository, b *gtfs.TransferBuilder) *Processor[gtfs.Transfer] {
	return newProcessor(gtfs.TransferFile, "from_stop_id", sink, func(row *schema.ParsedRow) gtfs.BuildResult[gtfs.Transfer] {
		return b.Clear().
			FromStopID(row.String("from_stop_id")).
			ToStopID(row.String("to_stop_id")).
			TransferType(row.Int("transfer_type")).
			MinTransferTime(row.Int("min_transfer_time")).
			Build()
	}, repo.AddTransfer)
}

func NewPathwayProcessor(sink notice.Sink, repo *repository.Repository, b *gtfs.PathwayBuilder) *Processor[gtfs.Pathway] {
	return newProcessor(gtfs.PathwayFile, "pathway_id", sink, func(row *schema.ParsedRow) gtfs.BuildResult[gtfs.Pathway] {
		return b.Clear().
			PathwayID(row.String("pathway_id")).
			FromStopID(row.String("from_stop_id")).
			ToStopID(row.String("to_stop_id")).
			PathwayMode(row.Int("pathway_mode")).
			IsBidirectional(row.Int("is_bidirectional")).
			Length(row.Float("length")).
			TraversalTime(row.Int("traversal_time")).
			StairCount(row.Int("stair_count")).
			MaxSlope(row.Float("max_slope")).
			MinWidth(row.Float("min_width")).
			SignpostedAs(row.String("signposted_as")).
			ReversedSignpostedAs(row.String("reversed_signposted_as")).
			Build()
	}, repo.AddPathway)
}

func NewLevelProcessor(sink notice.Sink, repo *repository.Repository, b *gtfs.LevelBuilder) *Processor[gtfs.Level] {
	return newProcessor(gtfs.LevelFile, "level_id", sink, func(row *schema.ParsedRow) gtfs.BuildResult[gtfs.Level] {
		return b.Clear().
			LevelID(row.String("level_id")).
			LevelIndex(row.Float("level_index")).
			LevelName(row.String("level_name")).
			Build()
	}, repo.AddLevel)
}

func NewFeedInfoProcessor(sink notice.Sink, repo *repository.Repository, b *gtfs.FeedInfoBuilder) *Processor[gtfs.FeedInfo] {
	return newProcessor(gtfs.FeedInfoFile, "feed_publisher_name", sink, func(row *schema.ParsedRow) gtfs.BuildResult[gtfs.FeedInfo] {
		return b.Clear().
			FeedPublisherName(row.String("feed_publisher_name")).
			FeedPublisherURL(row.String("feed_publisher_url")).
			FeedLang(row.String("feed_lang")).
			DefaultLang(row.String("default_lang")).
			FeedStartDate(row.Date("feed_start_date")).
			FeedEndDate(row.Date("feed_end_date")).
			FeedVersion(row.String("feed_version")).
			FeedContactEmail(row.String("feed_contact_email")).
			FeedContactURL(row.String("feed_contact_url")).
			Build()
	}, repo.AddFeedInfo)
}

func NewTranslationProcessor(sink notice.Sink, repo *repository.Repository, b *gtfs.TranslationBuilder) *Processor[gtfs.Translation] {
	return newProcessor(gtfs.TranslationFile, "table_name", sink, func(row *schema.ParsedRow) gtfs.BuildResult[gtfs.Translation] {
		return b.Clear().
			TableName(row.String("table_name")).
			FieldName(row.String("field_name")).
			Language(row.String("language")).
			Translation(row.String("translation")).
			RecordID(row.String("record_id")).
			RecordSubID(row.String("record_sub_id")).
			FieldValue(row.String("field_value")).
			Build()
	}, repo.AddTranslation)
}

// Registry returns a processor for every supported file, keyed by filename,
// all sharing repo and sink.
func Registry(repo *repository.Repository, sink notice.Sink) map[string]RowProcessor {
	return map[string]RowProcessor{
		gtfs.AgencyFile:        NewAgencyProcessor(sink, repo, gtfs.NewAgencyBuilder()),
		gtfs.StopFile:          NewStopProcessor(sink, repo, gtfs.NewStopBuilder()),
		gtfs.RouteFile:         NewRouteProcessor(sink, repo, gtfs.NewRouteBuilder()),
		gtfs.TripFile:          NewTripProcessor(sink, repo, gtfs.NewTripBuilder()),
		gtfs.StopTimeFile:      NewStopTimeProcessor(sink, repo, gtfs.NewStopTimeBuilder()),
		gtfs.CalendarFile:      NewCalendarProcessor(sink, repo, gtfs.NewCalendarBuilder()),
		gtfs.CalendarDateFile:  NewCalendarDateProcessor(sink, repo, gtfs.NewCalendarDateBuilder()),
		gtfs.FareAttributeFile: NewFareAttributeProcessor(sink, repo, gtfs.NewFareAttributeBuilder()),
		gtfs.FareRuleFile:      NewFareRuleProcessor(sink, repo, gtfs.NewFareRuleBuilder()),
		gtfs.ShapeFile:         NewShapeProcessor(sink, repo, gtfs.NewShapeBuilder()),
		gtfs.FrequencyFile:     NewFrequencyProcessor(sink, repo, gtfs.NewFrequencyBuilder()),
		gtfs.TransferFile:      NewTransferProcessor(sink, repo, gtfs.NewTransferBuilder()),
		gtfs.PathwayFile:       NewPathwayProcessor(sink, repo, gtfs.NewPathwayBuilder()),
		gtfs.LevelFile:         NewLevelProcessor(sink, repo, gtfs.NewLevelBuilder()),
		gtfs.FeedInfoFile:      NewFeedInfoProcessor(sink, repo, gtfs.NewFeedInfoBuilder()),
		gtfs.TranslationFile:   NewTranslationProcessor(sink, repo, gtfs.NewTranslationBuilder()),
	}
}
