// Package repository holds the entities accepted during one validation run,
// keyed by their natural key.
package repository

import (
	"time"

	"gtfsvalidator/internal/gtfs"
)

// Repository stores at most one entity per natural key and kind. Add methods
// return the stored entity, or false when the key is already present; they
// panic when given a nil entity.
type Repository struct {
	agencies       *table[string, gtfs.Agency]
	stops          *table[string, gtfs.Stop]
	routes         *table[string, gtfs.Route]
	trips          *table[string, gtfs.Trip]
	stopTimes      *table[gtfs.StopTimeKey, gtfs.StopTime]
	calendars      *table[string, gtfs.Calendar]
	calendarDates  *table[gtfs.CalendarDateKey, gtfs.CalendarDate]
	fareAttributes *table[string, gtfs.FareAttribute]
	fareRules      *table[gtfs.FareRuleKey, gtfs.FareRule]
	shapes         *table[gtfs.ShapeKey, gtfs.Shape]
	frequencies    *table[gtfs.FrequencyKey, gtfs.Frequency]
	transfers      *table[gtfs.TransferKey, gtfs.Transfer]
	pathways       *table[string, gtfs.Pathway]
	levels         *table[string, gtfs.Level]
	feedInfos      *table[string, gtfs.FeedInfo]
	translations   *table[gtfs.TranslationKey, gtfs.Translation]
}

func New() *Repository {
	return &Repository{
		agencies:       newTable[string, gtfs.Agency](),
		stops:          newTable[string, gtfs.Stop](),
		routes:         newTable[string, gtfs.Route](),
		trips:          newTable[string, gtfs.Trip](),
		stopTimes:      newTable[gtfs.StopTimeKey, gtfs.StopTime](),
		calendars:      newTable[string, gtfs.Calendar](),
		calendarDates:  newTable[gtfs.CalendarDateKey, gtfs.CalendarDate](),
		fareAttributes: newTable[string, gtfs.FareAttribute](),
		fareRules:      newTable[gtfs.FareRuleKey, gtfs.FareRule](),
		shapes:         newTable[gtfs.ShapeKey, gtfs.Shape](),
		frequencies:    newTable[gtfs.FrequencyKey, gtfs.Frequency](),
		transfers:      newTable[gtfs.TransferKey, gtfs.Transfer](),
		pathways:       newTable[string, gtfs.Pathway](),
		levels:         newTable[string, gtfs.Level](),
		feedInfos:      newTable[string, gtfs.FeedInfo](),
		translations:   newTable[gtfs.TranslationKey, gtfs.Translation](),
	}
}

func mustNotBeNil[V any](kind string, v *V) {
	if v == nil {
		panic("repository: nil " + kind)
	}
}

func (r *Repository) AddAgency(a *gtfs.Agency) (*gtfs.Agency, bool) {
	mustNotBeNil("agency", a)
	return r.agencies.add(a.Key(), a)
}

func (r *Repository) Agency(agencyID string) (*gtfs.Agency, bool) {
	return r.agencies.get(agencyID)
}

func (r *Repository) AddStop(s *gtfs.Stop) (*gtfs.Stop, bool) {
	mustNotBeNil("stop", s)
	return r.stops.add(s.Key(), s)
}

func (r *Repository) Stop(stopID string) (*gtfs.Stop, bool) {
	return r.stops.get(stopID)
}

func (r *Repository) AddRoute(rt *gtfs.Route) (*gtfs.Route, bool) {
	mustNotBeNil("route", rt)
	return r.routes.add(rt.Key(), rt)
}

func (r *Repository) Route(routeID string) (*gtfs.Route, bool) {
	return r.routes.get(routeID)
}

func (r *Repository) AddTrip(t *gtfs.Trip) (*gtfs.Trip, bool) {
	mustNotBeNil("trip", t)
	return r.trips.add(t.Key(), t)
}

func (r *Repository) Trip(tripID string) (*gtfs.Trip, bool) {
	return r.trips.get(tripID)
}

func (r *Repository) AddStopTime(s *gtfs.StopTime) (*gtfs.StopTime, bool) {
	mustNotBeNil("stop time", s)
	return r.stopTimes.add(s.Key(), s)
}

func (r *Repository) StopTime(tripID string, stopSequence int) (*gtfs.StopTime, bool) {
	return r.stopTimes.get(gtfs.StopTimeKey{TripID: tripID, StopSequence: stopSequence})
}

func (r *Repository) AddCalendar(c *gtfs.Calendar) (*gtfs.Calendar, bool) {
	mustNotBeNil("calendar", c)
	return r.calendars.add(c.Key(), c)
}

func (r *Repository) Calendar(serviceID string) (*gtfs.Calendar, bool) {
	return r.calendars.get(serviceID)
}

func (r *Repository) AddCalendarDate(d *gtfs.CalendarDate) (*gtfs.CalendarDate, bool) {
	mustNotBeNil("calendar date", d)
	return r.calendarDates.add(d.Key(), d)
}

func (r *Repository) CalendarDate(serviceID string, date time.Time) (*gtfs.CalendarDate, bool) {
	return r.calendarDates.get(gtfs.CalendarDateKey{ServiceID: serviceID, Date: date.Format("20060102")})
}

func (r *Repository) AddFareAttribute(f *gtfs.FareAttribute) (*gtfs.FareAttribute, bool) {
	mustNotBeNil("fare attribute", f)
	return r.fareAttributes.add(f.Key(), f)
}

func (r *Repository) FareAttribute(fareID string) (*gtfs.FareAttribute, bool) {
	return r.fareAttributes.get(fareID)
}

func (r *Repository) AddFareRule(f *gtfs.FareRule) (*gtfs.FareRule, bool) {
	mustNotBeNil("fare rule", f)
	return r.fareRules.add(f.Key(), f)
}

func (r *Repository) FareRule(key gtfs.FareRuleKey) (*gtfs.FareRule, bool) {
	return r.fareRules.get(key)
}

func (r *Repository) AddShape(s *gtfs.Shape) (*gtfs.Shape, bool) {
	mustNotBeNil("shape", s)
	return r.shapes.add(s.Key(), s)
}

func (r *Repository) Shape(shapeID string, sequence int) (*gtfs.Shape, bool) {
	return r.shapes.get(gtfs.ShapeKey{ShapeID: shapeID, Sequence: sequence})
}

func (r *Repository) AddFrequency(f *gtfs.Frequency) (*gtfs.Frequency, bool) {
	mustNotBeNil("frequency", f)
	return r.frequencies.add(f.Key(), f)
}

func (r *Repository) Frequency(tripID string, startTime int) (*gtfs.Frequency, bool) {
	return r.frequencies.get(gtfs.FrequencyKey{TripID: tripID, StartTime: startTime})
}

func (r *Repository) AddTransfer(t *gtfs.Transfer) (*gtfs.Transfer, bool) {
	mustNotBeNil("transfer", t)
	return r.transfers.add(t.Key(), t)
}

func (r *Repository) Transfer(fromStopID, toStopID string) (*gtfs.Transfer, bool) {
	return r.transfers.get(gtfs.TransferKey{FromStopID: fromStopID, ToStopID: toStopID})
}

func (r *Repository) AddPathway(p *gtfs.Pathway) (*gtfs.Pathway, bool) {
	mustNotBeNil("pathway", p)
	return r.pathways.add(p.Key(), p)
}

func (r *Repository) Pathway(pathwayID string) (*gtfs.Pathway, bool) {
	return r.pathways.get(pathwayID)
}

func (r *Repository) AddLevel(l *gtfs.Level) (*gtfs.Level, bool) {
	mustNotBeNil("level", l)
	return r.levels.add(l.Key(), l)
}

func (r *Repository) Level(levelID string) (*gtfs.Level, bool) {
	return r.levels.get(levelID)
}

func (r *Repository) AddFeedInfo(f *gtfs.FeedInfo) (*gtfs.FeedInfo, bool) {
	mustNotBeNil("feed info", f)
	return r.feedInfos.add(f.Key(), f)
}

func (r *Repository) FeedInfo(publisherName string) (*gtfs.FeedInfo, bool) {
	return r.feedInfos.get(publisherName)
}

func (r *Repository) AddTranslation(t *gtfs.Translation) (*gtfs.Translation, bool) {
	mustNotBeNil("translation", t)
	return r.translations.add(t.Key(), t)
}

func (r *Repository) Translation(key gtfs.TranslationKey) (*gtfs.Translation, bool) {
	return r.translations.get(key)
}

// Counts returns the number of stored entities per source file.
func (r *Repository) Counts() map[string]int {
	return map[string]int{
		gtfs.AgencyFile:        r.agencies.len(),
		gtfs.StopFile:          r.stops.len(),
		gtfs.RouteFile:         r.routes.len(),
		gtfs.TripFile:          r.trips.len(),
		gtfs.StopTimeFile:      r.stopTimes.len(),
		gtfs.CalendarFile:      r.calendars.len(),
		gtfs.CalendarDateFile:  r.calendarDates.len(),
		gtfs.FareAttributeFile: r.fareAttributes.len(),
		gtfs.FareRuleFile:      r.fareRules.len(),
		gtfs.ShapeFile:         r.shapes.len(),
		gtfs.FrequencyFile:     r.frequencies.len(),
		gtfs.TransferFile:      r.transfers.len(),
		gtfs.PathwayFile:       r.pathways.len(),
		gtfs.LevelFile:         r.levels.len(),
		gtfs.FeedInfoFile:      r.feedInfos.len(),
		gtfs.TranslationFile:   r.translations.len(),
	}
}
