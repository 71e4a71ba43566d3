package gtfs

import (
	"time"

	"gtfsvalidator/internal/notice"
)

const (
	CalendarFile     = "calendar.txt"
	CalendarDateFile = "calendar_dates.txt"
)

const dateLayout = "20060102"

// Calendar is a weekly service pattern between two dates, inclusive.
type Calendar struct {
	ServiceID string
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
	StartDate time.Time
	EndDate   time.Time
}

func (c *Calendar) Key() string {
	return c.ServiceID
}

type CalendarBuilder struct {
	serviceID *string
	weekdays  [7]*int // Monday first
	startDate *time.Time
	endDate   *time.Time
}

var weekdayFields = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func NewCalendarBuilder() *CalendarBuilder {
	return &CalendarBuilder{}
}

func (b *CalendarBuilder) ServiceID(v *string) *CalendarBuilder { b.serviceID = v; return b }
func (b *CalendarBuilder) Monday(v *int) *CalendarBuilder { b.weekdays[0] = v; return b }
func (b *CalendarBuilder) Tuesday(v *int) *CalendarBuilder { b.weekdays[1] = v; return b }
func (b *CalendarBuilder) Wednesday(v *int) *CalendarBuilder { b.weekdays[2] = v; return b }
func (b *CalendarBuilder) Thursday(v *int) *CalendarBuilder { b.weekdays[3] = v; return b }
func (b *CalendarBuilder) Friday(v *int) *CalendarBuilder { b.weekdays[4] = v; return b }
func (b *CalendarBuilder) Saturday(v *int) *CalendarBuilder { b.weekdays[5] = v; return b }
func (b *CalendarBuilder) Sunday(v *int) *CalendarBuilder { b.weekdays[6] = v; return b }
func (b *CalendarBuilder) StartDate(v *time.Time) *CalendarBuilder { b.startDate = v; return b }
func (b *CalendarBuilder) EndDate(v *time.Time) *CalendarBuilder { b.endDate = v; return b }

func (b *CalendarBuilder) Clear() *CalendarBuilder {
	*b = CalendarBuilder{}
	return b
}

func (b *CalendarBuilder) Build() BuildResult[Calendar] {
	c := newCheck(CalendarFile, b.serviceID)
	serviceID := requireText(c, "service_id", b.serviceID)
	var days [7]bool
	for i, v := range b.weekdays {
		days[i] = requiredEnum(c, weekdayFields[i], v, binaries) == 1
	}
	cal := &Calendar{
		ServiceID: serviceID,
		Monday:    days[0],
		Tuesday:   days[1],
		Wednesday: days[2],
		Thursday:  days[3],
		Friday:    days[4],
		Saturday:  days[5],
		Sunday:    days[6],
		StartDate: requireValue(c, "start_date", b.startDate),
		EndDate:   requireValue(c, "end_date", b.endDate),
	}
	checkDateRange(c, "start_date", "end_date", b.startDate, b.endDate)

	if c.failed() {
		return Failure[Calendar](c.notices...)
	}
	return Success(cal)
}

func checkDateRange(c *check, startField, endField string, start, end *time.Time) {
	if start == nil || end == nil || !start.After(*end) {
		return
	}
	c.add(notice.InconsistentDateRange(c.file, startField, endField, c.entityID,
		start.Format(dateLayout), end.Format(dateLayout)))
}

type CalendarDateKey struct {
	ServiceID string
	Date      string // YYYYMMDD
}

// CalendarDate adds or removes service on a single date.
type CalendarDate struct {
	ServiceID     string
	Date          time.Time
	ExceptionType ExceptionType
}

func (d *CalendarDate) Key() CalendarDateKey {
	return CalendarDateKey{ServiceID: d.ServiceID, Date: d.Date.Format(dateLayout)}
}

type CalendarDateBuilder struct {
	serviceID     *string
	date          *time.Time
	exceptionType *int
}

func NewCalendarDateBuilder() *CalendarDateBuilder {
	return &CalendarDateBuilder{}
}

func (b *CalendarDateBuilder) ServiceID(v *string) *CalendarDateBuilder { b.serviceID = v; return b }
func (b *CalendarDateBuilder) Date(v *time.Time) *CalendarDateBuilder { b.date = v; return b }
func (b *CalendarDateBuilder) ExceptionType(v *int) *CalendarDateBuilder { b.exceptionType = v; return b }

func (b *CalendarDateBuilder) Clear() *CalendarDateBuilder {
	*b = CalendarDateBuilder{}
	return b
}

func (b *CalendarDateBuilder) Build() BuildResult[CalendarDate] {
	c := newCheck(CalendarDateFile, b.serviceID)
	d := &CalendarDate{
		ServiceID:     requireText(c, "service_id", b.serviceID),
		Date:          requireValue(c, "date", b.date),
		ExceptionType: requiredEnum(c, "exception_type", b.exceptionType, exceptionTypes),
	}
	if c.failed() {
		return Failure[CalendarDate](c.notices...)
	}
	return Success(d)
}
