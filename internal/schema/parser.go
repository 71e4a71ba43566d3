package schema

import (
	"math"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"gtfsvalidator/internal/feed"
	"gtfsvalidator/internal/notice"
)

var (
	timePattern  = regexp.MustCompile(`^(\d{1,3}):([0-5]\d):([0-5]\d)$`)
	colorPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)
)

const dateLayout = "20060102"

// RowParser checks and converts the rows of one file.
type RowParser struct {
	file *File
	tz   *TimezoneCache
}

func NewRowParser(file *File, tz *TimezoneCache) *RowParser {
	return &RowParser{file: file, tz: tz}
}

// File is the schema entry the parser works from.
func (p *RowParser) File() *File {
	return p.file
}

// ValidateTypes returns one notice per column whose raw text does not
// conform to its declared type. Blank values are never type errors.
func (p *RowParser) ValidateTypes(row feed.RawRow) []notice.Notice {
	entityID := p.entityID(row)
	var notices []notice.Notice
	for _, col := range p.file.Columns {
		raw, ok := row.Value(col.Name)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		if _, n := p.convert(col, raw, entityID); n != nil {
			notices = append(notices, n.AtRow(row.Index))
		}
	}
	return notices
}

// Parse converts row into a ParsedRow. Columns that are blank or fail their
// type check are left absent, as are columns the schema does not declare.
func (p *RowParser) Parse(row feed.RawRow) *ParsedRow {
	entityID := p.entityID(row)
	values := make(map[string]any, len(p.file.Columns))
	for _, col := range p.file.Columns {
		raw, ok := row.Value(col.Name)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		if v, n := p.convert(col, raw, entityID); n == nil {
			values[col.Name] = v
		}
	}
	if entityID == notice.NoID {
		entityID = ""
	}
	return NewParsedRow(row.Index, entityID, values)
}

func (p *RowParser) entityID(row feed.RawRow) string {
	if p.file.ID == "" {
		return notice.NoID
	}
	if v, ok := row.Value(p.file.ID); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return notice.NoID
}

func (p *RowParser) convert(col Column, raw, entityID string) (any, *notice.Notice) {
	fail := func(n notice.Notice) (any, *notice.Notice) { return nil, &n }
	name := p.file.Name
	v := strings.TrimSpace(raw)

	switch col.Type {
	case TypeInteger:
		i, err := strconv.Atoi(v)
		if err != nil {
			return fail(notice.CannotParseInteger(name, col.Name, entityID, raw))
		}
		if !col.inRange(float64(i)) {
			lo, hi := col.bounds()
			return fail(notice.IntegerFieldValueOutOfRange(name, col.Name, entityID, raw, lo, hi))
		}
		return i, nil

	case TypeFloat:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fail(notice.CannotParseFloat(name, col.Name, entityID, raw))
		}
		if !col.inRange(f) {
			lo, hi := col.bounds()
			return fail(notice.FloatFieldValueOutOfRange(name, col.Name, entityID, raw, lo, hi))
		}
		return f, nil

	case TypeDate:
		d, err := time.Parse(dateLayout, v)
		if err != nil {
			return fail(notice.CannotParseDate(name, col.Name, entityID, raw))
		}
		return d, nil

	case TypeTime:
		secs, ok := parseTime(v)
		if !ok {
			return fail(notice.InvalidTime(name, col.Name, entityID, raw))
		}
		return secs, nil

	case TypeColor:
		if !colorPattern.MatchString(v) {
			return fail(notice.InvalidColor(name, col.Name, entityID, raw))
		}
		return v, nil

	case TypeURL:
		u, err := url.Parse(v)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fail(notice.InvalidURL(name, col.Name, entityID, raw))
		}
		return v, nil

	case TypeEmail:
		if _, err := mail.ParseAddress(v); err != nil {
			return fail(notice.InvalidEmail(name, col.Name, entityID, raw))
		}
		return v, nil

	case TypeTimezone:
		if !p.tz.Valid(v) {
			return fail(notice.InvalidTimezone(name, col.Name, entityID, raw))
		}
		return v, nil

	case TypeLanguage:
		if _, err := language.Parse(v); err != nil {
			return fail(notice.InvalidLanguageCode(name, col.Name, entityID, raw))
		}
		return v, nil

	case TypeCurrency:
		// ParseISO folds case; codes must already be upper case.
		if u, err := currency.ParseISO(v); err != nil || u.String() != v {
			return fail(notice.InvalidCurrencyCode(name, col.Name, entityID, raw))
		}
		return v, nil
	}

	// Text and ids are stored trimmed so "S1" and "S1 " share a key.
	return v, nil
}

// parseTime parses H:MM:SS or HH:MM:SS into seconds.
func parseTime(v string) (TimeOfDay, bool) {
	m := timePattern.FindStringSubmatch(v)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	return TimeOfDay(h*3600 + mins*60 + sec), true
}

func (c Column) inRange(v float64) bool {
	if c.Min != nil && v < *c.Min {
		return false
	}
	if c.Max != nil && v > *c.Max {
		return false
	}
	return true
}

func (c Column) bounds() (float64, float64) {
	lo, hi := math.Inf(-1), math.Inf(1)
	if c.Min != nil {
		lo = *c.Min
	}
	if c.Max != nil {
		hi = *c.Max
	}
	return lo, hi
}
