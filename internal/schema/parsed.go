package schema

import "time"

// TimeOfDay is a GTFS service time in seconds since midnight of the service day.
// It may exceed 24h for trips running past midnight.
type TimeOfDay int

// ParsedRow is a row after type resolution. A column that was empty, missing
// from the header, or failed its type check is absent.
type ParsedRow struct {
	Index int
	// EntityID is the value of the file's identifier column, empty when the
	// file has none or the row left it blank.
	EntityID string
	values   map[string]any
}

// NewParsedRow wraps already typed values. Accepted value types are string,
// int, float64, time.Time and TimeOfDay.
func NewParsedRow(index int, entityID string, values map[string]any) *ParsedRow {
	if values == nil {
		values = map[string]any{}
	}
	return &ParsedRow{Index: index, EntityID: entityID, values: values}
}

func (r *ParsedRow) String(name string) *string {
	if v, ok := r.values[name].(string); ok {
		return &v
	}
	return nil
}

func (r *ParsedRow) Int(name string) *int {
	if v, ok := r.values[name].(int); ok {
		return &v
	}
	return nil
}

func (r *ParsedRow) Float(name string) *float64 {
	switch v := r.values[name].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func (r *ParsedRow) Date(name string) *time.Time {
	if v, ok := r.values[name].(time.Time); ok {
		return &v
	}
	return nil
}

// Time returns a service time in seconds.
func (r *ParsedRow) Time(name string) *int {
	if v, ok := r.values[name].(TimeOfDay); ok {
		secs := int(v)
		return &secs
	}
	return nil
}
