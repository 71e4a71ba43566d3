package feed

// RawRow is one record of a GTFS file as read from disk, before any typing.
type RawRow struct {
	// Index is the 1-based line number of the record; the header is line 1.
	Index  int
	header []string
	values []string
}

// NewRawRow builds a row from a header and the record's values.
func NewRawRow(index int, header, values []string) RawRow {
	return RawRow{Index: index, header: header, values: values}
}

// FieldCount is the number of values the record actually carried.
func (r RawRow) FieldCount() int {
	return len(r.values)
}

// Header returns the column names of the file the row belongs to.
func (r RawRow) Header() []string {
	return r.header
}

// Value returns the raw text of the named column. Columns missing from the
// header, or beyond the end of a short record, report false.
func (r RawRow) Value(column string) (string, bool) {
	for i, h := range r.header {
		if h != column {
			continue
		}
		if i < len(r.values) {
			return r.values[i], true
		}
		return "", false
	}
	return "", false
}

// RowSource yields the rows of one file in source order.
type RowSource interface {
	HasNext() bool
	Next() RawRow
	HeaderCount() int
	Header() []string
	Close() error
}

// Provider constructs row sources. The bool is false when the file is
// absent, unreadable or empty.
type Provider interface {
	Source(filename string) (RowSource, bool)
}
