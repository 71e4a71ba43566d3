// Package validate runs the per-file validation passes over a feed and
// drives a whole validation run.
package validate

import (
	"gtfsvalidator/internal/feed"
	"gtfsvalidator/internal/notice"
)

// RowLengthValidator checks that every record of a file carries as many
// values as its header.
type RowLengthValidator struct {
	provider feed.Provider
	sink     notice.Sink
}

func NewRowLengthValidator(provider feed.Provider, sink notice.Sink) *RowLengthValidator {
	return &RowLengthValidator{provider: provider, sink: sink}
}

// Execute reports one notice per record whose length differs from the
// header. When no source can be built for filename it reports that once and
// returns false.
func (v *RowLengthValidator) Execute(filename string) bool {
	src, ok := v.provider.Source(filename)
	if !ok {
		v.sink.Add(notice.CannotConstructDataProvider(filename))
		return false
	}
	defer src.Close()

	expected := src.HeaderCount()
	for src.HasNext() {
		row := src.Next()
		if actual := row.FieldCount(); actual != expected {
			v.sink.Add(notice.InvalidRowLength(filename, row.Index, expected, actual))
		}
	}
	return true
}
