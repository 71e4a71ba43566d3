package validate

import (
	"gtfsvalidator/internal/feed"
	"gtfsvalidator/internal/notice"
	"gtfsvalidator/internal/schema"
)

// HeaderValidator reports required columns a file's header lacks.
type HeaderValidator struct {
	provider feed.Provider
	sink     notice.Sink
}

func NewHeaderValidator(provider feed.Provider, sink notice.Sink) *HeaderValidator {
	return &HeaderValidator{provider: provider, sink: sink}
}

// Execute emits one notice per missing required column, in schema order.
// An unreadable file is left to the row length pass to report.
func (v *HeaderValidator) Execute(file *schema.File) {
	src, ok := v.provider.Source(file.Name)
	if !ok {
		return
	}
	defer src.Close()

	for _, column := range file.MissingColumns(src.Header()) {
		v.sink.Add(notice.MissingHeader(file.Name, column))
	}
}
