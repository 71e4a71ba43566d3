package validate

import (
	"context"

	"gtfsvalidator/internal/feed"
	"gtfsvalidator/internal/notice"
	"gtfsvalidator/internal/process"
	"gtfsvalidator/internal/schema"
)

// cancelCheckInterval is how many rows are read between context checks.
const cancelCheckInterval = 1000

// RowParser type-checks the records of one file and hands each parsed row
// to the processor of its entity kind.
type RowParser struct {
	provider feed.Provider
	parser   *schema.RowParser
	sink     notice.Sink
}

func NewRowParser(provider feed.Provider, parser *schema.RowParser, sink notice.Sink) *RowParser {
	return &RowParser{provider: provider, parser: parser, sink: sink}
}

// Execute processes every record in source order and returns how many were
// read. Type notices of a record are emitted before the notices its build
// produces. It stops early only when ctx is done.
func (p *RowParser) Execute(ctx context.Context, processor process.RowProcessor) (int, error) {
	src, ok := p.provider.Source(p.parser.File().Name)
	if !ok {
		return 0, nil
	}
	defer src.Close()

	count := 0
	for src.HasNext() {
		if count%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return count, err
			}
		}
		row := src.Next()
		count++

		for _, n := range p.parser.ValidateTypes(row) {
			p.sink.Add(n)
		}
		processor.Execute(p.parser.Parse(row))
	}
	return count, nil
}
