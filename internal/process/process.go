// Package process turns parsed rows into stored entities, one processor per
// entity kind.
package process

import (
	"gtfsvalidator/internal/gtfs"
	"gtfsvalidator/internal/notice"
	"gtfsvalidator/internal/schema"
)

// RowProcessor consumes the parsed rows of one file.
type RowProcessor interface {
	Execute(row *schema.ParsedRow)
}

// Processor feeds a parsed row to the builder of its kind and stores the
// result. Build failures are forwarded to the sink as they are; a key that is
// already stored yields a single duplicated entity notice.
type Processor[T any] struct {
	file     string
	keyField string
	sink     notice.Sink
	build    func(row *schema.ParsedRow) gtfs.BuildResult[T]
	add      func(entity *T) (*T, bool)
}

func newProcessor[T any](file, keyField string, sink notice.Sink,
	build func(*schema.ParsedRow) gtfs.BuildResult[T], add func(*T) (*T, bool)) *Processor[T] {
	return &Processor[T]{file: file, keyField: keyField, sink: sink, build: build, add: add}
}

func (p *Processor[T]) Execute(row *schema.ParsedRow) {
	res := p.build(row)
	if !res.IsSuccess() {
		for _, n := range res.Notices() {
			p.sink.Add(n)
		}
		return
	}

	if _, ok := p.add(res.Entity()); ok {
		return
	}
	entityID := row.EntityID
	if entityID == "" {
		entityID = notice.NoID
	}
	p.sink.Add(notice.DuplicatedEntity(p.file, p.keyField, entityID).AtRow(row.Index))
}

// File is the GTFS file whose rows the processor consumes.
func (p *Processor[T]) File() string {
	return p.file
}
