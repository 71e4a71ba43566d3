package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// CSVSource streams the records of a single GTFS file.
type CSVSource struct {
	filename string
	rc       io.ReadCloser
	reader   *csv.Reader
	header   []string
	next     *RawRow
	logger   *slog.Logger
}

// NewCSVSource reads the header of rc and positions the source on the first
// record. It fails when the header cannot be read, which covers empty files.
func NewCSVSource(filename string, rc io.ReadCloser, logger *slog.Logger) (*CSVSource, error) {
	reader := csv.NewReader(rc)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	// Row length is checked by the validator, not the tokenizer.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", filename, err)
	}

	// Strip BOM from first field if present
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\xef\xbb\xbf")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	s := &CSVSource{
		filename: filename,
		rc:       rc,
		reader:   reader,
		header:   header,
		logger:   logger,
	}
	s.advance()
	return s, nil
}

func (s *CSVSource) HasNext() bool {
	return s.next != nil
}

// Next returns the current row and moves on. Calling Next when HasNext is
// false is a programming error.
func (s *CSVSource) Next() RawRow {
	if s.next == nil {
		panic("feed: Next called on exhausted source " + s.filename)
	}
	row := *s.next
	s.advance()
	return row
}

func (s *CSVSource) HeaderCount() int {
	return len(s.header)
}

func (s *CSVSource) Header() []string {
	return s.header
}

func (s *CSVSource) Close() error {
	return s.rc.Close()
}

// advance reads ahead one record. Records the tokenizer rejects are skipped
// so that one broken line does not hide the rest of the file.
func (s *CSVSource) advance() {
	for {
		record, err := s.reader.Read()
		if err == io.EOF {
			s.next = nil
			return
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				s.logger.Warn("skipping unreadable record", "file", s.filename, "line", perr.StartLine, "error", perr.Err)
				continue
			}
			s.logger.Warn("stopped reading file", "file", s.filename, "error", err)
			s.next = nil
			return
		}
		line, _ := s.reader.FieldPos(0)
		s.next = &RawRow{Index: line, header: s.header, values: record}
		return
	}
}
