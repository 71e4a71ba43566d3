package validate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gtfsvalidator/internal/feed"
	"gtfsvalidator/internal/metrics"
	"gtfsvalidator/internal/notice"
	"gtfsvalidator/internal/process"
	"gtfsvalidator/internal/repository"
	"gtfsvalidator/internal/schema"
)

// Source is a feed the validator can read: its files by name, and a
// listing of what it contains.
type Source interface {
	feed.Provider
	Path() string
	Has(filename string) bool
	Filenames() []string
}

// Options tune a Validator. The zero value is usable.
type Options struct {
	// TimezoneCacheSize bounds the cache of resolved time zone names.
	TimezoneCacheSize int
	// Metrics, when set, receives row, notice and entity counts.
	Metrics *metrics.Metrics
}

// Validator validates feeds against a schema. Each Run starts from an empty
// repository and notice list.
type Validator struct {
	schema  *schema.Schema
	tz      *schema.TimezoneCache
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// New creates a Validator for s.
func New(s *schema.Schema, opts Options, logger *slog.Logger) (*Validator, error) {
	size := opts.TimezoneCacheSize
	if size <= 0 {
		size = schema.DefaultTimezoneCacheSize
	}
	tz, err := schema.NewTimezoneCache(size)
	if err != nil {
		return nil, fmt.Errorf("create timezone cache: %w", err)
	}
	return &Validator{schema: s, tz: tz, metrics: opts.Metrics, logger: logger}, nil
}

// Result is the outcome of one validation run.
type Result struct {
	RunID      uuid.UUID
	Notices    []notice.Notice
	Counts     map[string]int
	Duration   time.Duration
	Repository *repository.Repository
}

// Errors counts the error-severity notices.
func (r *Result) Errors() int {
	n := 0
	for _, nt := range r.Notices {
		if nt.Severity() == notice.SeverityError {
			n++
		}
	}
	return n
}

// Warnings counts the warning-severity notices.
func (r *Result) Warnings() int {
	return len(r.Notices) - r.Errors()
}

// Run validates every schema file of src in schema order, then flags files
// the schema does not know. Files are processed one after another.
//
// When ctx is done the run stops between files, or within a file every few
// rows, and returns the partial result alongside ctx's error.
func (v *Validator) Run(ctx context.Context, src Source) (*Result, error) {
	start := time.Now()
	runID := uuid.New()
	logger := v.logger.With("run_id", runID.String(), "feed", src.Path())

	collector := notice.NewCollector()
	var sink notice.Sink = collector
	if v.metrics != nil {
		sink = metrics.NewCountingSink(collector, v.metrics)
	}

	repo := repository.New()
	processors := process.Registry(repo, sink)
	headers := NewHeaderValidator(src, sink)
	lengths := NewRowLengthValidator(src, sink)

	result := func() *Result {
		return &Result{
			RunID:      runID,
			Notices:    collector.Notices(),
			Counts:     repo.Counts(),
			Duration:   time.Since(start),
			Repository: repo,
		}
	}

	logger.Info("validation started")
	for _, file := range v.schema.Files() {
		if err := ctx.Err(); err != nil {
			return result(), err
		}

		if !src.Has(file.Name) {
			if file.Required && (file.Alternative == "" || !src.Has(file.Alternative)) {
				sink.Add(notice.MissingRequiredFile(file.Name))
			} else {
				logger.Debug("optional file absent", "file", file.Name)
			}
			continue
		}

		processor, ok := processors[file.Name]
		if !ok {
			return result(), fmt.Errorf("no processor for %s", file.Name)
		}

		fileStart := time.Now()
		headers.Execute(file)
		if !lengths.Execute(file.Name) {
			continue
		}
		rows, err := NewRowParser(src, schema.NewRowParser(file, v.tz), sink).Execute(ctx, processor)
		if err != nil {
			return result(), fmt.Errorf("parse %s: %w", file.Name, err)
		}

		elapsed := time.Since(fileStart)
		if v.metrics != nil {
			v.metrics.ObserveFile(file.Name, rows, elapsed)
		}
		logger.Info("validated file", "file", file.Name, "rows", rows,
			"duration", elapsed.Round(time.Millisecond))
	}

	for _, name := range src.Filenames() {
		if !v.schema.IsStandard(name) {
			sink.Add(notice.NonStandardFile(name))
		}
	}

	res := result()
	if v.metrics != nil {
		v.metrics.SetEntities(res.Counts)
	}
	logger.Info("validation complete",
		"notices", len(res.Notices),
		"errors", res.Errors(),
		"duration", res.Duration.Round(time.Millisecond),
	)
	return res, nil
}
