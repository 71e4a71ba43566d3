package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"gtfsvalidator/internal/notice"
)

// Metrics holds the Prometheus metrics of a validation run.
type Metrics struct {
	RowsTotal      *prometheus.CounterVec
	NoticesTotal   *prometheus.CounterVec
	EntitiesStored *prometheus.GaugeVec
	FileDuration   *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates the metrics and registers them on registry.
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		RowsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gtfsvalidator_rows_total",
				Help: "Total number of rows read per GTFS file",
			},
			[]string{"file"},
		),
		NoticesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gtfsvalidator_notices_total",
				Help: "Total number of notices emitted",
			},
			[]string{"code", "severity"},
		),
		EntitiesStored: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "gtfsvalidator_entities_stored",
				Help: "Number of entities accepted per GTFS file",
			},
			[]string{"file"},
		),
		FileDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gtfsvalidator_file_duration_seconds",
				Help:    "Time spent validating a GTFS file",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"file"},
		),
		registry: registry,
	}

	registry.MustRegister(
		m.RowsTotal,
		m.NoticesTotal,
		m.EntitiesStored,
		m.FileDuration,
	)
	return m
}

// ObserveFile records the rows read from a file and how long it took.
func (m *Metrics) ObserveFile(file string, rows int, d time.Duration) {
	m.RowsTotal.WithLabelValues(file).Add(float64(rows))
	m.FileDuration.WithLabelValues(file).Observe(d.Seconds())
}

func (m *Metrics) ObserveNotice(n notice.Notice) {
	m.NoticesTotal.WithLabelValues(n.Code, n.Severity().String()).Inc()
}

// SetEntities publishes per-file entity counts.
func (m *Metrics) SetEntities(counts map[string]int) {
	for file, n := range counts {
		m.EntitiesStored.WithLabelValues(file).Set(float64(n))
	}
}

// WriteTextfile writes every registered metric to path in the text
// exposition format, for node_exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// CountingSink counts each notice before passing it on.
type CountingSink struct {
	next    notice.Sink
	metrics *Metrics
}

func NewCountingSink(next notice.Sink, m *Metrics) *CountingSink {
	return &CountingSink{next: next, metrics: m}
}

func (s *CountingSink) Add(n notice.Notice) notice.Notice {
	stored := s.next.Add(n)
	s.metrics.ObserveNotice(stored)
	return stored
}
