// Package metrics provides the Prometheus metrics of the indexer.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bubblegum"

// Outcomes of a processed bundle.
const (
	OutcomeApplied   = "applied"
	OutcomeDuplicate = "duplicate"
	OutcomeStale     = "stale"
	OutcomeMissing   = "missing"
	OutcomeSkipped   = "skipped"
)

type Config struct {
	Enabled bool `mapstructure:"enabled"`
}

// Metrics is a nil-safe handle; every Record method is a no-op on a nil or
// disabled instance.
type Metrics struct {
	MessagesReceived *prometheus.CounterVec
	MessagesSkipped  *prometheus.CounterVec
	BundlesProcessed *prometheus.CounterVec
	TasksEnqueued    *prometheus.CounterVec
	ProcessDuration  *prometheus.HistogramVec
	CurrentSlot      *prometheus.GaugeVec

	registry *prometheus.Registry
	enabled  bool
}

func New(cfg Config) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		enabled:  cfg.Enabled,
	}
	if !cfg.Enabled {
		return m
	}

	m.MessagesReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_received_total",
			Help:      "Total messages received per stream",
		},
		[]string{"stream"},
	)
	m.MessagesSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_skipped_total",
			Help:      "Messages acknowledged without being applied, by reason",
		},
		[]string{"stream", "reason"},
	)
	m.BundlesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bundles_processed_total",
			Help:      "Instruction bundles processed by kind and outcome",
		},
		[]string{"instruction", "outcome"},
	)
	m.TasksEnqueued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_enqueued_total",
			Help:      "Background tasks enqueued by name",
		},
		[]string{"task"},
	)
	m.ProcessDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "message_process_duration_seconds",
			Help:      "Time spent processing one message",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		},
		[]string{"stream"},
	)
	m.CurrentSlot = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_slot",
			Help:      "Slot of the last processed message per stream",
		},
		[]string{"stream"},
	)

	m.registry.MustRegister(
		m.MessagesReceived,
		m.MessagesSkipped,
		m.BundlesProcessed,
		m.TasksEnqueued,
		m.ProcessDuration,
		m.CurrentSlot,
	)
	m.registry.MustRegister(prometheus.NewGoCollector())
	m.registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	return m
}

func (m *Metrics) IsEnabled() bool {
	return m != nil && m.enabled
}

// Handler returns an HTTP handler for metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RecordMessageReceived(stream string, n int) {
	if m.IsEnabled() {
		m.MessagesReceived.WithLabelValues(stream).Add(float64(n))
	}
}

func (m *Metrics) RecordMessageSkipped(stream, reason string) {
	if m.IsEnabled() {
		m.MessagesSkipped.WithLabelValues(stream, reason).Inc()
	}
}

func (m *Metrics) RecordBundle(instruction, outcome string) {
	if m.IsEnabled() {
		m.BundlesProcessed.WithLabelValues(instruction, outcome).Inc()
	}
}

func (m *Metrics) RecordTaskEnqueued(task string) {
	if m.IsEnabled() {
		m.TasksEnqueued.WithLabelValues(task).Inc()
	}
}

func (m *Metrics) RecordProcessDuration(stream string, d time.Duration) {
	if m.IsEnabled() {
		m.ProcessDuration.WithLabelValues(stream).Observe(d.Seconds())
	}
}

func (m *Metrics) SetCurrentSlot(stream string, slot uint64) {
	if m.IsEnabled() {
		m.CurrentSlot.WithLabelValues(stream).Set(float64(slot))
	}
}
