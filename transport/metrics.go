package transport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xy-planning-network/tlog/logger"
)

// DefaultNamespace prefixes the names of every metric a Metrics exposes.
const DefaultNamespace = "tlog"

// A Metrics Transport counts Records with Prometheus.
//
// Metrics does not register its collectors; pass Collectors to a prometheus.Registerer.
type Metrics struct {
	Records   *prometheus.CounterVec
	ArgsBytes *prometheus.CounterVec
}

// A MetricsOptFn is a functional option configuring a Metrics when constructing a new one.
type MetricsOptFn func(*metricsOpts)

type metricsOpts struct {
	namespace string
	subsystem string
}

// WithNamespace replaces DefaultNamespace.
func WithNamespace(ns string) MetricsOptFn {
	return func(o *metricsOpts) { o.namespace = ns }
}

// WithSubsystem sets the subsystem part of metric names.
func WithSubsystem(subsystem string) MetricsOptFn {
	return func(o *metricsOpts) { o.subsystem = subsystem }
}

// NewMetrics constructs a Metrics.
func NewMetrics(opts ...MetricsOptFn) *Metrics {
	o := metricsOpts{namespace: DefaultNamespace}
	for _, opt := range opts {
		opt(&o)
	}

	return &Metrics{
		Records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: o.namespace,
				Subsystem: o.subsystem,
				Name:      "records_total",
				Help:      "Number of log records written, by level.",
			},
			[]string{"level"},
		),
		ArgsBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: o.namespace,
				Subsystem: o.subsystem,
				Name:      "args_bytes_total",
				Help:      "Size of rendered log record arguments, by level.",
			},
			[]string{"level"},
		),
	}
}

// Pipe counts rec.
func (m *Metrics) Pipe(rec logger.Record) {
	level := rec.Level.String()
	m.Records.WithLabelValues(level).Inc()
	m.ArgsBytes.WithLabelValues(level).Add(float64(len(rec.ArgsText)))
}

// Collectors returns the collectors to register.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Records, m.ArgsBytes}
}
