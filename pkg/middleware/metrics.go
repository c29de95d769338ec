package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vango-dev/contactform/pkg/contact"
	"github.com/vango-dev/contactform/pkg/ui"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "contactform").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for event duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		if namespace != "" {
			c.Namespace = namespace
		}
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "contactform",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the contact form collectors.
type Metrics struct {
	eventsTotal        *prometheus.CounterVec
	eventDuration      *prometheus.HistogramVec
	eventErrors        *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	submissions        *prometheus.CounterVec
	activeSessions     prometheus.Gauge
	wsErrors           *prometheus.CounterVec
}

// Prometheus creates and registers the metrics. Registering twice on the
// same registry panics, so create one Metrics per registry.
func Prometheus(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "events_total",
			Help:        "Total number of client events processed",
			ConstLabels: config.ConstLabels,
		}, []string{"type", "status"}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "event_duration_seconds",
			Help:        "Event processing duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"type"}),

		eventErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "event_errors_total",
			Help:        "Total number of event processing errors",
			ConstLabels: config.ConstLabels,
		}, []string{"type", "error_type"}),

		validationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "validation_failures_total",
			Help:        "Total number of failed field checks",
			ConstLabels: config.ConstLabels,
		}, []string{"field", "rule"}),

		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "submissions_total",
			Help:        "Total number of submit attempts",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_sessions",
			Help:        "Number of active WebSocket sessions",
			ConstLabels: config.ConstLabels,
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_errors_total",
			Help:        "Total WebSocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

// Middleware times and counts every event.
func (m *Metrics) Middleware() Middleware {
	return MiddlewareFunc(func(ctx context.Context, ev *Event, next Handler) error {
		start := time.Now()
		err := next(ctx, ev)
		m.eventDuration.WithLabelValues(ev.Type).Observe(time.Since(start).Seconds())

		status := "success"
		if err != nil {
			status = "error"
			m.eventErrors.WithLabelValues(ev.Type, categorizeError(err)).Inc()
		}
		m.eventsTotal.WithLabelValues(ev.Type, status).Inc()
		return err
	})
}

// ObserveResult counts failed field checks. It has the signature expected
// by contact.WithObserver.
func (m *Metrics) ObserveResult(res contact.Result) {
	if res.Valid {
		return
	}
	m.validationFailures.WithLabelValues(res.Field.String(), string(res.Rule)).Inc()
}

// ObserveSubmit counts a submit attempt. It has the signature expected by
// ui.DialogOnSubmit.
func (m *Metrics) ObserveSubmit(valid bool) {
	outcome := "accepted"
	if !valid {
		outcome = "rejected"
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

// SessionOpened records a new session.
func (m *Metrics) SessionOpened() {
	m.activeSessions.Inc()
}

// SessionClosed records a session going away.
func (m *Metrics) SessionClosed() {
	m.activeSessions.Dec()
}

// WebSocketError records a transport error.
func (m *Metrics) WebSocketError(errorType string) {
	m.wsErrors.WithLabelValues(errorType).Inc()
}

// categorizeError keeps error labels low-cardinality.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, ui.ErrUnknownTarget):
		return "unknown_target"
	case errors.Is(err, ui.ErrNoHandler):
		return "no_handler"
	case errors.Is(err, ErrPanic):
		return "panic"
	default:
		return "internal"
	}
}
