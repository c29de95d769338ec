package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name.
const defaultTracerName = "contactform"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "contactform").
	TracerName string

	// TracerProvider supplies the tracer. Default: the global provider.
	TracerProvider trace.TracerProvider

	// Filter determines which events to trace.
	// If nil, all events are traced.
	Filter func(ev *Event) bool
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		if name != "" {
			c.TracerName = name
		}
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.TracerProvider = tp
	}
}

// WithEventFilter sets a filter function for events.
func WithEventFilter(filter func(ev *Event) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// OpenTelemetry creates middleware that traces every event.
//
// The tracer uses the global OpenTelemetry tracer provider unless one is
// given with WithTracerProvider. Configure it in main() before starting
// the server:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
func OpenTelemetry(opts ...OTelOption) Middleware {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	tp := config.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	tracer := tp.Tracer(config.TracerName)

	return MiddlewareFunc(func(ctx context.Context, ev *Event, next Handler) error {
		if config.Filter != nil && !config.Filter(ev) {
			return next(ctx, ev)
		}

		attrs := []attribute.KeyValue{
			attribute.String("contact.session_id", ev.SessionID),
			attribute.String("contact.event_type", ev.Type),
			attribute.String("contact.event_target", ev.HID),
		}
		if ev.Field != "" {
			attrs = append(attrs, attribute.String("contact.field", ev.Field))
		}

		spanCtx, span := tracer.Start(ctx, "contact."+ev.Type,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		err := next(spanCtx, ev)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		return err
	})
}
