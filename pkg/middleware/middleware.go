package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"go.opentelemetry.io/otel/trace"
)

// ErrPanic is returned by Recover when a handler panicked.
var ErrPanic = errors.New("middleware: handler panicked")

// Event describes a client event being dispatched.
type Event struct {
	SessionID string
	Type      string
	HID       string

	// Field is the form field the target is bound to, if any.
	Field string

	// Value is the control value sent with the event. It is user input and
	// is never logged or traced.
	Value string
}

// Handler processes one client event.
type Handler func(ctx context.Context, ev *Event) error

// Middleware wraps a Handler.
type Middleware interface {
	Wrap(next Handler) Handler
}

// MiddlewareFunc adapts a function to Middleware.
type MiddlewareFunc func(ctx context.Context, ev *Event, next Handler) error

// Wrap implements Middleware.
func (f MiddlewareFunc) Wrap(next Handler) Handler {
	return func(ctx context.Context, ev *Event) error {
		return f(ctx, ev, next)
	}
}

// Chain wraps h so the first middleware runs outermost.
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] != nil {
			h = mws[i].Wrap(h)
		}
	}
	return h
}

// Recover turns a panicking handler into an ErrPanic error.
func Recover(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return MiddlewareFunc(func(ctx context.Context, ev *Event, next Handler) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("event handler panic",
					"session_id", ev.SessionID,
					"event", ev.Type,
					"hid", ev.HID,
					"panic", r,
					"stack", string(debug.Stack()))
				err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()
		return next(ctx, ev)
	})
}

// Logging logs every event at debug level and failures at warn level.
// Inside a span the entries carry its trace_id.
func Logging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return MiddlewareFunc(func(ctx context.Context, ev *Event, next Handler) error {
		log := logger
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			log = logger.With("trace_id", sc.TraceID().String())
		}

		err := next(ctx, ev)
		if err != nil {
			log.WarnContext(ctx, "event failed",
				"session_id", ev.SessionID, "event", ev.Type, "hid", ev.HID, "error", err)
			return err
		}
		log.DebugContext(ctx, "event handled",
			"session_id", ev.SessionID, "event", ev.Type, "hid", ev.HID, "field", ev.Field)
		return nil
	})
}
