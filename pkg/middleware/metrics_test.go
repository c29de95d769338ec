package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/vango-dev/contactform/pkg/contact"
	"github.com/vango-dev/contactform/pkg/ui"
)

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := Prometheus(WithRegistry(reg))

	ok := Chain(func(context.Context, *Event) error { return nil }, m.Middleware())
	bad := Chain(func(context.Context, *Event) error {
		return fmt.Errorf("dispatch: %w", ui.ErrUnknownTarget)
	}, m.Middleware())

	_ = ok(context.Background(), &Event{Type: "click"})
	_ = ok(context.Background(), &Event{Type: "click"})
	_ = bad(context.Background(), &Event{Type: "input"})

	if got := testutil.ToFloat64(m.eventsTotal.WithLabelValues("click", "success")); got != 2 {
		t.Errorf("events_total(click, success) = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.eventsTotal.WithLabelValues("input", "error")); got != 1 {
		t.Errorf("events_total(input, error) = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.eventErrors.WithLabelValues("input", "unknown_target")); got != 1 {
		t.Errorf("event_errors_total = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(m.eventDuration); n != 2 {
		t.Errorf("duration series = %d, want 2", n)
	}
}

func TestObserveResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := Prometheus(WithRegistry(reg), WithNamespace("test"))

	v := contact.New(contact.NewMemoryRegistry(), contact.WithObserver(m.ObserveResult))
	v.ValidateForm()

	for _, f := range contact.Fields {
		if got := testutil.ToFloat64(m.validationFailures.WithLabelValues(f.String(), "required")); got != 1 {
			t.Errorf("validation_failures_total(%s, required) = %v, want 1", f, got)
		}
	}

	expected := `
# HELP test_submissions_total Total number of submit attempts
# TYPE test_submissions_total counter
test_submissions_total{outcome="accepted"} 1
test_submissions_total{outcome="rejected"} 2
`
	m.ObserveSubmit(false)
	m.ObserveSubmit(false)
	m.ObserveSubmit(true)
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_submissions_total"); err != nil {
		t.Error(err)
	}
}

func TestSessionGauge(t *testing.T) {
	m := Prometheus(WithRegistry(prometheus.NewRegistry()))
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	if got := testutil.ToFloat64(m.activeSessions); got != 1 {
		t.Errorf("active_sessions = %v, want 1", got)
	}
	m.WebSocketError("read")
	if got := testutil.ToFloat64(m.wsErrors.WithLabelValues("read")); got != 1 {
		t.Errorf("websocket_errors_total = %v", got)
	}
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{context.DeadlineExceeded, "timeout"},
		{fmt.Errorf("x: %w", ui.ErrNoHandler), "no_handler"},
		{fmt.Errorf("%w: boom", ErrPanic), "panic"},
		{errors.New("other"), "internal"},
	}
	for _, tt := range tests {
		if got := categorizeError(tt.err); got != tt.want {
			t.Errorf("categorizeError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
