// Package middleware wraps the dispatch of client events.
//
// A Handler processes one client event for a session. Middleware wraps a
// Handler with cross-cutting behaviour and is applied with Chain:
//
//	h := middleware.Chain(dispatch,
//	    middleware.Recover(logger),
//	    metrics.Middleware(),
//	    middleware.OpenTelemetry(middleware.WithTracerName("contactform")),
//	)
//
// # Prometheus Metrics
//
// Prometheus registers the contact form metrics:
//   - contactform_events_total: events by type and status
//   - contactform_event_duration_seconds: event processing duration
//   - contactform_event_errors_total: failed events by error type
//   - contactform_validation_failures_total: failed field checks by field and rule
//   - contactform_submissions_total: submit attempts by outcome
//   - contactform_active_sessions: open WebSocket sessions
//   - contactform_websocket_errors_total: transport errors by type
//
// Validation failures are fed through contact.WithObserver:
//
//	m := middleware.Prometheus(middleware.WithRegistry(reg))
//	ui.NewContactDialog(s, ui.DialogValidatorOptions(contact.WithObserver(m.ObserveResult)))
//
// # OpenTelemetry
//
// OpenTelemetry starts a server span per event named after the event type,
// with the session id, target hid and field as attributes. The span context
// is passed down through the handler's context.
package middleware
