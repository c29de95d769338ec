// Package server serves the contact page and its live sessions.
//
// Routes:
//   - GET /                    server-rendered page with a closed dialog
//   - GET /_contact/ws         WebSocket endpoint for live events
//   - GET /_contact/client.js  thin client script
//   - GET /metrics             Prometheus exposition (when metrics are enabled)
//   - GET /healthz             liveness probe
//
// Each WebSocket connection owns a Session holding its own ContactDialog.
// The session reads client events in a single goroutine, runs them through
// the configured middleware, and answers each with the re-rendered dialog.
//
//	srv := server.New(server.DefaultServerConfig(),
//	    server.WithMetrics(metrics, registry),
//	)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
