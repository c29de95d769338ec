// Package config loads the contactform configuration.
//
// Settings come from three layers, later ones winning:
//
//  1. Built-in defaults (New)
//  2. contactform.json, found in the working directory or a parent, else
//     in the user config directory (~/.config/contactform on Linux)
//  3. CONTACTFORM_* environment variables, optionally seeded from a .env file
//
// Example contactform.json:
//
//	{
//	  "server": {"addr": ":8080", "allowedOrigins": ["https://example.com"]},
//	  "log": {"level": "info", "format": "json"},
//	  "metrics": {"enabled": true, "namespace": "contactform"},
//	  "dialog": {"title": "Связаться с нами"}
//	}
//
// Environment variables mirror the JSON keys, e.g. CONTACTFORM_ADDR,
// CONTACTFORM_LOG_LEVEL, CONTACTFORM_METRICS_ENABLED and
// CONTACTFORM_ALLOWED_ORIGINS (comma separated).
package config
