// Package errors provides structured errors with codes, hints and
// terminal formatting for configuration, server and CLI failures.
//
// Errors are created from registered codes:
//
//	err := errors.New("E101").
//	    WithDetail("contactform.json: unexpected end of JSON input").
//	    WithSuggestion("Check that contactform.json is valid JSON")
//
// Codes are grouped by range:
//   - E100-E199: configuration
//   - E200-E299: server
//   - E300-E399: CLI
//
// Field validation failures are not errors; see package contact.
package errors
