package server

import "errors"

var (
	// ErrServerClosed is returned when a session is requested after shutdown.
	ErrServerClosed = errors.New("server: closed")

	// ErrTooManySessions is returned when MaxSessions is reached.
	ErrTooManySessions = errors.New("server: too many sessions")

	// ErrSessionClosed is returned when writing to a closed session.
	ErrSessionClosed = errors.New("server: session closed")
)
