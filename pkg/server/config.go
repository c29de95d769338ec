package server

import (
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"
)

// SessionConfig holds configuration for individual sessions.
type SessionConfig struct {
	// ReadTimeout is the maximum time to wait for a message from the client.
	// Pongs extend it. Default: 60 seconds.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait when sending a message.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// HeartbeatInterval is the time between heartbeat pings.
	// Default: 30 seconds.
	HeartbeatInterval time.Duration

	// MaxMessageSize is the maximum size of an incoming WebSocket message.
	// Default: 64KB.
	MaxMessageSize int64

	// MaxValueLength is the maximum length of a control value in characters.
	// Default: 8192.
	MaxValueLength int
}

// DefaultSessionConfig returns a SessionConfig with sensible defaults.
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		HeartbeatInterval: 30 * time.Second,
		MaxMessageSize:    64 * 1024,
		MaxValueLength:    8 * 1024,
	}
}

// ServerConfig holds configuration for the server.
type ServerConfig struct {
	// Address is the address to listen on. Default: ":8080".
	Address string

	// ReadBufferSize and WriteBufferSize size the WebSocket buffers.
	ReadBufferSize  int
	WriteBufferSize int

	// CheckOrigin validates the Origin of WebSocket upgrades.
	// Default: SameOriginCheck.
	CheckOrigin func(r *http.Request) bool

	// SessionConfig applies to every session.
	SessionConfig *SessionConfig

	// MaxSessions caps concurrent sessions. Zero means no limit.
	MaxSessions int

	// HTTP server timeouts.
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration

	// ShutdownTimeout bounds graceful shutdown. Default: 30 seconds.
	ShutdownTimeout time.Duration

	// ListenRetry is how long Run keeps retrying while Address is still in
	// use, e.g. by a previous instance that is draining. Zero disables
	// retries.
	ListenRetry time.Duration

	// PageTitle is the document title of the contact page.
	PageTitle string

	// StyleSheets are linked from the page head.
	StyleSheets []string
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           ":8080",
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		CheckOrigin:       SameOriginCheck,
		SessionConfig:     DefaultSessionConfig(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		ShutdownTimeout:   30 * time.Second,
		PageTitle:         "Контакты",
	}
}

// withDefaults fills unset fields from DefaultServerConfig.
func (c *ServerConfig) withDefaults() *ServerConfig {
	d := DefaultServerConfig()
	if c == nil {
		return d
	}
	out := *c
	if out.Address == "" {
		out.Address = d.Address
	}
	if out.ReadBufferSize == 0 {
		out.ReadBufferSize = d.ReadBufferSize
	}
	if out.WriteBufferSize == 0 {
		out.WriteBufferSize = d.WriteBufferSize
	}
	if out.CheckOrigin == nil {
		out.CheckOrigin = d.CheckOrigin
	}
	if out.SessionConfig == nil {
		out.SessionConfig = d.SessionConfig
	}
	if out.ReadHeaderTimeout == 0 {
		out.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if out.ReadTimeout == 0 {
		out.ReadTimeout = d.ReadTimeout
	}
	if out.WriteTimeout == 0 {
		out.WriteTimeout = d.WriteTimeout
	}
	if out.IdleTimeout == 0 {
		out.IdleTimeout = d.IdleTimeout
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = d.ShutdownTimeout
	}
	if out.PageTitle == "" {
		out.PageTitle = d.PageTitle
	}
	return &out
}

// ValidateConfig reports configuration values the server cannot run with.
func (c *ServerConfig) ValidateConfig() error {
	var errs []error
	if c.MaxSessions < 0 {
		errs = append(errs, errors.New("MaxSessions must not be negative"))
	}
	if c.ListenRetry < 0 {
		errs = append(errs, errors.New("ListenRetry must not be negative"))
	}
	if sc := c.SessionConfig; sc != nil {
		if sc.HeartbeatInterval <= 0 {
			errs = append(errs, errors.New("SessionConfig.HeartbeatInterval must be positive"))
		}
		if sc.ReadTimeout > 0 && sc.HeartbeatInterval >= sc.ReadTimeout {
			errs = append(errs, errors.New("SessionConfig.HeartbeatInterval must be shorter than ReadTimeout"))
		}
		if sc.MaxMessageSize <= 0 {
			errs = append(errs, errors.New("SessionConfig.MaxMessageSize must be positive"))
		}
	}
	return errors.Join(errs...)
}

// SameOriginCheck validates that the WebSocket request origin matches the host.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// No Origin header (e.g., same-origin request or curl)
		return true
	}
	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if r.Host == "" {
		return false
	}
	return originURL.Host == r.Host
}

// AllowedOriginsCheck accepts same-origin requests plus the listed origins
// (scheme://host[:port], compared case-insensitively).
func AllowedOriginsCheck(origins []string) func(r *http.Request) bool {
	allowed := make([]string, 0, len(origins))
	for _, o := range origins {
		allowed = append(allowed, strings.ToLower(strings.TrimRight(o, "/")))
	}
	return func(r *http.Request) bool {
		if SameOriginCheck(r) {
			return true
		}
		return slices.Contains(allowed, strings.ToLower(r.Header.Get("Origin")))
	}
}
