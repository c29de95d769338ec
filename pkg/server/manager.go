package server

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
)

// SessionManager tracks live sessions.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	closed   bool

	maxSessions int

	totalCreated atomic.Uint64
	totalClosed  atomic.Uint64

	// Callbacks
	onSessionCreate func(*Session)
	onSessionClose  func(*Session)

	logger *slog.Logger
}

// NewSessionManager creates a manager. maxSessions of zero means no limit.
func NewSessionManager(maxSessions int, logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		sessions:    make(map[string]*Session),
		maxSessions: maxSessions,
		logger:      logger,
	}
}

// SetOnSessionCreate sets a callback run after a session is added.
func (m *SessionManager) SetOnSessionCreate(fn func(*Session)) {
	m.onSessionCreate = fn
}

// SetOnSessionClose sets a callback run after a session is removed.
func (m *SessionManager) SetOnSessionClose(fn func(*Session)) {
	m.onSessionClose = fn
}

// Add registers s.
func (m *SessionManager) Add(s *Session) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrServerClosed
	}
	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		m.mu.Unlock()
		return ErrTooManySessions
	}
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.totalCreated.Add(1)
	m.logger.Debug("session created", "session_id", s.ID)
	if m.onSessionCreate != nil {
		m.onSessionCreate(s)
	}
	return nil
}

// Remove unregisters and closes the session with the given id.
func (m *SessionManager) Remove(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return
	}

	s.Close()
	m.totalClosed.Add(1)
	m.logger.Debug("session closed", "session_id", id)
	if m.onSessionClose != nil {
		m.onSessionClose(s)
	}
}

// Get returns a session by id, or nil.
func (m *SessionManager) Get(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Stats returns lifetime counters.
func (m *SessionManager) Stats() (created, closed uint64) {
	return m.totalCreated.Load(), m.totalClosed.Load()
}

// Shutdown closes every session and rejects new ones.
func (m *SessionManager) Shutdown() {
	m.mu.Lock()
	m.closed = true
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		s.closeWith(websocket.CloseGoingAway, "server shutting down")
		m.Remove(s.ID)
	}
	m.logger.Info("sessions closed", "count", len(sessions))
}
