package server

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vango-dev/contactform/pkg/middleware"
	"github.com/vango-dev/contactform/pkg/protocol"
	"github.com/vango-dev/contactform/pkg/render"
	"github.com/vango-dev/contactform/pkg/ui"
)

// Session is one live connection and the dialog it drives.
type Session struct {
	ID string

	conn     *websocket.Conn
	dialog   *ui.ContactDialog
	renderer *render.Renderer
	handler  middleware.Handler
	config   *SessionConfig
	limits   protocol.Limits
	logger   *slog.Logger

	// pending holds client events emitted while handling the current event.
	pending []protocol.ClientEvent

	writeMu sync.Mutex
	closed  atomic.Bool
	done    chan struct{}

	// Hooks
	onWSError func(kind string)
}

// newSession wires a dialog to conn. The caller starts it with serve.
func newSession(conn *websocket.Conn, config *SessionConfig, logger *slog.Logger, mws []middleware.Middleware, dialogOpts []ui.DialogOption) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		conn:     conn,
		renderer: render.NewRenderer(render.RendererConfig{}),
		config:   config,
		limits: protocol.Limits{
			MaxFrameSize:   int(config.MaxMessageSize),
			MaxValueLength: config.MaxValueLength,
		},
		done: make(chan struct{}),
	}
	s.logger = logger.With("session_id", s.ID)
	s.dialog = ui.NewContactDialog(s, dialogOpts...)
	s.handler = middleware.Chain(s.dispatch, mws...)
	return s
}

// Emit implements toast.Emitter. Events are delivered with the next update.
func (s *Session) Emit(name string, data any) {
	s.pending = append(s.pending, protocol.ClientEvent{Name: name, Data: data})
}

// Dialog returns the session's dialog.
func (s *Session) Dialog() *ui.ContactDialog {
	return s.dialog
}

// serve sends the initial render and reads events until the connection
// fails, the client leaves or ctx is done.
func (s *Session) serve(ctx context.Context) {
	defer s.Close()

	s.conn.SetReadLimit(s.config.MaxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	})

	go s.heartbeat()
	go func() {
		select {
		case <-ctx.Done():
			s.closeWith(websocket.CloseGoingAway, "server shutting down")
		case <-s.done:
		}
	}()

	if err := s.sendUpdate(0); err != nil {
		s.logger.Error("initial render failed", "error", err)
		return
	}

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
				s.wsError("read")
			}
			return
		}
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		if fatal := s.handleFrame(ctx, msg); fatal {
			return
		}
	}
}

// handleFrame processes one client frame and reports whether the session
// must end.
func (s *Session) handleFrame(ctx context.Context, msg []byte) bool {
	ev, err := protocol.DecodeEvent(msg, s.limits)
	if err != nil {
		em := protocol.ErrorFor(err)
		s.logger.Debug("event decode error", "error", err)
		if werr := s.send(protocol.NewErrorMessage(0, em)); werr != nil {
			return true
		}
		return em.Fatal
	}

	mev := &middleware.Event{
		SessionID: s.ID,
		Type:      ev.Type.String(),
		HID:       ev.HID,
		Value:     ev.Value,
	}
	if f, ok := s.dialog.FieldOf(ev.HID); ok {
		mev.Field = f.String()
	}

	if err := s.handler(ctx, mev); err != nil {
		s.pending = nil
		if werr := s.send(protocol.NewErrorMessage(ev.Seq, errorMessageFor(err))); werr != nil {
			return true
		}
		return false
	}

	if err := s.sendUpdate(ev.Seq); err != nil {
		s.logger.Error("update failed", "error", err)
		return true
	}
	return false
}

func (s *Session) dispatch(_ context.Context, ev *middleware.Event) error {
	return s.dialog.Dispatch(ev.Type, ev.HID, ev.Value)
}

func errorMessageFor(err error) *protocol.ErrorMessage {
	switch {
	case errors.Is(err, ui.ErrUnknownTarget), errors.Is(err, ui.ErrNoHandler):
		return protocol.NewError(protocol.ErrHandlerNotFound, err.Error())
	case errors.Is(err, middleware.ErrPanic):
		return protocol.NewError(protocol.ErrHandlerPanic, "event handler failed")
	default:
		return protocol.NewError(protocol.ErrServerError, "internal error")
	}
}

// sendUpdate renders the dialog and sends it with pending client events.
func (s *Session) sendUpdate(seq uint64) error {
	html, err := s.renderer.RenderToString(s.dialog.Render())
	if err != nil {
		return err
	}
	m := protocol.NewUpdate(seq, html, s.dialog.IsOpen())
	if f, ok := s.dialog.TakeFocus(); ok {
		m.Focus = f.String()
	}
	m.Events = s.pending
	s.pending = nil
	return s.send(m)
}

func (s *Session) send(m *protocol.Message) error {
	data, err := m.Encode()
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.closed.Load() {
		return ErrSessionClosed
	}
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.wsError("write")
		return err
	}
	return nil
}

// heartbeat pings the client until the session closes.
func (s *Session) heartbeat() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			deadline := time.Now().Add(s.config.WriteTimeout)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				s.logger.Debug("ping failed", "error", err)
				s.wsError("ping")
				s.Close()
				return
			}
		case <-s.done:
			return
		}
	}
}

func (s *Session) wsError(kind string) {
	if s.onWSError != nil {
		s.onWSError(kind)
	}
}

// IsClosed reports whether the session has been closed.
func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// Close closes the connection. It is safe to call more than once.
func (s *Session) Close() {
	s.closeWith(websocket.CloseNormalClosure, "")
}

func (s *Session) closeWith(code int, reason string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	close(s.done)
	deadline := time.Now().Add(time.Second)
	_ = s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), deadline)
	_ = s.conn.Close()
}
