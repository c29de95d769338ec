package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vango-dev/contactform/pkg/contact"
	"github.com/vango-dev/contactform/pkg/middleware"
	"github.com/vango-dev/contactform/pkg/ui"
	"golang.org/x/sync/errgroup"
)

// Paths served by the server.
const (
	SocketPath  = "/_contact/ws"
	ClientPath  = "/_contact/client.js"
	MetricsPath = "/metrics"
	HealthPath  = "/healthz"
)

// Server is the HTTP/WebSocket server for the contact page.
type Server struct {
	config   *ServerConfig
	sessions *SessionManager
	upgrader websocket.Upgrader
	router   chi.Router

	middleware []middleware.Middleware
	dialogOpts []ui.DialogOption

	metrics  *middleware.Metrics
	gatherer prometheus.Gatherer

	logger *slog.Logger

	mu         sync.Mutex
	httpServer *http.Server
	baseCtx    context.Context
	cancelBase context.CancelFunc
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMiddleware adds event middleware, outermost first.
func WithMiddleware(mws ...middleware.Middleware) Option {
	return func(s *Server) {
		s.middleware = append(s.middleware, mws...)
	}
}

// WithDialogOptions passes options to every session's dialog.
func WithDialogOptions(opts ...ui.DialogOption) Option {
	return func(s *Server) {
		s.dialogOpts = append(s.dialogOpts, opts...)
	}
}

// WithMetrics records events, validation results, submissions and
// sessions in m and serves gatherer on MetricsPath.
func WithMetrics(m *middleware.Metrics, gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = gatherer
	}
}

// New creates a Server. A nil config uses DefaultServerConfig.
func New(config *ServerConfig, opts ...Option) *Server {
	config = config.withDefaults()

	s := &Server{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		logger: slog.Default().With("component", "server"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.baseCtx, s.cancelBase = context.WithCancel(context.Background())

	if err := config.ValidateConfig(); err != nil {
		s.logger.Error("config validation failed", "error", err)
	}

	s.sessions = NewSessionManager(config.MaxSessions, s.logger)
	if s.metrics != nil {
		s.middleware = append([]middleware.Middleware{s.metrics.Middleware()}, s.middleware...)
		s.dialogOpts = append(s.dialogOpts,
			ui.DialogValidatorOptions(contact.WithObserver(s.metrics.ObserveResult)),
			ui.DialogOnSubmit(s.metrics.ObserveSubmit),
		)
		s.sessions.SetOnSessionCreate(func(*Session) { s.metrics.SessionOpened() })
		s.sessions.SetOnSessionClose(func(*Session) { s.metrics.SessionClosed() })
	}
	s.middleware = append([]middleware.Middleware{middleware.Recover(s.logger)}, s.middleware...)

	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/", s.servePage)
	r.Get(SocketPath, s.HandleWebSocket)
	r.Get(ClientPath, s.serveThinClient)
	r.Head(ClientPath, s.serveThinClient)
	r.Get(HealthPath, s.serveHealth)
	if s.gatherer != nil {
		r.Handle(MetricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the server as an http.Handler for mounting elsewhere.
func (s *Server) Handler() http.Handler {
	return s.router
}

// HandleWebSocket upgrades the request and serves a session until the
// connection ends.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
		if s.metrics != nil {
			s.metrics.WebSocketError("upgrade")
		}
		return
	}

	sess := newSession(conn, s.config.SessionConfig, s.logger, s.middleware, s.dialogOpts)
	if s.metrics != nil {
		sess.onWSError = s.metrics.WebSocketError
	}
	if err := s.sessions.Add(sess); err != nil {
		s.logger.Warn("session rejected", "error", err)
		sess.closeWith(websocket.CloseTryAgainLater, err.Error())
		return
	}
	defer s.sessions.Remove(sess.ID)

	sess.serve(s.baseCtx)
}

func (s *Server) serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// Run listens on the configured address until ctx is done, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if err := s.config.ValidateConfig(); err != nil {
		return err
	}
	ln, err := s.listen(ctx)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// listen opens the configured address, retrying with exponential backoff
// for up to ListenRetry while the address is in use.
func (s *Server) listen(ctx context.Context) (net.Listener, error) {
	var lc net.ListenConfig
	if s.config.ListenRetry <= 0 {
		return lc.Listen(ctx, "tcp", s.config.Address)
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 100 * time.Millisecond
	exp.MaxInterval = time.Second

	return backoff.Retry(ctx,
		func() (net.Listener, error) {
			ln, err := lc.Listen(ctx, "tcp", s.config.Address)
			if err == nil {
				return ln, nil
			}
			if !errors.Is(err, syscall.EADDRINUSE) {
				return nil, backoff.Permanent(err)
			}
			s.logger.Warn("address in use, retrying", "address", s.config.Address)
			return nil, err
		},
		backoff.WithBackOff(exp),
		backoff.WithMaxElapsedTime(s.config.ListenRetry),
	)
}

// Serve accepts connections on ln until ctx is done or Shutdown is called.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}
	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	// stopped is closed once srv.Serve returns, which also happens when
	// Shutdown is called directly.
	stopped := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(stopped)
		s.logger.Info("server starting", "address", ln.Addr().String())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			s.logger.Info("shutting down...")
			return s.Shutdown(context.Background())
		case <-stopped:
			return nil
		}
	})
	return g.Wait()
}

// Shutdown closes all sessions and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.cancelBase()
	s.sessions.Shutdown()

	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()
	if srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Sessions returns the session manager.
func (s *Server) Sessions() *SessionManager {
	return s.sessions
}

// Config returns the server configuration.
func (s *Server) Config() *ServerConfig {
	return s.config
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}
