package main

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/contactform/internal/config"
	"github.com/vango-dev/contactform/internal/errors"
	"github.com/vango-dev/contactform/pkg/middleware"
	"github.com/vango-dev/contactform/pkg/server"
	"github.com/vango-dev/contactform/pkg/ui"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		envFile    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the contact page",
		Long: `Serve the contact page and its WebSocket endpoint.

Configuration is read from contactform.json (searched upwards from the
working directory unless --config is given), then overridden by
CONTACTFORM_* environment variables.

Examples:
  contactform serve
  contactform serve --addr=:9000
  contactform serve --config=deploy/contactform.json --env-file=.env`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Options{Path: configPath, EnvFile: envFile})
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			logger := newLogger(os.Stderr, cfg.Log)
			slog.SetDefault(logger)

			var tp trace.TracerProvider
			if cfg.Tracing.Enabled {
				sdk := newTracerProvider(cfg.Tracing)
				defer func() {
					if err := sdk.Shutdown(context.Background()); err != nil {
						logger.Warn("tracer shutdown failed", "error", err)
					}
				}()
				otel.SetTracerProvider(sdk)
				tp = sdk
			}

			srv := buildServer(cfg, logger, tp)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			if cfg.Path() == "" {
				warn(out, "No %s found, using defaults", config.ConfigFileName)
			}
			success(out, "Listening on %s", cfg.Server.Addr)
			if cfg.Metrics.Enabled {
				info(out, "Metrics at %s", server.MetricsPath)
			}
			if err := srv.Run(ctx); err != nil {
				if stderrors.Is(err, context.DeadlineExceeded) {
					return errors.New("E211").Wrap(err)
				}
				return errors.New("E210").WithDetail(cfg.Server.Addr).Wrap(err)
			}
			info(out, "Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to contactform.json")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (overrides config)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "Load environment variables from a .env file")

	return cmd
}

// newLogger builds the process logger from the log section of the config.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newTracerProvider creates the SDK tracer provider installed when tracing
// is enabled. Every event is sampled and spans name the service after
// cfg.TracerName. Exporters and span processors are added with opts.
func newTracerProvider(cfg config.TracingConfig, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	res := resource.NewSchemaless(attribute.String("service.name", cfg.TracerName))
	opts = append([]sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	}, opts...)
	return sdktrace.NewTracerProvider(opts...)
}

// buildServer wires the server, its metrics and tracing from cfg. A nil tp
// traces with the global provider.
func buildServer(cfg *config.Config, logger *slog.Logger, tp trace.TracerProvider) *server.Server {
	sc := server.DefaultServerConfig()
	sc.Address = cfg.Server.Addr
	sc.ReadTimeout = cfg.Server.ReadTimeout.Std()
	sc.WriteTimeout = cfg.Server.WriteTimeout.Std()
	sc.IdleTimeout = cfg.Server.IdleTimeout.Std()
	sc.ShutdownTimeout = cfg.Server.ShutdownTimeout.Std()
	sc.ListenRetry = cfg.Server.ListenRetry.Std()
	sc.MaxSessions = cfg.Server.MaxSessions
	sc.SessionConfig.HeartbeatInterval = cfg.Server.HeartbeatInterval.Std()
	sc.SessionConfig.MaxMessageSize = cfg.Server.MaxMessageSize
	if len(cfg.Server.AllowedOrigins) > 0 {
		sc.CheckOrigin = server.AllowedOriginsCheck(cfg.Server.AllowedOrigins)
	}
	if cfg.Dialog.PageTitle != "" {
		sc.PageTitle = cfg.Dialog.PageTitle
	}

	opts := []server.Option{
		server.WithLogger(logger.With("component", "server")),
		server.WithDialogOptions(
			ui.DialogTitle(cfg.Dialog.Title),
			ui.DialogOpenLabel(cfg.Dialog.OpenLabel),
			ui.DialogSubmitLabel(cfg.Dialog.SubmitLabel),
			ui.DialogSuccessMessage(cfg.Dialog.SuccessMessage),
		),
	}

	var mws []middleware.Middleware
	if cfg.Tracing.Enabled {
		mws = append(mws, middleware.OpenTelemetry(
			middleware.WithTracerName(cfg.Tracing.TracerName),
			middleware.WithTracerProvider(tp),
		))
	}
	mws = append(mws, middleware.Logging(logger.With("component", "events")))
	opts = append(opts, server.WithMiddleware(mws...))

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m := middleware.Prometheus(
			middleware.WithNamespace(cfg.Metrics.Namespace),
			middleware.WithRegistry(reg),
		)
		opts = append(opts, server.WithMetrics(m, reg))
	}

	return server.New(sc, opts...)
}
