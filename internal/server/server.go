package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"mlb-score-watcher/internal/config"
	"mlb-score-watcher/internal/events"
	httpserver "mlb-score-watcher/internal/http"
	"mlb-score-watcher/internal/http/handlers"
	"mlb-score-watcher/internal/http/middleware"
	"mlb-score-watcher/internal/logging"
	"mlb-score-watcher/internal/metrics"
	"mlb-score-watcher/internal/notify"
	"mlb-score-watcher/internal/providers"
	"mlb-score-watcher/internal/settings"
	"mlb-score-watcher/internal/watcher"
)

var metricsSetup = metrics.Setup

// Server wires the watcher, settings store, event bus, notification sinks and
// HTTP surface together.
type Server struct {
	cfg      config.Config
	logger   *slog.Logger
	metrics  *metrics.Recorder
	feed     providers.FeedProvider
	settings *settings.Store
	bus      *events.Bus
	watcher  *watcher.Watcher
	pump     *notify.Pump

	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a fully wired server. A settings file that exists but cannot
// be parsed is a fatal startup error.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	store, err := settings.Load(cfg.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	feed := selectProvider(cfg, logger, recorder)
	bus := events.NewBus()
	w := watcher.New(feed, bus, logger, recorder)

	hub := notify.NewHub(
		notify.NewCommandNotifier(store.Settings, nil, logger),
		notify.NewLogNotifier(logger),
	)
	pump := notify.NewPump(bus, hub, logger)

	handler := handlers.NewHandler(w, store, feed, bus, logger)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		feed:          feed,
		settings:      store,
		bus:           bus,
		watcher:       w,
		pump:          pump,
		httpServer:    netHTTPServer{srv: srv},
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// Run starts the notification pump, the watcher (when autostart applies) and
// the HTTP servers, then waits for context cancellation to shut down
// gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	go s.pump.Run(ctx)

	s.startMetrics()
	s.startServer(stop)

	if s.cfg.Autostart {
		current := s.settings.Settings()
		if len(current.Teams) > 0 {
			logging.Info(s.logger, "resuming watcher from persisted settings",
				logging.FieldCount, len(current.Teams),
			)
			s.watcher.Start(current)
		}
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.watcher.Stop()
	s.bus.Close()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Watcher exposes the game watcher (useful for tests).
func (s *Server) Watcher() *watcher.Watcher {
	return s.watcher
}
