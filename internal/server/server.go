package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"nfl-prediction-service/internal/app"
	"nfl-prediction-service/internal/config"
	"nfl-prediction-service/internal/domain"
	apihttp "nfl-prediction-service/internal/http"
	"nfl-prediction-service/internal/injury"
	"nfl-prediction-service/internal/llm"
	"nfl-prediction-service/internal/loader"
	"nfl-prediction-service/internal/logging"
	"nfl-prediction-service/internal/metrics"
	"nfl-prediction-service/internal/news"
	"nfl-prediction-service/internal/odds"
	"nfl-prediction-service/internal/poller"
	"nfl-prediction-service/internal/predictor"
	"nfl-prediction-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	service       *app.Service
	store         *store.MemoryStore
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New wires the full prediction pipeline from configuration: providers,
// loader, advisory trackers, strategy, poller, and the HTTP surface.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	recorder, metricsHandler, metricsSrv, metricsStop := buildMetrics(cfg, logger, recorder)

	catalog := domain.NewCatalog()
	sources := newSourceFactory(logger, recorder, catalog).build(cfg)

	ld, err := loader.New(sources.chain, loader.TTLs{
		Games:      cfg.TTL.Games,
		Articles:   cfg.TTL.Articles,
		LiveScores: cfg.TTL.LiveScores,
	}, logger, recorder)
	if err != nil {
		return nil, fmt.Errorf("build loader: %w", err)
	}

	strategy, err := buildStrategy(cfg)
	if err != nil {
		return nil, err
	}

	service := app.NewService(app.Deps{
		Loader:   ld,
		Injuries: injury.NewTracker(sources.injuries, logger),
		News:     news.NewAnalyzer(ld, logger),
		Odds:     odds.NewReconciler(sources.odds, cfg.TTL.Odds, logger, recorder),
		Strategy: strategy,
		Catalog:  catalog,
		Logger:   logger,
		Metrics:  recorder,
	})

	memoryStore := store.NewMemoryStore()
	plr := poller.New(ld, memoryStore, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, service, memoryStore, plr, logger, recorder, metricsHandler)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		service:       service,
		store:         memoryStore,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsStop,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, service *app.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		service:    service,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildStrategy(cfg config.Config) (predictor.Strategy, error) {
	var client predictor.CompletionClient
	if cfg.Strategy == "llm" {
		c, err := llm.New(cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("llm client: %w", err)
		}
		client = c
	}

	strategy, err := predictor.ForName(cfg.Strategy, client)
	if err != nil {
		return nil, err
	}
	return strategy, nil
}

func buildHTTPServer(cfg config.Config, service *app.Service, live *store.MemoryStore, plr Poller, logger *slog.Logger, recorder *metrics.Recorder, metricsHandler http.Handler) httpServer {
	var ready apihttp.ReadyChecker
	if plr != nil {
		ready = plr
	}

	handler := apihttp.NewHandler(service, live, ready, logger)
	router := apihttp.NewRouter(handler, apihttp.RouterConfig{
		Logger:         logger,
		Metrics:        recorder,
		MetricsHandler: metricsHandler,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, http.Handler, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil, nil
	}

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
		return metrics.NewRecorder(), nil, nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled && recCfg.Port != "" {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, handler, metricsSrv, shutdown
}

// Run starts the poller and HTTP server, then waits for context cancellation
// to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

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

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", "addr", srv.Addr())
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
