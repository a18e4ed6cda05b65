package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"nfl-prediction-service/internal/metrics"
)

// RouterConfig carries the router's cross-cutting dependencies.
type RouterConfig struct {
	Logger         *slog.Logger
	Metrics        *metrics.Recorder
	MetricsHandler nethttp.Handler
	CORSOrigins    []string
}

// NewRouter registers the service routes behind CORS, request logging, and
// request ID middleware.
func NewRouter(handler *Handler, cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(LoggingMiddleware(cfg.Logger, cfg.Metrics))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/predict", handler.Predict)
	r.Get("/teams/{team}/games", handler.TeamGames)
	r.Get("/teams/{team}/news", handler.TeamNews)
	r.Get("/games/upcoming", handler.UpcomingGames)
	r.Get("/games/live", handler.LiveGames)

	r.Route("/admin/cache", func(r chi.Router) {
		r.Get("/", handler.CacheStats)
		r.Post("/clear", handler.CacheClear)
		r.Post("/cleanup", handler.CacheCleanup)
	})

	if cfg.MetricsHandler != nil {
		r.Method(nethttp.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	return r
}
