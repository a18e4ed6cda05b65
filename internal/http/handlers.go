// Package http exposes the prediction pipeline over REST.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"nfl-prediction-service/internal/app"
	"nfl-prediction-service/internal/cache"
	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/poller"
	"nfl-prediction-service/internal/predictor"
	"nfl-prediction-service/internal/timeutil"
)

// PipelineService is the app surface the handlers consume.
type PipelineService interface {
	Predict(ctx context.Context, homeAbbr, awayAbbr string, season int, opts app.PredictOptions) (domain.Prediction, error)
	TeamGames(ctx context.Context, abbr string, season int) ([]domain.Game, error)
	TeamNews(ctx context.Context, abbr string, limit int) ([]domain.Article, error)
	UpcomingGames(ctx context.Context) ([]domain.Game, error)
	CacheStats() []cache.Stats
	CacheClear()
	CacheCleanup() int
}

// ReadyChecker reports background refresh health.
type ReadyChecker interface {
	Status() poller.Status
}

// LiveStore reads the poller-maintained live slate.
type LiveStore interface {
	ListGames() []domain.Game
	UpdatedAt() time.Time
}

// Handler wires HTTP routes to the pipeline service.
type Handler struct {
	svc    PipelineService
	live   LiveStore
	ready  ReadyChecker
	logger *slog.Logger
	now    func() time.Time
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc PipelineService, live LiveStore, ready ReadyChecker, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		live:   live,
		ready:  ready,
		logger: logger,
		now:    time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the background poller is healthy.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.ready == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.ready.Status()
	if !status.IsReady() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status":              "not ready",
			"consecutiveFailures": status.ConsecutiveFailures,
			"lastError":           status.LastError,
		}, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ready",
		"lastSuccess": status.LastSuccess,
	}, h.logger)
}

// Predict runs the configured strategy for a prospective matchup. Query
// parameters: home, away (required), season, week, date (optional).
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	q := r.URL.Query()

	home := q.Get("home")
	away := q.Get("away")
	if home == "" || away == "" {
		writeError(w, r, http.StatusBadRequest, "home and away query parameters are required", logger)
		return
	}

	season := timeutil.SeasonYear(h.now())
	if raw := q.Get("season"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "season must be an integer", logger)
			return
		}
		season = parsed
	}

	var opts app.PredictOptions
	if raw := q.Get("week"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, r, http.StatusBadRequest, "week must be a positive integer", logger)
			return
		}
		opts.Week = parsed
	}
	if raw := q.Get("date"); raw != "" {
		parsed, err := timeutil.ParseDate(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD", logger)
			return
		}
		opts.Scheduled = parsed
	}

	prediction, err := h.svc.Predict(r.Context(), home, away, season, opts)
	if err != nil {
		h.writePredictError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, prediction, logger)
}

func (h *Handler) writePredictError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, domain.ErrUnknownTeam):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, predictor.ErrInsufficientData):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error(), logger)
	default:
		logger.Error("prediction failed", "err", err)
		writeError(w, r, http.StatusBadGateway, "prediction unavailable", logger)
	}
}

// TeamGames returns a team's season schedule.
func (h *Handler) TeamGames(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	abbr := chi.URLParam(r, "team")

	season := timeutil.SeasonYear(h.now())
	if raw := r.URL.Query().Get("season"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "season must be an integer", logger)
			return
		}
		season = parsed
	}

	games, err := h.svc.TeamGames(r.Context(), abbr, season)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownTeam) {
			writeError(w, r, http.StatusNotFound, err.Error(), logger)
			return
		}
		logger.Error("team games fetch failed", "err", err)
		writeError(w, r, http.StatusBadGateway, "schedule unavailable", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"season": season, "games": games}, logger)
}

// TeamNews returns a team's recent coverage.
func (h *Handler) TeamNews(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	abbr := chi.URLParam(r, "team")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer", logger)
			return
		}
		limit = parsed
	}

	articles, err := h.svc.TeamNews(r.Context(), abbr, limit)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownTeam) {
			writeError(w, r, http.StatusNotFound, err.Error(), logger)
			return
		}
		logger.Error("team news fetch failed", "err", err)
		writeError(w, r, http.StatusBadGateway, "news unavailable", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"articles": articles}, logger)
}

// UpcomingGames returns the undecided portion of the current slate.
func (h *Handler) UpcomingGames(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)

	games, err := h.svc.UpcomingGames(r.Context())
	if err != nil {
		logger.Error("upcoming games fetch failed", "err", err)
		writeError(w, r, http.StatusBadGateway, "slate unavailable", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"games": games}, logger)
}

// LiveGames returns the poller's latest snapshot without touching upstreams.
func (h *Handler) LiveGames(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	if h.live == nil {
		writeError(w, r, http.StatusNotFound, "live snapshot not enabled", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"updatedAt": h.live.UpdatedAt(),
		"games":     h.live.ListGames(),
	}, logger)
}

// CacheStats reports entry counts and age bounds per cache.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"caches": h.svc.CacheStats()}, loggerFromRequest(r, h.logger))
}

// CacheClear empties every pipeline cache.
func (h *Handler) CacheClear(w http.ResponseWriter, r *http.Request) {
	h.svc.CacheClear()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"}, loggerFromRequest(r, h.logger))
}

// CacheCleanup drops stale entries from every pipeline cache.
func (h *Handler) CacheCleanup(w http.ResponseWriter, r *http.Request) {
	removed := h.svc.CacheCleanup()
	writeJSON(w, http.StatusOK, map[string]any{"removed": removed}, loggerFromRequest(r, h.logger))
}
