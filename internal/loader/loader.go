// Package loader combines the provider chain with the source caches. Reads
// are cache-first, fetches are coalesced per key, and every provider in the
// chain is tried in order before a load is declared failed.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"nfl-prediction-service/internal/cache"
	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/logging"
	"nfl-prediction-service/internal/metrics"
	"nfl-prediction-service/internal/providers"
)

// Source is one named entry in the fallback chain. Capabilities are
// optional; the chain skips a source for any category it does not serve.
type Source struct {
	Name     string
	Games    providers.GameProvider
	Scores   providers.ScoreboardProvider
	Articles providers.ArticleProvider
}

// FullSource builds a Source from a provider implementing every loader
// capability, such as the fixture provider.
func FullSource(name string, p providers.DataProvider) Source {
	return Source{Name: name, Games: p, Scores: p, Articles: p}
}

// TTLs carries the cache lifetimes for each data class.
type TTLs struct {
	Games      time.Duration
	Articles   time.Duration
	LiveScores time.Duration
}

// Loader serves games, articles and live scores from TTL caches, falling
// back through the provider chain on a miss.
type Loader struct {
	sources []Source
	logger  *slog.Logger
	metrics *metrics.Recorder

	games    *cache.Cache[[]domain.Game]
	articles *cache.Cache[[]domain.Article]
	live     *cache.Cache[[]domain.Game]

	gameFlights    *cache.FlightGroup[[]domain.Game]
	articleFlights *cache.FlightGroup[[]domain.Article]
	liveFlights    *cache.FlightGroup[[]domain.Game]
}

// New builds a Loader over the given chain. The chain order is the fallback
// order; at least one source is required.
func New(sources []Source, ttls TTLs, logger *slog.Logger, rec *metrics.Recorder) (*Loader, error) {
	if len(sources) == 0 {
		return nil, errors.New("loader: at least one source is required")
	}
	return &Loader{
		sources: sources,
		logger:  logger,
		metrics: rec,

		games:    cache.New[[]domain.Game]("games", ttls.Games),
		articles: cache.New[[]domain.Article]("articles", ttls.Articles),
		live:     cache.New[[]domain.Game]("live_scores", ttls.LiveScores),

		gameFlights:    cache.NewFlightGroup[[]domain.Game](),
		articleFlights: cache.NewFlightGroup[[]domain.Article](),
		liveFlights:    cache.NewFlightGroup[[]domain.Game](),
	}, nil
}

// LoadGames returns the season schedule for a team, deduplicated by game ID.
func (l *Loader) LoadGames(ctx context.Context, team domain.Team, season int) ([]domain.Game, error) {
	key := fmt.Sprintf("games/%d/%s", season, team.Abbreviation)
	if games, ok := l.games.Get(key); ok {
		l.metrics.RecordCacheLookup(l.games.Name(), true)
		return games, nil
	}
	l.metrics.RecordCacheLookup(l.games.Name(), false)

	return l.gameFlights.Do(key, func() ([]domain.Game, error) {
		games, err := fetchFirst(ctx, l, key, func(src Source) ([]domain.Game, error, bool) {
			if src.Games == nil {
				return nil, nil, false
			}
			games, err := src.Games.FetchGames(ctx, team, season)
			return games, err, true
		})
		if err != nil {
			return nil, err
		}
		games = domain.MergeGames(games)
		l.games.Set(key, games)
		return games, nil
	})
}

// LoadArticles returns news coverage for a team within [from, to].
func (l *Loader) LoadArticles(ctx context.Context, team domain.Team, from, to time.Time) ([]domain.Article, error) {
	key := fmt.Sprintf("articles/%s/%s/%s", team.Abbreviation, from.Format(time.DateOnly), to.Format(time.DateOnly))
	if articles, ok := l.articles.Get(key); ok {
		l.metrics.RecordCacheLookup(l.articles.Name(), true)
		return articles, nil
	}
	l.metrics.RecordCacheLookup(l.articles.Name(), false)

	return l.articleFlights.Do(key, func() ([]domain.Article, error) {
		articles, err := fetchFirst(ctx, l, key, func(src Source) ([]domain.Article, error, bool) {
			if src.Articles == nil {
				return nil, nil, false
			}
			articles, err := src.Articles.FetchArticles(ctx, team, from, to)
			return articles, err, true
		})
		if err != nil {
			return nil, err
		}
		l.articles.Set(key, articles)
		return articles, nil
	})
}

// LoadLiveScores returns the current league-wide slate.
func (l *Loader) LoadLiveScores(ctx context.Context) ([]domain.Game, error) {
	const key = "live"
	if games, ok := l.live.Get(key); ok {
		l.metrics.RecordCacheLookup(l.live.Name(), true)
		return games, nil
	}
	l.metrics.RecordCacheLookup(l.live.Name(), false)

	return l.liveFlights.Do(key, func() ([]domain.Game, error) {
		games, err := fetchFirst(ctx, l, key, func(src Source) ([]domain.Game, error, bool) {
			if src.Scores == nil {
				return nil, nil, false
			}
			games, err := src.Scores.FetchLiveScores(ctx)
			return games, err, true
		})
		if err != nil {
			return nil, err
		}
		games = domain.MergeGames(games)
		l.live.Set(key, games)
		return games, nil
	})
}

// fetchFirst walks the chain in order and returns the first successful
// result. Sources not serving the category are skipped; failures short of
// the last capable source are logged and swallowed.
func fetchFirst[T any](ctx context.Context, l *Loader, key string, fetch func(Source) (T, error, bool)) (T, error) {
	var zero T
	var lastErr error
	for _, src := range l.sources {
		result, err, capable := fetch(src)
		if !capable {
			continue
		}
		if err == nil {
			return result, nil
		}
		lastErr = err
		logging.Warn(logging.FromContext(ctx, l.logger), "source fetch failed, trying next",
			logging.FieldProvider, src.Name, logging.FieldCacheKey, key, "err", err)
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
	}
	if lastErr == nil {
		return zero, fmt.Errorf("no source serves %s", key)
	}
	return zero, fmt.Errorf("all sources failed for %s: %w", key, lastErr)
}

// CacheStats reports a snapshot of every cache the loader owns.
func (l *Loader) CacheStats() []cache.Stats {
	return []cache.Stats{l.games.Stats(), l.articles.Stats(), l.live.Stats()}
}

// CacheClear empties every cache.
func (l *Loader) CacheClear() {
	l.games.Clear()
	l.articles.Clear()
	l.live.Clear()
}

// CacheCleanup discards stale entries and reports how many were removed.
func (l *Loader) CacheCleanup() int {
	return l.games.Cleanup() + l.articles.Cleanup() + l.live.Cleanup()
}
