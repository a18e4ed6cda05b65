// Package odds caches the league-wide betting snapshot and resolves lines
// for individual games. The upstream returns every game in one call, so the
// cache holds a single entry with an hours-scale TTL.
package odds

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"nfl-prediction-service/internal/cache"
	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/logging"
	"nfl-prediction-service/internal/metrics"
	"nfl-prediction-service/internal/providers"
)

// snapshotKey is the single cache key for the league-wide snapshot.
const snapshotKey = "league"

// PlaceholderBookmaker labels odds the service made up because no market
// data was reachable. Clients key "is this a real line" off this value.
const PlaceholderBookmaker = "estimated (no market data)"

// PlaceholderOdds is the substitute line used when the market is dark. The
// odds slot is part of the response contract and is never left empty.
func PlaceholderOdds() domain.BettingOdds {
	return domain.BettingOdds{
		HomeMoneyline: -110,
		AwayMoneyline: -110,
		Bookmaker:     PlaceholderBookmaker,
	}
}

// Reconciler serves current betting lines from a cached league snapshot.
type Reconciler struct {
	source  providers.OddsProvider
	logger  *slog.Logger
	metrics *metrics.Recorder

	snapshot *cache.Cache[map[string]domain.BettingOdds]
	flights  *cache.FlightGroup[map[string]domain.BettingOdds]
}

func NewReconciler(source providers.OddsProvider, ttl time.Duration, logger *slog.Logger, rec *metrics.Recorder) *Reconciler {
	return &Reconciler{
		source:   source,
		logger:   logger,
		metrics:  rec,
		snapshot: cache.New[map[string]domain.BettingOdds]("odds", ttl),
		flights:  cache.NewFlightGroup[map[string]domain.BettingOdds](),
	}
}

// CurrentOdds returns the league snapshot keyed by "Away Name @ Home Name".
// The result is never nil: a total fetch failure yields an empty map and a
// warning, and callers substitute PlaceholderOdds per game.
func (r *Reconciler) CurrentOdds(ctx context.Context) map[string]domain.BettingOdds {
	if snapshot, ok := r.snapshot.Get(snapshotKey); ok {
		r.metrics.RecordCacheLookup(r.snapshot.Name(), true)
		return snapshot
	}
	r.metrics.RecordCacheLookup(r.snapshot.Name(), false)

	snapshot, err := r.flights.Do(snapshotKey, func() (map[string]domain.BettingOdds, error) {
		fetched, err := r.source.FetchOdds(ctx)
		if err != nil {
			return nil, err
		}
		if fetched == nil {
			fetched = map[string]domain.BettingOdds{}
		}
		r.snapshot.Set(snapshotKey, fetched)
		return fetched, nil
	})
	if err != nil {
		logging.Warn(logging.FromContext(ctx, r.logger), "odds fetch failed, continuing without market data", "err", err)
		return map[string]domain.BettingOdds{}
	}
	return snapshot
}

// OddsFor resolves the line for one game, falling back to PlaceholderOdds
// when the matchup is missing from the snapshot. A case- and
// whitespace-insensitive pass catches provider naming drift before the
// lookup degrades to a placeholder.
func (r *Reconciler) OddsFor(ctx context.Context, game domain.Game) domain.BettingOdds {
	snapshot := r.CurrentOdds(ctx)
	key := domain.MatchupKey(game.HomeTeam, game.AwayTeam)
	if line, ok := snapshot[key]; ok {
		return line
	}

	want := normalizeMatchup(key)
	for matchup, line := range snapshot {
		if normalizeMatchup(matchup) == want {
			return line
		}
	}
	return PlaceholderOdds()
}

func normalizeMatchup(key string) string {
	return strings.ToLower(strings.Join(strings.Fields(key), " "))
}

// CacheStats reports the snapshot cache state.
func (r *Reconciler) CacheStats() cache.Stats {
	return r.snapshot.Stats()
}

// CacheClear drops the snapshot.
func (r *Reconciler) CacheClear() {
	r.snapshot.Clear()
}

// CacheCleanup discards the snapshot if stale.
func (r *Reconciler) CacheCleanup() int {
	return r.snapshot.Cleanup()
}
