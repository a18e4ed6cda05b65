// Package app exposes the prediction pipeline as a single service facade.
// Dependencies are injected explicitly so tests can swap any collaborator.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"nfl-prediction-service/internal/cache"
	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/logging"
	"nfl-prediction-service/internal/metrics"
	"nfl-prediction-service/internal/news"
	"nfl-prediction-service/internal/predictor"
)

// Defaults applied when a prediction request omits optional fields. Chosen
// so a minimal request never fails validation.
const (
	DefaultWeek     = 13
	defaultLeadTime = 7 * 24 * time.Hour
	defaultNewsMax  = 10
)

// GameLoader is the loader surface the service consumes.
type GameLoader interface {
	LoadGames(ctx context.Context, team domain.Team, season int) ([]domain.Game, error)
	LoadArticles(ctx context.Context, team domain.Team, from, to time.Time) ([]domain.Article, error)
	LoadLiveScores(ctx context.Context) ([]domain.Game, error)
	CacheStats() []cache.Stats
	CacheClear()
	CacheCleanup() int
}

// InjuryReporter produces a team's current injury report.
type InjuryReporter interface {
	Report(ctx context.Context, team domain.Team) (domain.TeamInjuryReport, error)
}

// NewsAnalyzer reduces a team's recent coverage to a signal.
type NewsAnalyzer interface {
	Analyze(ctx context.Context, team domain.Team, window time.Duration) (news.Signal, error)
}

// OddsSource resolves current betting lines.
type OddsSource interface {
	CurrentOdds(ctx context.Context) map[string]domain.BettingOdds
	OddsFor(ctx context.Context, game domain.Game) domain.BettingOdds
	CacheStats() cache.Stats
	CacheClear()
	CacheCleanup() int
}

// Service is the prediction pipeline facade.
type Service struct {
	loader   GameLoader
	injuries InjuryReporter
	news     NewsAnalyzer
	odds     OddsSource
	strategy predictor.Strategy
	catalog  *domain.Catalog
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// Deps bundles the service's collaborators.
type Deps struct {
	Loader   GameLoader
	Injuries InjuryReporter
	News     NewsAnalyzer
	Odds     OddsSource
	Strategy predictor.Strategy
	Catalog  *domain.Catalog
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
}

func NewService(deps Deps) *Service {
	return &Service{
		loader:   deps.Loader,
		injuries: deps.Injuries,
		news:     deps.News,
		odds:     deps.Odds,
		strategy: deps.Strategy,
		catalog:  deps.Catalog,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		now:      time.Now,
	}
}

// PredictOptions carries the optional fields of a prediction request. Zero
// values receive deterministic defaults.
type PredictOptions struct {
	Week      int
	Scheduled time.Time
}

// Predict assembles the pipeline context for a prospective game and runs
// the configured strategy. Both teams' season histories load concurrently;
// injury and news inputs degrade to absent on failure; odds are always
// attached, substituting a placeholder when the market is dark.
func (s *Service) Predict(ctx context.Context, homeAbbr, awayAbbr string, season int, opts PredictOptions) (domain.Prediction, error) {
	home, err := s.catalog.Lookup(homeAbbr)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("home team: %w", err)
	}
	away, err := s.catalog.Lookup(awayAbbr)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("away team: %w", err)
	}

	week := opts.Week
	if week <= 0 {
		week = DefaultWeek
	}
	scheduled := opts.Scheduled
	if scheduled.IsZero() {
		scheduled = s.now().Add(defaultLeadTime)
	}

	game := domain.Game{
		ID:        domain.GameID(season, week, home.Abbreviation, away.Abbreviation),
		HomeTeam:  home,
		AwayTeam:  away,
		Scheduled: scheduled,
		Week:      week,
		Season:    season,
	}

	homeGames, awayGames, err := s.loadHistories(ctx, home, away, season)
	if err != nil {
		return domain.Prediction{}, err
	}

	pctx := predictor.Context{
		Games:        domain.MergeGames(homeGames, awayGames),
		HomeInjuries: s.injuryInput(ctx, home),
		AwayInjuries: s.injuryInput(ctx, away),
		HomeNews:     s.newsInput(ctx, home),
		AwayNews:     s.newsInput(ctx, away),
	}

	start := time.Now()
	prediction, err := s.strategy.Predict(ctx, game, pctx)
	s.metrics.RecordPrediction(s.strategy.Name(), time.Since(start), err)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("strategy %s: %w", s.strategy.Name(), err)
	}

	line := s.odds.OddsFor(ctx, game)
	prediction.Odds = &line

	logging.Info(logging.FromContext(ctx, s.logger), "prediction produced",
		logging.FieldStrategy, s.strategy.Name(),
		logging.FieldTeam, home.Abbreviation,
		"opponent", away.Abbreviation,
		"home_win_probability", prediction.HomeWinProbability)
	return prediction, nil
}

type historyResult struct {
	games []domain.Game
	err   error
}

// loadHistories fetches both teams' seasons concurrently and joins them.
func (s *Service) loadHistories(ctx context.Context, home, away domain.Team, season int) ([]domain.Game, []domain.Game, error) {
	homeCh := make(chan historyResult, 1)
	awayCh := make(chan historyResult, 1)

	go func() {
		games, err := s.loader.LoadGames(ctx, home, season)
		homeCh <- historyResult{games: games, err: err}
	}()
	go func() {
		games, err := s.loader.LoadGames(ctx, away, season)
		awayCh <- historyResult{games: games, err: err}
	}()

	homeRes := <-homeCh
	awayRes := <-awayCh
	if homeRes.err != nil {
		return nil, nil, fmt.Errorf("load %s games: %w", home.Abbreviation, homeRes.err)
	}
	if awayRes.err != nil {
		return nil, nil, fmt.Errorf("load %s games: %w", away.Abbreviation, awayRes.err)
	}
	return homeRes.games, awayRes.games, nil
}

func (s *Service) injuryInput(ctx context.Context, team domain.Team) predictor.InjuryInput {
	report, err := s.injuries.Report(ctx, team)
	if err != nil {
		return predictor.InjuryInput{}
	}
	return predictor.InjuryInput{Available: true, Report: report}
}

func (s *Service) newsInput(ctx context.Context, team domain.Team) predictor.NewsInput {
	signal, err := s.news.Analyze(ctx, team, news.DefaultWindow)
	if err != nil {
		return predictor.NewsInput{}
	}
	return predictor.NewsInput{Available: true, Signal: signal}
}

// TeamGames returns a team's season schedule.
func (s *Service) TeamGames(ctx context.Context, abbr string, season int) ([]domain.Game, error) {
	team, err := s.catalog.Lookup(abbr)
	if err != nil {
		return nil, err
	}
	return s.loader.LoadGames(ctx, team, season)
}

// TeamNews returns a team's recent coverage, newest first, capped at limit.
func (s *Service) TeamNews(ctx context.Context, abbr string, limit int) ([]domain.Article, error) {
	team, err := s.catalog.Lookup(abbr)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultNewsMax
	}

	to := s.now()
	articles, err := s.loader.LoadArticles(ctx, team, to.Add(-news.DefaultWindow), to)
	if err != nil {
		return nil, err
	}

	sorted := make([]domain.Article, len(articles))
	copy(sorted, articles)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Published.After(sorted[j].Published)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

// UpcomingGames returns the current slate filtered to games still to be
// decided, sorted by kickoff.
func (s *Service) UpcomingGames(ctx context.Context) ([]domain.Game, error) {
	games, err := s.loader.LoadLiveScores(ctx)
	if err != nil {
		return nil, err
	}
	return domain.UpcomingGames(games, s.now()), nil
}

// CacheStats reports every pipeline cache.
func (s *Service) CacheStats() []cache.Stats {
	stats := s.loader.CacheStats()
	return append(stats, s.odds.CacheStats())
}

// CacheClear empties every pipeline cache.
func (s *Service) CacheClear() {
	s.loader.CacheClear()
	s.odds.CacheClear()
}

// CacheCleanup drops stale entries across all caches, returning the number
// removed.
func (s *Service) CacheCleanup() int {
	return s.loader.CacheCleanup() + s.odds.CacheCleanup()
}
