// Package testutil holds shared fakes for package tests.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"time"

	"nfl-prediction-service/internal/domain"
)

// SilentLogger returns a logger that discards everything.
func SilentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// FixedClock returns a clock pinned to the given instant.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// Team looks up a catalog team by abbreviation, failing loudly on typos.
func Team(abbr string) domain.Team {
	team, err := domain.NewCatalog().Lookup(abbr)
	if err != nil {
		panic(err)
	}
	return team
}

// Game builds a scheduled game between two catalog teams.
func Game(homeAbbr, awayAbbr string, season, week int, scheduled time.Time) domain.Game {
	home := Team(homeAbbr)
	away := Team(awayAbbr)
	return domain.Game{
		ID:        domain.GameID(season, week, home.Abbreviation, away.Abbreviation),
		Provider:  "test",
		HomeTeam:  home,
		AwayTeam:  away,
		Scheduled: scheduled,
		Week:      week,
		Season:    season,
	}
}

// CompletedGame builds a final game with the given score.
func CompletedGame(homeAbbr, awayAbbr string, season, week, homeScore, awayScore int, scheduled time.Time) domain.Game {
	game := Game(homeAbbr, awayAbbr, season, week, scheduled)
	outcome := domain.NewOutcome(homeScore, awayScore)
	game.Outcome = &outcome
	return game
}

// StubProvider implements providers.DataProvider with per-call hooks. A nil
// hook returns an empty result.
type StubProvider struct {
	GamesFn    func(ctx context.Context, team domain.Team, season int) ([]domain.Game, error)
	LiveFn     func(ctx context.Context) ([]domain.Game, error)
	ArticlesFn func(ctx context.Context, team domain.Team, from, to time.Time) ([]domain.Article, error)
	InjuriesFn func(ctx context.Context, team domain.Team) ([]domain.InjuredPlayer, error)
	OddsFn     func(ctx context.Context) (map[string]domain.BettingOdds, error)
}

func (s *StubProvider) FetchGames(ctx context.Context, team domain.Team, season int) ([]domain.Game, error) {
	if s.GamesFn == nil {
		return nil, nil
	}
	return s.GamesFn(ctx, team, season)
}

func (s *StubProvider) FetchLiveScores(ctx context.Context) ([]domain.Game, error) {
	if s.LiveFn == nil {
		return nil, nil
	}
	return s.LiveFn(ctx)
}

func (s *StubProvider) FetchArticles(ctx context.Context, team domain.Team, from, to time.Time) ([]domain.Article, error) {
	if s.ArticlesFn == nil {
		return nil, nil
	}
	return s.ArticlesFn(ctx, team, from, to)
}

func (s *StubProvider) FetchInjuries(ctx context.Context, team domain.Team) ([]domain.InjuredPlayer, error) {
	if s.InjuriesFn == nil {
		return nil, nil
	}
	return s.InjuriesFn(ctx, team)
}

func (s *StubProvider) FetchOdds(ctx context.Context) (map[string]domain.BettingOdds, error) {
	if s.OddsFn == nil {
		return map[string]domain.BettingOdds{}, nil
	}
	return s.OddsFn(ctx)
}
