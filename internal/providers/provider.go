// Package providers defines how upstream data is fetched and normalized.
// Each capability is its own small interface so data sources can implement
// only what they actually serve, and decorators can wrap one concern at a
// time.
package providers

import (
	"context"
	"time"

	"nfl-prediction-service/internal/domain"
)

// GameProvider fetches a team's games for a season, normalized to the
// domain shape.
type GameProvider interface {
	FetchGames(ctx context.Context, team domain.Team, season int) ([]domain.Game, error)
}

// ScoreboardProvider fetches the league-wide current scoreboard.
type ScoreboardProvider interface {
	FetchLiveScores(ctx context.Context) ([]domain.Game, error)
}

// ArticleProvider fetches news articles mentioning a team within a window.
type ArticleProvider interface {
	FetchArticles(ctx context.Context, team domain.Team, from, to time.Time) ([]domain.Article, error)
}

// InjuryProvider fetches a team's raw injury list.
type InjuryProvider interface {
	FetchInjuries(ctx context.Context, team domain.Team) ([]domain.InjuredPlayer, error)
}

// OddsProvider fetches the full league odds snapshot in one call, keyed by
// matchup ("Away Name @ Home Name").
type OddsProvider interface {
	FetchOdds(ctx context.Context) (map[string]domain.BettingOdds, error)
}

// DataProvider combines every provider capability; the fixture source
// implements all of them.
type DataProvider interface {
	GameProvider
	ScoreboardProvider
	ArticleProvider
	InjuryProvider
	OddsProvider
}
