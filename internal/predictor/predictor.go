// Package predictor turns assembled game context into win-probability
// predictions. Strategies are interchangeable behind a single interface and
// selected by configuration.
package predictor

import (
	"context"
	"errors"
	"fmt"

	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/news"
)

// ErrInsufficientData marks a prediction that could not be produced from the
// available inputs.
var ErrInsufficientData = errors.New("insufficient data for prediction")

// ErrUnknownStrategy is returned when configuration names a strategy that
// does not exist.
var ErrUnknownStrategy = errors.New("unknown prediction strategy")

// InjuryInput is a typed present-or-absent injury report. Absent means the
// source failed or was never consulted, which strategies treat differently
// from an empty report.
type InjuryInput struct {
	Available bool
	Report    domain.TeamInjuryReport
}

// NewsInput is a typed present-or-absent news signal.
type NewsInput struct {
	Available bool
	Signal    news.Signal
}

// Context carries everything a strategy may consult for one prediction. The
// games list is the merged season history of both teams.
type Context struct {
	Games        []domain.Game
	HomeInjuries InjuryInput
	AwayInjuries InjuryInput
	HomeNews     NewsInput
	AwayNews     NewsInput
}

// Strategy produces a prediction for a prospective game.
type Strategy interface {
	Name() string
	Predict(ctx context.Context, game domain.Game, pctx Context) (domain.Prediction, error)
}

// Weights and constants shared by the heuristic strategies. Values tuned by
// eye against historical seasons, not fitted.
const (
	winRateWeight      = 0.4
	homeFieldAdvantage = 0.03
	injuryWeight       = 0.15
	newsWeight         = 0.05

	minProbability = 0.01
	maxProbability = 0.99

	confidenceFloor   = 0.3
	confidencePerGame = 0.04
	confidenceCeiling = 0.95
)

func clampProbability(p float64) float64 {
	if p < minProbability {
		return minProbability
	}
	if p > maxProbability {
		return maxProbability
	}
	return p
}

// sampleConfidence saturates with the combined number of completed games
// backing the call.
func sampleConfidence(combinedGames int) float64 {
	c := confidenceFloor + confidencePerGame*float64(combinedGames)
	if c > confidenceCeiling {
		return confidenceCeiling
	}
	return c
}

// records resolves both teams' season records from the merged game list.
func records(game domain.Game, games []domain.Game) (home, away domain.Record) {
	return domain.TeamRecord(game.HomeTeam.Abbreviation, games),
		domain.TeamRecord(game.AwayTeam.Abbreviation, games)
}

// ForName returns the configured strategy. The llm client may be nil unless
// name is "llm".
func ForName(name string, client CompletionClient) (Strategy, error) {
	switch name {
	case "baseline":
		return NewBaseline(), nil
	case "enhanced":
		return NewEnhanced(), nil
	case "llm":
		if client == nil {
			return nil, fmt.Errorf("llm strategy requires a completion client")
		}
		return NewLLM(client), nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: baseline, enhanced, llm)", ErrUnknownStrategy, name)
	}
}
