package predictor

import (
	"context"
	"fmt"

	"nfl-prediction-service/internal/domain"
)

// Baseline predicts from season win rates and home-field advantage alone.
type Baseline struct{}

func NewBaseline() *Baseline {
	return &Baseline{}
}

func (*Baseline) Name() string { return "baseline" }

func (b *Baseline) Predict(_ context.Context, game domain.Game, pctx Context) (domain.Prediction, error) {
	homeRec, awayRec := records(game, pctx.Games)

	homeProb := clampProbability(0.5 + (homeRec.WinRate()-awayRec.WinRate())*winRateWeight + homeFieldAdvantage)
	combined := homeRec.Games() + awayRec.Games()

	return domain.Prediction{
		Game:               game,
		HomeWinProbability: homeProb,
		AwayWinProbability: 1 - homeProb,
		Confidence:         sampleConfidence(combined),
		Reasoning:          baselineReasoning(game, homeRec, awayRec, homeProb),
	}, nil
}

func baselineReasoning(game domain.Game, homeRec, awayRec domain.Record, homeProb float64) string {
	return fmt.Sprintf("%s (%d-%d-%d) host %s (%d-%d-%d); season win rates plus home-field advantage give the home side a %.0f%% chance.",
		game.HomeTeam.Name, homeRec.Wins, homeRec.Losses, homeRec.Ties,
		game.AwayTeam.Name, awayRec.Wins, awayRec.Losses, awayRec.Ties,
		homeProb*100)
}
