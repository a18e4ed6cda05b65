package predictor

import (
	"context"
	"fmt"
	"strings"

	"nfl-prediction-service/internal/domain"
)

// Enhanced layers injury and news adjustments onto the baseline win-rate
// model. Every adjustment it applies is reported as a named factor so
// clients can show why the model leans a given way.
type Enhanced struct{}

func NewEnhanced() *Enhanced {
	return &Enhanced{}
}

func (*Enhanced) Name() string { return "enhanced" }

func (e *Enhanced) Predict(_ context.Context, game domain.Game, pctx Context) (domain.Prediction, error) {
	homeRec, awayRec := records(game, pctx.Games)

	rateGap := (homeRec.WinRate() - awayRec.WinRate()) * winRateWeight
	factors := []domain.PredictionFactor{
		{
			Name:   "win rate gap",
			Impact: rateGap,
			Description: fmt.Sprintf("%s are %d-%d-%d, %s are %d-%d-%d",
				game.HomeTeam.Name, homeRec.Wins, homeRec.Losses, homeRec.Ties,
				game.AwayTeam.Name, awayRec.Wins, awayRec.Losses, awayRec.Ties),
		},
		{
			Name:        "home field",
			Impact:      homeFieldAdvantage,
			Description: fmt.Sprintf("%s host the matchup", game.HomeTeam.Name),
		},
	}

	raw := 0.5 + rateGap + homeFieldAdvantage

	if pctx.HomeInjuries.Available && pctx.AwayInjuries.Available {
		homeImpact := pctx.HomeInjuries.Report.TotalImpact()
		awayImpact := pctx.AwayInjuries.Report.TotalImpact()
		delta := (awayImpact - homeImpact) * injuryWeight
		raw += delta
		factors = append(factors, domain.PredictionFactor{
			Name:        "injury differential",
			Impact:      delta,
			Description: injuryDescription(game, homeImpact, awayImpact),
		})
	}

	if pctx.HomeNews.Available && pctx.AwayNews.Available {
		delta := (pctx.HomeNews.Signal.Momentum() - pctx.AwayNews.Signal.Momentum()) * newsWeight
		raw += delta
		factors = append(factors, domain.PredictionFactor{
			Name:   "news momentum",
			Impact: delta,
			Description: fmt.Sprintf("recent coverage: %d articles on %s, %d on %s",
				pctx.HomeNews.Signal.ArticleCount, game.HomeTeam.Name,
				pctx.AwayNews.Signal.ArticleCount, game.AwayTeam.Name),
		})
	}

	homeProb := clampProbability(raw)
	combined := homeRec.Games() + awayRec.Games()

	return domain.Prediction{
		Game:               game,
		HomeWinProbability: homeProb,
		AwayWinProbability: 1 - homeProb,
		Confidence:         sampleConfidence(combined),
		Reasoning:          enhancedReasoning(game, homeProb, factors),
		Factors:            factors,
	}, nil
}

func injuryDescription(game domain.Game, homeImpact, awayImpact float64) string {
	switch {
	case homeImpact > awayImpact:
		return fmt.Sprintf("%s carry the heavier injury burden (%.2f vs %.2f)", game.HomeTeam.Name, homeImpact, awayImpact)
	case awayImpact > homeImpact:
		return fmt.Sprintf("%s carry the heavier injury burden (%.2f vs %.2f)", game.AwayTeam.Name, awayImpact, homeImpact)
	default:
		return "both sides report comparable injury impact"
	}
}

func enhancedReasoning(game domain.Game, homeProb float64, factors []domain.PredictionFactor) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s have a %.0f%% chance at home against %s.",
		game.HomeTeam.Name, homeProb*100, game.AwayTeam.Name)
	for _, f := range factors {
		if f.Impact == 0 {
			continue
		}
		fmt.Fprintf(&sb, " %s: %+.3f (%s).", f.Name, f.Impact, f.Description)
	}
	return sb.String()
}
