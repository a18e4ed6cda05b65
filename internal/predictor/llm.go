package predictor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/llm"
)

// CompletionClient is the slice of the llm package this strategy needs.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// LLM delegates the prediction to an external text-generation model given
// the same assembled context as the heuristic strategies. Unlike those, a
// malformed model response is a hard error: there is no numeric fallback
// once the completion has been spent.
type LLM struct {
	client CompletionClient
}

func NewLLM(client CompletionClient) *LLM {
	return &LLM{client: client}
}

func (*LLM) Name() string { return "llm" }

// verdict is the JSON shape the model is instructed to return.
type verdict struct {
	HomeWinProbability float64  `json:"homeWinProbability"`
	Confidence         float64  `json:"confidence"`
	Reasoning          string   `json:"reasoning"`
	KeyFactors         []string `json:"keyFactors"`
}

func (l *LLM) Predict(ctx context.Context, game domain.Game, pctx Context) (domain.Prediction, error) {
	completion, err := l.client.Complete(ctx, buildPrompt(game, pctx))
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("llm completion: %w", err)
	}

	v, err := parseVerdict(completion)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("%w: %v", ErrInsufficientData, err)
	}

	factors := make([]domain.PredictionFactor, 0, len(v.KeyFactors))
	for _, f := range v.KeyFactors {
		factors = append(factors, domain.PredictionFactor{Name: f, Description: f})
	}

	// The model may answer 0.0 or 1.0; clamp into the same band the
	// heuristic strategies guarantee.
	homeProb := clampProbability(v.HomeWinProbability)

	return domain.Prediction{
		Game:               game,
		HomeWinProbability: homeProb,
		AwayWinProbability: 1 - homeProb,
		Confidence:         v.Confidence,
		Reasoning:          v.Reasoning,
		Factors:            factors,
	}, nil
}

func parseVerdict(completion string) (verdict, error) {
	raw, err := llm.ExtractJSON(completion)
	if err != nil {
		return verdict{}, err
	}
	var v verdict
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return verdict{}, fmt.Errorf("malformed verdict JSON: %w", err)
	}
	if v.HomeWinProbability < 0 || v.HomeWinProbability > 1 {
		return verdict{}, fmt.Errorf("homeWinProbability %f out of range", v.HomeWinProbability)
	}
	if v.Confidence < 0 || v.Confidence > 1 {
		return verdict{}, fmt.Errorf("confidence %f out of range", v.Confidence)
	}
	if v.Reasoning == "" {
		return verdict{}, fmt.Errorf("verdict missing reasoning")
	}
	return v, nil
}

func buildPrompt(game domain.Game, pctx Context) string {
	homeRec, awayRec := records(game, pctx.Games)

	var sb strings.Builder
	fmt.Fprintf(&sb, promptHeader, game.AwayTeam.Name, game.HomeTeam.Name, game.Season, game.Week)
	fmt.Fprintf(&sb, "\n%s record: %d-%d-%d\n%s record: %d-%d-%d\n",
		game.HomeTeam.Name, homeRec.Wins, homeRec.Losses, homeRec.Ties,
		game.AwayTeam.Name, awayRec.Wins, awayRec.Losses, awayRec.Ties)

	writeRecentGames(&sb, game.HomeTeam, pctx.Games)
	writeRecentGames(&sb, game.AwayTeam, pctx.Games)
	writeInjuries(&sb, game.HomeTeam, pctx.HomeInjuries)
	writeInjuries(&sb, game.AwayTeam, pctx.AwayInjuries)
	writeNews(&sb, game.HomeTeam, pctx.HomeNews)
	writeNews(&sb, game.AwayTeam, pctx.AwayNews)

	sb.WriteString(promptFooter)
	return sb.String()
}

const promptHeader = `You are an NFL analyst. Predict the outcome of %s at %s, season %d week %d, from the data below.`

const promptFooter = `
Respond with ONLY a JSON object in exactly this shape:
{"homeWinProbability": <0..1>, "confidence": <0..1>, "reasoning": "<2-3 sentences>", "keyFactors": ["<factor>", ...]}`

// maxRecentGames bounds how much schedule history goes into the prompt.
const maxRecentGames = 5

func writeRecentGames(sb *strings.Builder, team domain.Team, games []domain.Game) {
	var lines []string
	for _, g := range games {
		if !g.Completed() {
			continue
		}
		if g.HomeTeam.Abbreviation != team.Abbreviation && g.AwayTeam.Abbreviation != team.Abbreviation {
			continue
		}
		lines = append(lines, fmt.Sprintf("week %d: %s %d @ %s %d",
			g.Week, g.AwayTeam.Abbreviation, g.Outcome.AwayScore, g.HomeTeam.Abbreviation, g.Outcome.HomeScore))
	}
	if len(lines) == 0 {
		return
	}
	if len(lines) > maxRecentGames {
		lines = lines[len(lines)-maxRecentGames:]
	}
	fmt.Fprintf(sb, "\nRecent %s games:\n%s\n", team.Name, strings.Join(lines, "\n"))
}

func writeInjuries(sb *strings.Builder, team domain.Team, input InjuryInput) {
	if !input.Available || len(input.Report.Players) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s injuries:\n", team.Name)
	for _, p := range input.Report.Players {
		fmt.Fprintf(sb, "- %s (%s): %s\n", p.Name, p.Position, p.Status)
	}
}

func writeNews(sb *strings.Builder, team domain.Team, input NewsInput) {
	if !input.Available || input.Signal.ArticleCount == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s coverage: %d articles in the last week, sentiment %.2f\n",
		team.Name, input.Signal.ArticleCount, input.Signal.Sentiment)
}
