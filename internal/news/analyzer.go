// Package news reduces recent team coverage into a small signal for the
// predictor. Like the injury feed, news is advisory: fetch failures produce
// an empty signal, never an error.
package news

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/logging"
)

// DefaultWindow is the trailing coverage window used when none is given.
const DefaultWindow = 7 * 24 * time.Hour

// recentCutoff bounds how old an article may be and still count as "recent".
const recentCutoff = 48 * time.Hour

// ArticleSource is the slice of the data loader the analyzer needs.
type ArticleSource interface {
	LoadArticles(ctx context.Context, team domain.Team, from, to time.Time) ([]domain.Article, error)
}

// Signal is the reduced view of a team's recent coverage.
type Signal struct {
	Team         domain.Team `json:"team"`
	ArticleCount int         `json:"articleCount"`
	RecentCount  int         `json:"recentCount"`
	MostRecent   time.Time   `json:"mostRecent"`
	Sentiment    float64     `json:"sentiment"`
}

// Momentum folds sentiment and volume into a single value in [-1, 1]. Light
// coverage damps the sentiment so a lone headline cannot swing it.
func (s Signal) Momentum() float64 {
	if s.ArticleCount == 0 {
		return 0
	}
	volume := float64(s.ArticleCount) / 5.0
	if volume > 1.0 {
		volume = 1.0
	}
	return s.Sentiment * volume
}

// Analyzer builds Signals from a trailing article window.
type Analyzer struct {
	source ArticleSource
	logger *slog.Logger
	now    func() time.Time
}

func NewAnalyzer(source ArticleSource, logger *slog.Logger) *Analyzer {
	return &Analyzer{source: source, logger: logger, now: time.Now}
}

// Analyze fetches the team's coverage over the trailing window and reduces
// it. A non-positive window means DefaultWindow. A fetch failure is logged
// and returned alongside an empty signal so the caller can mark the signal
// absent without failing the prediction.
func (a *Analyzer) Analyze(ctx context.Context, team domain.Team, window time.Duration) (Signal, error) {
	if window <= 0 {
		window = DefaultWindow
	}
	to := a.now()
	from := to.Add(-window)

	signal := Signal{Team: team}

	articles, err := a.source.LoadArticles(ctx, team, from, to)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, a.logger), "news fetch failed",
			logging.FieldTeam, team.Abbreviation, "err", err)
		return signal, fmt.Errorf("news signal for %s: %w", team.Abbreviation, err)
	}

	var sentimentSum float64
	var scored int
	for _, article := range articles {
		signal.ArticleCount++
		if to.Sub(article.Published) <= recentCutoff {
			signal.RecentCount++
		}
		if article.Published.After(signal.MostRecent) {
			signal.MostRecent = article.Published
		}
		if score, ok := headlineSentiment(article.Title); ok {
			sentimentSum += score
			scored++
		}
	}
	if scored > 0 {
		signal.Sentiment = sentimentSum / float64(scored)
	}
	return signal, nil
}

var positiveTerms = []string{"win", "streak", "dominant", "return", "healthy", "surge", "clinch", "boost"}

var negativeTerms = []string{"injury", "injured", "loss", "losing", "out for", "benched", "struggle", "concern", "doubt", "setback"}

// headlineSentiment scores one headline in [-1, 1] by keyword balance. The
// second return is false when the headline carries no scored terms.
func headlineSentiment(title string) (float64, bool) {
	lower := strings.ToLower(title)
	var pos, neg int
	for _, term := range positiveTerms {
		if strings.Contains(lower, term) {
			pos++
		}
	}
	for _, term := range negativeTerms {
		if strings.Contains(lower, term) {
			neg++
		}
	}
	if pos+neg == 0 {
		return 0, false
	}
	return float64(pos-neg) / float64(pos+neg), true
}
