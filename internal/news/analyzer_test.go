package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/testutil"
)

type articleSourceFunc func(ctx context.Context, team domain.Team, from, to time.Time) ([]domain.Article, error)

func (f articleSourceFunc) LoadArticles(ctx context.Context, team domain.Team, from, to time.Time) ([]domain.Article, error) {
	return f(ctx, team, from, to)
}

func TestAnalyzeReducesWindow(t *testing.T) {
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
	source := articleSourceFunc(func(_ context.Context, _ domain.Team, from, to time.Time) ([]domain.Article, error) {
		if to.Sub(from) != DefaultWindow {
			t.Fatalf("expected default window, got %v", to.Sub(from))
		}
		return []domain.Article{
			{ID: "1", Title: "Chiefs extend win streak", Published: now.Add(-2 * time.Hour)},
			{ID: "2", Title: "Practice report", Published: now.Add(-3 * 24 * time.Hour)},
			{ID: "3", Title: "Injury concern for star corner", Published: now.Add(-20 * time.Hour)},
		}, nil
	})

	a := NewAnalyzer(source, testutil.SilentLogger())
	a.now = testutil.FixedClock(now)

	signal, err := a.Analyze(context.Background(), testutil.Team("KC"), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signal.ArticleCount != 3 {
		t.Fatalf("expected 3 articles counted, got %d", signal.ArticleCount)
	}
	if signal.RecentCount != 2 {
		t.Fatalf("expected 2 recent articles, got %d", signal.RecentCount)
	}
	if !signal.MostRecent.Equal(now.Add(-2 * time.Hour)) {
		t.Fatalf("unexpected most recent timestamp: %v", signal.MostRecent)
	}
	if signal.Sentiment != 0 {
		t.Fatalf("expected positive and negative headlines to cancel, got %f", signal.Sentiment)
	}
}

func TestAnalyzeEmptySignalOnFailure(t *testing.T) {
	source := articleSourceFunc(func(context.Context, domain.Team, time.Time, time.Time) ([]domain.Article, error) {
		return nil, errors.New("news feed down")
	})

	a := NewAnalyzer(source, testutil.SilentLogger())

	signal, err := a.Analyze(context.Background(), testutil.Team("DET"), time.Hour)
	if err == nil {
		t.Fatal("expected error so caller can mark the signal absent")
	}
	if signal.ArticleCount != 0 || signal.Sentiment != 0 {
		t.Fatalf("expected empty signal, got %+v", signal)
	}
	if signal.Momentum() != 0 {
		t.Fatalf("expected zero momentum, got %f", signal.Momentum())
	}
}

func TestMomentumDampedByVolume(t *testing.T) {
	thin := Signal{ArticleCount: 1, Sentiment: 1}
	heavy := Signal{ArticleCount: 10, Sentiment: 1}

	if thin.Momentum() >= heavy.Momentum() {
		t.Fatalf("expected heavier coverage to carry more momentum: %f vs %f", thin.Momentum(), heavy.Momentum())
	}
	if heavy.Momentum() != 1 {
		t.Fatalf("expected saturated volume to pass sentiment through, got %f", heavy.Momentum())
	}
}

func TestHeadlineSentiment(t *testing.T) {
	if score, ok := headlineSentiment("Quarterback out for season after setback"); !ok || score >= 0 {
		t.Fatalf("expected negative score, got %f ok=%v", score, ok)
	}
	if score, ok := headlineSentiment("Team clinches division with dominant win"); !ok || score <= 0 {
		t.Fatalf("expected positive score, got %f ok=%v", score, ok)
	}
	if _, ok := headlineSentiment("Midweek practice notes"); ok {
		t.Fatal("expected neutral headline to be unscored")
	}
}
