package fixture

import (
	"context"
	"testing"
	"time"

	"nfl-prediction-service/internal/domain"
)

func newFixture() *Provider {
	p := New(domain.NewCatalog())
	p.now = func() time.Time {
		return time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
	}
	return p
}

func TestFetchGamesDeterministic(t *testing.T) {
	p := newFixture()
	team, _ := domain.NewCatalog().Lookup("KC")

	first, err := p.FetchGames(context.Background(), team, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := p.FetchGames(context.Background(), team, 2025)

	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("expected stable non-empty schedule, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("expected stable IDs at %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
		if first[i].Outcome != nil && second[i].Outcome != nil && *first[i].Outcome != *second[i].Outcome {
			t.Fatalf("expected stable outcomes at %d", i)
		}
	}
}

func TestFetchGamesCompletedPrefix(t *testing.T) {
	p := newFixture()
	team, _ := domain.NewCatalog().Lookup("BUF")

	games, err := p.FetchGames(context.Background(), team, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, g := range games {
		if g.Week <= completedWeeks && g.Outcome == nil {
			t.Fatalf("expected week %d to be completed", g.Week)
		}
		if g.Week > completedWeeks && g.Outcome != nil {
			t.Fatalf("expected week %d to be unplayed", g.Week)
		}
		if g.HomeTeam.Abbreviation != "BUF" && g.AwayTeam.Abbreviation != "BUF" {
			t.Fatalf("expected BUF in every game, got %+v", g)
		}
	}
}

func TestFetchLiveScoresCoversLeague(t *testing.T) {
	p := newFixture()

	games, err := p.FetchLiveScores(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 16 {
		t.Fatalf("expected 16 games for 32 teams, got %d", len(games))
	}
	for _, g := range games {
		if g.Outcome != nil {
			t.Fatalf("expected live games without outcomes, got %+v", g.Outcome)
		}
	}
}

func TestFetchInjuriesStable(t *testing.T) {
	p := newFixture()
	team, _ := domain.NewCatalog().Lookup("PHI")

	first, err := p.FetchInjuries(context.Background(), team)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := p.FetchInjuries(context.Background(), team)

	if len(first) != len(second) {
		t.Fatalf("expected stable injury list, got %d and %d", len(first), len(second))
	}
	if len(first) > 3 {
		t.Fatalf("expected at most 3 fixture injuries, got %d", len(first))
	}
}

func TestFetchArticlesWithinWindow(t *testing.T) {
	p := newFixture()
	team, _ := domain.NewCatalog().Lookup("DAL")

	to := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -7)

	articles, err := p.FetchArticles(context.Background(), team, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(articles))
	}
	for _, a := range articles {
		if a.Published.Before(from) || a.Published.After(to) {
			t.Fatalf("article %s published outside window: %v", a.ID, a.Published)
		}
	}
}

func TestFetchOddsPricesLiveSlate(t *testing.T) {
	p := newFixture()

	snapshot, err := p.FetchOdds(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshot) != 16 {
		t.Fatalf("expected 16 priced games, got %d", len(snapshot))
	}
	for key, odds := range snapshot {
		if odds.Bookmaker != "Fixture Book" {
			t.Fatalf("unexpected bookmaker for %s: %q", key, odds.Bookmaker)
		}
		if odds.HomeMoneyline > -100 && odds.HomeMoneyline < 100 {
			t.Fatalf("implausible moneyline %d for %s", odds.HomeMoneyline, key)
		}
	}
}
