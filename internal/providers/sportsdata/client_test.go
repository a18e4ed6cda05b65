package sportsdata

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"nfl-prediction-service/internal/domain"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

const seasonBody = `[
	{ "Week": 1, "Season": 2025, "Date": "2025-09-07T13:00:00", "HomeTeam": "KC", "AwayTeam": "BUF", "HomeScore": 27, "AwayScore": 20, "Status": "Final" },
	{ "Week": 1, "Season": 2025, "Date": "2025-09-07T16:25:00", "HomeTeam": "DAL", "AwayTeam": "PHI", "HomeScore": 17, "AwayScore": 24, "Status": "Final" },
	{ "Week": 2, "Season": 2025, "Date": "2025-09-14T13:00:00", "HomeTeam": "DEN", "AwayTeam": "KC", "HomeScore": null, "AwayScore": null, "Status": "Scheduled" }
]`

func TestFetchGamesFiltersToTeam(t *testing.T) {
	var capturedKey string
	client := NewClient(Config{
		BaseURL: "http://sportsdata.test",
		APIKey:  "secret",
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			capturedKey = req.Header.Get("Ocp-Apim-Subscription-Key")
			if req.URL.Path != "/scores/json/Games/2025" {
				t.Fatalf("unexpected path %s", req.URL.Path)
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(seasonBody)),
			}, nil
		})},
	}, domain.NewCatalog())

	team, _ := domain.NewCatalog().Lookup("KC")
	games, err := client.FetchGames(context.Background(), team, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedKey != "secret" {
		t.Fatalf("expected api key header, got %q", capturedKey)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 KC games, got %d", len(games))
	}

	final := games[0]
	if final.Outcome == nil || final.Outcome.Winner != domain.WinnerHome {
		t.Fatalf("expected final home win, got %+v", final.Outcome)
	}
	if final.HomeTeam.Name != "Kansas City Chiefs" {
		t.Fatalf("expected catalog name, got %q", final.HomeTeam.Name)
	}

	if games[1].Outcome != nil {
		t.Fatalf("expected scheduled game without outcome")
	}
}

func TestFetchGamesSameIDAsPrimaryProvider(t *testing.T) {
	client := NewClient(Config{
		BaseURL: "http://sportsdata.test",
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(seasonBody)),
			}, nil
		})},
	}, domain.NewCatalog())

	team, _ := domain.NewCatalog().Lookup("KC")
	games, err := client.FetchGames(context.Background(), team, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Identity is provider-neutral so fallback data dedups against primary data.
	if games[0].ID != domain.GameID(2025, 1, "KC", "BUF") {
		t.Fatalf("expected deterministic ID, got %s", games[0].ID)
	}
}

func TestFetchGamesUpstreamError(t *testing.T) {
	client := NewClient(Config{
		BaseURL: "http://sportsdata.test",
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusBadGateway,
				Body:       io.NopCloser(strings.NewReader("bad gateway")),
			}, nil
		})},
	}, domain.NewCatalog())

	if _, err := client.FetchGames(context.Background(), domain.Team{Abbreviation: "KC"}, 2025); err == nil {
		t.Fatal("expected error on 502")
	}
}
