package espn

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestClient(rt roundTripperFunc) *Client {
	return NewClient(Config{
		BaseURL:    "http://espn.test",
		HTTPClient: &http.Client{Transport: rt},
	}, domain.NewCatalog())
}

const scheduleBody = `{
	"events": [
		{
			"id": "401001",
			"date": "2025-09-07T17:00Z",
			"week": { "number": 1 },
			"season": { "year": 2025 },
			"competitions": [
				{
					"competitors": [
						{ "homeAway": "home", "team": { "abbreviation": "KC", "displayName": "Kansas City Chiefs" }, "score": "27" },
						{ "homeAway": "away", "team": { "abbreviation": "BUF", "displayName": "Buffalo Bills" }, "score": "20" }
					],
					"status": { "type": { "completed": true } }
				}
			]
		},
		{
			"id": "401002",
			"date": "2025-09-14T17:00Z",
			"week": { "number": 2 },
			"season": { "year": 2025 },
			"competitions": [
				{
					"competitors": [
						{ "homeAway": "home", "team": { "abbreviation": "DEN", "displayName": "Denver Broncos" }, "score": "" },
						{ "homeAway": "away", "team": { "abbreviation": "KC", "displayName": "Kansas City Chiefs" }, "score": "" }
					],
					"status": { "type": { "completed": false } }
				}
			]
		}
	]
}`

func TestFetchGamesMapsSchedule(t *testing.T) {
	var capturedPath string
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		return jsonResponse(http.StatusOK, scheduleBody), nil
	})

	team, _ := domain.NewCatalog().Lookup("KC")
	games, err := client.FetchGames(context.Background(), team, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedPath != "/teams/kc/schedule" {
		t.Fatalf("unexpected path %s", capturedPath)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}

	first := games[0]
	if first.Provider != ProviderName {
		t.Fatalf("expected provider %s, got %s", ProviderName, first.Provider)
	}
	if first.HomeTeam.Name != "Kansas City Chiefs" || first.AwayTeam.Abbreviation != "BUF" {
		t.Fatalf("unexpected teams %+v vs %+v", first.HomeTeam, first.AwayTeam)
	}
	if first.Outcome == nil || first.Outcome.Winner != domain.WinnerHome {
		t.Fatalf("expected completed home win, got %+v", first.Outcome)
	}
	if first.Week != 1 || first.Season != 2025 {
		t.Fatalf("unexpected week/season %d/%d", first.Week, first.Season)
	}
	if first.ID != domain.GameID(2025, 1, "KC", "BUF") {
		t.Fatalf("expected deterministic game ID, got %s", first.ID)
	}

	if games[1].Outcome != nil {
		t.Fatalf("expected scheduled game without outcome, got %+v", games[1].Outcome)
	}
}

func TestFetchGamesSkipsMalformedEvents(t *testing.T) {
	body := `{"events": [ { "id": "bad", "competitions": [ { "competitors": [] } ] } ]}`
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, body), nil
	})

	games, err := client.FetchGames(context.Background(), domain.Team{Abbreviation: "KC"}, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected malformed event to be skipped, got %d games", len(games))
	}
}

func TestFetchGamesSurfacesUpstreamError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, "oops"), nil
	})

	if _, err := client.FetchGames(context.Background(), domain.Team{Abbreviation: "KC"}, 2025); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestFetchGamesRateLimit(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "")
		resp.Header.Set("Retry-After", "30")
		return resp, nil
	})

	_, err := client.FetchGames(context.Background(), domain.Team{Abbreviation: "KC"}, 2025)
	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rlErr.RetryAfter != 30*time.Second {
		t.Fatalf("expected retry-after 30s, got %s", rlErr.RetryAfter)
	}
}

func TestFetchLiveScores(t *testing.T) {
	var capturedPath string
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		return jsonResponse(http.StatusOK, scheduleBody), nil
	})

	games, err := client.FetchLiveScores(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedPath != "/scoreboard" {
		t.Fatalf("unexpected path %s", capturedPath)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
}

func TestFetchInjuries(t *testing.T) {
	body := `{
		"injuries": [
			{
				"injuries": [
					{
						"status": "Out",
						"athlete": { "displayName": "Pat Starr", "position": { "abbreviation": "QB" } },
						"details": { "detail": "Ankle" }
					},
					{
						"status": "Questionable",
						"athlete": { "displayName": "Sam Fields", "position": { "abbreviation": "WR" } },
						"details": { "detail": "Hamstring" }
					}
				]
			}
		]
	}`
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/teams/kc/injuries" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, body), nil
	})

	team, _ := domain.NewCatalog().Lookup("KC")
	players, err := client.FetchInjuries(context.Background(), team)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 injured players, got %d", len(players))
	}
	if players[0].Status != domain.StatusOut || players[0].Position != "QB" {
		t.Fatalf("unexpected first player %+v", players[0])
	}
	if players[1].Description != "Hamstring" {
		t.Fatalf("unexpected description %q", players[1].Description)
	}
}

func TestTransportError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	if _, err := client.FetchLiveScores(context.Background()); err == nil {
		t.Fatal("expected transport error to surface")
	}
}
