// Package sportsdata implements the secondary statistics provider. It sits
// behind the primary in the loader's fallback chain, so it only needs the
// games concern.
package sportsdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/providers"
)

// ProviderName identifies this client in logs, metrics, and game records.
const ProviderName = "sportsdata"

const (
	defaultBaseURL     = "https://api.sportsdata.io/v3/nfl"
	defaultHTTPTimeout = 10 * time.Second
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches season scores and maps them to domain games.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	catalog    *domain.Catalog
}

// NewClient constructs a sportsdata client.
func NewClient(cfg Config, catalog *domain.Catalog) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := httpDoer(cfg.HTTPClient)
	if cfg.HTTPClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		catalog:    catalog,
	}
}

type gameRow struct {
	Week      int    `json:"Week"`
	Season    int    `json:"Season"`
	Date      string `json:"Date"`
	HomeTeam  string `json:"HomeTeam"`
	AwayTeam  string `json:"AwayTeam"`
	HomeScore *int   `json:"HomeScore"`
	AwayScore *int   `json:"AwayScore"`
	Status    string `json:"Status"`
}

// FetchGames retrieves the full season's scores and filters to the team.
// The upstream returns the whole league in one call, so filtering is local.
func (c *Client) FetchGames(ctx context.Context, team domain.Team, season int) ([]domain.Game, error) {
	url := fmt.Sprintf("%s/scores/json/Games/%d", c.baseURL, season)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{Provider: ProviderName, StatusCode: resp.StatusCode}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("sportsdata: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var rows []gameRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, err
	}

	var games []domain.Game
	for _, row := range rows {
		if row.HomeTeam != team.Abbreviation && row.AwayTeam != team.Abbreviation {
			continue
		}
		games = append(games, c.mapRow(row))
	}
	return games, nil
}

func (c *Client) mapRow(row gameRow) domain.Game {
	game := domain.Game{
		ID:        domain.GameID(row.Season, row.Week, row.HomeTeam, row.AwayTeam),
		Provider:  ProviderName,
		HomeTeam:  c.resolveTeam(row.HomeTeam),
		AwayTeam:  c.resolveTeam(row.AwayTeam),
		Scheduled: parseDate(row.Date),
		Week:      row.Week,
		Season:    row.Season,
	}

	if strings.EqualFold(row.Status, "Final") && row.HomeScore != nil && row.AwayScore != nil {
		outcome := domain.NewOutcome(*row.HomeScore, *row.AwayScore)
		game.Outcome = &outcome
	}
	return game
}

func (c *Client) resolveTeam(abbr string) domain.Team {
	if c.catalog != nil {
		if team, err := c.catalog.Lookup(abbr); err == nil {
			return team
		}
	}
	return domain.Team{Abbreviation: abbr, Name: abbr}
}

func parseDate(raw string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
