// Package espn implements the primary statistics provider against ESPN's
// public site API. It serves three concerns: season schedules per team,
// the live league scoreboard, and team injury reports.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/providers"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches games, live scores, and injuries and maps them to domain
// models. Team references are normalized through the catalog so downstream
// consumers always see canonical names.
type Client struct {
	baseURL    string
	httpClient httpDoer
	catalog    *domain.Catalog
	now        func() time.Time
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config, catalog *domain.Catalog) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		catalog:    catalog,
		now:        time.Now,
	}
}

// FetchGames retrieves a team's schedule for a season.
func (c *Client) FetchGames(ctx context.Context, team domain.Team, season int) ([]domain.Game, error) {
	url := fmt.Sprintf("%s/teams/%s/schedule?season=%d", c.baseURL, strings.ToLower(team.Abbreviation), season)

	var payload scheduleResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(payload.Events))
	for _, event := range payload.Events {
		game, ok := c.mapEvent(event)
		if !ok {
			continue
		}
		games = append(games, game)
	}
	return games, nil
}

// FetchLiveScores retrieves the current league-wide scoreboard.
func (c *Client) FetchLiveScores(ctx context.Context) ([]domain.Game, error) {
	var payload scoreboardResponse
	if err := c.getJSON(ctx, c.baseURL+"/scoreboard", &payload); err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(payload.Events))
	for _, event := range payload.Events {
		game, ok := c.mapEvent(event)
		if !ok {
			continue
		}
		games = append(games, game)
	}
	return games, nil
}

// FetchInjuries retrieves a team's current injury report.
func (c *Client) FetchInjuries(ctx context.Context, team domain.Team) ([]domain.InjuredPlayer, error) {
	url := fmt.Sprintf("%s/teams/%s/injuries", c.baseURL, strings.ToLower(team.Abbreviation))

	var payload injuriesResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	var players []domain.InjuredPlayer
	for _, group := range payload.Injuries {
		for _, injury := range group.Injuries {
			players = append(players, mapInjury(injury))
		}
	}
	return players, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
