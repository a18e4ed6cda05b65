// Package oddsapi implements the betting-market provider against a
// the-odds-api-style endpoint. One call returns the entire league's
// current lines, keyed downstream as "Away Name @ Home Name".
package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/providers"
)

// ProviderName identifies this client in logs and metrics.
const ProviderName = "oddsapi"

const (
	defaultBaseURL     = "https://api.the-odds-api.com/v4"
	defaultHTTPTimeout = 15 * time.Second
	sportKey           = "americanfootball_nfl"
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

// Client fetches the league odds snapshot.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs an odds client.
func NewClient(cfg Config) *Client {
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
	}
}

type eventResponse struct {
	HomeTeam   string              `json:"home_team"`
	AwayTeam   string              `json:"away_team"`
	Bookmakers []bookmakerResponse `json:"bookmakers"`
}

type bookmakerResponse struct {
	Title   string           `json:"title"`
	Markets []marketResponse `json:"markets"`
}

type marketResponse struct {
	Key      string            `json:"key"`
	Outcomes []outcomeResponse `json:"outcomes"`
}

type outcomeResponse struct {
	Name  string  `json:"name"`
	Price int     `json:"price"`
	Point float64 `json:"point"`
}

// FetchOdds retrieves current lines for every game in one call.
func (c *Client) FetchOdds(ctx context.Context) (map[string]domain.BettingOdds, error) {
	endpoint := fmt.Sprintf("%s/sports/%s/odds?%s", c.baseURL, sportKey, url.Values{
		"regions":    []string{"us"},
		"markets":    []string{"h2h,spreads,totals"},
		"oddsFormat": []string{"american"},
		"apiKey":     []string{c.apiKey},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
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
		return nil, fmt.Errorf("oddsapi: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var events []eventResponse
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, err
	}

	snapshot := make(map[string]domain.BettingOdds, len(events))
	for _, event := range events {
		odds, ok := mapEvent(event)
		if !ok {
			continue
		}
		key := fmt.Sprintf("%s @ %s", event.AwayTeam, event.HomeTeam)
		snapshot[key] = odds
	}
	return snapshot, nil
}

// mapEvent flattens the first bookmaker carrying a moneyline market.
// Events without any h2h market are skipped; a spread or total alone is
// not enough to price a winner.
func mapEvent(event eventResponse) (domain.BettingOdds, bool) {
	for _, bookmaker := range event.Bookmakers {
		odds := domain.BettingOdds{Bookmaker: bookmaker.Title}
		priced := false

		for _, market := range bookmaker.Markets {
			switch market.Key {
			case "h2h":
				for _, outcome := range market.Outcomes {
					switch outcome.Name {
					case event.HomeTeam:
						odds.HomeMoneyline = outcome.Price
						priced = true
					case event.AwayTeam:
						odds.AwayMoneyline = outcome.Price
					}
				}
			case "spreads":
				for _, outcome := range market.Outcomes {
					if outcome.Name == event.HomeTeam {
						odds.Spread = outcome.Point
					}
				}
			case "totals":
				if len(market.Outcomes) > 0 {
					odds.Total = market.Outcomes[0].Point
				}
			}
		}

		if priced {
			return odds, true
		}
	}
	return domain.BettingOdds{}, false
}
