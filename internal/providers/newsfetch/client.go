// Package newsfetch implements the article provider against a NewsAPI-style
// endpoint. Articles feed the news analyzer; the pipeline only needs
// headline-level metadata.
package newsfetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/providers"
)

// ProviderName identifies this client in logs and metrics.
const ProviderName = "newsfetch"

const (
	defaultBaseURL     = "https://newsapi.org/v2"
	defaultHTTPTimeout = 10 * time.Second
	defaultPageSize    = 50
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

// Client fetches articles mentioning a team within a date window.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a news client.
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

type articlesResponse struct {
	Status   string            `json:"status"`
	Articles []articleResponse `json:"articles"`
}

type articleResponse struct {
	Title       string         `json:"title"`
	URL         string         `json:"url"`
	PublishedAt string         `json:"publishedAt"`
	Source      sourceResponse `json:"source"`
}

type sourceResponse struct {
	Name string `json:"name"`
}

// articleNamespace scopes stable article IDs derived from the URL.
var articleNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("nfl-prediction-service/article"))

// FetchArticles retrieves articles mentioning the team's name between from
// and to, newest first as the upstream returns them.
func (c *Client) FetchArticles(ctx context.Context, team domain.Team, from, to time.Time) ([]domain.Article, error) {
	endpoint := fmt.Sprintf("%s/everything?%s", c.baseURL, url.Values{
		"q":        []string{fmt.Sprintf("%q", team.Name)},
		"from":     []string{from.UTC().Format(time.RFC3339)},
		"to":       []string{to.UTC().Format(time.RFC3339)},
		"pageSize": []string{fmt.Sprintf("%d", defaultPageSize)},
		"sortBy":   []string{"publishedAt"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
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
		return nil, fmt.Errorf("newsfetch: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload articlesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		published, err := time.Parse(time.RFC3339, a.PublishedAt)
		if err != nil {
			continue
		}
		articles = append(articles, domain.Article{
			ID:        uuid.NewSHA1(articleNamespace, []byte(a.URL)).String(),
			Title:     a.Title,
			Source:    a.Source.Name,
			Published: published,
			Teams:     []string{team.Abbreviation},
		})
	}
	return articles, nil
}
