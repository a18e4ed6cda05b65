package espn

import (
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports/football/nfl"
	defaultHTTPTimeout = 10 * time.Second
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}
