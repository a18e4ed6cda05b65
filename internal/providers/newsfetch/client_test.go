package newsfetch

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"nfl-prediction-service/internal/domain"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

const newsBody = `{
	"status": "ok",
	"articles": [
		{
			"title": "Chiefs clinch the division",
			"url": "https://news.test/chiefs-clinch",
			"publishedAt": "2025-11-18T10:00:00Z",
			"source": { "name": "Test Wire" }
		},
		{
			"title": "Bad timestamp",
			"url": "https://news.test/bad",
			"publishedAt": "yesterday",
			"source": { "name": "Test Wire" }
		}
	]
}`

func TestFetchArticlesMapsAndSkipsMalformed(t *testing.T) {
	var capturedQuery string
	var capturedKey string
	client := NewClient(Config{
		BaseURL: "http://news.test",
		APIKey:  "key",
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			capturedQuery = req.URL.Query().Get("q")
			capturedKey = req.Header.Get("X-Api-Key")
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(newsBody)),
			}, nil
		})},
	})

	team := domain.Team{Abbreviation: "KC", Name: "Kansas City Chiefs"}
	from := time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC)
	to := from.Add(7 * 24 * time.Hour)

	articles, err := client.FetchArticles(context.Background(), team, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedQuery != `"Kansas City Chiefs"` {
		t.Fatalf("unexpected query %q", capturedQuery)
	}
	if capturedKey != "key" {
		t.Fatalf("expected api key header, got %q", capturedKey)
	}
	if len(articles) != 1 {
		t.Fatalf("expected malformed article skipped, got %d", len(articles))
	}

	a := articles[0]
	if a.Title != "Chiefs clinch the division" || a.Source != "Test Wire" {
		t.Fatalf("unexpected article %+v", a)
	}
	if len(a.Teams) != 1 || a.Teams[0] != "KC" {
		t.Fatalf("expected team tag KC, got %v", a.Teams)
	}
	if a.ID == "" {
		t.Fatal("expected stable derived ID")
	}
}

func TestFetchArticlesStableIDs(t *testing.T) {
	handler := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(newsBody)),
		}, nil
	})
	client := NewClient(Config{BaseURL: "http://news.test", HTTPClient: &http.Client{Transport: handler}})

	team := domain.Team{Abbreviation: "KC", Name: "Kansas City Chiefs"}
	now := time.Now()

	first, _ := client.FetchArticles(context.Background(), team, now.Add(-time.Hour), now)
	second, _ := client.FetchArticles(context.Background(), team, now.Add(-time.Hour), now)

	if first[0].ID != second[0].ID {
		t.Fatalf("expected same URL to derive same ID: %s vs %s", first[0].ID, second[0].ID)
	}
}

func TestFetchArticlesUpstreamError(t *testing.T) {
	client := NewClient(Config{
		BaseURL: "http://news.test",
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusUnauthorized,
				Body:       io.NopCloser(strings.NewReader("no key")),
			}, nil
		})},
	})

	if _, err := client.FetchArticles(context.Background(), domain.Team{Name: "X"}, time.Now(), time.Now()); err == nil {
		t.Fatal("expected error on 401")
	}
}
