package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nfl-prediction-service/internal/config"
	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/metrics"
	"nfl-prediction-service/internal/poller"
)

type stubPoller struct {
	startCalls int
	stopCalls  int
	err        error
	status     poller.Status
}

func (p *stubPoller) Start(ctx context.Context) {
	_ = ctx
	p.startCalls++
}

func (p *stubPoller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopCalls++
	return p.err
}

func (p *stubPoller) Status() poller.Status {
	return p.status
}

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string {
	return s.addr
}

func (s *stubHTTPServer) Handler() http.Handler {
	return s.handler
}

func testConfig() config.Config {
	return config.Config{
		Port:         "0",
		Strategy:     "baseline",
		PollInterval: time.Hour,
		GamesSource:  "fixture",
		TTL: config.TTLConfig{
			Games:      5 * time.Minute,
			Articles:   10 * time.Minute,
			Odds:       6 * time.Hour,
			LiveScores: time.Minute,
		},
		Metrics: config.MetricsConfig{Enabled: false},
	}
}

func TestNewConstructsServer(t *testing.T) {
	srv, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
}

func TestNewRejectsUnknownStrategy(t *testing.T) {
	cfg := testConfig()
	cfg.Strategy = "psychic"
	if _, err := New(cfg, nil); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestNewRejectsLLMStrategyWithoutAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.Strategy = "llm"
	if _, err := New(cfg, nil); err == nil {
		t.Fatal("expected error when llm strategy has no api key")
	}
}

func TestServerServesHealthAndPredict(t *testing.T) {
	srv, err := newServerWithMetrics(testConfig(), nil, metrics.NewRecorder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	router := srv.Handler()

	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if healthRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", healthRec.Code)
	}

	predictRec := httptest.NewRecorder()
	router.ServeHTTP(predictRec, httptest.NewRequest(http.MethodGet, "/predict?home=KC&away=BUF", nil))
	if predictRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /predict, got %d: %s", predictRec.Code, predictRec.Body.String())
	}

	var prediction domain.Prediction
	if err := json.NewDecoder(predictRec.Body).Decode(&prediction); err != nil {
		t.Fatalf("failed to decode prediction: %v", err)
	}
	if prediction.HomeWinProbability <= 0 || prediction.HomeWinProbability >= 1 {
		t.Fatalf("home win probability out of range: %f", prediction.HomeWinProbability)
	}
	if prediction.Odds == nil {
		t.Fatal("expected odds attached to prediction")
	}
	if prediction.Game.HomeTeam.Abbreviation != "KC" {
		t.Fatalf("unexpected home team %q", prediction.Game.HomeTeam.Abbreviation)
	}
}

func TestServerServesLiveSnapshot(t *testing.T) {
	srv, err := newServerWithMetrics(testConfig(), nil, metrics.NewRecorder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	srv.store.SetGames([]domain.Game{{ID: "live-1", Provider: "fixture"}})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/live", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /games/live, got %d", rec.Code)
	}

	var payload struct {
		Games []domain.Game `json:"games"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode live response: %v", err)
	}
	if len(payload.Games) != 1 || payload.Games[0].ID != "live-1" {
		t.Fatalf("unexpected live payload: %+v", payload.Games)
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	p := &stubPoller{}
	httpSrv := &stubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv, p)
	srv.gracefulShutdown()

	if p.stopCalls != 1 {
		t.Fatalf("expected poller stop once, got %d", p.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected http shutdown once, got %d", httpSrv.shutdownCalls)
	}
}

func TestRunStartsAndStopsOnCancel(t *testing.T) {
	p := &stubPoller{}
	httpSrv := &stubHTTPServer{listenErr: http.ErrServerClosed}

	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv, p)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not return after cancellation")
	}

	if p.startCalls != 1 {
		t.Fatalf("expected poller start once, got %d", p.startCalls)
	}
	if p.stopCalls != 1 {
		t.Fatalf("expected poller stop once, got %d", p.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected http shutdown once, got %d", httpSrv.shutdownCalls)
	}
}
