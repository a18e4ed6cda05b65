package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/logging"
	"nfl-prediction-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultRetryInterval = 200 * time.Millisecond
)

// retrier holds the shared retry/backoff state for the per-capability
// decorators below.
type retrier struct {
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	interval    time.Duration
}

func newRetrier(logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, interval time.Duration) retrier {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	return retrier{
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		interval:    interval,
	}
}

func (r retrier) policy(ctx context.Context) backoff.BackOff {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = r.interval
	return backoff.WithContext(backoff.WithMaxRetries(expo, uint64(r.maxAttempts-1)), ctx)
}

// run executes fn with retries, recording attempts and rate limits.
func run[T any](r retrier, ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var out T
	attempt := 0

	op := func() error {
		attempt++
		start := time.Now()
		v, err := fn(ctx)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err != nil {
			if rlErr, ok := AsRateLimitError(err); ok {
				r.metrics.RecordRateLimit(r.name, rlErr.RetryAfter)
			}
			logging.Warn(logging.FromContext(ctx, r.logger), "provider fetch retry",
				logging.FieldProvider, r.name, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)
			return err
		}
		out = v
		return nil
	}

	if err := backoff.Retry(op, r.policy(ctx)); err != nil {
		logging.Warn(logging.FromContext(ctx, r.logger), "provider fetch failed",
			logging.FieldProvider, r.name, "attempts", attempt, "err", err)
		var zero T
		return zero, err
	}
	return out, nil
}

type retryingGameProvider struct {
	inner GameProvider
	retrier
}

// NewRetryingGameProvider wraps a GameProvider with retry/backoff behavior.
// If maxAttempts/interval are <= 0, defaults are used.
func NewRetryingGameProvider(inner GameProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, interval time.Duration) GameProvider {
	return &retryingGameProvider{inner: inner, retrier: newRetrier(logger, recorder, name, maxAttempts, interval)}
}

func (p *retryingGameProvider) FetchGames(ctx context.Context, team domain.Team, season int) ([]domain.Game, error) {
	return run(p.retrier, ctx, func(ctx context.Context) ([]domain.Game, error) {
		return p.inner.FetchGames(ctx, team, season)
	})
}

type retryingScoreboardProvider struct {
	inner ScoreboardProvider
	retrier
}

// NewRetryingScoreboardProvider wraps a ScoreboardProvider with retries.
func NewRetryingScoreboardProvider(inner ScoreboardProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, interval time.Duration) ScoreboardProvider {
	return &retryingScoreboardProvider{inner: inner, retrier: newRetrier(logger, recorder, name, maxAttempts, interval)}
}

func (p *retryingScoreboardProvider) FetchLiveScores(ctx context.Context) ([]domain.Game, error) {
	return run(p.retrier, ctx, func(ctx context.Context) ([]domain.Game, error) {
		return p.inner.FetchLiveScores(ctx)
	})
}

type retryingArticleProvider struct {
	inner ArticleProvider
	retrier
}

// NewRetryingArticleProvider wraps an ArticleProvider with retries.
func NewRetryingArticleProvider(inner ArticleProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, interval time.Duration) ArticleProvider {
	return &retryingArticleProvider{inner: inner, retrier: newRetrier(logger, recorder, name, maxAttempts, interval)}
}

func (p *retryingArticleProvider) FetchArticles(ctx context.Context, team domain.Team, from, to time.Time) ([]domain.Article, error) {
	return run(p.retrier, ctx, func(ctx context.Context) ([]domain.Article, error) {
		return p.inner.FetchArticles(ctx, team, from, to)
	})
}

type retryingInjuryProvider struct {
	inner InjuryProvider
	retrier
}

// NewRetryingInjuryProvider wraps an InjuryProvider with retries.
func NewRetryingInjuryProvider(inner InjuryProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, interval time.Duration) InjuryProvider {
	return &retryingInjuryProvider{inner: inner, retrier: newRetrier(logger, recorder, name, maxAttempts, interval)}
}

func (p *retryingInjuryProvider) FetchInjuries(ctx context.Context, team domain.Team) ([]domain.InjuredPlayer, error) {
	return run(p.retrier, ctx, func(ctx context.Context) ([]domain.InjuredPlayer, error) {
		return p.inner.FetchInjuries(ctx, team)
	})
}

type retryingOddsProvider struct {
	inner OddsProvider
	retrier
}

// NewRetryingOddsProvider wraps an OddsProvider with retries.
func NewRetryingOddsProvider(inner OddsProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, interval time.Duration) OddsProvider {
	return &retryingOddsProvider{inner: inner, retrier: newRetrier(logger, recorder, name, maxAttempts, interval)}
}

func (p *retryingOddsProvider) FetchOdds(ctx context.Context) (map[string]domain.BettingOdds, error) {
	return run(p.retrier, ctx, func(ctx context.Context) (map[string]domain.BettingOdds, error) {
		return p.inner.FetchOdds(ctx)
	})
}
