package server

import (
	"log/slog"

	"nfl-prediction-service/internal/config"
	"nfl-prediction-service/internal/domain"
	"nfl-prediction-service/internal/loader"
	"nfl-prediction-service/internal/logging"
	"nfl-prediction-service/internal/metrics"
	"nfl-prediction-service/internal/providers"
	"nfl-prediction-service/internal/providers/espn"
	"nfl-prediction-service/internal/providers/fixture"
	"nfl-prediction-service/internal/providers/newsfetch"
	"nfl-prediction-service/internal/providers/oddsapi"
	"nfl-prediction-service/internal/providers/sportsdata"
)

// dataSources carries the wired upstream providers: the ordered loader chain
// plus the injury and odds feeds, which sit outside the fallback chain.
type dataSources struct {
	chain    []loader.Source
	injuries providers.InjuryProvider
	odds     providers.OddsProvider
}

// sourceFactory assembles providers with shared retry wrappers.
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	catalog *domain.Catalog
}

func newSourceFactory(logger *slog.Logger, metrics *metrics.Recorder, catalog *domain.Catalog) sourceFactory {
	return sourceFactory{logger: logger, metrics: metrics, catalog: catalog}
}

func (f sourceFactory) build(cfg config.Config) dataSources {
	switch cfg.GamesSource {
	case "espn":
		return f.liveSources(cfg)
	case "fixture", "":
		return f.fixtureSources()
	default:
		logging.Warn(f.logger, "unknown games source, falling back to fixture",
			logging.FieldProvider, cfg.GamesSource)
		return f.fixtureSources()
	}
}

// fixtureSources serves every feed from the deterministic in-process season,
// keeping the service fully runnable without upstream API keys.
func (f sourceFactory) fixtureSources() dataSources {
	fix := fixture.New(f.catalog)
	return dataSources{
		chain: []loader.Source{{
			Name:     "fixture",
			Games:    f.retryGames(fix, "fixture"),
			Scores:   f.retryScores(fix, "fixture"),
			Articles: f.retryArticles(fix, "fixture"),
		}},
		injuries: f.retryInjuries(fix, "fixture"),
		odds:     f.retryOdds(fix, "fixture"),
	}
}

// liveSources wires the real upstreams: espn primary for games, scores, and
// injuries, sportsdata as the games fallback, newsapi for articles, and the
// odds API for markets. Feeds whose API key is missing fall back to fixture
// data with a warning rather than failing at startup.
func (f sourceFactory) liveSources(cfg config.Config) dataSources {
	espnClient := espn.NewClient(espn.Config{BaseURL: cfg.ESPN.BaseURL}, f.catalog)

	chain := []loader.Source{{
		Name:   "espn",
		Games:  f.retryGames(espnClient, "espn"),
		Scores: f.retryScores(espnClient, "espn"),
	}}

	if cfg.SportsData.APIKey != "" {
		sd := sportsdata.NewClient(sportsdata.Config{
			BaseURL: cfg.SportsData.BaseURL,
			APIKey:  cfg.SportsData.APIKey,
		}, f.catalog)
		chain = append(chain, loader.Source{
			Name:  "sportsdata",
			Games: f.retryGames(sd, "sportsdata"),
		})
	}

	var fix *fixture.Provider
	fallback := func() *fixture.Provider {
		if fix == nil {
			fix = fixture.New(f.catalog)
		}
		return fix
	}

	if cfg.News.APIKey != "" {
		nf := newsfetch.NewClient(newsfetch.Config{
			BaseURL: cfg.News.BaseURL,
			APIKey:  cfg.News.APIKey,
		})
		chain = append(chain, loader.Source{
			Name:     "newsapi",
			Articles: f.retryArticles(nf, "newsapi"),
		})
	} else {
		logging.Warn(f.logger, "news api key missing, serving fixture articles")
		chain = append(chain, loader.Source{
			Name:     "fixture",
			Articles: f.retryArticles(fallback(), "fixture"),
		})
	}

	var odds providers.OddsProvider
	if cfg.Odds.APIKey != "" {
		odds = f.retryOdds(oddsapi.NewClient(oddsapi.Config{
			BaseURL: cfg.Odds.BaseURL,
			APIKey:  cfg.Odds.APIKey,
		}), "oddsapi")
	} else {
		logging.Warn(f.logger, "odds api key missing, serving fixture odds")
		odds = f.retryOdds(fallback(), "fixture")
	}

	return dataSources{
		chain:    chain,
		injuries: f.retryInjuries(espnClient, "espn"),
		odds:     odds,
	}
}

func (f sourceFactory) retryGames(p providers.GameProvider, name string) providers.GameProvider {
	return providers.NewRetryingGameProvider(p, f.logger, f.metrics, name, 0, 0)
}

func (f sourceFactory) retryScores(p providers.ScoreboardProvider, name string) providers.ScoreboardProvider {
	return providers.NewRetryingScoreboardProvider(p, f.logger, f.metrics, name, 0, 0)
}

func (f sourceFactory) retryArticles(p providers.ArticleProvider, name string) providers.ArticleProvider {
	return providers.NewRetryingArticleProvider(p, f.logger, f.metrics, name, 0, 0)
}

func (f sourceFactory) retryInjuries(p providers.InjuryProvider, name string) providers.InjuryProvider {
	return providers.NewRetryingInjuryProvider(p, f.logger, f.metrics, name, 0, 0)
}

func (f sourceFactory) retryOdds(p providers.OddsProvider, name string) providers.OddsProvider {
	return providers.NewRetryingOddsProvider(p, f.logger, f.metrics, name, 0, 0)
}
