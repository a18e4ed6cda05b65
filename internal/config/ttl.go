package config

import "time"

const (
	envTTLGames      = "TTL_GAMES"
	envTTLArticles   = "TTL_ARTICLES"
	envTTLOdds       = "TTL_ODDS"
	envTTLLiveScores = "TTL_LIVE_SCORES"

	// In-season stats move during game days; odds snapshots are expensive
	// to refresh and low-volatility outside game time.
	defaultTTLGames      = 5 * Duration(time.Minute)
	defaultTTLArticles   = 10 * Duration(time.Minute)
	defaultTTLOdds       = 6 * Duration(time.Hour)
	defaultTTLLiveScores = Duration(time.Minute)
)

// TTLConfig sets per-concern cache freshness windows.
type TTLConfig struct {
	Games      time.Duration
	Articles   time.Duration
	Odds       time.Duration
	LiveScores time.Duration
}

func loadTTL() TTLConfig {
	return TTLConfig{
		Games:      durationEnvOrDefault(envTTLGames, defaultTTLGames),
		Articles:   durationEnvOrDefault(envTTLArticles, defaultTTLArticles),
		Odds:       durationEnvOrDefault(envTTLOdds, defaultTTLOdds),
		LiveScores: durationEnvOrDefault(envTTLLiveScores, defaultTTLLiveScores),
	}
}
