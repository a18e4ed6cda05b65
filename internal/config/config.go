package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	Strategy     string
	PollInterval Duration
	GamesSource  string
	ESPN         ESPNConfig
	SportsData   SportsDataConfig
	News         NewsConfig
	Odds         OddsConfig
	LLM          LLMConfig
	TTL          TTLConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		Strategy:     envOrDefault(envStrategy, defaultStrategy),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		GamesSource:  envOrDefault(envGamesSource, defaultGamesSource),
		ESPN:         loadESPN(),
		SportsData:   loadSportsData(),
		News:         loadNews(),
		Odds:         loadOdds(),
		LLM:          loadLLM(),
		TTL:          loadTTL(),
		Metrics:      loadMetrics(),
	}
}
