package config

const (
	envESPNBaseURL       = "ESPN_BASE_URL"
	envSportsDataBaseURL = "SPORTSDATA_BASE_URL"
	envSportsDataAPIKey  = "SPORTSDATA_API_KEY"
	envNewsBaseURL       = "NEWS_BASE_URL"
	envNewsAPIKey        = "NEWS_API_KEY"
	envOddsBaseURL       = "ODDS_BASE_URL"
	envOddsAPIKey        = "ODDS_API_KEY"

	defaultESPNBaseURL       = "https://site.api.espn.com/apis/site/v2/sports/football/nfl"
	defaultSportsDataBaseURL = "https://api.sportsdata.io/v3/nfl"
	defaultNewsBaseURL       = "https://newsapi.org/v2"
	defaultOddsBaseURL       = "https://api.the-odds-api.com/v4"
)

// ESPNConfig controls how we talk to the primary statistics provider.
type ESPNConfig struct {
	BaseURL string
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
	}
}

// SportsDataConfig controls the secondary (fallback) statistics provider.
type SportsDataConfig struct {
	BaseURL string
	APIKey  string
}

func loadSportsData() SportsDataConfig {
	return SportsDataConfig{
		BaseURL: envOrDefault(envSportsDataBaseURL, defaultSportsDataBaseURL),
		APIKey:  envOrDefault(envSportsDataAPIKey, ""),
	}
}

// NewsConfig controls the article provider.
type NewsConfig struct {
	BaseURL string
	APIKey  string
}

func loadNews() NewsConfig {
	return NewsConfig{
		BaseURL: envOrDefault(envNewsBaseURL, defaultNewsBaseURL),
		APIKey:  envOrDefault(envNewsAPIKey, ""),
	}
}

// OddsConfig controls the betting-market provider.
type OddsConfig struct {
	BaseURL string
	APIKey  string
}

func loadOdds() OddsConfig {
	return OddsConfig{
		BaseURL: envOrDefault(envOddsBaseURL, defaultOddsBaseURL),
		APIKey:  envOrDefault(envOddsAPIKey, ""),
	}
}
