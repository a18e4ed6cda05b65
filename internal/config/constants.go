package config

import "time"

const (
	envPort         = "PORT"
	envStrategy     = "PREDICTOR_STRATEGY"
	envPollInterval = "POLL_INTERVAL"
	envGamesSource  = "GAMES_SOURCE"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultStrategy = "enhanced"
	// fixture keeps the service runnable without upstream API keys.
	defaultGamesSource = "fixture"
	defaultMetricsPort = "9090"
	// Conservative default poll interval to respect upstream scoreboard quotas.
	defaultPollInterval = 2 * Duration(time.Minute)
)
