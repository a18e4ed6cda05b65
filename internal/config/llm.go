package config

const (
	envLLMProvider = "LLM_PROVIDER"
	envLLMModel    = "LLM_MODEL"
	envLLMAPIKey   = "LLM_API_KEY"
	envLLMBaseURL  = "LLM_BASE_URL"

	defaultLLMProvider = "claude"
)

// LLMConfig controls the external text-generation service used by the
// llm predictor strategy.
type LLMConfig struct {
	Provider string // claude or openai
	Model    string
	APIKey   string
	BaseURL  string // override for tests/proxies; provider default if empty
}

func loadLLM() LLMConfig {
	return LLMConfig{
		Provider: envOrDefault(envLLMProvider, defaultLLMProvider),
		Model:    envOrDefault(envLLMModel, ""),
		APIKey:   envOrDefault(envLLMAPIKey, ""),
		BaseURL:  envOrDefault(envLLMBaseURL, ""),
	}
}
