package config

import (
	"os"
	"time"
)

// LLMConfig configures the external generation providers.
type LLMConfig struct {
	Provider string `yaml:"provider"` // gemini, openai
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`

	// RequestsPerSecond caps outbound call rate per provider.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// DefaultLLMConfig returns sensible provider defaults. The model matches the
// text endpoint the surrounding application proxies to.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Provider:          "gemini",
		Model:             "gemini-2.5-flash",
		Timeout:           "30s",
		RequestsPerSecond: 2,
	}
}

// TimeoutOr returns the parsed call timeout, or fallback.
func (c LLMConfig) TimeoutOr(fallback time.Duration) time.Duration {
	return parseDuration(c.Timeout, fallback)
}

// applyEnvOverrides applies environment variables on top of file config.
// GEMINI_API_KEY only claims the provider slot when none is configured;
// OPENAI_API_KEY takes precedence and overrides the provider outright.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
		if c.LLM.Provider == "" {
			c.LLM.Provider = "gemini"
		}
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.LLM.APIKey = key
		c.LLM.Provider = "openai"
	}

	if model := os.Getenv("BRANDFORGE_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if level := os.Getenv("BRANDFORGE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}
