// Package config holds all BrandForge configuration. Policy constants
// (coherence weights, acceptance cutoffs, retry bounds) are named fields with
// defaults rather than literals scattered through the engine, since their
// exact values are tunable policy.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all engine configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// LLM provider configuration
	LLM LLMConfig `yaml:"llm"`

	// Coherence validation policy
	Coherence CoherenceConfig `yaml:"coherence"`

	// Diversification (angles + concepts)
	Diversity DiversityConfig `yaml:"diversity"`

	// Fallback tier chain
	Generation GenerationConfig `yaml:"generation"`

	// Usage quota
	Quota QuotaConfig `yaml:"quota"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns a Config populated with the engine defaults.
func Default() *Config {
	return &Config{
		Name:       "brandforge",
		Version:    "1.0.0",
		LLM:        DefaultLLMConfig(),
		Coherence:  DefaultCoherenceConfig(),
		Diversity:  DefaultDiversityConfig(),
		Generation: DefaultGenerationConfig(),
		Quota:      DefaultQuotaConfig(),
		Logging:    LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML config file, layering it over the defaults and then
// applying environment overrides. A missing file is not an error: defaults
// plus env are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field consistency.
func (c *Config) Validate() error {
	if c.Coherence.PassScore < 0 || c.Coherence.PassScore > 100 {
		return fmt.Errorf("coherence.pass_score must be in [0,100], got %d", c.Coherence.PassScore)
	}
	if c.Coherence.CleanPassScore < c.Coherence.PassScore {
		return fmt.Errorf("coherence.clean_pass_score (%d) must be >= pass_score (%d)",
			c.Coherence.CleanPassScore, c.Coherence.PassScore)
	}
	if c.Diversity.HistoryWindow <= 0 {
		return fmt.Errorf("diversity.history_window must be positive, got %d", c.Diversity.HistoryWindow)
	}
	if c.Diversity.SimilarityRetries <= 0 {
		return fmt.Errorf("diversity.similarity_retries must be positive, got %d", c.Diversity.SimilarityRetries)
	}
	return nil
}

// parseDuration parses a string duration, returning fallback on empty or
// malformed input.
func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
