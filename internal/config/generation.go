package config

import "time"

// GenerationConfig configures the fallback tier chain. Tiers 0-2 call the
// external provider with decreasing prompt complexity; tier 3 is local
// synthesis and needs no timeout.
type GenerationConfig struct {
	// Per-tier call timeouts for the external tiers.
	PrimaryTimeout    string `yaml:"primary_timeout"`
	SimplifiedTimeout string `yaml:"simplified_timeout"`
	EmergencyTimeout  string `yaml:"emergency_timeout"`

	// MaxOutputTokens caps model output on external calls.
	MaxOutputTokens int `yaml:"max_output_tokens"`

	// Temperature for external calls.
	Temperature float64 `yaml:"temperature"`
}

// DefaultGenerationConfig returns the production tier chain settings. The
// 30s primary timeout matches the upstream proxy's client timeout.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		PrimaryTimeout:    "30s",
		SimplifiedTimeout: "20s",
		EmergencyTimeout:  "10s",
		MaxOutputTokens:   1000,
		Temperature:       0.7,
	}
}

// TierTimeout returns the call timeout for an external tier.
func (g GenerationConfig) TierTimeout(tier int) time.Duration {
	switch tier {
	case 0:
		return parseDuration(g.PrimaryTimeout, 30*time.Second)
	case 1:
		return parseDuration(g.SimplifiedTimeout, 20*time.Second)
	default:
		return parseDuration(g.EmergencyTimeout, 10*time.Second)
	}
}
