package config

// QuotaConfig configures the per-user monthly usage quota.
type QuotaConfig struct {
	Enabled      bool `yaml:"enabled"`
	MonthlyLimit int  `yaml:"monthly_limit"`
}

// DefaultQuotaConfig returns the production quota policy.
func DefaultQuotaConfig() QuotaConfig {
	return QuotaConfig{
		Enabled:      true,
		MonthlyLimit: 40,
	}
}
