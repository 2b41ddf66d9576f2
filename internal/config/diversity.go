package config

// DiversityConfig bounds the anti-repetition machinery for angles and
// concepts.
type DiversityConfig struct {
	// HistoryWindow is the number of recent concepts kept for similarity
	// avoidance.
	HistoryWindow int `yaml:"history_window"`

	// SimilarityRetries bounds the redraw loop when a fresh concept matches
	// the recent window. The last draw is accepted unconditionally at the
	// bound.
	SimilarityRetries int `yaml:"similarity_retries"`

	// DiversityTarget is the soft 3-3-3 floor: distinct settings, segments
	// and styles each expected across one full history window. Reported for
	// observability only.
	DiversityTarget int `yaml:"diversity_target"`
}

// DefaultDiversityConfig returns the production diversification bounds.
func DefaultDiversityConfig() DiversityConfig {
	return DiversityConfig{
		HistoryWindow:     9,
		SimilarityRetries: 10,
		DiversityTarget:   3,
	}
}
