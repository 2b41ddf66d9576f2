package config

import "strings"

// CoherenceConfig holds the scoring policy for the story coherence validator.
// The weights and cutoffs are empirically chosen; they are policy, not law,
// and must stay overridable.
type CoherenceConfig struct {
	// Acceptance rule: score >= PassScore AND (no issues OR score >= CleanPassScore).
	PassScore      int `yaml:"pass_score"`
	CleanPassScore int `yaml:"clean_pass_score"`

	// Per-check subtraction weights.
	ThemeMismatchPenalty      int `yaml:"theme_mismatch_penalty"`
	ThemeMinorVariancePenalty int `yaml:"theme_minor_variance_penalty"`
	NarrativeGapPenalty       int `yaml:"narrative_gap_penalty"`
	ToneMismatchPenalty       int `yaml:"tone_mismatch_penalty"`
	ToneSoftMismatchPenalty   int `yaml:"tone_soft_mismatch_penalty"`
	AudienceMismatchPenalty   int `yaml:"audience_mismatch_penalty"`
	BenefitMismatchPenalty    int `yaml:"benefit_mismatch_penalty"`
	ShortHeadlinePenalty      int `yaml:"short_headline_penalty"`
	ShortCaptionPenalty       int `yaml:"short_caption_penalty"`
	GenericPhrasePenalty      int `yaml:"generic_phrase_penalty"`

	// Length floors for the completion check.
	MinHeadlineLength int `yaml:"min_headline_length"`
	MinCaptionLength  int `yaml:"min_caption_length"`

	// TrustedCategories lists business categories whose specialized
	// generation path is accepted below the normal acceptance rule, down to
	// TrustedFloorScore.
	TrustedCategories []string `yaml:"trusted_categories"`
	TrustedFloorScore int      `yaml:"trusted_floor_score"`
}

// DefaultCoherenceConfig returns the production scoring policy.
func DefaultCoherenceConfig() CoherenceConfig {
	return CoherenceConfig{
		PassScore:                 45,
		CleanPassScore:            60,
		ThemeMismatchPenalty:      30,
		ThemeMinorVariancePenalty: 15,
		NarrativeGapPenalty:       20,
		ToneMismatchPenalty:       20,
		ToneSoftMismatchPenalty:   5,
		AudienceMismatchPenalty:   15,
		BenefitMismatchPenalty:    25,
		ShortHeadlinePenalty:      10,
		ShortCaptionPenalty:       15,
		GenericPhrasePenalty:      15,
		MinHeadlineLength:         10,
		MinCaptionLength:          20,
		TrustedCategories:         []string{"restaurant", "food", "beauty", "fitness"},
		TrustedFloorScore:         35,
	}
}

// IsTrustedCategory reports whether category is on the trust allowlist.
func (c CoherenceConfig) IsTrustedCategory(category string) bool {
	for _, t := range c.TrustedCategories {
		if strings.EqualFold(t, category) {
			return true
		}
	}
	return false
}
