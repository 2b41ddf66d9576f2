// Package coherence scores whether a generated headline and caption tell one
// consistent story. The validator is pure: the same inputs always produce
// the same report, with no side effects.
package coherence

import (
	"fmt"
	"strings"

	"brandforge/internal/config"
)

// Validator applies the scoring pipeline under a given policy.
type Validator struct {
	policy config.CoherenceConfig
}

// NewValidator creates a validator with the given scoring policy.
func NewValidator(policy config.CoherenceConfig) *Validator {
	return &Validator{policy: policy}
}

// Validate scores the headline/caption pair. Scoring starts at 100 and
// subtracts per failed check; the final score is clamped to [0,100].
func (v *Validator) Validate(headline, caption, businessCategory string) Report {
	score := 100
	var issues []Issue
	fail := func(penalty int, cat IssueCategory, format string, args ...interface{}) {
		score -= penalty
		issues = append(issues, Issue{Category: cat, Message: fmt.Sprintf(format, args...)})
	}

	// 1. Theme extraction and comparison.
	headTheme := classify(headline, themeTaxonomy, ThemeGeneral)
	capTheme := classify(caption, themeTaxonomy, ThemeGeneral)
	if headTheme.Primary != capTheme.Primary {
		if headTheme.Primary == ThemeGeneral || capTheme.Primary == ThemeGeneral {
			fail(v.policy.ThemeMinorVariancePenalty, IssueTheme,
				"minor theme variance: headline %q vs caption %q", headTheme.Primary, capTheme.Primary)
		} else {
			fail(v.policy.ThemeMismatchPenalty, IssueTheme,
				"headline theme %q does not match caption theme %q", headTheme.Primary, capTheme.Primary)
		}
	}

	// 2. Narrative continuity: a caption long enough to carry a story must
	// share at least one content word with the headline.
	if len(caption) > 30 && !shareContentWord(headline, caption) {
		fail(v.policy.NarrativeGapPenalty, IssueNarrative,
			"headline and caption share no content words")
	}

	// 3. Tone consistency.
	headTone := classify(headline, toneTaxonomy, ToneProfessional)
	capTone := classify(caption, toneTaxonomy, ToneProfessional)
	if headTone.Primary != capTone.Primary {
		if compatibleTones[headTone.Primary] || compatibleTones[capTone.Primary] ||
			capTone.Primary == ToneProfessional {
			fail(v.policy.ToneSoftMismatchPenalty, IssueTone,
				"tone drift: headline %q vs caption %q", headTone.Primary, capTone.Primary)
		} else {
			fail(v.policy.ToneMismatchPenalty, IssueTone,
				"headline tone %q conflicts with caption tone %q", headTone.Primary, capTone.Primary)
		}
	}

	// 4. Audience consistency.
	headAud := matchAudience(headline)
	capAud := matchAudience(caption)
	if headAud != "" && capAud != "" && headAud != capAud {
		fail(v.policy.AudienceMismatchPenalty, IssueAudience,
			"headline targets %q but caption targets %q", headAud, capAud)
	}

	// 5. Benefit alignment: the promise in the headline should be delivered
	// by the caption.
	promised, promisedGroup := extractBenefit(headline)
	delivered, deliveredGroup := extractBenefit(caption)
	if promised != "" && delivered != "" && promised != delivered && promisedGroup != deliveredGroup {
		fail(v.policy.BenefitMismatchPenalty, IssueBenefit,
			"headline promises %q but caption delivers %q", promised, delivered)
	}

	// 6. Completion check: fragments cannot carry a story.
	if len(headline) < v.policy.MinHeadlineLength {
		fail(v.policy.ShortHeadlinePenalty, IssueCompletion,
			"headline too short (%d chars)", len(headline))
	}
	if len(caption) < v.policy.MinCaptionLength {
		fail(v.policy.ShortCaptionPenalty, IssueCompletion,
			"caption too short (%d chars)", len(caption))
	}

	// 7. Specificity check.
	combined := strings.ToLower(headline + " " + caption)
	for _, phrase := range genericPhrases {
		if strings.Contains(combined, phrase) {
			fail(v.policy.GenericPhrasePenalty, IssueSpecificity,
				"generic boilerplate: %q", phrase)
		}
	}

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	report := Report{
		Score:         score,
		Issues:        issues,
		DominantTheme: dominant(headTheme.Primary, capTheme.Primary, ThemeGeneral),
		DominantTone:  dominant(headTone.Primary, capTone.Primary, ToneProfessional),
	}
	report.Coherent = score >= v.policy.PassScore &&
		(len(issues) == 0 || score >= v.policy.CleanPassScore)
	return report
}

// dominant prefers the headline's classification unless it is the fallback.
func dominant(head, cap, fallback string) string {
	if head != fallback {
		return head
	}
	return cap
}

// shareContentWord reports whether the two texts share a content word longer
// than three characters. Suffixed forms count ("save" / "saves").
func shareContentWord(a, b string) bool {
	aTokens := tokenize(strings.ToLower(a))
	bTokens := tokenize(strings.ToLower(b))
	for _, at := range aTokens {
		if len(at) <= 3 {
			continue
		}
		for _, bt := range bTokens {
			if len(bt) <= 3 {
				continue
			}
			if at == bt || strings.HasPrefix(at, bt) || strings.HasPrefix(bt, at) {
				return true
			}
		}
	}
	return false
}

// matchAudience returns the first known audience phrase found in the text.
func matchAudience(text string) string {
	lower := strings.ToLower(text)
	for _, phrase := range audiencePhrases {
		if strings.Contains(lower, phrase) {
			return phrase
		}
	}
	return ""
}

// extractBenefit returns the first benefit keyword found in the text along
// with its benefit group.
func extractBenefit(text string) (keyword, group string) {
	tokens := tokenize(strings.ToLower(text))
	for _, tok := range tokens {
		for _, bg := range benefitGroups {
			for _, kw := range bg.keywords {
				if tok == kw || (len(kw) > 3 && strings.HasPrefix(tok, kw)) {
					return kw, bg.group
				}
			}
		}
	}
	return "", ""
}
