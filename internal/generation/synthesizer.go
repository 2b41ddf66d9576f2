package generation

import (
	"fmt"
	"strings"

	"brandforge/internal/angles"
	"brandforge/internal/bizdata"
	"brandforge/internal/concepts"
	"brandforge/internal/types"
)

// Tier 3: deterministic local synthesis. No external I/O, no randomness, no
// failure mode; the same request always yields the same copy. This is the
// terminal guarantee of the fallback chain.

var headlineTemplates = []string{
	"%s — %s",
	"Meet %s, %s",
	"Why %s? %s",
}

var ctaByAngle = map[angles.Angle]string{
	angles.AngleFeature:        "See it for yourself",
	angles.AngleUseCase:        "Try it this week",
	angles.AngleAudience:       "Made for you — come by",
	angles.AngleProblem:        "Let us fix that",
	angles.AngleBenefit:        "Get started today",
	angles.AngleTransformation: "Start your change",
	angles.AngleSocialProof:    "Join your neighbors",
}

// synthesize builds a complete result from static data alone.
func synthesize(req types.ContentRequest, angle angles.Angle, concept concepts.Concept) parsedContent {
	profile := bizdata.Lookup(req.BusinessCategory)

	benefit := concept.Benefit
	if benefit == "" {
		benefit = "built around you"
	}

	// Template choice is a pure function of the request identity so repeated
	// fallbacks for the same brand stay stable.
	tmpl := headlineTemplates[(len(req.BusinessName)+len(angle))%len(headlineTemplates)]
	headline := fmt.Sprintf(tmpl, req.BusinessName, titleCase(benefit))

	audience := req.TargetAudience
	if audience == "" {
		audience = "our customers"
	}

	caption := fmt.Sprintf("%s. For %s, %s %s — no %s.",
		titleCase(profile.UniqueValue), audience, req.BusinessName,
		benefit, profile.PainPoints[0])

	cta := ctaByAngle[angle]
	if cta == "" {
		cta = "Learn more"
	}

	return parsedContent{
		Headline:     postProcess(headline),
		Subheadline:  titleCase(profile.UniqueValue),
		Caption:      postProcess(caption),
		CallToAction: cta,
	}
}

// titleCase upper-cases the first letter only.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
