package generation

import (
	"fmt"
	"strings"

	"brandforge/internal/angles"
	"brandforge/internal/bizdata"
	"brandforge/internal/concepts"
	"brandforge/internal/types"
)

// angleGuidance maps each marketing angle to its framing instruction.
var angleGuidance = map[angles.Angle]string{
	angles.AngleFeature:        "Lead with the single most distinctive feature of the business.",
	angles.AngleUseCase:        "Show the product or service in one concrete everyday situation.",
	angles.AngleAudience:       "Speak directly to the target audience and their identity.",
	angles.AngleProblem:        "Open with a pain point the audience feels, then present the business as the fix.",
	angles.AngleBenefit:        "Put the clearest customer benefit front and center.",
	angles.AngleTransformation: "Contrast life before and after choosing this business.",
	angles.AngleSocialProof:    "Frame the message around existing happy customers and local reputation.",
}

const outputFormat = `Respond in exactly this format:
HEADLINE: <max 8 words>
SUBHEADLINE: <one short sentence>
CAPTION: <2-3 sentences telling one consistent story with the headline>
CTA: <short call to action>
HASHTAGS: <space-separated hashtags>`

// buildPrimaryPrompt is the Tier 0 prompt: full business context, assigned
// angle and creative concept.
func buildPrimaryPrompt(req types.ContentRequest, angle angles.Angle, concept concepts.Concept) string {
	profile := bizdata.Lookup(req.BusinessCategory)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a marketing copywriter for small businesses.\n\n")
	fmt.Fprintf(&b, "Business: %s (%s)\n", req.BusinessName, req.BusinessCategory)
	if req.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", req.Location)
	}
	if req.TargetAudience != "" {
		fmt.Fprintf(&b, "Target audience: %s\n", req.TargetAudience)
	}
	fmt.Fprintf(&b, "Platform: %s\n", req.Platform)
	fmt.Fprintf(&b, "Unique value: %s\n", profile.UniqueValue)
	fmt.Fprintf(&b, "Industry trends: %s\n", strings.Join(profile.Trends, ", "))
	fmt.Fprintf(&b, "Customer pain points: %s\n\n", strings.Join(profile.PainPoints, ", "))

	fmt.Fprintf(&b, "Marketing angle: %s. %s\n", angle, angleGuidance[angle])
	fmt.Fprintf(&b, "Creative concept: a %s %s set in a %s, aimed at %s, highlighting that it %s, with a %s tone.\n\n",
		concept.VisualStyle, concept.Format, concept.Setting,
		concept.CustomerSegment, concept.Benefit, concept.EmotionalTone)

	fmt.Fprintf(&b, "The headline and caption must tell one consistent story: same theme, same tone, same promised benefit.\n\n")
	b.WriteString(outputFormat)
	return b.String()
}

// buildSimplifiedPrompt is the Tier 1 prompt: shorter, constraint-reduced.
func buildSimplifiedPrompt(req types.ContentRequest, angle angles.Angle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %s marketing copy for %s, a %s business",
		req.Platform, req.BusinessName, req.BusinessCategory)
	if req.TargetAudience != "" {
		fmt.Fprintf(&b, " targeting %s", req.TargetAudience)
	}
	fmt.Fprintf(&b, ". Use a %s angle. Keep the headline and caption on one theme.\n\n", angle)
	b.WriteString(outputFormat)
	return b.String()
}

// buildEmergencyPrompt is the Tier 2 prompt: a minimal one-line request.
func buildEmergencyPrompt(req types.ContentRequest) string {
	return fmt.Sprintf("Write one short marketing phrase (under 10 words) for %s, a %s business. Reply with the phrase only.",
		req.BusinessName, req.BusinessCategory)
}
