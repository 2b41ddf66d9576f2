// Package angles assigns strategic marketing angles to brand campaigns,
// cycling through the full angle set without repetition within one campaign.
package angles

// Angle is a strategic marketing framing for one piece of content.
type Angle string

const (
	AngleFeature        Angle = "feature"
	AngleUseCase        Angle = "use-case"
	AngleAudience       Angle = "audience"
	AngleProblem        Angle = "problem"
	AngleBenefit        Angle = "benefit"
	AngleTransformation Angle = "transformation"
	AngleSocialProof    Angle = "social-proof"
)

// FullSet is the fixed angle set, in canonical order. A campaign cycle uses
// each member exactly once.
var FullSet = []Angle{
	AngleFeature,
	AngleUseCase,
	AngleAudience,
	AngleProblem,
	AngleBenefit,
	AngleTransformation,
	AngleSocialProof,
}

// preferredByBusinessType orders angles by expected performance per business
// type. The first preferred angle still available in the current cycle wins.
var preferredByBusinessType = map[string][]Angle{
	"restaurant": {AngleBenefit, AngleSocialProof, AngleUseCase, AngleTransformation},
	"food":       {AngleBenefit, AngleSocialProof, AngleUseCase, AngleTransformation},
	"retail":     {AngleFeature, AngleBenefit, AngleAudience, AngleSocialProof},
	"fitness":    {AngleTransformation, AngleProblem, AngleSocialProof, AngleBenefit},
	"beauty":     {AngleTransformation, AngleSocialProof, AngleBenefit, AngleFeature},
	"technology": {AngleProblem, AngleFeature, AngleUseCase, AngleBenefit},
	"finance":    {AngleProblem, AngleBenefit, AngleAudience, AngleSocialProof},
	"services":   {AngleProblem, AngleSocialProof, AngleBenefit, AngleUseCase},
	"education":  {AngleTransformation, AngleAudience, AngleBenefit, AngleSocialProof},
	"healthcare": {AngleProblem, AngleBenefit, AngleSocialProof, AngleAudience},
}

// defaultPreference is used when the business type has no dedicated ordering.
var defaultPreference = []Angle{AngleBenefit, AngleProblem, AngleFeature, AngleSocialProof}

// PreferredAngles returns the ordered angle preference for a business type.
func PreferredAngles(businessType string) []Angle {
	if prefs, ok := preferredByBusinessType[businessType]; ok {
		return prefs
	}
	return defaultPreference
}
