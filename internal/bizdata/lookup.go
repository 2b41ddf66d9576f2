// Package bizdata is the static business-intelligence lookup consumed by the
// prompt builders and the local synthesis tier.
package bizdata

// Profile holds industry knowledge for one business category.
type Profile struct {
	Trends        []string
	Challenges    []string
	Opportunities []string
	UniqueValue   string
	PainPoints    []string
}

var profiles = map[string]Profile{
	"restaurant": {
		Trends:        []string{"locally sourced menus", "experiential dining", "weekday lunch deals"},
		Challenges:    []string{"thin margins", "staff turnover", "slow weekdays"},
		Opportunities: []string{"loyalty programs", "limited seasonal menus", "community events"},
		UniqueValue:   "fresh food made to order by people who know your name",
		PainPoints:    []string{"long waits", "impersonal chains", "inconsistent quality"},
	},
	"retail": {
		Trends:        []string{"buy online pick up in store", "curated collections", "sustainable goods"},
		Challenges:    []string{"online competition", "foot traffic", "inventory costs"},
		Opportunities: []string{"personal styling", "local collaborations", "member previews"},
		UniqueValue:   "hand-picked products you can see and touch before you buy",
		PainPoints:    []string{"endless scrolling", "returns hassle", "generic big-box selection"},
	},
	"fitness": {
		Trends:        []string{"small group training", "hybrid online classes", "recovery services"},
		Challenges:    []string{"member retention", "seasonal demand", "crowded market"},
		Opportunities: []string{"beginner programs", "corporate wellness", "progress tracking"},
		UniqueValue:   "coaching that meets you at your level and keeps you accountable",
		PainPoints:    []string{"intimidating gyms", "plateaued progress", "cookie-cutter plans"},
	},
	"beauty": {
		Trends:        []string{"clean ingredients", "express services", "personal consultations"},
		Challenges:    []string{"no-shows", "product costs", "trend churn"},
		Opportunities: []string{"memberships", "bridal packages", "retail add-ons"},
		UniqueValue:   "licensed specialists who listen before they style",
		PainPoints:    []string{"rushed appointments", "unpredictable results", "overbooked salons"},
	},
	"technology": {
		Trends:        []string{"automation", "AI-assisted workflows", "privacy-first tooling"},
		Challenges:    []string{"long sales cycles", "feature overload", "support load"},
		Opportunities: []string{"onboarding services", "integrations", "self-serve trials"},
		UniqueValue:   "software that removes busywork instead of adding dashboards",
		PainPoints:    []string{"tool sprawl", "manual data entry", "vendor lock-in"},
	},
	"services": {
		Trends:        []string{"online booking", "transparent pricing", "same-week availability"},
		Challenges:    []string{"lead generation", "seasonality", "price competition"},
		Opportunities: []string{"maintenance plans", "referral rewards", "bundled offerings"},
		UniqueValue:   "showing up on time and doing the job right the first time",
		PainPoints:    []string{"missed appointments", "surprise fees", "unreturned calls"},
	},
}

// defaultProfile is returned for unrecognized categories.
var defaultProfile = Profile{
	Trends:        []string{"personalized service", "local loyalty", "digital convenience"},
	Challenges:    []string{"standing out", "reaching new customers", "limited marketing time"},
	Opportunities: []string{"repeat business", "word of mouth", "social presence"},
	UniqueValue:   "a local business that treats customers like neighbors",
	PainPoints:    []string{"being overlooked", "big-brand pricing", "one-size-fits-all service"},
}

// Lookup returns the profile for a business category, falling back to the
// default entry when the category is unrecognized.
func Lookup(category string) Profile {
	if p, ok := profiles[category]; ok {
		return p
	}
	return defaultProfile
}

// Known reports whether the category has a dedicated profile.
func Known(category string) bool {
	_, ok := profiles[category]
	return ok
}
