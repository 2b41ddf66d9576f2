// Package concepts samples ad concepts from six independent creative
// dimension pools, biasing away from recently generated combinations.
package concepts

// Concept is an immutable combination of one value from each creative
// dimension.
type Concept struct {
	Setting         string
	CustomerSegment string
	VisualStyle     string
	Benefit         string
	EmotionalTone   string
	Format          string
}

// Name returns the derived display name: format + setting + benefit.
func (c Concept) Name() string {
	return c.Format + " / " + c.Setting + " / " + c.Benefit
}

// Similar reports whether two concepts agree on setting, customer segment
// and visual style simultaneously.
func Similar(a, b Concept) bool {
	return a.Setting == b.Setting &&
		a.CustomerSegment == b.CustomerSegment &&
		a.VisualStyle == b.VisualStyle
}

// Dimension pools. Each draw takes one value independently from each pool.
var (
	Settings = []string{
		"storefront", "home", "workspace", "outdoors", "urban street",
		"studio", "community event", "online",
	}
	CustomerSegments = []string{
		"young professionals", "families", "students", "local regulars",
		"small business owners", "first-time visitors", "remote workers",
	}
	VisualStyles = []string{
		"bright and airy", "bold and colorful", "minimal and clean",
		"warm and cozy", "editorial", "playful illustration", "cinematic",
	}
	Benefits = []string{
		"saves time", "saves money", "feels effortless", "built to last",
		"personal touch", "trusted by locals", "instant results",
	}
	EmotionalTones = []string{
		"joyful", "confident", "calm", "energetic", "aspirational",
		"reassuring",
	}
	Formats = []string{
		"product close-up", "lifestyle scene", "before and after",
		"behind the scenes", "customer spotlight", "flat lay",
		"bold typography",
	}
)
