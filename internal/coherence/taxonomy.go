package coherence

import "strings"

// The theme and tone taxonomies are plain data tables consumed by a generic
// count-matches-take-max classifier. Order matters: ties keep the first-seen
// entry as primary.

// ThemeGeneral is the catch-all theme when no keyword matches.
const ThemeGeneral = "general"

// themeTaxonomy maps each theme to its keyword list, in canonical order.
var themeTaxonomy = []keywordSet{
	{"speed", []string{"fast", "quick", "instant", "rapid", "immediately", "time", "hours", "minutes", "speedy"}},
	{"security", []string{"secure", "security", "safe", "protected", "privacy", "encrypted"}},
	{"convenience", []string{"easy", "simple", "effortless", "convenient", "hassle", "seamless"}},
	{"savings", []string{"save", "discount", "deal", "affordable", "cheap", "budget", "price", "value"}},
	{"quality", []string{"quality", "premium", "finest", "crafted", "excellence", "superior", "durable"}},
	{"support", []string{"support", "help", "service", "care", "assistance", "guidance"}},
	{"innovation", []string{"innovative", "innovation", "modern", "smart", "cutting-edge", "technology"}},
	{"community", []string{"community", "local", "neighborhood", "together", "family-owned"}},
	{"success", []string{"success", "grow", "growth", "achieve", "win", "results", "thrive"}},
	{"transformation", []string{"transform", "transformation", "change", "upgrade", "renew", "reinvent"}},
	{"urgency", []string{"now", "today", "hurry", "limited", "deadline", "last chance", "don't miss"}},
	{"exclusivity", []string{"exclusive", "vip", "members", "invite", "select", "elite"}},
}

// ToneProfessional is the default tone when no keyword matches.
const ToneProfessional = "professional"

// toneTaxonomy maps each emotional tone to its keyword list.
var toneTaxonomy = []keywordSet{
	{"urgent", []string{"now", "hurry", "limited", "today", "don't wait", "act fast"}},
	{"playful", []string{"fun", "love", "enjoy", "exciting", "treat", "delight", "yum"}},
	{ToneProfessional, []string{"professional", "expertise", "reliable", "industry", "certified"}},
	{"confident", []string{"guaranteed", "proven", "best", "leading", "results", "#1"}},
	{"caring", []string{"care", "caring", "family", "gentle", "here for you", "support"}},
	{"innovative", []string{"innovative", "smart", "modern", "cutting-edge", "future"}},
}

// compatibleTones pass the tone consistency check with only a soft penalty.
var compatibleTones = map[string]bool{
	"confident":      true,
	"innovative":     true,
	"caring":         true,
	ToneProfessional: true,
}

// audiencePhrases are the known audience markers, checked by substring.
var audiencePhrases = []string{
	"business owners", "entrepreneurs", "families", "parents", "students",
	"professionals", "customers", "clients", "users", "people",
}

// benefitGroups group benefit keywords; a headline promise and a caption
// delivery aligned within one group pass the benefit alignment check.
var benefitGroups = []struct {
	group    string
	keywords []string
}{
	{"speed", []string{"fast", "quick", "instant", "rapid", "time-saving"}},
	{"cost", []string{"save", "affordable", "cheap", "discount", "value"}},
	{"ease", []string{"easy", "simple", "effortless", "convenient"}},
	{"trust", []string{"trusted", "reliable", "guaranteed", "secure", "proven"}},
	{"quality", []string{"quality", "premium", "durable", "crafted", "superior"}},
}

// genericPhrases is boilerplate that signals unspecific copy.
var genericPhrases = []string{
	"quality you can trust",
	"committed to excellence",
	"best in town",
	"your satisfaction is our priority",
	"we go the extra mile",
	"second to none",
	"look no further",
}

type keywordSet struct {
	label    string
	keywords []string
}

// classification is the output of the generic keyword classifier.
type classification struct {
	Primary   string
	Secondary string
}

// classify counts keyword occurrences per entry and takes the max. Ties keep
// the first-seen entry as primary and record the runner-up as secondary.
// With no match at all, fallback becomes primary.
func classify(text string, taxonomy []keywordSet, fallback string) classification {
	lower := strings.ToLower(text)
	tokens := tokenize(lower)

	best := classification{Primary: fallback}
	bestCount, secondCount := 0, 0
	for _, set := range taxonomy {
		count := 0
		for _, kw := range set.keywords {
			count += countMatches(lower, tokens, kw)
		}
		if count > bestCount {
			if bestCount > 0 {
				best.Secondary = best.Primary
				secondCount = bestCount
			}
			best.Primary = set.label
			bestCount = count
		} else if count > secondCount && count > 0 {
			best.Secondary = set.label
			secondCount = count
		}
	}
	return best
}

// countMatches counts how often a keyword appears. Multi-word keywords match
// by substring; single words match whole tokens, allowing suffixed forms of
// keywords longer than three characters ("save" matches "saves").
func countMatches(lower string, tokens []string, kw string) int {
	if strings.ContainsRune(kw, ' ') {
		return strings.Count(lower, kw)
	}
	n := 0
	for _, tok := range tokens {
		if tok == kw || (len(kw) > 3 && strings.HasPrefix(tok, kw)) {
			n++
		}
	}
	return n
}

// tokenize splits lowered text into alphanumeric words, keeping interior
// apostrophes and hyphens ("don't", "cutting-edge").
func tokenize(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return false
		case r == '\'', r == '-', r == '#':
			return false
		}
		return true
	})
}
