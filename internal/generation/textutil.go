package generation

import (
	"regexp"
	"strings"
)

// CollapseRepeatedWords removes consecutive duplicate words, case
// insensitively, keeping the first occurrence of each run. Applying it twice
// yields the same result as applying it once.
func CollapseRepeatedWords(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return strings.TrimSpace(s)
	}
	out := words[:1]
	for _, w := range words[1:] {
		if !strings.EqualFold(w, out[len(out)-1]) {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}

// namePrefixPattern matches a leading all-caps or title-case token
// immediately followed by a colon, as models sometimes echo the business
// name ("PAYA: Fast, Easy, Better").
var namePrefixPattern = regexp.MustCompile(`^([A-Z][A-Za-z0-9&'-]*):\s*`)

// StripNamePrefix removes a leading business-name prefix. The original input
// is kept when the remainder would be shorter than three characters.
func StripNamePrefix(s string) string {
	m := namePrefixPattern.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	rest := strings.TrimSpace(s[len(m[0]):])
	if len(rest) < 3 {
		return s
	}
	return rest
}

// postProcess runs both clean-up passes in order. Both passes are
// idempotent, so a tier output already processed once is unchanged.
func postProcess(s string) string {
	return StripNamePrefix(CollapseRepeatedWords(strings.TrimSpace(s)))
}
