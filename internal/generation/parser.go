package generation

import (
	"fmt"
	"strings"

	"brandforge/internal/types"
)

// hashtagCounts sizes the hashtag list per platform.
var hashtagCounts = map[string]int{
	"instagram": 5,
	"facebook":  3,
	"twitter":   2,
	"x":         2,
	"linkedin":  3,
}

const defaultHashtagCount = 3

// hashtagCount returns the hashtag list size for a platform.
func hashtagCount(platform string) int {
	if n, ok := hashtagCounts[strings.ToLower(platform)]; ok {
		return n
	}
	return defaultHashtagCount
}

// parsedContent is the structured view of one raw model response.
type parsedContent struct {
	Headline     string
	Subheadline  string
	Caption      string
	CallToAction string
	Hashtags     []string
}

// parseResponse extracts labeled fields from unstructured model output. The
// model is asked for HEADLINE:/SUBHEADLINE:/CAPTION:/CTA:/HASHTAGS: lines but
// responses drift, so unlabeled text falls back to first-line headline and
// longest-line caption. A response with no usable headline or caption is a
// structural failure.
func parseResponse(raw string) (parsedContent, error) {
	var p parsedContent
	var unlabeled []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "*"))
		if line == "" {
			continue
		}
		switch {
		case consumeLabel(line, "HEADLINE:", &p.Headline):
		case consumeLabel(line, "SUBHEADLINE:", &p.Subheadline):
		case consumeLabel(line, "CAPTION:", &p.Caption):
		case consumeLabel(line, "CTA:", &p.CallToAction):
		case consumeLabel(line, "CALL TO ACTION:", &p.CallToAction):
		case strings.HasPrefix(strings.ToUpper(line), "HASHTAGS:"):
			p.Hashtags = splitHashtags(line[len("HASHTAGS:"):])
		default:
			unlabeled = append(unlabeled, line)
		}
	}

	// Tolerant fallbacks for unlabeled responses.
	if p.Headline == "" && len(unlabeled) > 0 {
		p.Headline = unlabeled[0]
		unlabeled = unlabeled[1:]
	}
	if p.Caption == "" {
		for _, line := range unlabeled {
			if len(line) > len(p.Caption) {
				p.Caption = line
			}
		}
	}

	p.Headline = postProcess(p.Headline)
	p.Subheadline = postProcess(p.Subheadline)
	p.Caption = postProcess(p.Caption)
	p.CallToAction = postProcess(p.CallToAction)

	if p.Headline == "" {
		return p, fmt.Errorf("response has no usable headline")
	}
	if p.Caption == "" {
		return p, fmt.Errorf("response has no usable caption")
	}
	return p, nil
}

// consumeLabel assigns the remainder of line to dst when it carries the
// label, case-insensitively.
func consumeLabel(line, label string, dst *string) bool {
	if len(line) < len(label) || !strings.EqualFold(line[:len(label)], label) {
		return false
	}
	if v := strings.TrimSpace(line[len(label):]); v != "" {
		*dst = v
	}
	return true
}

// splitHashtags normalizes a raw hashtag list: each entry gets exactly one
// leading '#', separators may be spaces or commas.
func splitHashtags(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	var tags []string
	for _, f := range fields {
		f = strings.TrimLeft(strings.TrimSpace(f), "#")
		if f == "" {
			continue
		}
		tags = append(tags, "#"+f)
	}
	return tags
}

// sizeHashtags pads or truncates tags to the platform size, filling with
// defaults derived from the request.
func sizeHashtags(tags []string, req types.ContentRequest) []string {
	want := hashtagCount(req.Platform)
	defaults := defaultHashtags(req)
	for _, d := range defaults {
		if len(tags) >= want {
			break
		}
		if !containsFold(tags, d) {
			tags = append(tags, d)
		}
	}
	if len(tags) > want {
		tags = tags[:want]
	}
	return tags
}

func defaultHashtags(req types.ContentRequest) []string {
	name := "#" + sanitizeTag(req.BusinessName)
	return []string{
		"#" + sanitizeTag(req.BusinessCategory),
		name,
		"#shoplocal",
		"#smallbusiness",
		"#" + sanitizeTag(req.Location),
	}
}

// sanitizeTag lowers and strips non-alphanumerics so names become valid
// hashtag bodies.
func sanitizeTag(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "local"
	}
	return b.String()
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
