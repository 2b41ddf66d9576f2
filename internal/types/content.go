// Package types holds the shared request/result types exchanged between the
// angle tracker, concept generator, coherence validator and the generation
// orchestrator.
package types

import "time"

// ContentRequest identifies the brand and target surface for one generation.
// The engine does not validate these beyond non-emptiness where they key
// lookups; they are treated as opaque identity strings.
type ContentRequest struct {
	BusinessName     string
	BusinessCategory string
	Platform         string
	Location         string
	TargetAudience   string

	// UserID is optional; when set, the monthly usage quota is enforced.
	UserID string
}

// BrandKey returns the tracker key for this request.
func (r ContentRequest) BrandKey() string {
	if r.BusinessName != "" {
		return r.BusinessName
	}
	return r.BusinessCategory
}

// ContentResult is the final accepted payload for one request. It is
// immutable after creation; callers receive a value, never a shared pointer.
type ContentResult struct {
	ID           string
	Headline     string
	Subheadline  string
	Caption      string
	CallToAction string
	Hashtags     []string

	// Provenance for observability and the generation audit log.
	Angle       string
	Concept     string
	Tier        int
	Score       int
	Model       string
	GeneratedAt time.Time
}
