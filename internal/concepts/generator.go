package concepts

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"brandforge/internal/config"
	"brandforge/internal/logging"
)

// Generator draws concepts and keeps a bounded FIFO of recent draws to bias
// sampling away from repeats. One mutex serializes the history window and
// the shared random source.
type Generator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	history []Concept
	window  int
	retries int
	target  int
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand injects a deterministic random source for tests.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// NewGenerator creates a concept generator with the given diversification
// bounds.
func NewGenerator(cfg config.DiversityConfig, opts ...Option) *Generator {
	g := &Generator{
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		window:  cfg.HistoryWindow,
		retries: cfg.SimilarityRetries,
		target:  cfg.DiversityTarget,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate draws one concept. Draws similar to any entry in the recent
// window are redrawn up to the retry bound; the final draw is accepted
// unconditionally, so Generate never blocks indefinitely.
func (g *Generator) Generate() Concept {
	g.mu.Lock()
	defer g.mu.Unlock()

	var c Concept
	for attempt := 0; attempt < g.retries; attempt++ {
		c = g.drawLocked()
		if !g.similarToHistoryLocked(c) {
			break
		}
	}

	g.history = append(g.history, c)
	if len(g.history) > g.window {
		g.history = g.history[len(g.history)-g.window:]
	}

	logging.Get(logging.CategoryConcepts).Debug("concept generated",
		zap.String("concept", c.Name()),
		zap.Int("history", len(g.history)))
	return c
}

func (g *Generator) drawLocked() Concept {
	return Concept{
		Setting:         Settings[g.rng.Intn(len(Settings))],
		CustomerSegment: CustomerSegments[g.rng.Intn(len(CustomerSegments))],
		VisualStyle:     VisualStyles[g.rng.Intn(len(VisualStyles))],
		Benefit:         Benefits[g.rng.Intn(len(Benefits))],
		EmotionalTone:   EmotionalTones[g.rng.Intn(len(EmotionalTones))],
		Format:          Formats[g.rng.Intn(len(Formats))],
	}
}

func (g *Generator) similarToHistoryLocked(c Concept) bool {
	for _, h := range g.history {
		if Similar(c, h) {
			return true
		}
	}
	return false
}

// DiversityReport summarizes dimension spread across the current window.
// The 3-3-3 rule is a soft target: distinct settings, segments and styles
// should each tend toward the target across one full window. Reported for
// observability, never enforced.
type DiversityReport struct {
	WindowSize       int
	DistinctSettings int
	DistinctSegments int
	DistinctStyles   int
	Target           int
}

// MeetsTarget reports whether every tracked dimension reaches the soft
// target. A window smaller than the target trivially passes.
func (r DiversityReport) MeetsTarget() bool {
	if r.WindowSize < r.Target {
		return true
	}
	return r.DistinctSettings >= r.Target &&
		r.DistinctSegments >= r.Target &&
		r.DistinctStyles >= r.Target
}

// Diversity computes the report over the current history window.
func (g *Generator) Diversity() DiversityReport {
	g.mu.Lock()
	defer g.mu.Unlock()

	settings := make(map[string]bool)
	segments := make(map[string]bool)
	styles := make(map[string]bool)
	for _, c := range g.history {
		settings[c.Setting] = true
		segments[c.CustomerSegment] = true
		styles[c.VisualStyle] = true
	}
	return DiversityReport{
		WindowSize:       len(g.history),
		DistinctSettings: len(settings),
		DistinctSegments: len(segments),
		DistinctStyles:   len(styles),
		Target:           g.target,
	}
}
