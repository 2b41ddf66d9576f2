package generation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"brandforge/internal/angles"
	"brandforge/internal/coherence"
	"brandforge/internal/concepts"
	"brandforge/internal/config"
	"brandforge/internal/logging"
	"brandforge/internal/quota"
	"brandforge/internal/types"
)

// AuditRecord is one generation outcome for the audit log.
type AuditRecord struct {
	ResultID    string
	BrandKey    string
	Platform    string
	Angle       string
	Tier        int
	Score       int
	Model       string
	GeneratedAt time.Time
}

// AuditLog persists generation outcomes. Implementations must be safe for
// concurrent use.
type AuditLog interface {
	RecordGeneration(rec AuditRecord) error
}

// gateMode decides how a tier's output is accepted.
type gateMode int

const (
	gateCoherence  gateMode = iota // full coherence acceptance rule
	gateStructural                 // structurally valid output is enough
	gateNone                       // always accepted (terminal tier)
)

// tier is one step in the fallback chain. Tiers are iterated strictly in
// order; adding or removing a tier is a data change.
type tier struct {
	name    string
	gate    gateMode
	trusted bool // trusted-category override applies at this tier
	attempt func(ctx context.Context, req types.ContentRequest, angle angles.Angle, concept concepts.Concept) (parsedContent, string, error)
}

// Orchestrator sequences generation attempts through decreasing-complexity
// tiers, gating external output with the coherence validator and guaranteeing
// a terminal deterministic result.
type Orchestrator struct {
	mu        sync.RWMutex
	cfg       *config.Config
	validator *coherence.Validator

	provider   Provider
	tracker    *angles.Tracker
	conceptGen *concepts.Generator
	limiter    *quota.Limiter
	audit      AuditLog
	tiers      []tier
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithTracker injects a shared angle tracker (e.g. one backed by the sqlite
// store).
func WithTracker(t *angles.Tracker) Option {
	return func(o *Orchestrator) { o.tracker = t }
}

// WithConceptGenerator injects a shared concept generator.
func WithConceptGenerator(g *concepts.Generator) Option {
	return func(o *Orchestrator) { o.conceptGen = g }
}

// WithAudit records generation outcomes to the given log.
func WithAudit(a AuditLog) Option {
	return func(o *Orchestrator) { o.audit = a }
}

// New creates an orchestrator around the given provider. A nil provider is
// allowed: every external tier then fails and requests resolve at the
// deterministic synthesis tier.
func New(cfg *config.Config, provider Provider, opts ...Option) *Orchestrator {
	if cfg == nil {
		cfg = config.Default()
	}
	o := &Orchestrator{
		cfg:        cfg,
		validator:  coherence.NewValidator(cfg.Coherence),
		provider:   provider,
		tracker:    angles.NewTracker(),
		conceptGen: concepts.NewGenerator(cfg.Diversity),
	}
	if cfg.Quota.Enabled {
		o.limiter = quota.NewLimiter(cfg.Quota.MonthlyLimit)
	}
	for _, opt := range opts {
		opt(o)
	}
	o.tiers = []tier{
		{name: "primary", gate: gateCoherence, trusted: true, attempt: o.attemptPrimary},
		{name: "simplified", gate: gateCoherence, attempt: o.attemptSimplified},
		{name: "emergency", gate: gateStructural, attempt: o.attemptEmergency},
		{name: "synthesis", gate: gateNone, attempt: o.attemptSynthesis},
	}
	return o
}

// SetPolicy swaps the active configuration, used by the config hot-reload
// watcher. In-flight requests finish under the policy they started with.
func (o *Orchestrator) SetPolicy(cfg *config.Config) {
	if cfg == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cfg = cfg
	o.validator = coherence.NewValidator(cfg.Coherence)
}

func (o *Orchestrator) policy() (*config.Config, *coherence.Validator) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.cfg, o.validator
}

// ValidateCoherence exposes the coherence validator under the current
// policy.
func (o *Orchestrator) ValidateCoherence(headline, caption, businessCategory string) coherence.Report {
	_, validator := o.policy()
	return validator.Validate(headline, caption, businessCategory)
}

// AssignAngle exposes the angle tracker.
func (o *Orchestrator) AssignAngle(brandKey, platform, businessType string) angles.Angle {
	return o.tracker.Assign(brandKey, platform, businessType)
}

// GenerateConcept exposes the concept generator.
func (o *Orchestrator) GenerateConcept() concepts.Concept {
	return o.conceptGen.Generate()
}

// GenerateContent runs the full pipeline for one request. Capability errors
// and validation rejections never escape; the only error returns are quota
// denial before any tier runs and context cancellation, which aborts the
// remaining chain (angle and concept consumption already committed stays
// committed).
func (o *Orchestrator) GenerateContent(ctx context.Context, req types.ContentRequest) (types.ContentResult, error) {
	log := logging.Get(logging.CategoryGeneration)

	if o.limiter != nil && req.UserID != "" {
		if err := o.limiter.Allow(req.UserID); err != nil {
			return types.ContentResult{}, err
		}
	}

	cfg, validator := o.policy()
	angle := o.tracker.Assign(req.BrandKey(), req.Platform, req.BusinessCategory)
	concept := o.conceptGen.Generate()

	for i, t := range o.tiers {
		if err := ctx.Err(); err != nil {
			return types.ContentResult{}, fmt.Errorf("generation aborted at tier %d: %w", i, err)
		}

		content, model, err := t.attempt(ctx, req, angle, concept)
		if err != nil {
			log.Warn("tier attempt failed",
				zap.Int("tier", i),
				zap.String("name", t.name),
				zap.Error(err))
			continue
		}

		report := validator.Validate(content.Headline, content.Caption, req.BusinessCategory)
		accepted := report.IsCoherent()
		switch t.gate {
		case gateStructural, gateNone:
			accepted = true
		case gateCoherence:
			if !accepted && t.trusted &&
				cfg.Coherence.IsTrustedCategory(req.BusinessCategory) &&
				report.Score >= cfg.Coherence.TrustedFloorScore {
				log.Info("trusted category override",
					zap.String("category", req.BusinessCategory),
					zap.Int("score", report.Score))
				accepted = true
			}
		}
		if !accepted {
			log.Warn("tier output rejected",
				zap.Int("tier", i),
				zap.String("name", t.name),
				zap.Int("score", report.Score),
				zap.Int("issues", len(report.Issues)),
				zap.Error(ErrValidationRejected))
			continue
		}

		return o.finalize(req, angle, concept, content, model, i, report.Score), nil
	}

	// Unreachable: the synthesis tier never fails and is never rejected.
	panic("generation: tier chain exhausted without terminal result")
}

// finalize assembles the immutable result, consumes quota and records the
// audit entry.
func (o *Orchestrator) finalize(req types.ContentRequest, angle angles.Angle, concept concepts.Concept,
	content parsedContent, model string, tierIdx, score int) types.ContentResult {

	result := types.ContentResult{
		ID:           uuid.NewString(),
		Headline:     content.Headline,
		Subheadline:  content.Subheadline,
		Caption:      content.Caption,
		CallToAction: content.CallToAction,
		Hashtags:     sizeHashtags(content.Hashtags, req),
		Angle:        string(angle),
		Concept:      concept.Name(),
		Tier:         tierIdx,
		Score:        score,
		Model:        model,
		GeneratedAt:  time.Now(),
	}

	if o.limiter != nil && req.UserID != "" {
		o.limiter.Consume(req.UserID)
	}
	if o.audit != nil {
		rec := AuditRecord{
			ResultID:    result.ID,
			BrandKey:    req.BrandKey(),
			Platform:    req.Platform,
			Angle:       result.Angle,
			Tier:        result.Tier,
			Score:       result.Score,
			Model:       result.Model,
			GeneratedAt: result.GeneratedAt,
		}
		if err := o.audit.RecordGeneration(rec); err != nil {
			logging.Get(logging.CategoryGeneration).Warn("audit record failed", zap.Error(err))
		}
	}

	logging.Get(logging.CategoryGeneration).Info("content generated",
		zap.String("brand", req.BrandKey()),
		zap.String("platform", req.Platform),
		zap.Int("tier", tierIdx),
		zap.Int("score", score),
		zap.String("angle", result.Angle))
	return result
}

// callProvider runs one bounded external call. Any failure, including a
// deadline, is a capability error.
func (o *Orchestrator) callProvider(ctx context.Context, prompt string, tierIdx int) (Response, error) {
	if o.provider == nil || !o.provider.Available() {
		return Response{}, fmt.Errorf("%w: no provider configured", ErrCapability)
	}

	cfg, _ := o.policy()
	callCtx, cancel := context.WithTimeout(ctx, cfg.Generation.TierTimeout(tierIdx))
	defer cancel()

	resp, err := o.provider.Generate(callCtx, Request{
		Prompt:      prompt,
		MaxTokens:   cfg.Generation.MaxOutputTokens,
		Temperature: cfg.Generation.Temperature,
	})
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrCapability, err)
	}
	return resp, nil
}

func (o *Orchestrator) attemptPrimary(ctx context.Context, req types.ContentRequest, angle angles.Angle, concept concepts.Concept) (parsedContent, string, error) {
	resp, err := o.callProvider(ctx, buildPrimaryPrompt(req, angle, concept), 0)
	if err != nil {
		return parsedContent{}, "", err
	}
	content, err := parseResponse(resp.Text)
	if err != nil {
		return parsedContent{}, "", fmt.Errorf("%w: %v", ErrCapability, err)
	}
	return content, resp.Model, nil
}

func (o *Orchestrator) attemptSimplified(ctx context.Context, req types.ContentRequest, angle angles.Angle, _ concepts.Concept) (parsedContent, string, error) {
	resp, err := o.callProvider(ctx, buildSimplifiedPrompt(req, angle), 1)
	if err != nil {
		return parsedContent{}, "", err
	}
	content, err := parseResponse(resp.Text)
	if err != nil {
		return parsedContent{}, "", fmt.Errorf("%w: %v", ErrCapability, err)
	}
	return content, resp.Model, nil
}

// attemptEmergency asks for a single phrase and completes the rest locally.
func (o *Orchestrator) attemptEmergency(ctx context.Context, req types.ContentRequest, angle angles.Angle, concept concepts.Concept) (parsedContent, string, error) {
	resp, err := o.callProvider(ctx, buildEmergencyPrompt(req), 2)
	if err != nil {
		return parsedContent{}, "", err
	}
	phrase := postProcess(firstLine(resp.Text))
	if len(phrase) < 3 {
		return parsedContent{}, "", fmt.Errorf("%w: emergency phrase too short", ErrCapability)
	}
	content := synthesize(req, angle, concept)
	content.Headline = phrase
	return content, resp.Model, nil
}

func (o *Orchestrator) attemptSynthesis(_ context.Context, req types.ContentRequest, angle angles.Angle, concept concepts.Concept) (parsedContent, string, error) {
	return synthesize(req, angle, concept), "local-synthesis", nil
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// GenerateForPlatforms fans one request out across platforms concurrently.
// Each platform keeps its own angle cycle, so results are independent; the
// first error (quota or cancellation) cancels the remaining platforms.
func (o *Orchestrator) GenerateForPlatforms(ctx context.Context, req types.ContentRequest, platforms []string) (map[string]types.ContentResult, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	results := make(map[string]types.ContentResult, len(platforms))
	for _, platform := range platforms {
		g.Go(func() error {
			platformReq := req
			platformReq.Platform = platform
			res, err := o.GenerateContent(ctx, platformReq)
			if err != nil {
				return fmt.Errorf("platform %s: %w", platform, err)
			}
			mu.Lock()
			results[platform] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
