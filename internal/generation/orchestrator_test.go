package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"brandforge/internal/config"
	"brandforge/internal/quota"
	"brandforge/internal/types"
)

// coherentResponse scores well above the clean pass threshold.
const coherentResponse = `HEADLINE: Save Time Today
CAPTION: Our service saves you hours every week, guaranteed.
CTA: Book now
HASHTAGS: #fast #local`

// driftingResponse parses fine but scores far below the trusted floor:
// urgency headline against boilerplate quality copy.
const driftingResponse = `HEADLINE: Hurry Now Today
CAPTION: Quality you can trust, committed to excellence always in every premium detail.`

// borderlineResponse lands between the trusted floor and the pass score: the
// headline promises speed while the caption delivers quality.
const borderlineResponse = `HEADLINE: Quick Fresh Service Daily
CAPTION: Fresh quality crafted service from our kitchen, premium plates every night.`

func testRequest(platform string) types.ContentRequest {
	return types.ContentRequest{
		BusinessName:     "Luigi's",
		BusinessCategory: "services",
		Platform:         platform,
		Location:         "Brooklyn",
	}
}

func TestGenerateContent_PrimaryAccepted(t *testing.T) {
	provider := newScriptedProvider(scriptStep{text: coherentResponse})
	orch := New(config.Default(), provider)

	res, err := orch.GenerateContent(context.Background(), testRequest("instagram"))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Tier)
	assert.Equal(t, "Save Time Today", res.Headline)
	assert.Equal(t, "scripted", res.Model)
	assert.GreaterOrEqual(t, res.Score, 60)
	assert.NotEmpty(t, res.ID)
	assert.NotEmpty(t, res.Angle)
	assert.Contains(t, res.Concept, " / ")
	assert.Len(t, res.Hashtags, 5)
	assert.Equal(t, 1, provider.callCount())
}

func TestGenerateContent_FailureAdvancesToNextTier(t *testing.T) {
	provider := newScriptedProvider(
		scriptStep{err: errors.New("upstream 503")},
		scriptStep{text: coherentResponse},
	)
	orch := New(config.Default(), provider)

	res, err := orch.GenerateContent(context.Background(), testRequest("facebook"))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Tier)
	assert.Equal(t, 2, provider.callCount())
}

func TestGenerateContent_RejectionAdvancesToStructuralTier(t *testing.T) {
	// Every scripted reply drifts, so both coherence-gated tiers reject it.
	// The emergency tier only needs a usable phrase, so it accepts.
	provider := newScriptedProvider(scriptStep{text: borderlineResponse})
	orch := New(config.Default(), provider)

	res, err := orch.GenerateContent(context.Background(), testRequest("instagram"))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Tier)
	assert.Equal(t, 3, provider.callCount())
	assert.Equal(t, "Quick Fresh Service Daily", res.Headline)
	assert.NotEmpty(t, res.Caption)
}

func TestGenerateContent_TrustedCategoryOverride(t *testing.T) {
	provider := newScriptedProvider(scriptStep{text: borderlineResponse})
	orch := New(config.Default(), provider)

	req := testRequest("instagram")
	req.BusinessCategory = "restaurant"

	res, err := orch.GenerateContent(context.Background(), req)
	require.NoError(t, err)

	// The first tier keeps the output despite the failed acceptance rule
	// because restaurants are trusted and the score clears the floor.
	assert.Equal(t, 0, res.Tier)
	assert.Equal(t, 1, provider.callCount())
	assert.GreaterOrEqual(t, res.Score, config.Default().Coherence.TrustedFloorScore)
	assert.Less(t, res.Score, config.Default().Coherence.CleanPassScore)
}

func TestGenerateContent_NoOverrideBelowFloor(t *testing.T) {
	provider := newScriptedProvider(scriptStep{text: driftingResponse})
	orch := New(config.Default(), provider)

	req := testRequest("instagram")
	req.BusinessCategory = "restaurant"

	res, err := orch.GenerateContent(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Tier)
}

func TestGenerateContent_TerminalSynthesis(t *testing.T) {
	t.Run("nil provider", func(t *testing.T) {
		orch := New(config.Default(), nil)

		res, err := orch.GenerateContent(context.Background(), testRequest("instagram"))
		require.NoError(t, err)

		assert.Equal(t, 3, res.Tier)
		assert.Equal(t, "local-synthesis", res.Model)
		assert.NotEmpty(t, res.Headline)
		assert.NotEmpty(t, res.Caption)
		assert.NotEmpty(t, res.CallToAction)
		assert.Len(t, res.Hashtags, 5)
	})

	t.Run("always failing provider", func(t *testing.T) {
		provider := newScriptedProvider(scriptStep{err: errors.New("connection refused")})
		orch := New(config.Default(), provider)

		res, err := orch.GenerateContent(context.Background(), testRequest("instagram"))
		require.NoError(t, err)

		assert.Equal(t, 3, res.Tier)
		assert.Equal(t, "local-synthesis", res.Model)
		assert.Equal(t, 3, provider.callCount())
	})

	t.Run("unavailable provider", func(t *testing.T) {
		provider := newScriptedProvider(scriptStep{text: coherentResponse})
		provider.available = false
		orch := New(config.Default(), provider)

		res, err := orch.GenerateContent(context.Background(), testRequest("twitter"))
		require.NoError(t, err)

		assert.Equal(t, 3, res.Tier)
		assert.Equal(t, 0, provider.callCount())
		assert.Len(t, res.Hashtags, 2)
	})

	t.Run("copy names the business", func(t *testing.T) {
		orch := New(config.Default(), nil)

		res, err := orch.GenerateContent(context.Background(), testRequest("facebook"))
		require.NoError(t, err)
		assert.Contains(t, res.Headline, "Luigi's")
		assert.Contains(t, res.Caption, "Luigi's")
	})
}

func TestGenerateContent_QuotaExceeded(t *testing.T) {
	cfg := config.Default()
	cfg.Quota.MonthlyLimit = 1
	orch := New(cfg, nil)

	req := testRequest("instagram")
	req.UserID = "user-1"

	_, err := orch.GenerateContent(context.Background(), req)
	require.NoError(t, err)

	_, err = orch.GenerateContent(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, quota.ErrQuotaExceeded))
}

func TestGenerateContent_QuotaSkippedWithoutUser(t *testing.T) {
	cfg := config.Default()
	cfg.Quota.MonthlyLimit = 0
	orch := New(cfg, nil)

	_, err := orch.GenerateContent(context.Background(), testRequest("instagram"))
	assert.NoError(t, err)
}

func TestGenerateContent_Cancelled(t *testing.T) {
	orch := New(config.Default(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := orch.GenerateContent(ctx, testRequest("instagram"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGenerateContent_AuditRecorded(t *testing.T) {
	audit := &memoryAudit{}
	orch := New(config.Default(), nil, WithAudit(audit))

	req := testRequest("linkedin")
	res, err := orch.GenerateContent(context.Background(), req)
	require.NoError(t, err)

	records := audit.all()
	require.Len(t, records, 1)
	assert.Equal(t, res.ID, records[0].ResultID)
	assert.Equal(t, req.BrandKey(), records[0].BrandKey)
	assert.Equal(t, "linkedin", records[0].Platform)
	assert.Equal(t, 3, records[0].Tier)
}

func TestGenerateContent_AuditFailureIsNotFatal(t *testing.T) {
	audit := &memoryAudit{err: errors.New("disk full")}
	orch := New(config.Default(), nil, WithAudit(audit))

	_, err := orch.GenerateContent(context.Background(), testRequest("instagram"))
	assert.NoError(t, err)
}

func TestSetPolicy_TightensAcceptance(t *testing.T) {
	orch := New(config.Default(), nil)

	before := orch.ValidateCoherence("Save Time Today",
		"Our service saves you hours every week, guaranteed.", "services")
	assert.True(t, before.IsCoherent())

	strict := config.Default()
	strict.Coherence.PassScore = 100
	strict.Coherence.CleanPassScore = 100
	orch.SetPolicy(strict)

	after := orch.ValidateCoherence("Save Time Today",
		"Our service saves you hours every week, guaranteed.", "services")
	assert.False(t, after.IsCoherent())
}

func TestGenerateForPlatforms(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))

	orch := New(config.Default(), nil)
	platforms := []string{"instagram", "twitter", "linkedin"}

	results, err := orch.GenerateForPlatforms(context.Background(), testRequest(""), platforms)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Len(t, results["instagram"].Hashtags, 5)
	assert.Len(t, results["twitter"].Hashtags, 2)
	assert.Len(t, results["linkedin"].Hashtags, 3)
	for platform, res := range results {
		assert.Equal(t, 3, res.Tier)
		assert.NotEmpty(t, res.Headline, "platform %s", platform)
	}
}

func TestGenerateForPlatforms_QuotaErrorCancels(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))

	cfg := config.Default()
	cfg.Quota.MonthlyLimit = 0
	orch := New(cfg, nil)

	req := testRequest("")
	req.UserID = "user-1"

	results, err := orch.GenerateForPlatforms(context.Background(), req, []string{"instagram", "facebook"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, quota.ErrQuotaExceeded))
	assert.Nil(t, results)
}
