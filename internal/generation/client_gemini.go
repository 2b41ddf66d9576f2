package generation

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"brandforge/internal/config"
)

// GeminiProvider generates content through the Google GenAI API.
type GeminiProvider struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewGeminiProvider creates a Gemini-backed provider.
func NewGeminiProvider(cfg config.LLMConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	return &GeminiProvider{
		client:  client,
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

// Name implements Provider.
func (p *GeminiProvider) Name() string { return "gemini" }

// Available implements Provider.
func (p *GeminiProvider) Available() bool { return p.client != nil }

// Generate implements Provider.
func (p *GeminiProvider) Generate(ctx context.Context, req Request) (Response, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return Response{}, fmt.Errorf("rate limit wait: %w", err)
	}

	genCfg := &genai.GenerateContentConfig{}
	if req.Temperature > 0 {
		genCfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		genCfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.Prompt), genCfg)
	if err != nil {
		return Response{}, fmt.Errorf("gemini generate failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return Response{}, fmt.Errorf("gemini returned empty response")
	}
	return Response{Text: text, Model: p.model}, nil
}
