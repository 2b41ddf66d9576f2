package generation

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"golang.org/x/time/rate"

	"brandforge/internal/config"
)

// OpenAIProvider generates content through the OpenAI chat completions API.
type OpenAIProvider struct {
	client  openai.Client
	model   string
	limiter *rate.Limiter
}

// NewOpenAIProvider creates an OpenAI-backed provider.
func NewOpenAIProvider(cfg config.LLMConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	model := cfg.Model
	if model == "" || strings.HasPrefix(model, "gemini") {
		model = "gpt-4o-mini"
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	return &OpenAIProvider{
		client:  openai.NewClient(opts...),
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string { return "openai" }

// Available implements Provider.
func (p *OpenAIProvider) Available() bool { return p.model != "" }

// Generate implements Provider.
func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (Response, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return Response{}, fmt.Errorf("rate limit wait: %w", err)
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return Response{}, fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, fmt.Errorf("openai returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return Response{}, fmt.Errorf("openai returned empty response")
	}
	return Response{Text: text, Model: p.model}, nil
}
