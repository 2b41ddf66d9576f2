// Package generation orchestrates the fallback chain of content generation
// attempts, from the richest external prompt down to deterministic local
// synthesis.
package generation

import (
	"context"
	"errors"
	"fmt"

	"brandforge/internal/config"
)

// Capability failures and validation rejections never escape the
// orchestrator; they only advance the tier chain.
var (
	// ErrCapability wraps any failure of an external generation call:
	// network, timeout, malformed response.
	ErrCapability = errors.New("generation capability failure")

	// ErrValidationRejected marks a structurally valid response that failed
	// the coherence acceptance rule.
	ErrValidationRejected = errors.New("rejected by coherence validation")
)

// Request is one prompt request to an external provider.
type Request struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Response is the provider's unstructured reply; the engine does all
// parsing.
type Response struct {
	Text  string
	Model string
}

// Provider is the external generation capability. Implementations must honor
// context cancellation and deadlines.
type Provider interface {
	Name() string
	Available() bool
	Generate(ctx context.Context, req Request) (Response, error)
}

// NewProvider builds the configured provider.
func NewProvider(cfg config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "gemini", "":
		return NewGeminiProvider(cfg)
	case "openai":
		return NewOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown provider %q (expected gemini or openai)", cfg.Provider)
	}
}
