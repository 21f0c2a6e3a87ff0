// Package llm is the gateway to the external search-augmented analysis
// service. Providers are constructed eagerly so a missing credential fails
// before any request is accepted.
package llm

import (
	"context"
	"time"

	"github.com/vietcheck/vietcheck/internal/model"
)

// Provider defines the contract with the external analysis service
type Provider interface {
	// Name returns the provider name
	Name() string

	// Analyze performs one blocking investigation call and returns the raw
	// answer text plus any grounding citations, unfiltered
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)

	// FetchNews requests a JSON array of recent news items and returns the
	// raw response body
	FetchNews(ctx context.Context, req NewsRequest) (string, error)
}

// AnalyzeRequest carries the composed directive and optional image payload
type AnalyzeRequest struct {
	// Directive is the full investigation instruction text
	Directive string

	// Image holds raw screenshot bytes for image checks (nil otherwise)
	Image     []byte
	ImageMIME string

	// Model overrides the configured model when non-empty
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// AnalyzeResponse is the untouched model output
type AnalyzeResponse struct {
	Text      string
	Citations []model.Citation
	Model     string
}

// NewsRequest asks for a fixed count of recent dated news items
type NewsRequest struct {
	Prompt string
	Model  string
	Count  int
}

// Config holds provider configuration
type Config struct {
	// Provider name: "gemini" or "openai"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for the external service
	APIKey string

	// BaseURL for OpenAI-compatible endpoints
	BaseURL string

	// Timeout for a single call
	Timeout time.Duration

	// MaxTokens for response generation
	MaxTokens int
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:  c.Provider,
		Model:     c.Model,
		APIKey:    c.APIKey,
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
		MaxTokens: c.MaxTokens,
	}
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return 90 * time.Second
	}
	return c.Timeout
}
