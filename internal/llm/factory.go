package llm

import (
	"fmt"
	"strings"

	"github.com/vietcheck/vietcheck/internal/model"
)

// NewProvider creates a provider by name. A missing credential is a
// configuration error raised here, before any call is attempted.
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "gemini", "google", "":
		p, err := NewGeminiProvider(config)
		if err != nil {
			return nil, configurationError(err)
		}
		return p, nil

	case "openai":
		p, err := NewOpenAIProvider(config)
		if err != nil {
			return nil, configurationError(err)
		}
		return p, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: gemini, openai)", config.Provider)
	}
}

func configurationError(err error) error {
	return &model.UserError{
		Kind:    model.ErrKindConfiguration,
		Message: model.MsgNoAPIKey,
		Err:     err,
	}
}
