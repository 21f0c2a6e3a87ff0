package llm

import (
	"testing"

	"github.com/vietcheck/vietcheck/internal/model"
)

func TestNewProvider_MissingCredential(t *testing.T) {
	for _, name := range []string{"", "gemini", "openai"} {
		_, err := NewProvider(Config{Provider: name})
		if err == nil {
			t.Errorf("Expected configuration error for provider %q without API key", name)
			continue
		}
		if !model.IsConfiguration(err) {
			t.Errorf("Expected configuration error kind for %q, got %v", name, err)
		}
		if model.UserMessage(err) != model.MsgNoAPIKey {
			t.Errorf("Expected user message %q, got %q", model.MsgNoAPIKey, model.UserMessage(err))
		}
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(Config{Provider: "anthropic", APIKey: "k"})
	if err == nil {
		t.Fatal("Expected error for unknown provider")
	}
	if model.IsConfiguration(err) {
		t.Error("Unknown provider is a programming error, not a missing credential")
	}
}

func TestOpenAIProvider_Construction(t *testing.T) {
	p, err := NewOpenAIProvider(Config{APIKey: "k", BaseURL: "http://localhost:11434/v1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("Expected provider name openai, got %q", p.Name())
	}
}
