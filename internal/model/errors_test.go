package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestUserErrorKinds(t *testing.T) {
	validation := NewValidationError(MsgNoSubject)
	if !IsValidation(validation) || IsUpstream(validation) || IsConfiguration(validation) {
		t.Error("Validation error misclassified")
	}

	config := NewConfigurationError(MsgNoAPIKey)
	if !IsConfiguration(config) {
		t.Error("Configuration error misclassified")
	}

	cause := errors.New("dial tcp: timeout")
	upstream := NewUpstreamError(MsgServiceOverloaded, cause)
	if !IsUpstream(upstream) {
		t.Error("Upstream error misclassified")
	}
	if !errors.Is(upstream, cause) {
		t.Error("Expected cause to be reachable through Unwrap")
	}
}

func TestUserErrorWrapped(t *testing.T) {
	inner := NewValidationError(MsgInvalidImage)
	wrapped := fmt.Errorf("check request: %w", inner)

	if !IsValidation(wrapped) {
		t.Error("Expected kind predicate to see through wrapping")
	}
	if got := UserMessage(wrapped); got != MsgInvalidImage {
		t.Errorf("Expected %q, got %q", MsgInvalidImage, got)
	}
}

func TestUserMessage_Fallback(t *testing.T) {
	if got := UserMessage(errors.New("raw transport error")); got != MsgServiceOverloaded {
		t.Errorf("Expected generic fallback message, got %q", got)
	}
}

func TestNewsItemValidate(t *testing.T) {
	tests := []struct {
		name  string
		item  NewsItem
		valid bool
	}{
		{"complete", NewsItem{Title: "Cảnh báo", URL: "https://x", Source: "Báo"}, true},
		{"minimal", NewsItem{Title: "t", URL: "https://x"}, true},
		{"missing title", NewsItem{URL: "https://x"}, false},
		{"missing url", NewsItem{Title: "t"}, false},
		{"empty", NewsItem{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.valid && err != nil {
				t.Errorf("Expected valid item, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("Expected validation failure")
			}
		})
	}
}
