package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/vietcheck/vietcheck/internal/model"
)

func loadConfigFrom(t *testing.T, yamlContent string) *model.Config {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatal(err)
	}

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("read config: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

func TestLoadConfig_MultiWordKeys(t *testing.T) {
	cfg := loadConfigFrom(t, `
llm:
  provider: openai
  max_tokens: 512
rate_limiting:
  requests_per_second: 9
strategy:
  risk_keywords: [custom-keyword]
  lookup_url_template: "https://tracker.example/?q=%s"
  national_registries:
    - site: registry.example
parser:
  high_risk_terms: [custom-term]
news:
  window_days: 3
`)

	if cfg.LLM.Provider != "openai" {
		t.Errorf("Expected provider openai, got %q", cfg.LLM.Provider)
	}
	if cfg.LLM.MaxTokens != 512 {
		t.Errorf("Expected max_tokens 512, got %d", cfg.LLM.MaxTokens)
	}
	if cfg.RateLimiting.RequestsPerSecond != 9 {
		t.Errorf("Expected requests_per_second 9, got %v", cfg.RateLimiting.RequestsPerSecond)
	}
	if len(cfg.Strategy.RiskKeywords) != 1 || cfg.Strategy.RiskKeywords[0] != "custom-keyword" {
		t.Errorf("Expected risk_keywords override, got %v", cfg.Strategy.RiskKeywords)
	}
	if cfg.Strategy.LookupURLTemplate != "https://tracker.example/?q=%s" {
		t.Errorf("Expected lookup_url_template override, got %q", cfg.Strategy.LookupURLTemplate)
	}
	if len(cfg.Strategy.NationalRegistries) != 1 || cfg.Strategy.NationalRegistries[0].Site != "registry.example" {
		t.Errorf("Expected national_registries override, got %v", cfg.Strategy.NationalRegistries)
	}
	if len(cfg.Parser.HighRiskTerms) != 1 || cfg.Parser.HighRiskTerms[0] != "custom-term" {
		t.Errorf("Expected high_risk_terms override, got %v", cfg.Parser.HighRiskTerms)
	}
	if cfg.News.WindowDays != 3 {
		t.Errorf("Expected window_days 3, got %d", cfg.News.WindowDays)
	}

	// keys absent from the file keep their defaults
	if cfg.Cache.TTL != model.DefaultConfig().Cache.TTL {
		t.Errorf("Expected default cache TTL, got %v", cfg.Cache.TTL)
	}
}

func TestLoadConfig_DurationKeys(t *testing.T) {
	cfg := loadConfigFrom(t, `
llm:
  timeout: 30s
cache:
  ttl: 5m
`)
	if got := cfg.LLM.Timeout.Seconds(); got != 30 {
		t.Errorf("Expected 30s timeout, got %vs", got)
	}
	if got := cfg.Cache.TTL.Minutes(); got != 5 {
		t.Errorf("Expected 5m cache TTL, got %vm", got)
	}
}

func TestUserFacing(t *testing.T) {
	typed := model.NewConfigurationError(model.MsgNoAPIKey)
	if got := userFacing(typed); got.Error() != model.MsgNoAPIKey {
		t.Errorf("Expected bare display message, got %q", got)
	}

	// an unrecognized provider must surface its own message, not the
	// generic overload text
	plain := errors.New("unknown LLM provider: anthropic (supported: gemini, openai)")
	if got := userFacing(plain); got != plain {
		t.Errorf("Expected untyped error to pass through, got %q", got)
	}
	if got := userFacing(plain); got.Error() == model.MsgServiceOverloaded {
		t.Error("Untyped errors must not degrade to the overload message")
	}
}
