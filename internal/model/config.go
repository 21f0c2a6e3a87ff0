package model

import "time"

// Config is the complete runtime configuration.
// Hierarchy: CLI flags > VIETCHECK_* env vars > config file > defaults.
type Config struct {
	LLM          LLMConfig          `yaml:"llm" json:"llm" mapstructure:"llm"`
	Cache        CacheConfig        `yaml:"cache" json:"cache" mapstructure:"cache"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" json:"rate_limiting" mapstructure:"rate_limiting"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" json:"concurrency" mapstructure:"concurrency"`
	Output       OutputConfig       `yaml:"output" json:"output" mapstructure:"output"`
	Strategy     StrategyConfig     `yaml:"strategy" json:"strategy" mapstructure:"strategy"`
	Parser       ParserConfig       `yaml:"parser" json:"parser" mapstructure:"parser"`
	News         NewsConfig         `yaml:"news" json:"news" mapstructure:"news"`
}

// LLMConfig configures the external analysis service
type LLMConfig struct {
	// Provider name: "gemini" (default) or "openai"
	Provider string `yaml:"provider" json:"provider" mapstructure:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model" json:"model" mapstructure:"model"`

	// APIKey is taken from the environment, never from the config file
	APIKey string `yaml:"-" json:"-" mapstructure:"-"`

	// BaseURL for OpenAI-compatible endpoints
	BaseURL string `yaml:"base_url,omitempty" json:"base_url,omitempty" mapstructure:"base_url"`

	// Timeout for a single analysis call
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`

	// MaxTokens limits the response length
	MaxTokens int `yaml:"max_tokens" json:"max_tokens" mapstructure:"max_tokens"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" json:"ttl" mapstructure:"ttl"`
}

type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" json:"burst_size" mapstructure:"burst_size"`
}

type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers" mapstructure:"workers"`
}

type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer" mapstructure:"include_footer"`
}

// RegistryQuery is one site-restricted search template. Keyword, when set,
// is appended after the subject value in the query.
type RegistryQuery struct {
	Site    string `yaml:"site" json:"site" mapstructure:"site"`
	Keyword string `yaml:"keyword,omitempty" json:"keyword,omitempty" mapstructure:"keyword"`
}

// StrategyConfig holds the search-strategy tables. The keyword and registry
// sets are heuristics tuned against the external model's typical phrasing,
// so they are configuration rather than literals.
type StrategyConfig struct {
	// NationalRegistries are official warning portals, scanned for every subject
	NationalRegistries []RegistryQuery `yaml:"national_registries" json:"national_registries" mapstructure:"national_registries"`

	// WebsiteRegistries prioritize site-trust and malware-scan services
	WebsiteRegistries []RegistryQuery `yaml:"website_registries" json:"website_registries" mapstructure:"website_registries"`

	// FacebookRegistries are peer-reported scam trackers for profile subjects
	FacebookRegistries []RegistryQuery `yaml:"facebook_registries" json:"facebook_registries" mapstructure:"facebook_registries"`

	// PhoneBankRegistries are peer-reported scam trackers for phone/bank subjects
	PhoneBankRegistries []RegistryQuery `yaml:"phone_bank_registries" json:"phone_bank_registries" mapstructure:"phone_bank_registries"`

	// LookupURLTemplate is the direct registry lookup for phone/bank values,
	// interpolated with the subject value
	LookupURLTemplate string `yaml:"lookup_url_template" json:"lookup_url_template" mapstructure:"lookup_url_template"`

	// RiskKeywords pair with the subject value in the expansion block
	RiskKeywords []string `yaml:"risk_keywords" json:"risk_keywords" mapstructure:"risk_keywords"`

	// WebsiteKeywords are added for website subjects only
	WebsiteKeywords []string `yaml:"website_keywords" json:"website_keywords" mapstructure:"website_keywords"`
}

// ParserConfig holds the keyword tiers of the risk classifier,
// evaluated in strict priority order
type ParserConfig struct {
	HighRiskTerms []string `yaml:"high_risk_terms" json:"high_risk_terms" mapstructure:"high_risk_terms"`
	WarningTerms  []string `yaml:"warning_terms" json:"warning_terms" mapstructure:"warning_terms"`
	AbsenceTerms  []string `yaml:"absence_terms" json:"absence_terms" mapstructure:"absence_terms"`
	PositiveTerms []string `yaml:"positive_terms" json:"positive_terms" mapstructure:"positive_terms"`
}

type NewsConfig struct {
	Count      int           `yaml:"count" json:"count" mapstructure:"count"`
	WindowDays int           `yaml:"window_days" json:"window_days" mapstructure:"window_days"`
	CacheTTL   time.Duration `yaml:"cache_ttl" json:"cache_ttl" mapstructure:"cache_ttl"`
}

// DefaultConfig returns the tuned defaults
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:  "gemini",
			Model:     "gemini-3-flash-preview",
			Timeout:   90 * time.Second,
			MaxTokens: 2048,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 1,
			BurstSize:         2,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		Strategy: DefaultStrategyConfig(),
		Parser:   DefaultParserConfig(),
		News: NewsConfig{
			Count:      6,
			WindowDays: 7,
			CacheTTL:   30 * time.Minute,
		},
	}
}

// DefaultStrategyConfig returns the built-in registry and keyword tables
func DefaultStrategyConfig() StrategyConfig {
	return StrategyConfig{
		NationalRegistries: []RegistryQuery{
			{Site: "canhbao.ncsc.gov.vn"},
			{Site: "tinnhiemmang.vn"},
			{Site: "phongchongluadao.vn"},
		},
		WebsiteRegistries: []RegistryQuery{
			{Site: "chongluadao.vn"},
			{Site: "scamadviser.com"},
			{Site: "virustotal.com"},
			{Site: "tinhte.vn", Keyword: "lừa đảo"},
			{Site: "voz.vn", Keyword: "lừa đảo"},
			{Site: "reviewcongty.com"},
		},
		FacebookRegistries: []RegistryQuery{
			{Site: "checkscam.vn"},
			{Site: "scam.vn"},
			{Site: "mmo4me.com"},
			{Site: "admin.vn"},
		},
		PhoneBankRegistries: []RegistryQuery{
			{Site: "checkscam.vn"},
			{Site: "scam.vn"},
			{Site: "mmo4me.com"},
			{Site: "admin.vn"},
			{Site: "toiuytin.com"},
			{Site: "otofun.net", Keyword: "lừa đảo"},
			{Site: "lamchame.com", Keyword: "lừa đảo"},
		},
		LookupURLTemplate: "https://checkscam.vn/?qh_ss=%s",
		RiskKeywords: []string{
			"lừa đảo", "scam", "phốt", "cảnh báo", "blacklist",
			"bùng hàng", "gian lận", "bom hàng", "tố cáo",
		},
		WebsiteKeywords: []string{
			"giả mạo", "phishing", "fake", "không uy tín", "đánh giá", "review",
		},
	}
}

// DefaultParserConfig returns the built-in classification keyword tiers
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		HighRiskTerms: []string{
			"rủi ro cao", "lừa đảo", "scam", "phishing", "giả mạo", "fake bill",
		},
		WarningTerms: []string{
			"cảnh báo", "nghi ngờ", "spam", "điểm tín nhiệm thấp", "nick ảo", "bất thường",
		},
		AbsenceTerms: []string{
			"an toàn", "chưa ghi nhận", "không tìm thấy",
		},
		PositiveTerms: []string{
			"an toàn", "sạch", "tín nhiệm cao",
		},
	}
}
