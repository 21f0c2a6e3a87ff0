// Package pipeline orchestrates a reputation check: normalize the request,
// compose the directive, call the analysis gateway and parse the answer
// into a typed verdict.
package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/vietcheck/vietcheck/internal/cache"
	"github.com/vietcheck/vietcheck/internal/llm"
	"github.com/vietcheck/vietcheck/internal/model"
	"github.com/vietcheck/vietcheck/internal/normalize"
	"github.com/vietcheck/vietcheck/internal/parse"
	"github.com/vietcheck/vietcheck/internal/strategy"
	"go.uber.org/zap"
)

// Pipeline wires the reputation-check stages together. Request-scoped state
// only; safe for concurrent use.
type Pipeline struct {
	builder  *strategy.Builder
	provider llm.Provider
	parser   *parse.VerdictParser
	cache    cache.Cache
	logger   *zap.Logger
	config   *model.Config
}

// NewPipeline constructs the pipeline and its provider from configuration.
// A missing API credential fails here, before any request is accepted.
func NewPipeline(cfg *model.Config, logger *zap.Logger) (*Pipeline, error) {
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, err
	}
	throttled := llm.NewThrottled(provider, cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)
	return NewPipelineWithProvider(cfg, logger, throttled), nil
}

// NewPipelineWithProvider constructs the pipeline around an injected
// provider, so tests can substitute a fake gateway
func NewPipelineWithProvider(cfg *model.Config, logger *zap.Logger, provider llm.Provider) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}
	return &Pipeline{
		builder:  strategy.NewBuilder(cfg.Strategy),
		provider: provider,
		parser:   parse.NewVerdictParser(cfg.Parser),
		cache:    c,
		logger:   logger,
		config:   cfg,
	}
}

// CheckReputation runs one request through the full pipeline
func (p *Pipeline) CheckReputation(ctx context.Context, req model.CheckRequest) (*model.Verdict, error) {
	input, err := normalize.Resolve(req)
	if err != nil {
		return nil, err
	}

	key := cacheKey(input)
	if cached, ok := p.cachedVerdict(key); ok {
		p.logger.Debug("cache hit", zap.String("key", key))
		return cached, nil
	}

	areq := llm.AnalyzeRequest{MaxTokens: p.config.LLM.MaxTokens}
	if input.Image != nil {
		areq.Directive = p.builder.BuildImage()
		areq.Image = input.Image
		areq.ImageMIME = input.ImageMIME
	} else {
		areq.Directive = p.builder.Build(*input.Subject)
	}

	resp, err := p.provider.Analyze(ctx, areq)
	if err != nil {
		if model.IsConfiguration(err) {
			return nil, err
		}
		p.logger.Error("analysis call failed",
			zap.String("provider", p.provider.Name()),
			zap.Error(err))
		return nil, model.NewUpstreamError(model.MsgServiceOverloaded, err)
	}

	verdict := p.parser.Parse(resp.Text, resp.Citations)
	verdict.Subject = input.Subject
	verdict.CheckedAt = time.Now().UTC()
	verdict.Model = resp.Model

	p.storeVerdict(key, verdict)
	return verdict, nil
}

// FetchScamNews returns recent scam-warning news. It never fails past this
// boundary: transport and parse errors degrade to an empty list.
func (p *Pipeline) FetchScamNews(ctx context.Context) []model.NewsItem {
	if p.cache != nil {
		if data, ok := p.cache.Get(cache.NewsKey()); ok {
			var items []model.NewsItem
			if err := json.Unmarshal(data, &items); err == nil {
				return items
			}
		}
	}

	raw, err := p.provider.FetchNews(ctx, llm.NewsRequest{
		Prompt: strategy.NewsPrompt(p.config.News.Count, p.config.News.WindowDays),
		Count:  p.config.News.Count,
	})
	if err != nil {
		p.logger.Warn("news fetch failed", zap.Error(err))
		return []model.NewsItem{}
	}

	items := parse.News(raw)
	if items == nil {
		items = []model.NewsItem{}
	}

	if p.cache != nil && len(items) > 0 {
		if data, err := json.Marshal(items); err == nil {
			_ = p.cache.Set(cache.NewsKey(), data, p.config.News.CacheTTL)
		}
	}
	return items
}

// RuleOverlap exposes the parser's tier-overlap diagnostic
func (p *Pipeline) RuleOverlap() []string {
	return p.parser.RuleOverlap()
}

func cacheKey(input *normalize.Input) string {
	if input.Image != nil {
		return cache.ImageKey(input.Image)
	}
	return cache.SubjectKey(*input.Subject)
}

func (p *Pipeline) cachedVerdict(key string) (*model.Verdict, bool) {
	if p.cache == nil {
		return nil, false
	}
	data, ok := p.cache.Get(key)
	if !ok {
		return nil, false
	}
	var verdict model.Verdict
	if err := json.Unmarshal(data, &verdict); err != nil {
		return nil, false
	}
	return &verdict, true
}

func (p *Pipeline) storeVerdict(key string, verdict *model.Verdict) {
	if p.cache == nil {
		return
	}
	data, err := json.Marshal(verdict)
	if err != nil {
		return
	}
	_ = p.cache.Set(key, data, p.config.Cache.TTL)
}
