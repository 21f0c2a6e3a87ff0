package llm

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

const defaultRetryDelay = 2 * time.Second

// Throttled wraps a Provider with an outbound rate limit and a single
// retry on transient failure. Validation never reaches this layer, so any
// non-context error is treated as transient.
type Throttled struct {
	inner      Provider
	limiter    *rate.Limiter
	retryDelay time.Duration
}

// NewThrottled wraps a provider with the given requests-per-second budget
func NewThrottled(inner Provider, requestsPerSecond float64, burst int) *Throttled {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &Throttled{
		inner:      inner,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		retryDelay: defaultRetryDelay,
	}
}

// Name returns the wrapped provider's name
func (t *Throttled) Name() string {
	return t.inner.Name()
}

// Analyze waits for rate-limit clearance and retries once on failure
func (t *Throttled) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := t.inner.Analyze(ctx, req)
	if err == nil || !t.shouldRetry(ctx, err) {
		return resp, err
	}

	if err := t.backoff(ctx); err != nil {
		return nil, err
	}
	return t.inner.Analyze(ctx, req)
}

// FetchNews waits for rate-limit clearance and retries once on failure
func (t *Throttled) FetchNews(ctx context.Context, req NewsRequest) (string, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return "", err
	}

	raw, err := t.inner.FetchNews(ctx, req)
	if err == nil || !t.shouldRetry(ctx, err) {
		return raw, err
	}

	if err := t.backoff(ctx); err != nil {
		return "", err
	}
	return t.inner.FetchNews(ctx, req)
}

func (t *Throttled) shouldRetry(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	return err != nil
}

func (t *Throttled) backoff(ctx context.Context) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(t.retryDelay):
		return nil
	}
}
