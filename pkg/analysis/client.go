package analysis

import (
	"context"
	"log/slog"
	"time"
)

// DefaultMaxRetries is the default number of attempts per analysis call.
const DefaultMaxRetries = 3

// RateLimiter is the throttle capability the client requires. Acquire
// blocks until a call is allowed.
type RateLimiter interface {
	Acquire()
}

// Options configure a Client. Zero values select defaults.
type Options struct {
	// MaxRetries is the number of attempts before giving up (default 3).
	MaxRetries int

	// Sleep is the backoff primitive, injectable for tests
	// (default time.Sleep).
	Sleep func(time.Duration)

	// Metrics receives client counters. Nil disables recording.
	Metrics *Metrics
}

// Client turns a raw TextGenerator backend into an Analyzer: it builds
// the prompt, throttles through the rate limiter, retries with
// exponential backoff, and repairs/parses the response.
type Client struct {
	backend    TextGenerator
	limiter    RateLimiter
	maxRetries int
	sleep      func(time.Duration)
	metrics    *Metrics
}

// NewClient creates an analysis client over the given backend and
// limiter.
func NewClient(backend TextGenerator, limiter RateLimiter, opts Options) *Client {
	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	slog.Info("analysis client initialized",
		"backend", backend.Name(),
		"max_retries", maxRetries,
	)
	return &Client{
		backend:    backend,
		limiter:    limiter,
		maxRetries: maxRetries,
		sleep:      sleep,
		metrics:    opts.Metrics,
	}
}

// AnalyzeUseCase implements Analyzer.
//
// Each attempt acquires a rate-limit token (blocking), invokes the
// backend, and parses the response. Any failure within an attempt is
// caught; remaining attempts are preceded by a 2^attempt-second backoff
// (1s, 2s, 4s, ...). When attempts are exhausted the last failure is
// surfaced wrapped in an *AnalysisError.
func (c *Client) AnalyzeUseCase(ctx context.Context, description string, contextInfo map[string]string) (*GovernanceAnalysis, error) {
	slog.Info("analyzing use case", "backend", c.backend.Name(), "description_length", len(description))

	prompt := BuildPrompt(description, contextInfo)

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<(attempt-1)) * time.Second
			slog.Info("retrying analysis", "attempt", attempt+1, "max_retries", c.maxRetries, "backoff", backoff)
			c.metrics.recordRetry(c.backend.Name())
			c.sleep(backoff)
		}

		result, err := c.attempt(ctx, prompt)
		if err == nil {
			slog.Info("analysis complete",
				"backend", c.backend.Name(),
				"ai_risks", len(result.AIRisks),
				"governance_gaps", len(result.GovernanceGaps),
				"confidence", result.ConfidenceScore,
			)
			return result, nil
		}

		lastErr = err
		slog.Warn("analysis attempt failed",
			"backend", c.backend.Name(),
			"attempt", attempt+1,
			"max_retries", c.maxRetries,
			"error", err,
		)
	}

	c.metrics.recordFailure(c.backend.Name())
	return nil, &AnalysisError{
		Backend:  c.backend.Name(),
		Attempts: c.maxRetries,
		Cause:    lastErr,
	}
}

// attempt performs a single rate-limited call and parse.
func (c *Client) attempt(ctx context.Context, prompt string) (*GovernanceAnalysis, error) {
	c.limiter.Acquire()
	c.metrics.recordRequest(c.backend.Name())

	start := time.Now()
	raw, err := c.backend.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	slog.Debug("backend responded", "backend", c.backend.Name(), "elapsed", time.Since(start))

	result, err := parseResponse(c.backend.Name(), raw)
	if err != nil {
		c.metrics.recordParseFailure(c.backend.Name())
		return nil, err
	}
	return result, nil
}
