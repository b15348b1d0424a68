package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kitten/backend/internal/metrics"
	"kitten/backend/pkg/logger"
)

const (
	DefaultAttempts = 2
	DefaultBackoff  = 400 * time.Millisecond
)

// GatewayConfig controls model fallback and retry.
type GatewayConfig struct {
	// Models are tried in order; later entries are fallbacks.
	Models []string
	// Attempts per model for retryable failures.
	Attempts int
	// Backoff is multiplied by the attempt number between retries.
	Backoff time.Duration
}

// Gateway sends completions through a provider with per-model retry and
// fallback to the next model.
type Gateway struct {
	provider Provider
	limiter  *RateLimiter
	metrics  *metrics.Metrics
	models   []string
	attempts int
	backoff  time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewGateway creates a gateway. limiter and m may be nil.
func NewGateway(provider Provider, limiter *RateLimiter, cfg GatewayConfig, m *metrics.Metrics) (*Gateway, error) {
	models := make([]string, 0, len(cfg.Models))
	for _, model := range cfg.Models {
		if model != "" {
			models = append(models, model)
		}
	}
	if len(models) == 0 {
		return nil, ErrMissingModel
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = DefaultAttempts
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = DefaultBackoff
	}
	return &Gateway{
		provider: provider,
		limiter:  limiter,
		metrics:  m,
		models:   models,
		attempts: cfg.Attempts,
		backoff:  cfg.Backoff,
		sleep:    sleepContext,
	}, nil
}

// Complete tries each model in order. 429 and 5xx answers are retried with
// linear backoff up to the attempt limit; any other failure moves straight to
// the next model. The last failure is returned when every model failed.
func (g *Gateway) Complete(ctx context.Context, req Request) (*Completion, error) {
	var lastErr error
	for _, model := range g.models {
		for attempt := 1; attempt <= g.attempts; attempt++ {
			if g.limiter != nil {
				if err := g.limiter.Wait(ctx); err != nil {
					return nil, err
				}
			}

			res, err := g.provider.Complete(ctx, model, req)
			if err == nil {
				g.metrics.AIAttempt(model, "ok")
				return res, nil
			}
			lastErr = err
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}

			retryable := IsRetryable(err)
			g.metrics.AIAttempt(model, attemptOutcome(retryable))
			logger.Warn("ai attempt failed", "module", "service", "action", "complete", "resource", "ai", "result", "failed", "provider", g.provider.Name(), "model", model, "attempt", attempt, "status_code", StatusCode(err), "error", err)

			if !retryable {
				break
			}
			if attempt < g.attempts {
				if err := g.sleep(ctx, time.Duration(attempt)*g.backoff); err != nil {
					return nil, err
				}
			}
		}
	}
	return nil, fmt.Errorf("%w: %w", ErrAllModelsFailed, lastErr)
}

func attemptOutcome(retryable bool) string {
	if retryable {
		return "retryable"
	}
	return "failed"
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// IsGatewayFailure reports whether err means no model produced an answer.
func IsGatewayFailure(err error) bool {
	return errors.Is(err, ErrAllModelsFailed)
}
