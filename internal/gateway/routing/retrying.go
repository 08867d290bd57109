package routing

import (
	"context"
	"time"

	"delivery-matching/internal/geo"
	"delivery-matching/internal/logx"
)

type counter interface {
	Inc()
}

// RetryConfig describes RetryingEstimator behaviour.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingEstimator retries transient routing failures with exponential backoff.
type RetryingEstimator struct {
	next    Estimator
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
	wait    func(context.Context, time.Duration) bool
}

// NewRetryingEstimator wraps next; it returns nil when next is nil.
func NewRetryingEstimator(next Estimator, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingEstimator {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryingEstimator{next: next, logger: logger, retries: retries, cfg: cfg, wait: waitWithContext}
}

// Estimate calls the wrapped estimator until it succeeds, fails permanently or attempts run out.
func (g *RetryingEstimator) Estimate(ctx context.Context, from, to geo.Point) (Estimate, error) {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		est, err := g.next.Estimate(ctx, from, to)
		if err == nil {
			return est, nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !IsTransient(err) {
			break
		}
		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("routing estimate retry",
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !g.wait(ctx, delay) {
			break
		}
	}
	return Estimate{}, lastErr
}

// backoff computes the retry delay for the given attempt.
func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func waitWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
