package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"delivery-matching/internal/config"
	"delivery-matching/internal/http/middleware/ratelimit"
	"delivery-matching/internal/logx"
)

// newRateLimiter builds the per-driver token bucket, or a pass-through limiter when disabled.
func newRateLimiter(cfg *config.Config, clock ratelimit.Clock, logger logx.Logger) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		logger.Info("driver api rate limiting disabled")
		return ratelimit.NopLimiter{}
	}
	logger.Info("driver api rate limiting enabled",
		logx.Float64("rate", rl.Rate),
		logx.Int("burst", rl.Burst),
	)
	return ratelimit.NewTokenBucketLimiter(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

type rateLimitIn struct {
	dig.In

	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger.With(logx.String("component", "ratelimit")), in.Counter, in.Limiter)
}
