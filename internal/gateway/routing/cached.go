package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"delivery-matching/internal/geo"
	"delivery-matching/internal/logx"
)

const cacheKeyFormat = "routing:estimate:%.4f:%.4f:%.4f:%.4f"

type cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedEstimator keeps recent route estimates in Redis.
// Points are rounded to four decimals (about 11 m) so nearby lookups share entries.
type CachedEstimator struct {
	next   Estimator
	cache  cache
	ttl    time.Duration
	logger logx.Logger
}

// NewCachedEstimator wraps next with a Redis cache; a nil cache or non-positive ttl disables caching.
func NewCachedEstimator(next Estimator, c cache, ttl time.Duration, logger logx.Logger) Estimator {
	if next == nil {
		return nil
	}
	if c == nil || ttl <= 0 {
		return next
	}
	return &CachedEstimator{next: next, cache: c, ttl: ttl, logger: logger}
}

// Estimate serves from cache when possible, otherwise asks the wrapped estimator and stores the answer.
func (c *CachedEstimator) Estimate(ctx context.Context, from, to geo.Point) (Estimate, error) {
	key := cacheKey(from, to)

	raw, err := c.cache.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var est Estimate
		if jerr := json.Unmarshal(raw, &est); jerr == nil {
			return est, nil
		}
		c.logger.Warn("routing cache entry corrupt", logx.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("routing cache read failed", logx.String("key", key), logx.Err(err))
	}

	est, err := c.next.Estimate(ctx, from, to)
	if err != nil {
		return Estimate{}, err
	}

	payload, err := json.Marshal(est)
	if err == nil {
		err = c.cache.Set(ctx, key, payload, c.ttl).Err()
	}
	if err != nil {
		c.logger.Warn("routing cache write failed", logx.String("key", key), logx.Err(err))
	}
	return est, nil
}

func cacheKey(from, to geo.Point) string {
	return fmt.Sprintf(cacheKeyFormat, from.Lat, from.Lng, to.Lat, to.Lng)
}
