package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// Config stores TokenBucketLimiter settings.
type Config struct {
	Rate       float64       // requests per second granted to each key
	Burst      int           // bucket capacity
	TTL        time.Duration // idle buckets older than this are swept (0 keeps them)
	MaxBuckets int           // tracked keys limit (0 means unbounded)
}

// TokenBucketLimiter keeps one token bucket per request key.
// Keys are "user:<id>" for drivers and "ip:<addr>" for anonymous callers.
// When MaxBuckets keys are tracked, a new driver displaces the stalest anonymous
// bucket; a new anonymous caller is refused.
type TokenBucketLimiter struct {
	cfg   Config
	clock Clock

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	tokens float64
	filled time.Time
	seen   time.Time
}

// NewTokenBucketLimiter creates a limiter. Non-positive Rate and Burst fall back to 1.
func NewTokenBucketLimiter(clock Clock, cfg Config) *TokenBucketLimiter {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &TokenBucketLimiter{cfg: cfg, clock: clock, buckets: make(map[string]*bucket)}
}

// Allow takes one token from key's bucket and reports whether one was available.
func (l *TokenBucketLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)
	b, ok := l.buckets[key]
	if !ok {
		if !l.makeRoom(key) {
			return false
		}
		b = &bucket{tokens: float64(l.cfg.Burst), filled: now}
		l.buckets[key] = b
	}
	return b.take(now, l.cfg.Rate, float64(l.cfg.Burst))
}

func (b *bucket) take(now time.Time, rate, burst float64) bool {
	if dt := now.Sub(b.filled); dt > 0 {
		b.tokens = min(burst, b.tokens+dt.Seconds()*rate)
		b.filled = now
	}
	b.seen = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// makeRoom reports whether a bucket for key may be added, evicting an anonymous one if needed.
func (l *TokenBucketLimiter) makeRoom(key string) bool {
	if l.cfg.MaxBuckets == 0 || len(l.buckets) < l.cfg.MaxBuckets {
		return true
	}
	if !strings.HasPrefix(key, userKeyPrefix) {
		return false
	}
	var (
		victim string
		oldest time.Time
	)
	for k, b := range l.buckets {
		if strings.HasPrefix(k, userKeyPrefix) {
			continue
		}
		if victim == "" || b.seen.Before(oldest) {
			victim, oldest = k, b.seen
		}
	}
	if victim == "" {
		return false
	}
	delete(l.buckets, victim)
	return true
}

// sweep drops buckets idle for longer than TTL, at most once per max(TTL/2, 1m).
func (l *TokenBucketLimiter) sweep(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}
	every := max(l.cfg.TTL/2, time.Minute)
	if !l.lastSweep.IsZero() && now.Sub(l.lastSweep) < every {
		return
	}
	l.lastSweep = now
	for k, b := range l.buckets {
		if now.Sub(b.seen) > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}
