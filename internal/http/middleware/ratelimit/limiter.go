package ratelimit

import "time"

// Limiter decides whether one more request for key may proceed now.
type Limiter interface {
	Allow(key string) bool
}

// NopLimiter lets every request through. Used when limiting is disabled.
type NopLimiter struct{}

// Allow always returns true.
func (NopLimiter) Allow(string) bool { return true }

// Clock is the time source for token refills.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

// Now returns time.Now().
func (RealClock) Now() time.Time { return time.Now() }
