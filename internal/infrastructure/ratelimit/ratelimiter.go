// Package ratelimit guards the login endpoint against credential stuffing.
package ratelimit

// RateLimiter answers whether a keyed event is allowed right now.
type RateLimiter interface {
	// Allow records an attempt for key and reports whether it stays within
	// the per-minute limit.
	Allow(key string, perMinute int) (bool, error)
	// Reset clears recorded attempts for key.
	Reset(key string) error
}

// NoopRateLimiter allows everything; used when redis is not configured.
type NoopRateLimiter struct{}

func (NoopRateLimiter) Allow(string, int) (bool, error) { return true, nil }
func (NoopRateLimiter) Reset(string) error              { return nil }
