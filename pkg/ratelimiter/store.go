package ratelimiter

import (
	"context"
	"time"
)

// Store persists bucket state.
type Store interface {
	// ConsumeTokens refills the bucket for key, then takes tokens if enough
	// are available. remaining is negative when the request is denied, in
	// which case nothing is taken. tokens == 0 only refreshes state.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the rate limit state for the given key.
	Reset(ctx context.Context, key string) error
}

// refill returns the token count and refill timestamp after applying every
// whole interval elapsed since last.
func refill(tokens int, last, now time.Time, cfg Config) (int, time.Time) {
	if now.Before(last) {
		// clock went backwards
		return tokens, now
	}
	elapsed := now.Sub(last)
	maxIntervals := int64(cfg.Capacity/cfg.RefillRate + 1)
	intervals := min(int64(elapsed/cfg.RefillInterval), maxIntervals)
	if intervals <= 0 {
		return tokens, last
	}
	return min(tokens+int(intervals)*cfg.RefillRate, cfg.Capacity), last.Add(time.Duration(intervals) * cfg.RefillInterval)
}
