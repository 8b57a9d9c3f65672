package ratelimiter

import "errors"

var (
	// ErrInvalidConfig is returned by NewBucket for a missing store or
	// non-positive capacity, refill rate or interval.
	ErrInvalidConfig = errors.New("ratelimiter: invalid configuration")
	// ErrInvalidTokenCount is returned when AllowN asks for fewer than one token.
	ErrInvalidTokenCount = errors.New("ratelimiter: token count must be positive")
	// ErrStoreUnavailable wraps store failures. The middleware answers 503.
	ErrStoreUnavailable = errors.New("ratelimiter: store unavailable")
)
