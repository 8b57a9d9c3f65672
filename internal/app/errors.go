package app

import "errors"

var (
	ErrInvalidRateLimitStore = errors.New("RATE_LIMIT_STORE must be memory or redis")
	ErrInvalidRateLimit      = errors.New("rate limit settings must be positive")
	ErrLoadGallery           = errors.New("failed to load gallery")
)
