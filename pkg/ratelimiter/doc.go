// Package ratelimiter provides token bucket rate limiting with in-memory and
// Redis storage plus HTTP middleware.
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each request asks for one or more tokens; when the bucket
// cannot cover the request it is denied and nothing is consumed.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//	    Capacity:       5,
//	    RefillRate:     1,
//	    RefillInterval: time.Minute,
//	})
//
//	r.With(ratelimiter.Middleware(limiter, ipKey)).Post("/contact", submit)
//
// MemoryStore suits a single instance. RedisStore evaluates the same
// algorithm atomically in a Lua script so several instances share limits.
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response and Retry-After on denials.
package ratelimiter
