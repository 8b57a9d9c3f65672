package app

import (
	"time"

	"github.com/dmitrymomot/venuesite/pkg/environment"
	"github.com/dmitrymomot/venuesite/pkg/httpserver"
	"github.com/dmitrymomot/venuesite/pkg/ratelimiter"
	"github.com/dmitrymomot/venuesite/pkg/redis"
)

// Rate limit stores.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config is read from the environment by config.Load.
type Config struct {
	Env  environment.Environment `env:"APP_ENV" envDefault:"development"`
	Name string                  `env:"APP_NAME" envDefault:"Harbour House"`

	// GalleryFile is a YAML catalog; empty uses the bundled one.
	GalleryFile    string `env:"GALLERY_FILE"`
	SuccessMessage string `env:"CONTACT_SUCCESS_MESSAGE"`

	// TrustProxyHeaders keys rate limits on forwarding headers. Enable only
	// behind a proxy that overwrites them.
	TrustProxyHeaders bool `env:"HTTP_TRUST_PROXY_HEADERS" envDefault:"false"`

	HTTP      httpserver.Config
	RateLimit RateLimitConfig
	Redis     redis.Config
}

// RateLimitConfig limits POST requests per client address.
type RateLimitConfig struct {
	Store          string        `env:"RATE_LIMIT_STORE" envDefault:"memory"`
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"5"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1m"`
}

func (c RateLimitConfig) bucket() ratelimiter.Config {
	return ratelimiter.Config{
		Capacity:       c.Capacity,
		RefillRate:     c.RefillRate,
		RefillInterval: c.RefillInterval,
	}
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	switch c.RateLimit.Store {
	case StoreMemory, StoreRedis:
	default:
		return ErrInvalidRateLimitStore
	}
	if c.RateLimit.Capacity <= 0 || c.RateLimit.RefillRate <= 0 || c.RateLimit.RefillInterval <= 0 {
		return ErrInvalidRateLimit
	}
	return nil
}
