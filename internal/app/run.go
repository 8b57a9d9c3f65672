package app

import (
	"context"

	"github.com/dmitrymomot/venuesite/pkg/config"
	"github.com/dmitrymomot/venuesite/pkg/httpserver"
	"github.com/dmitrymomot/venuesite/pkg/logger"
	"github.com/dmitrymomot/venuesite/pkg/ratelimiter"
	"github.com/dmitrymomot/venuesite/pkg/redis"
	"github.com/dmitrymomot/venuesite/pkg/requestid"
)

// Run loads the configuration from the environment and serves the site
// until ctx is cancelled.
func Run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	format := logger.FormatText
	if cfg.Env.IsProduction() {
		format = logger.FormatJSON
	}
	log := logger.New(
		logger.WithFormat(format),
		logger.WithEnvironment(cfg.Env.String(), cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	opts := []Option{WithLogger(log)}
	if cfg.RateLimit.Store == StoreRedis {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close redis client", logger.Error(err))
			}
		}()

		limiter, err := ratelimiter.NewBucket(ratelimiter.NewRedisStore(client), cfg.RateLimit.bucket())
		if err != nil {
			return err
		}
		opts = append(opts,
			WithLimiter(limiter),
			WithReadinessCheck("redis", redis.Healthcheck(client)),
		)
	}

	a, err := New(cfg, opts...)
	if err != nil {
		return err
	}
	defer a.Close()

	log.Info("starting venue site",
		logger.Component("app"),
		logger.Event("start"),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, a.Routes())
}
