// Package redis connects to Redis for the shared rate-limit store.
//
// Connect parses a redis:// URL, pings the server and retries with a fixed
// delay until it answers or ConnectTimeout expires. Healthcheck adapts a
// client to the readiness probe.
//
//	client, err := redis.Connect(ctx, cfg.Redis)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	store := ratelimiter.NewRedisStore(client)
package redis
