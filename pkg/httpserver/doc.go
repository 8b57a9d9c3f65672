// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown, and provides liveness and readiness probe handlers.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled, SIGINT/SIGTERM arrives, or Shutdown is
// called, then drains in-flight requests for at most the shutdown timeout.
package httpserver
