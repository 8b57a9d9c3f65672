package app

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/venuesite/handler"
	"github.com/dmitrymomot/venuesite/pkg/clientip"
	"github.com/dmitrymomot/venuesite/pkg/logger"
	"github.com/dmitrymomot/venuesite/pkg/ratelimiter"
)

// requestLogger writes one record per request once the response is done.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.LogAttrs(r.Context(), level, "http request",
				logger.Component("http"),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.String("client_ip", clientip.FromContext(r.Context())),
				logger.Duration(time.Since(start)),
			)
		})
	}
}

// rateLimit guards the form endpoints per client address. Denials and
// store failures are rendered by the application error handler, so
// DataStar clients get a toast instead of a plain-text body.
func (a *App) rateLimit(scope string) func(http.Handler) http.Handler {
	key := ratelimiter.Prefixed(scope, func(r *http.Request) string {
		return clientip.FromContext(r.Context())
	})
	return ratelimiter.Middleware(a.limiter, key,
		ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
			a.onError(handler.NewContext(w, r), handler.ErrTooManyRequests)
		}),
		ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			a.onError(handler.NewContext(w, r), errors.Join(handler.ErrServiceUnavailable, err))
		}),
	)
}
