package app

import (
	"errors"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/venuesite/handler"
	"github.com/dmitrymomot/venuesite/pkg/gallery"
	"github.com/dmitrymomot/venuesite/pkg/httpserver"
	"github.com/dmitrymomot/venuesite/pkg/metrics"
	"github.com/dmitrymomot/venuesite/pkg/ratelimiter"
	"github.com/dmitrymomot/venuesite/pkg/site"
	"github.com/dmitrymomot/venuesite/web"
)

// App holds the dependencies shared by the HTTP handlers.
type App struct {
	cfg      Config
	log      *slog.Logger
	pages    site.Builder
	gallery  *gallery.Catalog
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	limiter  ratelimiter.RateLimiter
	checks   map[string]httpserver.Check
	onError  handler.ErrorHandler[handler.Context]
	closers  []func()
}

// Option configures App.
type Option func(*App)

func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithClock sets the clock used for the footer year.
func WithClock(c site.Clock) Option {
	return func(a *App) { a.pages.Clock = c }
}

// WithGallery replaces the catalog named by GALLERY_FILE.
func WithGallery(c *gallery.Catalog) Option {
	return func(a *App) { a.gallery = c }
}

// WithRegistry registers metrics on reg and serves them from /metrics.
// Defaults to the global Prometheus registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(a *App) {
		a.metrics = metrics.New(reg)
		a.gatherer = reg
	}
}

// WithLimiter sets the limiter guarding POST routes. Defaults to an
// in-memory bucket built from Config.RateLimit.
func WithLimiter(l ratelimiter.RateLimiter) Option {
	return func(a *App) { a.limiter = l }
}

// WithReadinessCheck adds a named check to /health/ready.
func WithReadinessCheck(name string, check httpserver.Check) Option {
	return func(a *App) { a.checks[name] = check }
}

// New builds the application.
func New(cfg Config, opts ...Option) (*App, error) {
	a := &App{
		cfg:    cfg,
		checks: make(map[string]httpserver.Check),
		pages:  site.Builder{SiteName: cfg.Name, Clock: site.SystemClock},
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.log == nil {
		a.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if a.gallery == nil {
		c, err := loadGallery(cfg.GalleryFile)
		if err != nil {
			return nil, err
		}
		a.gallery = c
	}
	a.pages.Gallery = a.gallery

	if a.metrics == nil {
		a.metrics = metrics.New(prometheus.DefaultRegisterer)
		a.gatherer = prometheus.DefaultGatherer
	}
	if a.limiter == nil {
		store := ratelimiter.NewMemoryStore()
		limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit.bucket())
		if err != nil {
			store.Close()
			return nil, err
		}
		a.limiter = limiter
		a.closers = append(a.closers, store.Close)
	}

	a.onError = handler.NewErrorHandler(a.log, handler.ErrorHandlerConfig{
		ErrorPage:   web.ErrorPage,
		ErrorToast:  web.ErrorToast,
		ToastTarget: web.Selector(web.ToastContainerID),
	})
	return a, nil
}

func loadGallery(path string) (*gallery.Catalog, error) {
	if path == "" {
		return gallery.Default(), nil
	}
	c, err := gallery.Load(path)
	if err != nil {
		return nil, errors.Join(ErrLoadGallery, err)
	}
	return c, nil
}

// Close releases resources owned by the application.
func (a *App) Close() {
	for _, c := range a.closers {
		c()
	}
}
