package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/venuesite/handler"
	"github.com/dmitrymomot/venuesite/pkg/binder"
	"github.com/dmitrymomot/venuesite/pkg/clientip"
	"github.com/dmitrymomot/venuesite/pkg/contact"
	"github.com/dmitrymomot/venuesite/pkg/httpserver"
	"github.com/dmitrymomot/venuesite/pkg/requestid"
)

const readinessTimeout = 2 * time.Second

// Routes returns the application router.
func (a *App) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Resolver{TrustProxyHeaders: a.cfg.TrustProxyHeaders}.Middleware,
		requestLogger(a.log),
		middleware.Recoverer,
		a.metrics.Middleware,
	)

	r.NotFound(a.fail(handler.ErrNotFound))
	r.MethodNotAllowed(a.fail(handler.ErrMethodNotAllowed))

	r.Get("/", wrap(a, a.home))
	r.Get("/favicon.ico", wrap(a, a.favicon))
	r.Get("/contact", wrap(a, a.contactRedirect))
	r.With(a.rateLimit("contact")).Post("/contact", wrapForm(a, a.submit))
	r.With(a.rateLimit("validate")).Post("/api/contact/validate", wrapForm(a, a.validateAPI))

	r.Route("/gallery", func(r chi.Router) {
		r.Get("/{id}", wrap(a, a.openLightbox))
		r.Delete("/lightbox", wrap(a, a.closeLightbox))
	})

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(a.log, readinessTimeout, a.checks))
	r.Handle("/metrics", promhttp.HandlerFor(a.gatherer, promhttp.HandlerOpts{}))

	return r
}

func (a *App) fail(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.onError(handler.NewContext(w, r), err)
	}
}

func wrap(a *App, h handler.HandlerFunc[handler.Context, struct{}]) http.HandlerFunc {
	return handler.Wrap(h, handler.WithErrorHandler[handler.Context, struct{}](a.onError))
}

// wrapForm binds the enquiry from a form post, a JSON body or DataStar
// signals, in that order.
func wrapForm(a *App, h handler.HandlerFunc[handler.Context, contact.Snapshot]) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, contact.Snapshot](binder.Form(), binder.JSON(), binder.Signals()),
		handler.WithErrorHandler[handler.Context, contact.Snapshot](a.onError),
	)
}
