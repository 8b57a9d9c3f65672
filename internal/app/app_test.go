package app_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/venuesite/internal/app"
	"github.com/dmitrymomot/venuesite/pkg/contact"
	"github.com/dmitrymomot/venuesite/pkg/ratelimiter"
	"github.com/dmitrymomot/venuesite/pkg/site"
)

func testConfig() app.Config {
	return app.Config{
		Name:           "Harbour House",
		SuccessMessage: "Thanks, we will be in touch.",
		RateLimit: app.RateLimitConfig{
			Store:          app.StoreMemory,
			Capacity:       100,
			RefillRate:     1,
			RefillInterval: time.Minute,
		},
	}
}

func newApp(t *testing.T, opts ...app.Option) http.Handler {
	t.Helper()

	opts = append([]app.Option{
		app.WithRegistry(prometheus.NewRegistry()),
		app.WithClock(site.Fixed(time.Date(2031, time.March, 3, 10, 0, 0, 0, time.UTC))),
	}, opts...)
	a, err := app.New(testConfig(), opts...)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a.Routes()
}

func validForm() url.Values {
	return url.Values{
		"fullName": {"Amelia Hart"},
		"email":    {"amelia@example.com"},
		"phone":    {"+44 20 7946 0958"},
		"roomType": {"deluxe"},
		"message":  {"We would like a quiet room for two nights."},
		"consent":  {"on"},
	}
}

func postForm(h http.Handler, path string, form url.Values, datastar bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if datastar {
		req.Header.Set("Datastar-Request", "true")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(h http.Handler, path string, datastar bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if datastar {
		req.Header.Set("Datastar-Request", "true")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHome(t *testing.T) {
	t.Parallel()

	rec := get(newApp(t), "/", false)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<form id="contactForm"`)
	assert.Contains(t, body, `<span id="currentYear">2031</span>`)
	assert.Contains(t, body, `id="gallery"`)
	assert.Contains(t, body, `<p id="form-feedback" class="form-feedback" aria-live="polite"></p>`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	t.Run("invalid form re-renders page with feedback", func(t *testing.T) {
		t.Parallel()
		form := validForm()
		form.Set("email", "amelia@")
		form.Del("consent")

		rec := postForm(newApp(t), "/contact", form, false)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, contact.MsgEmailInvalid+" "+contact.MsgConsentRequired)
		assert.Contains(t, body, `role="alert"`)
		assert.Contains(t, body, `id="email" name="email" aria-invalid="true" aria-describedby="form-feedback" autofocus`)
		assert.Contains(t, body, `value="Amelia Hart"`)
	})

	t.Run("valid form shows success and clears inputs", func(t *testing.T) {
		t.Parallel()
		rec := postForm(newApp(t), "/contact", validForm(), false)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Thanks, we will be in touch.")
		assert.Contains(t, body, `role="status"`)
		assert.NotContains(t, body, "Amelia Hart")
		assert.NotContains(t, body, "autofocus")
	})

	t.Run("datastar failure patches the form and focuses field", func(t *testing.T) {
		t.Parallel()
		form := validForm()
		form.Set("phone", "call me")

		rec := postForm(newApp(t), "/contact", form, true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "form-feedback error")
		assert.Contains(t, body, contact.MsgPhoneInvalid)
		assert.Contains(t, body, "focus({preventScroll: true})")
	})

	t.Run("datastar retry clears stale invalid markers", func(t *testing.T) {
		t.Parallel()
		app := newApp(t)

		first := validForm()
		first.Set("fullName", "")
		rec := postForm(app, "/contact", first, true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="fullName" name="fullName" aria-invalid="true"`)

		second := validForm()
		second.Set("phone", "call me")
		rec = postForm(app, "/contact", second, true)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `<form id="contactForm"`)
		assert.Contains(t, body, `id="phone" name="phone" aria-invalid="true" aria-describedby="form-feedback"`)
		assert.NotContains(t, body, `id="fullName" name="fullName" aria-invalid`)
		assert.Equal(t, 1, strings.Count(body, "aria-invalid"))
	})

	t.Run("datastar success replaces the form", func(t *testing.T) {
		t.Parallel()
		rec := postForm(newApp(t), "/contact", validForm(), true)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, `<form id="contactForm"`)
		assert.Contains(t, body, "form-feedback success")
		assert.NotContains(t, body, "Amelia Hart")
	})

	t.Run("direct visit redirects to form", func(t *testing.T) {
		t.Parallel()
		rec := get(newApp(t), "/contact", false)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/#contact", rec.Header().Get("Location"))
	})
}

func TestValidateAPI(t *testing.T) {
	t.Parallel()

	type envelope struct {
		Data struct {
			Valid        bool                `json:"valid"`
			Errors       []string            `json:"errors"`
			FirstInvalid string              `json:"first_invalid"`
			Violations   map[string][]string `json:"violations"`
		} `json:"data"`
	}

	post := func(t *testing.T, body string) (*httptest.ResponseRecorder, envelope) {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/api/contact/validate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		newApp(t).ServeHTTP(rec, req)

		var env envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		return rec, env
	}

	t.Run("reports violations", func(t *testing.T) {
		t.Parallel()
		rec, env := post(t, `{"fullName":"Al","roomType":"classic","message":"Hello there, is the hall free?","consent":true}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.False(t, env.Data.Valid)
		assert.Equal(t, []string{contact.MsgFullNameTooShort}, env.Data.Errors)
		assert.Equal(t, "fullName", env.Data.FirstInvalid)
		assert.Equal(t, []string{contact.MsgFullNameTooShort}, env.Data.Violations["fullName"])
	})

	t.Run("valid payload has empty error list", func(t *testing.T) {
		t.Parallel()
		rec, env := post(t, `{"fullName":"Amelia Hart","roomType":"classic","message":"Hello there, is the hall free?","consent":true}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Data.Valid)
		assert.NotNil(t, env.Data.Errors)
		assert.Empty(t, env.Data.Errors)
		assert.Contains(t, rec.Body.String(), `"errors":[]`)
	})

	t.Run("rejects unknown media type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/api/contact/validate", strings.NewReader("x"))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		newApp(t).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestGallery(t *testing.T) {
	t.Parallel()

	t.Run("deep link renders standalone lightbox", func(t *testing.T) {
		t.Parallel()
		rec := get(newApp(t), "/gallery/garden-suite", false)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `class="lightbox active"`)
		assert.Contains(t, rec.Body.String(), "private terrace")
	})

	t.Run("datastar opens lightbox and focuses close button", func(t *testing.T) {
		t.Parallel()
		rec := get(newApp(t), "/gallery/garden-suite", true)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "lightbox active")
		assert.Contains(t, body, ".lightbox-close")
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		t.Parallel()
		rec := get(newApp(t), "/gallery/missing", false)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "We could not find what you were looking for.")
	})

	t.Run("closing without datastar returns to the grid", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodDelete, "/gallery/lightbox", nil)
		rec := httptest.NewRecorder()
		newApp(t).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/#gallery", rec.Header().Get("Location"))
	})

	t.Run("closing with datastar patches the placeholder", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodDelete, "/gallery/lightbox", nil)
		req.Header.Set("Datastar-Request", "true")
		rec := httptest.NewRecorder()
		newApp(t).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `aria-hidden="true"`)
	})
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore()
	t.Cleanup(store.Close)
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       1,
		RefillRate:     1,
		RefillInterval: time.Hour,
	})
	require.NoError(t, err)

	h := newApp(t, app.WithLimiter(limiter))

	first := postForm(h, "/contact", validForm(), false)
	require.Equal(t, http.StatusOK, first.Code)

	second := postForm(h, "/contact", validForm(), false)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), "too quickly")

	toast := postForm(h, "/contact", validForm(), true)
	assert.Contains(t, toast.Body.String(), "toast-warning")
}

func TestOperationalRoutes(t *testing.T) {
	t.Parallel()

	h := newApp(t, app.WithReadinessCheck("noop", func(_ context.Context) error { return nil }))

	live := get(h, "/health/live", false)
	assert.Equal(t, http.StatusOK, live.Code)

	ready := get(h, "/health/ready", false)
	assert.Equal(t, http.StatusOK, ready.Code)
	assert.Contains(t, ready.Body.String(), `"noop":"ok"`)

	_ = postForm(h, "/contact", url.Values{}, false)
	metrics := get(h, "/metrics", false)
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `contact_submissions_total{outcome="rejected"} 1`)
	assert.Contains(t, metrics.Body.String(), `contact_violations_total{field="consent"} 1`)

	favicon := get(h, "/favicon.ico", false)
	assert.Equal(t, http.StatusNoContent, favicon.Code)

	missing := get(h, "/nope", false)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}
