package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/venuesite/handler"
	"github.com/dmitrymomot/venuesite/pkg/binder"
)

type contactRequest struct {
	FullName string `form:"fullName" json:"fullName"`
	Consent  bool   `form:"consent" json:"consent"`
}

type statusResponse struct {
	status int
	body   string
	err    error
}

func (s statusResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if s.err != nil {
		return s.err
	}
	w.WriteHeader(s.status)
	_, err := w.Write([]byte(s.body))
	return err
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("handler without binders", func(t *testing.T) {
		t.Parallel()

		h := handler.HandlerFunc[handler.Context, contactRequest](func(ctx handler.Context, req contactRequest) handler.Response {
			assert.Equal(t, contactRequest{}, req)
			assert.NotNil(t, ctx.Request())
			return statusResponse{status: http.StatusOK, body: "ok"}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("binds form values", func(t *testing.T) {
		t.Parallel()

		var got contactRequest
		h := handler.HandlerFunc[handler.Context, contactRequest](func(ctx handler.Context, req contactRequest) handler.Response {
			got = req
			return statusResponse{status: http.StatusOK}
		})

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("fullName=Amelia&consent=on"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()

		handler.Wrap(h, handler.WithBinders[handler.Context, contactRequest](binder.Signals(), binder.Form()))(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, contactRequest{FullName: "Amelia", Consent: true}, got)
	})

	t.Run("skips binders that do not apply", func(t *testing.T) {
		t.Parallel()

		var got contactRequest
		h := handler.HandlerFunc[handler.Context, contactRequest](func(ctx handler.Context, req contactRequest) handler.Response {
			got = req
			return statusResponse{status: http.StatusOK}
		})

		req := dataStarRequest(http.MethodPost, "/contact", `{"fullName":"Amelia","consent":true}`)
		rec := httptest.NewRecorder()

		handler.Wrap(h, handler.WithBinders[handler.Context, contactRequest](binder.Form(), binder.Signals()))(rec, req)

		assert.Equal(t, contactRequest{FullName: "Amelia", Consent: true}, got)
	})

	t.Run("no applicable binder yields 415", func(t *testing.T) {
		t.Parallel()

		h := handler.HandlerFunc[handler.Context, contactRequest](func(ctx handler.Context, req contactRequest) handler.Response {
			t.Fatal("handler must not run")
			return nil
		})

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("hello"))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()

		handler.Wrap(h, handler.WithBinders[handler.Context, contactRequest](binder.Form()))(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("malformed input yields 400", func(t *testing.T) {
		t.Parallel()

		var captured error
		h := handler.HandlerFunc[handler.Context, contactRequest](func(ctx handler.Context, req contactRequest) handler.Response {
			return statusResponse{status: http.StatusOK}
		})

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("consent=perhaps"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()

		handler.Wrap(h,
			handler.WithBinders[handler.Context, contactRequest](binder.Form()),
			handler.WithErrorHandler[handler.Context, contactRequest](func(ctx handler.Context, err error) {
				captured = err
				ctx.ResponseWriter().WriteHeader(handler.ClassifyError(err).StatusCode)
			}),
		)(rec, req)

		require.Error(t, captured)
		assert.ErrorIs(t, captured, binder.ErrFailedToParseForm)
		assert.ErrorIs(t, captured, handler.ErrBadRequest)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()

		var captured error
		h := handler.HandlerFunc[handler.Context, contactRequest](func(ctx handler.Context, req contactRequest) handler.Response {
			return nil
		})

		handler.Wrap(h, handler.WithErrorHandler[handler.Context, contactRequest](func(ctx handler.Context, err error) {
			captured = err
		}))(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.ErrorIs(t, captured, handler.ErrNilResponse)
	})

	t.Run("render error goes to default error handler", func(t *testing.T) {
		t.Parallel()

		h := handler.HandlerFunc[handler.Context, contactRequest](func(ctx handler.Context, req contactRequest) handler.Response {
			return statusResponse{err: handler.ErrNotFound}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/gallery/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "not_found")
	})

	t.Run("plain errors become 500", func(t *testing.T) {
		t.Parallel()

		h := handler.HandlerFunc[handler.Context, contactRequest](func(ctx handler.Context, req contactRequest) handler.Response {
			return statusResponse{err: errors.New("boom")}
		})

		rec := httptest.NewRecorder()
		handler.Wrap(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()

		var order []string
		decorator := func(name string) handler.Decorator[handler.Context, contactRequest] {
			return func(next handler.HandlerFunc[handler.Context, contactRequest]) handler.HandlerFunc[handler.Context, contactRequest] {
				return func(ctx handler.Context, req contactRequest) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}

		h := handler.HandlerFunc[handler.Context, contactRequest](func(ctx handler.Context, req contactRequest) handler.Response {
			order = append(order, "handler")
			return statusResponse{status: http.StatusOK}
		})

		handler.Wrap(h, handler.WithDecorators(decorator("first"), decorator("second")))(
			httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, []string{"first", "second", "handler"}, order)
	})
}
