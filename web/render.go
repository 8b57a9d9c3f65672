package web

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Element ids shared with the HTTP handlers.
const (
	FormID           = "contactForm"
	FeedbackID       = "form-feedback"
	LightboxID       = "lightbox"
	ToastContainerID = "toast-container"
	YearID           = "currentYear"
)

// Selector returns the CSS id selector for id.
func Selector(id string) string {
	return "#" + id
}

// html writes markup and remembers the first write error.
type html struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTML(ctx context.Context, w io.Writer) *html {
	return &html{ctx: ctx, w: w}
}

func (h *html) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (h *html) url(name, value string) {
	h.attr(name, string(templ.URL(value)))
}

func (h *html) flag(name string, on bool) {
	if on {
		h.raw(" ", name)
	}
}

func (h *html) int(n int) {
	h.raw(strconv.Itoa(n))
}

func (h *html) render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func component(fn func(h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		fn(h)
		return h.err
	})
}
