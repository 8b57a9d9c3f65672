package web

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/venuesite/handler"
)

var friendlyMessages = map[string]string{
	handler.ErrNotFound.Key:             "We could not find what you were looking for.",
	handler.ErrTooManyRequests.Key:      "You are sending enquiries too quickly. Please wait a moment and try again.",
	handler.ErrBadRequest.Key:           "We could not read your submission. Please try again.",
	handler.ErrUnsupportedMediaType.Key: "We could not read your submission. Please try again.",
	handler.ErrServiceUnavailable.Key:   "The service is temporarily unavailable. Please try again shortly.",
}

// Message turns an error key into a sentence for visitors. Unknown keys are
// returned unchanged.
func Message(key string) string {
	if msg, ok := friendlyMessages[key]; ok {
		return msg
	}
	return key
}

// ErrorPage renders a standalone error page.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	title := http.StatusText(p.StatusCode)
	if title == "" {
		title = "Error"
	}
	return document(title, func(h *html) {
		h.raw(`<main class="error-page"><h1>`)
		h.int(p.StatusCode)
		h.raw(" ")
		h.text(title)
		h.raw("</h1><p>")
		h.text(Message(p.Error))
		h.raw("</p>")
		if p.RetryURL != "" {
			h.raw("<p><a")
			h.url("href", p.RetryURL)
			h.raw(">Try again</a></p>")
		}
		if p.RequestID != "" {
			h.raw(`<p class="request-id">Reference: <code>`)
			h.text(p.RequestID)
			h.raw("</code></p>")
		}
		h.raw("</main>")
	})
}

// ErrorToast renders a dismissible notification for DataStar requests.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return component(func(h *html) {
		typ := p.Type
		if typ == "" {
			typ = "error"
		}
		h.raw("<div")
		h.attr("class", "toast toast-"+typ)
		h.attr("role", "alert")
		h.attr("data-on:click", "el.remove()")
		h.raw(">")
		h.text(Message(p.Message))
		if p.RequestID != "" {
			h.raw(` <small class="request-id">`)
			h.text(p.RequestID)
			h.raw("</small>")
		}
		h.raw("</div>")
	})
}
