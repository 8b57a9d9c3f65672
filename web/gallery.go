package web

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/venuesite/pkg/gallery"
)

// GalleryGrid renders the thumbnails. Each one links to its lightbox deep
// link; with DataStar the lightbox is fetched and patched in place.
func GalleryGrid(c *gallery.Catalog) templ.Component {
	return component(func(h *html) {
		if c == nil || c.Len() == 0 {
			return
		}
		h.raw(`<section id="gallery" class="gallery"><h2>`)
		h.text(c.Title)
		h.raw(`</h2><ul class="gallery-grid">`)
		for _, item := range c.Items {
			href := "/gallery/" + item.ID
			h.raw(`<li class="gallery-item"`)
			h.flag("data-lightbox", true)
			h.url("data-full", item.Full)
			h.attr("data-caption", item.DisplayCaption())
			h.raw("><a")
			h.url("href", href)
			h.attr("data-on:click__prevent", "@get('"+href+"')")
			h.raw("><img")
			h.url("src", item.Thumb)
			h.attr("alt", item.Alt)
			h.attr("loading", "lazy")
			h.raw("></a></li>")
		}
		h.raw("</ul></section>")
	})
}

// Lightbox renders the open lightbox for item. It closes on the close
// button, a click on the backdrop, or Escape.
func Lightbox(item gallery.Item) templ.Component {
	return component(func(h *html) {
		caption := item.DisplayCaption()
		h.raw("<div")
		h.attr("id", LightboxID)
		h.attr("class", "lightbox active")
		h.attr("role", "dialog")
		h.attr("aria-modal", "true")
		h.attr("aria-hidden", "false")
		h.attr("data-on:click", "evt.target === el && @delete('/gallery/lightbox')")
		h.attr("data-on:keydown__window", "evt.key === 'Escape' && @delete('/gallery/lightbox')")
		h.raw("><figure><img")
		h.attr("class", "lightbox-image")
		h.url("src", item.Full)
		h.attr("alt", caption)
		h.raw(`><figcaption class="lightbox-caption">`)
		h.text(caption)
		h.raw("</figcaption></figure><a")
		h.attr("class", "lightbox-close")
		h.attr("href", "/#gallery")
		h.attr("aria-label", "Close")
		h.attr("data-on:click__prevent", "@delete('/gallery/lightbox')")
		h.raw(">&times;</a></div>")
	})
}

// LightboxClosed renders the hidden, empty lightbox placeholder.
func LightboxClosed() templ.Component {
	return component(func(h *html) {
		h.raw("<div")
		h.attr("id", LightboxID)
		h.attr("class", "lightbox")
		h.attr("aria-hidden", "true")
		h.raw("></div>")
	})
}

// LightboxFocusScript focuses the close button of an open lightbox.
const LightboxFocusScript = "document.querySelector('#lightbox .lightbox-close')?.focus()"
