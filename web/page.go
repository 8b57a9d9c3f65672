package web

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/venuesite/pkg/site"
)

// DataStarScript is the client bundle matching datastar-go v1.
const DataStarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

const styles = `body:has(.lightbox.active){overflow:hidden}` +
	`.site-header{position:sticky;top:0;transition:padding .2s}` +
	`.site-header.is-scrolled{padding-block:.25rem;box-shadow:0 1px 4px rgba(0,0,0,.15)}` +
	`.form-feedback.error{color:#b00020}.form-feedback.success{color:#1b5e20}` +
	`.lightbox{display:none}.lightbox.active{display:flex;position:fixed;inset:0;background:rgba(0,0,0,.85)}`

func document(title string, body func(h *html)) templ.Component {
	return component(func(h *html) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw("</title><style>", styles, "</style><script")
		h.attr("type", "module")
		h.attr("src", DataStarScript)
		h.raw("></script></head><body>")
		body(h)
		h.raw("</body></html>")
	})
}

// Header renders the sticky header. The scrolled class is toggled on the
// client once the window passes the threshold.
func Header(hd site.Header) templ.Component {
	return component(func(h *html) {
		h.raw("<header")
		h.attr("class", "site-header")
		scrolled := "$scrolled = window.scrollY > " + strconv.Itoa(hd.ScrollThreshold)
		h.attr("data-signals:scrolled", "false")
		// A reload can restore the scroll position without firing a scroll event.
		h.attr("data-init", scrolled)
		h.attr("data-on:scroll__window__throttle.100ms", scrolled)
		h.attr("data-class:"+site.ScrolledClass, "$scrolled")
		h.raw(`><a class="brand" href="/">`)
		h.text(hd.Title)
		h.raw(`</a><nav><a href="#gallery">Gallery</a> <a href="#contact">Contact</a></nav></header>`)
	})
}

// Footer renders the copyright line with the server-side year.
func Footer(f site.Footer) templ.Component {
	return component(func(h *html) {
		h.raw(`<footer class="site-footer"><p>&copy; <span`)
		h.attr("id", YearID)
		h.raw(">")
		h.int(f.Year)
		h.raw("</span> ")
		h.text(f.Owner)
		h.raw(". All rights reserved.</p></footer>")
	})
}

// ContactPage renders the whole page: header, gallery, contact form and
// footer, plus the lightbox and toast mount points.
func ContactPage(p site.Page) templ.Component {
	return document(p.Title, func(h *html) {
		h.render(Header(p.Header))
		h.raw("<main>")
		h.render(GalleryGrid(p.Gallery))
		h.raw(`<section id="contact" class="contact"><h2>Contact us</h2>`)
		h.render(ContactForm(p.Form))
		h.raw("</section></main>")
		h.render(Footer(p.Footer))
		h.render(LightboxClosed())
		h.raw("<div")
		h.attr("id", ToastContainerID)
		h.attr("aria-live", "assertive")
		h.raw("></div>")
	})
}

// LightboxPage renders a single gallery item as a standalone page for
// visitors following a deep link without JavaScript.
func LightboxPage(p site.Page, lightbox templ.Component) templ.Component {
	return document(p.Title, func(h *html) {
		h.render(Header(p.Header))
		h.raw("<main>")
		h.render(lightbox)
		h.raw("</main>")
		h.render(Footer(p.Footer))
	})
}
