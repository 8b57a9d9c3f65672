// Package gallery loads the photo catalog shown in the page gallery and the
// lightbox.
//
// A catalog is a YAML document:
//
//	title: Rooms & spaces
//	items:
//	  - id: garden-suite
//	    thumb: /static/img/garden-suite-thumb.jpg
//	    full: /static/img/garden-suite.jpg
//	    alt: Garden suite with terrace
//	    caption: Our garden suite opens onto a private terrace.
//
// Parse and Load validate every item: the full-size image is required, a
// missing thumbnail falls back to the full image, and ids must be unique.
// Free text (title, alt, caption) is stripped of markup so it can be escaped
// once at render time. Missing ids are derived from the alt text.
//
// The caption shown in the lightbox is the item caption, falling back to the
// alt text and finally to an empty string (see Item.DisplayCaption).
package gallery
