// Package sanitizer provides small string clean-up helpers for user supplied
// text and for content loaded from configuration files.
//
// Helpers are plain func(string) string values so they can be chained with
// Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.StripHTML,
//	    sanitizer.SingleLine,
//	)
//	caption := clean(raw)
//
// Trim follows the browser's notion of whitespace so server-side checks agree
// with what visitors see in the form. StripHTML is backed by bluemonday's
// strict policy. The package is stateless and safe for concurrent use.
package sanitizer
