// Package web holds the HTML components of the venue site.
//
// Components are templ.Component values so the handler package can render
// them as full pages or stream them as DataStar element patches. Every
// dynamic value goes through templ.EscapeString, and URLs taken from the
// gallery catalog go through templ.URL.
//
// Element ids are part of the contract with the handlers: the feedback
// region is #form-feedback, the form is #contactForm, the lightbox is
// #lightbox and error toasts are prepended to #toast-container.
package web
