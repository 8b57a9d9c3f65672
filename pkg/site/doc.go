// Package site holds the view-models rendered by the contact page: the
// header, the footer with its current-year stamp, and the page state that
// combines the contact form with the gallery.
package site
