package site

import (
	"github.com/dmitrymomot/venuesite/pkg/contact"
	"github.com/dmitrymomot/venuesite/pkg/gallery"
)

// FormState is what the contact form needs to render itself.
type FormState struct {
	// Values re-populate the inputs after a failed submission.
	Values   contact.Snapshot
	Feedback contact.Feedback
}

// NewFormState derives the form state from a submission and its feedback.
// A successful submission resets the inputs.
func NewFormState(values contact.Snapshot, fb contact.Feedback) FormState {
	if fb.ResetForm() {
		values = contact.Snapshot{}
	}
	return FormState{Values: values, Feedback: fb}
}

// Autofocus reports whether field f should receive focus on render.
func (s FormState) Autofocus(f contact.Field) bool {
	return s.Feedback.Focus != "" && s.Feedback.Focus == f
}

// Page is the full contact page view-model.
type Page struct {
	Title   string
	Header  Header
	Footer  Footer
	Form    FormState
	Gallery *gallery.Catalog
}

// Builder produces pages that share header, footer and gallery settings.
type Builder struct {
	SiteName string
	Gallery  *gallery.Catalog
	Clock    Clock
}

// Page builds a page for the given form state. The footer year is read
// from the clock on every call.
func (b Builder) Page(form FormState) Page {
	return Page{
		Title:   b.SiteName,
		Header:  NewHeader(b.SiteName),
		Footer:  NewFooter(b.SiteName, b.Clock),
		Form:    form,
		Gallery: b.Gallery,
	}
}
