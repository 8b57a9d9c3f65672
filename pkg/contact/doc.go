// Package contact validates enquiries submitted through the venue's contact
// form.
//
// A Snapshot captures the form values at submission time. Validate runs the
// ordered rule table returned by Rules and reports every failing rule's
// message together with the field that should receive focus first:
//
//	res := contact.Validate(contact.Snapshot{
//	    FullName: "Jo",
//	    RoomType: "deluxe",
//	    Message:  "We would like a quiet room for two nights.",
//	    Consent:  true,
//	})
//	res.Errors       // ["Full name must be at least 3 characters."]
//	res.FirstInvalid // contact.FieldFullName
//
// NewFeedback turns a Result into the text, status and accessibility role the
// page shows in its feedback region.
//
// Validation is pure and synchronous. Email and phone are optional: they are
// only checked for format when non-empty.
package contact
