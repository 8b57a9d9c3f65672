// Package binder decodes HTTP request data into Go structs.
//
// Three binders are provided, each limited to the requests it understands:
//
//   - Form(): application/x-www-form-urlencoded and multipart/form-data, driven by `form` tags
//   - JSON(): application/json bodies, strict (unknown fields rejected, 1MB cap)
//   - Signals(): DataStar requests, decoding the signal payload with `json` tags
//
// A binder that does not handle a request returns an error wrapping
// ErrBinderNotApplicable, so several binders can be registered on one
// endpoint and the handler layer skips those that do not apply:
//
//	type ContactRequest struct {
//	    FullName string `form:"fullName" json:"fullName"`
//	    Consent  bool   `form:"consent" json:"consent"`
//	}
//
//	http.HandleFunc("/contact", handler.Wrap(submit,
//	    handler.WithBinders[handler.Context, ContactRequest](binder.Signals(), binder.Form()),
//	))
//
// Checkbox values such as "on", "yes" and "1" bind to true; an absent
// checkbox leaves the field false.
package binder
