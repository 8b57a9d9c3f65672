// Package handler provides type-safe HTTP request handling with first-class
// support for DataStar partial updates.
//
// Handlers are generic functions that receive a bound request value and
// return a Response. Wrap turns them into an http.HandlerFunc, running the
// configured binders first and routing every failure to an ErrorHandler:
//
//	type ContactRequest struct {
//		FullName string `form:"fullName" json:"fullName"`
//		Consent  bool   `form:"consent" json:"consent"`
//	}
//
//	func submit(ctx handler.Context, req ContactRequest) handler.Response {
//		return handler.Templ(views.Thanks())
//	}
//
//	r.Post("/contact", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, ContactRequest](binder.Signals(), binder.Form()),
//		handler.WithErrorHandler[handler.Context, ContactRequest](errorHandler),
//	))
//
// # Responses
//
// Templ responses adapt to the request: DataStar requests receive an SSE
// element patch, regular requests receive the rendered HTML.
//
//	handler.Templ(component)                              // HTML or patch
//	handler.TemplWithStatus(component, http.StatusUnprocessableEntity)
//	handler.SSE(func(stream handler.StreamContext) error { ... })
//	handler.JSON(data, handler.WithJSONStatus(http.StatusUnprocessableEntity))
//	handler.JSONError(err)
//
// # Errors
//
// HTTPError carries a status code and a translation key. ValidationError
// carries field messages and renders as 422. NewErrorHandler classifies an
// error, logs it with the request id and renders either an error page or,
// for DataStar requests, a toast.
package handler
