package binder

import "errors"

var (
	// ErrBinderNotApplicable means the binder does not handle this request.
	// Callers try the next binder instead of failing.
	ErrBinderNotApplicable = errors.New("binder not applicable")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidTarget        = errors.New("binding target must be a non-nil pointer to struct")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToReadSignals  = errors.New("failed to read datastar signals")
)
