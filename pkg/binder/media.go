package binder

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	mediaTypeJSON      = "application/json"
	mediaTypeForm      = "application/x-www-form-urlencoded"
	mediaTypeMultipart = "multipart/form-data"

	// datastarRequestHeader is set by the DataStar client on every action request.
	datastarRequestHeader = "Datastar-Request"
)

// mediaType returns the lower-cased media type of r without parameters.
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = ct[:idx]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

func isDataStarRequest(r *http.Request) bool {
	return r.Header.Get(datastarRequestHeader) == "true"
}

func notApplicable(mt string, expected ...string) error {
	if mt == "" {
		return fmt.Errorf("%w: %w, expected %s", ErrBinderNotApplicable, ErrMissingContentType, strings.Join(expected, " or "))
	}
	return fmt.Errorf("%w: %w: got %s, expected %s", ErrBinderNotApplicable, ErrUnsupportedMediaType, mt, strings.Join(expected, " or "))
}
