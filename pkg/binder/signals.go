package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals binds the DataStar signal payload: the `datastar` query parameter
// on GET requests and the JSON body otherwise. Fields use `json` tags.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !isDataStarRequest(r) {
			return fmt.Errorf("%w: not a datastar request", ErrBinderNotApplicable)
		}

		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToReadSignals, err)
		}
		return nil
	}
}
