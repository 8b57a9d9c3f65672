package handler

import "net/http"

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that hands err to the ErrorHandler configured
// on Wrap, so handlers can fail without writing to the response themselves.
//
//	item, err := catalog.Find(id)
//	if err != nil {
//		return handler.Error(errors.Join(handler.ErrNotFound, err))
//	}
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
