package handler

import "net/http"

// ErrDataStarRequired is returned when an SSE response is rendered for a
// request that did not come from the DataStar client.
var ErrDataStarRequired = NewHTTPError(http.StatusBadRequest, "datastar_required")

// SSEHandler writes the events of one DataStar response, in order.
//
//	handler.SSE(func(stream handler.StreamContext) error {
//		if err := stream.SendComponent(web.ContactForm(state)); err != nil {
//			return err
//		}
//		return stream.ExecuteScript(web.FocusScript(res.FirstInvalid))
//	})
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return ErrDataStarRequired
	}
	return s.handler(&streamContext{Context: NewContext(w, r), sse: NewSSE(w, r)})
}

// SSE returns a response that runs handler against a DataStar event stream.
// Use it when one action needs a patch followed by a script.
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
