package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// Actions sent by the DataStar client carry the Datastar-Request header.
// GET actions also put their signals in the datastar query parameter.
const (
	dataStarHeader     = "Datastar-Request"
	dataStarQueryParam = "datastar"
	eventStreamType    = "text/event-stream"
)

// PatchPrepend inserts the patch as the first child of its target. Error
// toasts are stacked this way.
const PatchPrepend = datastar.ElementPatchModePrepend

// IsDataStar reports whether r came from the DataStar client and therefore
// expects element patches instead of a full page.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(dataStarHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), eventStreamType) {
		return true
	}
	return r.URL.Query().Has(dataStarQueryParam)
}

// NewSSE starts the event stream for a DataStar response. It writes the
// stream headers, so call it before anything else touches w.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
