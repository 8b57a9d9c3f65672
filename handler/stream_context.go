package handler

import (
	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext extends Context with the DataStar events a handler sends
// when one response has to patch an element and then run a script, such as
// re-rendering the contact form and focusing the first invalid field.
type StreamContext interface {
	Context

	// SendComponent patches a templ component into the page.
	SendComponent(component templ.Component, opts ...TemplOption) error

	// ExecuteScript runs script in the browser.
	ExecuteScript(script string) error
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component templ.Component, opts ...TemplOption) error {
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) ExecuteScript(script string) error {
	return c.sse.ExecuteScript(script)
}
