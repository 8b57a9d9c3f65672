package web

import (
	"encoding/json"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/venuesite/pkg/contact"
	"github.com/dmitrymomot/venuesite/pkg/site"
)

// FeedbackRegion renders the live region under the form. Before any
// submission it is empty and carries no role.
func FeedbackRegion(fb contact.Feedback) templ.Component {
	return component(func(h *html) {
		class := "form-feedback"
		if fb.Status != "" {
			class += " " + string(fb.Status)
		}
		h.raw("<p")
		h.attr("id", FeedbackID)
		h.attr("class", class)
		if !fb.IsZero() {
			h.attr("role", fb.Role())
		}
		h.attr("aria-live", "polite")
		h.raw(">")
		h.text(fb.Text)
		h.raw("</p>")
	})
}

// ContactForm renders the enquiry form. Without JavaScript it posts as a
// regular form; with DataStar the submit is sent in the background and the
// server answers with element patches.
func ContactForm(state site.FormState) templ.Component {
	return component(func(h *html) {
		v := state.Values
		invalid := state.Feedback.Focus

		h.raw("<form")
		h.attr("id", FormID)
		h.attr("action", "/contact")
		h.attr("method", "post")
		h.flag("novalidate", true)
		h.attr("data-on:submit__prevent", "@post('/contact', {contentType: 'form'})")
		h.raw(">")

		textInput(h, state, contact.FieldFullName, "Full name", "text", v.FullName, "name", true)
		textInput(h, state, contact.FieldEmail, "Email", "email", v.Email, "email", false)
		textInput(h, state, contact.FieldPhone, "Phone", "tel", v.Phone, "tel", false)

		h.raw(`<div class="field"><label for="roomType">Preferred room type</label><select`)
		fieldAttrs(h, state, contact.FieldRoomType, invalid)
		h.flag("required", true)
		h.raw(`><option value="">Select a room type</option>`)
		for _, opt := range contact.RoomOptions {
			h.raw("<option")
			h.attr("value", opt.ID)
			h.flag("selected", opt.ID == v.RoomType)
			h.raw(">")
			h.text(opt.Label)
			h.raw("</option>")
		}
		h.raw("</select></div>")

		h.raw(`<div class="field"><label for="message">Message</label><textarea`)
		fieldAttrs(h, state, contact.FieldMessage, invalid)
		h.attr("rows", "5")
		h.flag("required", true)
		h.raw(">")
		h.text(v.Message)
		h.raw("</textarea></div>")

		h.raw(`<div class="field field-check"><input`)
		fieldAttrs(h, state, contact.FieldConsent, invalid)
		h.attr("type", "checkbox")
		h.attr("value", "on")
		h.flag("checked", v.Consent)
		h.flag("required", true)
		h.raw(`><label for="consent">I agree that my details are used to answer this enquiry.</label></div>`)

		h.raw(`<button type="submit" class="button">Send enquiry</button>`)
		h.render(FeedbackRegion(state.Feedback))
		h.raw("</form>")
	})
}

func textInput(h *html, state site.FormState, f contact.Field, label, typ, value, autocomplete string, required bool) {
	h.raw(`<div class="field"><label`)
	h.attr("for", f.String())
	h.raw(">")
	h.text(label)
	h.raw("</label><input")
	fieldAttrs(h, state, f, state.Feedback.Focus)
	h.attr("type", typ)
	h.attr("value", value)
	h.attr("autocomplete", autocomplete)
	h.flag("required", required)
	h.raw("></div>")
}

func fieldAttrs(h *html, state site.FormState, f, invalid contact.Field) {
	h.attr("id", f.String())
	h.attr("name", f.String())
	if f == invalid {
		h.attr("aria-invalid", "true")
		h.attr("aria-describedby", FeedbackID)
	}
	h.flag("autofocus", state.Autofocus(f))
}

// FocusScript moves keyboard focus to f without scrolling the page.
func FocusScript(f contact.Field) string {
	id, _ := json.Marshal(f.String())
	return "document.getElementById(" + string(id) + ")?.focus({preventScroll: true})"
}
