package app

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/venuesite/handler"
	"github.com/dmitrymomot/venuesite/pkg/contact"
	"github.com/dmitrymomot/venuesite/pkg/logger"
	"github.com/dmitrymomot/venuesite/pkg/metrics"
	"github.com/dmitrymomot/venuesite/pkg/site"
	"github.com/dmitrymomot/venuesite/web"
)

// validationReport is the data member of the validation API envelope.
type validationReport struct {
	Valid        bool                       `json:"valid"`
	Errors       []string                   `json:"errors"`
	FirstInvalid contact.Field              `json:"first_invalid,omitempty"`
	Violations   map[contact.Field][]string `json:"violations,omitempty"`
}

func (a *App) home(ctx handler.Context, _ struct{}) handler.Response {
	page := a.pages.Page(site.FormState{})
	return handler.Templ(web.ContactPage(page))
}

// submit validates an enquiry. Regular posts get the whole page back with
// the feedback in place; DataStar posts get element patches.
func (a *App) submit(ctx handler.Context, req contact.Snapshot) handler.Response {
	res := a.validate(ctx, req, "submit")
	fb := contact.NewFeedback(res, a.cfg.SuccessMessage)
	state := site.NewFormState(req, fb)

	if !handler.IsDataStar(ctx.Request()) {
		status := http.StatusOK
		if !res.Valid() {
			status = http.StatusUnprocessableEntity
		}
		return handler.TemplWithStatus(web.ContactPage(a.pages.Page(state)), status)
	}

	form := web.ContactForm(state)
	if res.Valid() {
		return handler.Templ(form, handler.WithTarget(web.Selector(web.FormID)))
	}
	// The whole form is patched so invalid markers from an earlier attempt go away.
	return handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendComponent(form, handler.WithTarget(web.Selector(web.FormID))); err != nil {
			return err
		}
		return stream.ExecuteScript(web.FocusScript(res.FirstInvalid))
	})
}

// validateAPI runs the same rules as submit and reports them as JSON.
func (a *App) validateAPI(ctx handler.Context, req contact.Snapshot) handler.Response {
	res := a.validate(ctx, req, "validate_api")

	report := validationReport{
		Valid:        res.Valid(),
		Errors:       res.Errors,
		FirstInvalid: res.FirstInvalid,
		Violations:   res.Violations(),
	}
	if report.Errors == nil {
		report.Errors = []string{}
	}

	status := http.StatusOK
	if !res.Valid() {
		status = http.StatusUnprocessableEntity
	}
	return handler.JSON(report, handler.WithJSONStatus(status))
}

func (a *App) validate(ctx handler.Context, req contact.Snapshot, event string) contact.Result {
	res := contact.Validate(req)
	a.metrics.RecordSubmission(res.FailedFields())

	outcome := metrics.OutcomeAccepted
	level := slog.LevelInfo
	if !res.Valid() {
		outcome = metrics.OutcomeRejected
		level = slog.LevelWarn
	}
	a.log.LogAttrs(ctx, level, "contact form validated",
		logger.Component("contact"),
		logger.Event(event),
		logger.Outcome(outcome),
		logger.Violations(len(res.Errors)),
		logger.Field(res.FirstInvalid.String()),
	)
	return res
}

// contactRedirect sends visitors who open /contact directly to the form.
func (a *App) contactRedirect(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Redirect("/#contact")
}

// openLightbox renders one gallery item. DataStar clients get the lightbox
// patched in and focused; everyone else gets a standalone page.
func (a *App) openLightbox(ctx handler.Context, _ struct{}) handler.Response {
	item, err := a.gallery.Find(chi.URLParam(ctx.Request(), "id"))
	if err != nil {
		return handler.Error(errors.Join(handler.ErrNotFound, err))
	}

	lightbox := web.Lightbox(item)
	if !handler.IsDataStar(ctx.Request()) {
		return handler.Templ(web.LightboxPage(a.pages.Page(site.FormState{}), lightbox))
	}
	return handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendComponent(lightbox, handler.WithTarget(web.Selector(web.LightboxID))); err != nil {
			return err
		}
		return stream.ExecuteScript(web.LightboxFocusScript)
	})
}

func (a *App) closeLightbox(ctx handler.Context, _ struct{}) handler.Response {
	if !handler.IsDataStar(ctx.Request()) {
		return handler.Redirect("/#gallery")
	}
	return handler.Templ(web.LightboxClosed(), handler.WithTarget(web.Selector(web.LightboxID)))
}

func (a *App) favicon(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Empty()
}
