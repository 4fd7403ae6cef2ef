package handlers

import (
	"errors"
	"net/http"

	"hraktech_web/metrics"
	"hraktech_web/motion"
	"hraktech_web/templates/components"
	"hraktech_web/ui"

	"github.com/labstack/echo/v4"
)

// SubmitContact runs one contact form instance through its submission. HTMX
// callers get the form fragment back with errors (422) or the success notice;
// plain form posts get the full page or a redirect.
func (s *Site) SubmitContact(c echo.Context) error {
	def := s.Content.Contact.Form

	var draft ui.Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	scope := motion.NewScope(nil)
	defer scope.Revoke()

	form := ui.NewContactForm(def, s.Config.ContactDisplayWindow)
	form.Mount(scope)
	for _, f := range def.Fields {
		form.Set(f.Name, draft.Get(f.Name))
	}

	err := form.Submit(c.Request().Context(), scope, s.Contact)
	if err == nil && form.State() == ui.FormSucceeded {
		if !isHTMX(c) {
			return c.Redirect(http.StatusSeeOther, "/#contact")
		}
		return render(c, http.StatusOK, components.ContactSuccess(s.Content.Contact, form.DisplayWindow()))
	}

	view := components.FormView{Definition: def, Draft: form.Draft()}
	status := http.StatusServiceUnavailable
	var verr *ui.ValidationError
	switch {
	case errors.As(err, &verr):
		metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
		scope.Dispatch("#"+verr.Fields[0].Field, "focus")
		view.Errors = verr
		view.Focus = form.Focused()
		status = http.StatusUnprocessableEntity
	case errors.Is(err, ui.ErrBusy):
		view.ErrorKey = "contact.errors.busy"
		status = http.StatusConflict
	default:
		s.Log.Warn().Err(err).Msg("Contact submission interrupted")
		view.ErrorKey = "contact.errors.generic"
	}

	if isHTMX(c) {
		return render(c, status, components.ContactForm(view))
	}
	return s.renderLanding(c, status, view)
}

// ContactFormHTMX returns an empty form, requested by the success notice once
// its display window ends.
func (s *Site) ContactFormHTMX(c echo.Context) error {
	return render(c, http.StatusOK, components.ContactForm(components.FormView{Definition: s.Content.Contact.Form}))
}
