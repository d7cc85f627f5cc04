package handler

import (
	"net/http"

	frontend_domain "github.com/breadit-dev/breadit/frontend/internal/domain"
	"github.com/breadit-dev/breadit/frontend/internal/toast"
	"github.com/breadit-dev/breadit/frontend/internal/usernameform"
	"github.com/breadit-dev/breadit/shared/errors"
	"github.com/breadit-dev/breadit/shared/logger"
	mw "github.com/breadit-dev/breadit/shared/middleware"
	"github.com/breadit-dev/breadit/shared/validation"
)

const settingsPath = "/settings"

// formFeedback collects what the username form reports during one request.
type formFeedback struct {
	toast.Notifier
	fieldError string
	refresh    bool
}

func (f *formFeedback) FieldError(field, message string) {
	if field == validation.UsernameField {
		f.fieldError = message
	}
}

func (f *formFeedback) Refresh() {
	f.refresh = true
}

func (h *Handler) SettingsGetHandler(w http.ResponseWriter, r *http.Request) {
	me, err := h.APIClient.GetMe(r)
	if errors.IsNotFound(err) {
		h.renderError(w, r, http.StatusNotFound, "Account not found", "Your account no longer exists.")
		return
	}
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to load profile", "error", err)
		h.renderError(w, r, http.StatusBadGateway, "Could not load settings", "Please try again later.")
		return
	}

	data := frontend_domain.SettingsPageData{}
	if me.Username != nil {
		data.Username = *me.Username
	}
	h.renderTemplate(w, r, "settings.html", data)
}

// UsernamePostHandler submits the username form. Success redirects back to
// the settings page so it reloads with the new name; failures re-render the
// form keeping what the user typed.
func (h *Handler) UsernamePostHandler(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	raw := r.FormValue(validation.UsernameField)
	queue := toast.FromContext(r.Context())
	if queue == nil {
		var ctx = r.Context()
		ctx, queue = toast.WithQueue(ctx)
		r = r.WithContext(ctx)
	}
	fb := &formFeedback{Notifier: queue}

	state, _ := h.Editor.Submit(r, user.Id, raw, fb)

	data := frontend_domain.SettingsPageData{Username: raw, FieldError: fb.fieldError}
	switch state {
	case usernameform.Idle:
		// a submission for this user is already running
		http.Redirect(w, r, settingsPath, http.StatusSeeOther)
	case usernameform.Success:
		if fb.refresh {
			toast.Save(w, h.Public.SecureCookies, queue.Drain()...)
			http.Redirect(w, r, settingsPath, http.StatusSeeOther)
			return
		}
		h.renderTemplate(w, r, "settings.html", data)
	case usernameform.Invalid:
		h.renderTemplateWithStatus(w, r, "settings.html", data, http.StatusUnprocessableEntity)
	case usernameform.Conflict:
		h.renderTemplateWithStatus(w, r, "settings.html", data, http.StatusConflict)
	default:
		h.renderTemplateWithStatus(w, r, "settings.html", data, http.StatusBadGateway)
	}
}
