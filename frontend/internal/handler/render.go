package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	frontend_domain "github.com/breadit-dev/breadit/frontend/internal/domain"
	"github.com/breadit-dev/breadit/frontend/internal/markdown"
	"github.com/breadit-dev/breadit/frontend/internal/middleware"
	"github.com/breadit-dev/breadit/frontend/internal/toast"
	"github.com/breadit-dev/breadit/shared/domain"
	"github.com/breadit-dev/breadit/shared/logger"
	mw "github.com/breadit-dev/breadit/shared/middleware"
)

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common frontend_domain.CommonTemplateData
}

func (h *Handler) getTemplate(name string) (*template.Template, bool) {
	templates := h.templates.Load()
	if templates == nil {
		return nil, false
	}
	tmpl, ok := (*templates)[name]
	return tmpl, ok
}

func (h *Handler) initCommonTemplateData(w http.ResponseWriter, r *http.Request) frontend_domain.CommonTemplateData {
	toasts := toast.Pop(w, r, h.Public.SecureCookies)
	if q := toast.FromContext(r.Context()); q != nil {
		toasts = append(toasts, q.Drain()...)
	}

	return frontend_domain.CommonTemplateData{
		User:      mw.GetUserFromContext(r),
		Toasts:    toasts,
		CSRFToken: middleware.GetCSRFTokenFromContext(r),
		Validation: frontend_domain.ValidationData{
			UsernameMinLen: h.Public.UsernameMinLen,
			UsernameMaxLen: h.Public.UsernameMaxLen,
		},
	}
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	h.renderTemplateWithStatus(w, r, name, data, http.StatusOK)
}

func (h *Handler) renderTemplateWithStatus(w http.ResponseWriter, r *http.Request, name string, data any, status int) {
	tmpl, ok := h.getTemplate(name)
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	wrapped := TemplateData{
		Data:   data,
		Common: h.initCommonTemplateData(w, r),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.FromContext(r.Context()).Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, title, message string) {
	h.renderTemplateWithStatus(w, r, "error.html", frontend_domain.ErrorPageData{Title: title, Message: message}, status)
}

// renderPost transforms a domain.Post into the feed view model.
func (h *Handler) renderPost(post domain.Post, viewer *domain.User) *frontend_domain.Post {
	rendered := &frontend_domain.Post{
		Post:         post,
		Score:        post.Score(),
		CommentCount: len(post.Comments),
	}
	rendered.Content, rendered.Truncated = h.TextProcessor.Preview(post.Content, markdown.DefaultPreviewRunes)
	if viewer != nil {
		if vote := post.VoteOf(viewer.Id); vote != nil {
			rendered.UserVote = *vote
		}
	}
	return rendered
}
