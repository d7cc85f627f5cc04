package handler

import (
	"html/template"
	"net/http"
	"sync/atomic"

	"github.com/breadit-dev/breadit/frontend/internal/markdown"
	"github.com/breadit-dev/breadit/frontend/internal/usernameform"
	"github.com/breadit-dev/breadit/shared/api"
	"github.com/breadit-dev/breadit/shared/config"
	"github.com/breadit-dev/breadit/shared/domain"
)

// APIClient is the part of the backend client the pages use.
type APIClient interface {
	GetFeed(r *http.Request, page int) (*api.FeedResponse, error)
	GetMe(r *http.Request) (*domain.User, error)
	UpdateUsername(r *http.Request, name string) error
}

type Handler struct {
	templates     atomic.Pointer[map[string]*template.Template]
	Public        config.Public
	TextProcessor *markdown.TextProcessor
	APIClient     APIClient
	Editor        *usernameform.Editor
}

func New(templates map[string]*template.Template, publicCfg config.Public, textProcessor *markdown.TextProcessor, apiClient APIClient, editor *usernameform.Editor) *Handler {
	h := &Handler{
		Public:        publicCfg,
		TextProcessor: textProcessor,
		APIClient:     apiClient,
		Editor:        editor,
	}
	h.SetTemplates(templates)
	return h
}

// SetTemplates swaps the template set; safe while requests are being served.
func (h *Handler) SetTemplates(templates map[string]*template.Template) {
	h.templates.Store(&templates)
}

func FaviconHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "static/favicon.ico")
}
