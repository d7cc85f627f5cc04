package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/breadit-dev/breadit/frontend/internal/handler"
	frontend_mw "github.com/breadit-dev/breadit/frontend/internal/middleware"
	"github.com/breadit-dev/breadit/frontend/internal/setup"
	mw "github.com/breadit-dev/breadit/shared/middleware"
)

func SetupRouter(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(deps.Metrics.Middleware)
	r.Use(mw.SecurityHeadersWithCSP(deps.Public.SecureCookies, mw.PageCSP))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	r.Get("/favicon.ico", handler.FaviconHandler)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(deps.StaticPath))))

	r.Group(func(r chi.Router) {
		r.Use(frontend_mw.GenerateCSRFToken(frontend_mw.CSRFConfig{SecureCookies: deps.Public.SecureCookies}))
		r.Use(frontend_mw.ValidateCSRFToken())
		r.Use(frontend_mw.Toasts)
		r.Use(deps.Auth.OptionalAuth())

		r.Get("/", deps.Handler.FeedGetHandler)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(deps.Auth.NeedAuth())
			r.Get("/settings", deps.Handler.SettingsGetHandler)
			r.Post("/settings/username", deps.Handler.UsernamePostHandler)
		})
	})

	return r
}
