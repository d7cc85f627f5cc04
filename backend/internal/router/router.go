package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/breadit-dev/breadit/backend/internal/handler"
	mw "github.com/breadit-dev/breadit/shared/middleware"
	"github.com/breadit-dev/breadit/shared/middleware/metrics"
)

type Options struct {
	AllowedOrigins []string
	SecureCookies  bool
}

// New creates the API router.
func New(h *handler.Handler, auth *mw.Auth, m *metrics.Metrics, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(m.Middleware)
	r.Use(middleware.Compress(5))

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:8081"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(mw.SecurityHeadersWithCSP(opts.SecureCookies, mw.APICSP))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.With(auth.OptionalAuth()).Get("/feed", h.GetFeed)

		r.Group(func(r chi.Router) {
			r.Use(auth.NeedAuth())
			r.Get("/users/me", h.Me)
			r.Patch("/username", h.UpdateUsername)
		})
	})

	return r
}
