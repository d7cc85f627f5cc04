package middleware

import (
	"net/http"

	"github.com/breadit-dev/breadit/frontend/internal/toast"
	mw "github.com/breadit-dev/breadit/shared/middleware"
)

// sign-in lives with the identity provider; unauthenticated users land on the feed
const signInRedirect = "/"

var signInToast = toast.Toast{
	Title:       "Please sign in",
	Description: "You need an account to change your settings.",
	Variant:     toast.Destructive,
}

// Auth wraps shared auth middleware with redirect behavior for frontend
type Auth struct {
	sharedAuth    *mw.Auth
	secureCookies bool
}

func NewAuth(sharedAuth *mw.Auth, secureCookies bool) *Auth {
	return &Auth{
		sharedAuth:    sharedAuth,
		secureCookies: secureCookies,
	}
}

// NeedAuth returns middleware with redirect behavior
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return a.wrapWithRedirect(a.sharedAuth.NeedAuth())
}

// OptionalAuth populates user context if available (no redirect needed)
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return a.sharedAuth.OptionalAuth()
}

// authRedirectWriter turns 401/403 from the wrapped handler into a redirect
// carrying a toast.
type authRedirectWriter struct {
	http.ResponseWriter
	request       *http.Request
	secureCookies bool
	redirected    bool
}

func (w *authRedirectWriter) WriteHeader(statusCode int) {
	if w.redirected {
		return
	}

	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		w.redirected = true
		toast.Save(w.ResponseWriter, w.secureCookies, signInToast)
		http.Redirect(w.ResponseWriter, w.request, signInRedirect, http.StatusSeeOther)
		return
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *authRedirectWriter) Write(data []byte) (int, error) {
	if w.redirected {
		return len(data), nil // Discard body after redirect
	}
	return w.ResponseWriter.Write(data)
}

func (a *Auth) wrapWithRedirect(authMiddleware func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapper := &authRedirectWriter{
				ResponseWriter: w,
				request:        r,
				secureCookies:  a.secureCookies,
			}
			authMiddleware(next).ServeHTTP(wrapper, r)
		})
	}
}
