package middleware

import (
	"net/http"

	"github.com/breadit-dev/breadit/frontend/internal/toast"
)

// Toasts attaches a per-request toast queue that handlers notify into.
func Toasts(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, _ := toast.WithQueue(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
