package toast

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/breadit-dev/breadit/shared/logger"
)

const (
	CookieName = "flash_toasts"
	// enough for the redirect round trip
	cookieMaxAge = 300
	// browsers drop cookies above ~4KB
	maxCookieValue = 3800
)

// Save stores toasts in a short-lived cookie so they survive a redirect.
func Save(w http.ResponseWriter, secure bool, toasts ...Toast) {
	if len(toasts) == 0 {
		return
	}
	raw, err := json.Marshal(toasts)
	if err != nil {
		logger.Log.Error("failed to encode toasts", "error", err)
		return
	}
	value := base64.RawURLEncoding.EncodeToString(raw)
	if len(value) > maxCookieValue {
		logger.Log.Warn("toasts too large for cookie, dropping", "count", len(toasts))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop reads the toasts saved by Save and expires the cookie. A missing or
// tampered cookie yields no toasts.
func Pop(w http.ResponseWriter, r *http.Request, secure bool) []Toast {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var toasts []Toast
	if err := json.Unmarshal(raw, &toasts); err != nil {
		return nil
	}
	return toasts
}
