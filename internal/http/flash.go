package httpx

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// Flash kinds map to the styling of the message banner.
const (
	FlashError   = "error"
	FlashSuccess = "success"
	FlashWarning = "warning"
)

// Flash is a one-shot message surviving exactly one redirect.
type Flash struct {
	Kind    string
	Message string
}

// SetFlash stores a flash message in a short-lived cookie. The value is
// base64-encoded so punctuation in backend error messages survives the trip.
func SetFlash(w http.ResponseWriter, kind, message string) {
	value := base64.URLEncoding.EncodeToString([]byte(kind + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending flash message, if any, and clears the cookie.
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(string(decoded), "|")
	if !ok || message == "" {
		return nil
	}
	switch kind {
	case FlashError, FlashSuccess, FlashWarning:
		return &Flash{Kind: kind, Message: message}
	default:
		return nil
	}
}
