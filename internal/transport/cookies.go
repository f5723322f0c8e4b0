package transport

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

const (
	// SessionTokenCookie carries the signed session JWT.
	SessionTokenCookie = "session_token"
	// UserSessionCookie mirrors the profile as URL-encoded JSON for client
	// display. The guard never trusts it for authorization decisions.
	UserSessionCookie = "user_session"
)

// SetSessionCookies writes both session cookies with the given TTL.
func SetSessionCookies(w http.ResponseWriter, token string, profile interface{}, ttl time.Duration) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	maxAge := int(ttl.Seconds())

	http.SetCookie(w, &http.Cookie{
		Name:     SessionTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     UserSessionCookie,
		Value:    url.QueryEscape(string(profileJSON)),
		Path:     "/",
		HttpOnly: true,
		MaxAge:   maxAge,
	})

	return nil
}

// ClearSessionCookies expires both cookies. Safe to call repeatedly.
func ClearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{SessionTokenCookie, UserSessionCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
	}
}
