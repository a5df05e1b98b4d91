// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"

	"github.com/danielhkuo/quickly-polls/auth"
)

const (
	CSRFCookieName = "csrftoken"
	CSRFFieldName  = "csrf_token"
)

// CSRFToken returns the form token for this browser, issuing a nonce
// cookie first if the request did not carry one.
func CSRFToken(w http.ResponseWriter, r *http.Request, secret string) (string, error) {
	if c, err := r.Cookie(CSRFCookieName); err == nil && c.Value != "" {
		return auth.SignFormToken(c.Value, secret), nil
	}

	nonce, err := auth.GenerateNonce()
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    nonce,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	return auth.SignFormToken(nonce, secret), nil
}

// RequireCSRF rejects form posts whose csrf_token does not match the cookie
func RequireCSRF(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var nonce string
		if c, err := r.Cookie(CSRFCookieName); err == nil {
			nonce = c.Value
		}

		token := r.PostFormValue(CSRFFieldName)
		if err := auth.ValidateFormToken(nonce, token, secret); err != nil {
			Logger(r.Context()).Warn("csrf check failed",
				"path", r.URL.Path,
				"error", err,
			)
			http.Error(w, "CSRF verification failed", http.StatusForbidden)
			return
		}

		next(w, r)
	}
}
