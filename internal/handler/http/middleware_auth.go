// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/thsrealty/backoffice/internal/app"
	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/internal/utils"
	"github.com/thsrealty/backoffice/models"
)

// sessionCookieName is the cookie the login endpoint sets and every
// dashboard request must present.
const sessionCookieName = "session_token"

// sessionMaxAge is one day, matching the cookie the legacy dashboard set.
const sessionMaxAge = 86400

// auth is an HTTP middleware that enforces the admin session.
//
// The session contract is inherited from the legacy dashboard: the cookie
// value is the server's static session secret, compared in constant time.
// It is not signed, rotated, or per-session; anyone holding the value is the
// admin until the secret changes.
//
// Requests are rejected with HTTP 401 when the cookie is absent or its value
// does not match. Rejections are logged via the context-scoped logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			log.Err(ErrMissingSessionCookie).Str("uri", r.RequestURI).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgUnauthorized}, http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(h.app.SessionSecret)) != 1 {
			log.Err(ErrInvalidSessionCookie).Str("uri", r.RequestURI).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgUnauthorized}, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sessionCookie builds the session cookie the login endpoint sets on
// success. Secure is only set in production so local development over plain
// HTTP keeps working.
func (h *Handler) sessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    h.app.SessionSecret,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.app.Production,
	}
}
