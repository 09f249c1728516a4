// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package http

import (
	"context"
	"net/http"

	"github.com/thsrealty/backoffice/internal/utils"
)

// withClientIP derives the best-effort client identity once per request and
// stores it in the context under [utils.ClientIPCtxKey] for the rate-limited
// endpoints downstream.
func (h *Handler) withClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), utils.ClientIPCtxKey, utils.ClientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// clientIP reads the identity stored by withClientIP, deriving it directly
// from the request when the middleware did not run (as in handler-level
// tests).
func clientIP(r *http.Request) string {
	if ip, ok := utils.GetClientIPFromContext(r.Context()); ok {
		return ip
	}
	return utils.ClientIP(r)
}
