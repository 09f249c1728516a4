// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/thsrealty/backoffice/internal/app"
	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/internal/utils"
	"github.com/thsrealty/backoffice/models"
)

// login authenticates the admin dashboard.
//
// Attempts are throttled per client identity before the body is even read,
// so credential stuffing burns the budget whether or not the payload parses.
// On success the session cookie is set and {"success":true} returned.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if h.loginLimiter.Limited(clientIP(r), time.Now()) {
		log.Error().Str("client_ip", clientIP(r)).Msg("login attempts throttled")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgTooManyLoginAttempts}, http.StatusTooManyRequests)
		return
	}

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.Login(ctx, credentials); err != nil {
		log.Err(err).Msg("login rejected")
		writeError(w, err, app.MsgServerError)
		return
	}

	log.Info().Msg("admin logged in")

	http.SetCookie(w, h.sessionCookie())
	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
