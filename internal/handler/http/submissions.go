// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/thsrealty/backoffice/internal/app"
	"github.com/thsrealty/backoffice/internal/intake"
	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/internal/utils"
	"github.com/thsrealty/backoffice/models"
)

// createSubmission is the public lead-capture endpoint. The pipeline order
// is fixed: throttle, decode, normalize+validate+insert via the service.
// A throttled or invalid request must not reach the database.
func (h *Handler) createSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if h.submissionLimiter.Limited(clientIP(r), time.Now()) {
		log.Error().Str("client_ip", clientIP(r)).Msg("submissions throttled")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgTooManySubmissions}, http.StatusTooManyRequests)
		return
	}

	var payload intake.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	saved, err := h.services.SubmissionService.Accept(ctx, payload)
	if err != nil {
		log.Err(err).Msg("submission rejected")
		writeError(w, err, app.MsgSaveSubmissionFailed)
		return
	}

	log.Info().Int64("id", saved.ID).Str("kind", string(saved.Kind)).Msg("submission stored")

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusCreated)
}

// listSubmissions returns every stored submission, newest first. Dashboard
// only, the auth middleware runs before this handler.
func (h *Handler) listSubmissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	submissions, err := h.services.SubmissionService.List(ctx)
	if err != nil {
		log.Err(err).Msg("failed to list submissions")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgFetchSubmissionsFailed}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, submissions, http.StatusOK)
}
