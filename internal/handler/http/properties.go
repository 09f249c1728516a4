// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/thsrealty/backoffice/internal/app"
	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/internal/utils"
	"github.com/thsrealty/backoffice/models"
)

// listProperties serves the public catalog, newest first.
func (h *Handler) listProperties(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	properties, err := h.services.PropertyService.List(ctx)
	if err != nil {
		log.Err(err).Msg("failed to list properties")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgFetchPropertiesFailed}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, properties, http.StatusOK)
}

func (h *Handler) createProperty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input models.PropertyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	saved, err := h.services.PropertyService.Create(ctx, input)
	if err != nil {
		log.Err(err).Msg("property create rejected")
		writeError(w, err, app.MsgSavePropertyFailed)
		return
	}

	log.Info().Int64("id", saved.ID).Msg("property created")

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) updateProperty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input models.PropertyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	updated, err := h.services.PropertyService.Update(ctx, input)
	if err != nil {
		log.Err(err).Int64("id", input.ID).Msg("property update rejected")
		writeError(w, err, app.MsgSavePropertyFailed)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteProperty removes a listing. The id arrives as the "id" query
// parameter, matching the legacy dashboard client.
func (h *Handler) deleteProperty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id == 0 {
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgIDRequired}, http.StatusBadRequest)
		return
	}

	if err := h.services.PropertyService.Delete(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("property delete rejected")
		writeError(w, err, app.MsgDeletePropertyFailed)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
