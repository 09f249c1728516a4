// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package http

import (
	"encoding/json"
	"net/http"

	"github.com/thsrealty/backoffice/internal/app"
	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/internal/utils"
	"github.com/thsrealty/backoffice/models"
)

// getSettings serves the public site configuration. The service layer
// degrades to safe defaults on any read problem, so this never fails.
func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, _ := h.services.SettingsService.Get(ctx)

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input models.SettingsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	updated, err := h.services.SettingsService.Update(ctx, input)
	if err != nil {
		log.Err(err).Msg("settings update rejected")
		writeError(w, err, app.MsgUpdateSettingsFailed)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
