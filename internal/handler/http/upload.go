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

// uploadImage stores a listing image and returns its public URL.
func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	url, err := h.services.UploadService.Upload(ctx, request)
	if err != nil {
		log.Err(err).Str("file_name", request.FileName).Msg("upload rejected")
		writeError(w, err, app.MsgUploadFailed)
		return
	}

	log.Info().Str("url", url).Msg("image uploaded")

	utils.WriteJSON(w, models.UploadResponse{URL: url}, http.StatusOK)
}
