// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package http

import (
	"errors"
	"net/http"

	"github.com/thsrealty/backoffice/internal/app"
	"github.com/thsrealty/backoffice/internal/service"
	"github.com/thsrealty/backoffice/internal/store"
	"github.com/thsrealty/backoffice/internal/utils"
	"github.com/thsrealty/backoffice/internal/validators"
	"github.com/thsrealty/backoffice/models"
)

var errorStatusMap = map[error]int{
	service.ErrMissingCredentials: http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrTitleTooShort:      http.StatusBadRequest,
	service.ErrIDRequired:         http.StatusBadRequest,
	service.ErrFileRequired:       http.StatusBadRequest,
	service.ErrInvalidFilePayload: http.StatusBadRequest,

	validators.ErrNameTooShort: http.StatusBadRequest,
	validators.ErrPhoneInvalid: http.StatusBadRequest,

	store.ErrPropertyNotFound:    http.StatusNotFound,
	store.ErrPropertyNumberTaken: http.StatusConflict,

	store.ErrSubmissionNotSaved:  http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:    http.StatusInternalServerError,
	store.ErrExecutingQuery:      http.StatusInternalServerError,
	store.ErrExecutingStatement:  http.StatusInternalServerError,
	store.ErrScanningRow:         http.StatusInternalServerError,
	store.ErrScanningRows:        http.StatusInternalServerError,
}

// errorMessageMap holds the user-facing message for every well-known
// failure. Validation and credential messages are Arabic because the public
// site serves an Arabic-speaking audience.
var errorMessageMap = map[error]string{
	service.ErrMissingCredentials: app.MsgCredentialsRequired,
	service.ErrInvalidCredentials: app.MsgInvalidCredentials,
	service.ErrTitleTooShort:      app.MsgTitleRequired,
	service.ErrIDRequired:         app.MsgIDRequired,
	service.ErrFileRequired:       app.MsgFileRequired,
	service.ErrInvalidFilePayload: app.MsgUploadFailed,

	validators.ErrNameTooShort: app.MsgNameRequired,
	validators.ErrPhoneInvalid: app.MsgPhoneInvalid,

	store.ErrPropertyNotFound:    app.MsgPropertyNotFound,
	store.ErrPropertyNumberTaken: app.MsgPropertyNumberTaken,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, fallback string) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return fallback
}

// writeError maps err to its HTTP status and user-facing message and writes
// the JSON error body. fallback is used for errors with no mapped message,
// typically the endpoint's generic failure text.
func writeError(w http.ResponseWriter, err error, fallback string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err, fallback)}, statusFromError(err))
}
