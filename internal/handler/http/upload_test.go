// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thsrealty/backoffice/internal/app"
	"github.com/thsrealty/backoffice/internal/service"
	"github.com/thsrealty/backoffice/models"
)

func TestUploadImage_Success(t *testing.T) {
	var received models.UploadRequest
	svc := &mockUploadService{
		uploadFn: func(_ context.Context, request models.UploadRequest) (string, error) {
			received = request
			return "https://cdn.example.com/properties/1-abc.png", nil
		},
	}

	h := newTestHandler(t, &service.Services{UploadService: svc})
	req := httptest.NewRequest(http.MethodPost, "/api/upload",
		strings.NewReader(`{"file":"aGVsbG8=","fileName":"villa.png"}`))
	rec := httptest.NewRecorder()

	h.uploadImage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "villa.png", received.FileName)

	var got models.UploadResponse
	require.NoError(t, jsonDecode(rec.Body.String(), &got))
	assert.Equal(t, "https://cdn.example.com/properties/1-abc.png", got.URL)
}

func TestUploadImage_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{UploadService: &mockUploadService{}})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.uploadImage(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgInvalidJSON)
}

func TestUploadImage_MissingFile(t *testing.T) {
	svc := &mockUploadService{
		uploadFn: func(_ context.Context, _ models.UploadRequest) (string, error) {
			return "", service.ErrFileRequired
		},
	}

	h := newTestHandler(t, &service.Services{UploadService: svc})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.uploadImage(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgFileRequired)
}

func TestUploadImage_StorageFailure(t *testing.T) {
	svc := &mockUploadService{
		uploadFn: func(_ context.Context, _ models.UploadRequest) (string, error) {
			return "", service.ErrInvalidFilePayload
		},
	}

	h := newTestHandler(t, &service.Services{UploadService: svc})
	req := httptest.NewRequest(http.MethodPost, "/api/upload",
		strings.NewReader(`{"file":"***","fileName":"villa.png"}`))
	rec := httptest.NewRecorder()

	h.uploadImage(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgUploadFailed)
}
