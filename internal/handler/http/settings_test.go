// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package http

import (
	"context"
	"errors"
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

// ─────────────────────────────────────────────
// getSettings
// ─────────────────────────────────────────────

func TestGetSettings_Success(t *testing.T) {
	svc := &mockSettingsService{
		getFn: func(_ context.Context) (models.Settings, error) {
			return models.Settings{ID: 1, BannerVisible: true, BannerImage: "https://cdn.example.com/banner.webp"}, nil
		},
	}

	h := newTestHandler(t, &service.Services{SettingsService: svc})
	rec := httptest.NewRecorder()

	h.getSettings(rec, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	// legacy front-end contract: the banner5 wire names
	assert.Contains(t, rec.Body.String(), `"banner5_visible":true`)
	assert.Contains(t, rec.Body.String(), `"banner5_image":"https://cdn.example.com/banner.webp"`)

	var got models.Settings
	require.NoError(t, jsonDecode(rec.Body.String(), &got))
	assert.True(t, got.BannerVisible)
	assert.Equal(t, "https://cdn.example.com/banner.webp", got.BannerImage)
}

// TestGetSettings_DefaultsOnError verifies that read problems never surface
// to the public site: the handler serves whatever the service degraded to.
func TestGetSettings_DefaultsOnError(t *testing.T) {
	svc := &mockSettingsService{
		getFn: func(_ context.Context) (models.Settings, error) {
			return models.Settings{ID: 1, BannerVisible: false}, errors.New("db down")
		},
	}

	h := newTestHandler(t, &service.Services{SettingsService: svc})
	rec := httptest.NewRecorder()

	h.getSettings(rec, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Settings
	require.NoError(t, jsonDecode(rec.Body.String(), &got))
	assert.False(t, got.BannerVisible)
	assert.Empty(t, got.BannerImage)
}

// ─────────────────────────────────────────────
// updateSettings
// ─────────────────────────────────────────────

func TestUpdateSettings_Success(t *testing.T) {
	var received models.SettingsInput
	svc := &mockSettingsService{
		updateFn: func(_ context.Context, input models.SettingsInput) (models.Settings, error) {
			received = input
			return models.Settings{ID: 1, BannerVisible: true, BannerImage: input.BannerImage}, nil
		},
	}

	h := newTestHandler(t, &service.Services{SettingsService: svc})
	req := httptest.NewRequest(http.MethodPut, "/api/settings",
		strings.NewReader(`{"banner5_visible":true,"banner5_image":"https://cdn.example.com/b.png"}`))
	rec := httptest.NewRecorder()

	h.updateSettings(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, received.BannerVisible)
	assert.True(t, *received.BannerVisible)

	var got models.Settings
	require.NoError(t, jsonDecode(rec.Body.String(), &got))
	assert.Equal(t, "https://cdn.example.com/b.png", got.BannerImage)
}

func TestUpdateSettings_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{SettingsService: &mockSettingsService{}})
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.updateSettings(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgInvalidJSON)
}

func TestUpdateSettings_StorageFailure(t *testing.T) {
	svc := &mockSettingsService{
		updateFn: func(_ context.Context, _ models.SettingsInput) (models.Settings, error) {
			return models.Settings{}, errors.New("db down")
		},
	}

	h := newTestHandler(t, &service.Services{SettingsService: svc})
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`{"banner5_visible":false}`))
	rec := httptest.NewRecorder()

	h.updateSettings(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgUpdateSettingsFailed)
}
