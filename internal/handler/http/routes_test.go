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
	"github.com/thsrealty/backoffice/internal/intake"
	"github.com/thsrealty/backoffice/internal/service"
	"github.com/thsrealty/backoffice/models"
)

// newTestRouter wires every mock service through Init so requests traverse
// the full middleware chain.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	svcs := &service.Services{
		AuthService: &mockAuthService{
			loginFn: func(_ context.Context, _ models.Credentials) error { return nil },
		},
		SubmissionService: &mockSubmissionService{
			acceptFn: func(_ context.Context, _ intake.Payload) (models.Submission, error) {
				return models.Submission{ID: 1}, nil
			},
			listFn: func(_ context.Context) ([]models.Submission, error) {
				return []models.Submission{}, nil
			},
		},
		PropertyService: &mockPropertyService{
			listFn: func(_ context.Context) ([]models.Property, error) {
				return []models.Property{}, nil
			},
			createFn: func(_ context.Context, input models.PropertyInput) (models.Property, error) {
				return models.Property{ID: 1, Title: input.Title}, nil
			},
		},
		SettingsService: &mockSettingsService{
			getFn: func(_ context.Context) (models.Settings, error) {
				return models.Settings{ID: 1}, nil
			},
		},
	}

	return newTestHandler(t, svcs).Init()
}

func doRequest(router http.Handler, method, target, body string, modify ...func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.RemoteAddr = "203.0.113.7:4321"
	for _, m := range modify {
		m(req)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func withMarker(req *http.Request) {
	req.Header.Set(requestedWithHeader, requestedWithValue)
}

func withSession(req *http.Request) {
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testSessionSecret})
}

// ─────────────────────────────────────────────
// middleware chain
// ─────────────────────────────────────────────

func TestRouter_PublicReadsOpen(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/api/properties", "/api/settings"} {
		rec := doRequest(router, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.NotEmpty(t, rec.Header().Get(traceIDHeader), target)
	}
}

func TestRouter_WritesRequireSameOriginMarker(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/submissions", `{"name":"أحمد","phone":"0501234567"}`)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgCSRFFailed)
}

func TestRouter_SubmissionWithMarkerAccepted(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/submissions",
		`{"name":"أحمد","phone":"0501234567"}`, withMarker)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_DashboardRequiresSession(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/submissions"},
		{http.MethodPost, "/api/properties"},
		{http.MethodPut, "/api/settings"},
		{http.MethodPost, "/api/upload"},
	}

	for _, tt := range tests {
		rec := doRequest(router, tt.method, tt.target, `{}`, withMarker)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tt.method, tt.target)
		assert.Contains(t, rec.Body.String(), app.MsgUnauthorized)
	}
}

func TestRouter_DashboardWithSession(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/submissions", "", withSession)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodPost, "/api/properties",
		`{"title":"شقة في حي الياسمين"}`, withMarker, withSession)
	require.Equal(t, http.StatusCreated, rec.Code)
}

// ─────────────────────────────────────────────
// unsupported methods
// ─────────────────────────────────────────────

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/login", "")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST", rec.Header().Get("Allow"))
	assert.Contains(t, rec.Body.String(), app.MsgMethodNotAllowed)
}

func TestRouter_MethodNotAllowed_ListsAllMethods(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodDelete, "/api/settings", "", withMarker)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, PUT", rec.Header().Get("Allow"))
}

// TestRouter_MethodNotAllowed_BeforeSameOriginCheck verifies the guard
// order: the method check answers first, so an unsupported state-changing
// method gets 405 with Allow even when the same-origin marker is absent.
func TestRouter_MethodNotAllowed_BeforeSameOriginCheck(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodDelete, "/api/settings", "")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, PUT", rec.Header().Get("Allow"))
	assert.Contains(t, rec.Body.String(), app.MsgMethodNotAllowed)

	rec = doRequest(router, http.MethodPut, "/api/login", "")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST", rec.Header().Get("Allow"))
}

func TestRouter_UnknownPath(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/nothing", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}
