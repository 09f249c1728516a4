// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package http

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thsrealty/backoffice/internal/config"
	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/internal/ratelimit"
	"github.com/thsrealty/backoffice/internal/service"
)

const testSessionSecret = "test-session-secret"

// newTestHandler builds a Handler over the given services with fresh
// limiters sized like production defaults (3 logins, 5 submissions per
// minute).
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(
		svcs,
		config.App{SessionSecret: testSessionSecret},
		ratelimit.NewLimiter(ratelimit.NewMemoryStore(), 3, time.Minute),
		ratelimit.NewLimiter(ratelimit.NewMemoryStore(), 5, time.Minute),
		logger.Nop(),
	)
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// jsonDecode parses a JSON response body into v.
func jsonDecode(body string, v any) error {
	return json.Unmarshal([]byte(body), v)
}
