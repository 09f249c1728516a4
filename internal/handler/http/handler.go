// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package http

import (
	"github.com/thsrealty/backoffice/internal/config"
	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/internal/ratelimit"
	"github.com/thsrealty/backoffice/internal/service"
)

// Handler is the HTTP transport layer of the back-office server. It holds
// the services, the session configuration, and the per-endpoint rate
// limiters shared with the background sweeper.
type Handler struct {
	services *service.Services
	app      config.App

	loginLimiter      *ratelimit.Limiter
	submissionLimiter *ratelimit.Limiter

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler. The limiters are injected rather
// than owned so the sweeper worker can evict their expired entries.
func NewHandler(services *service.Services, app config.App, loginLimiter, submissionLimiter *ratelimit.Limiter, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		app:               app,
		loginLimiter:      loginLimiter,
		submissionLimiter: submissionLimiter,
		logger:            logger,
	}
}
