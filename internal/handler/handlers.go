// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

// Package handler aggregates the transport handlers of the back-office
// server. Only HTTP is served today; the aggregate stays so another
// transport can be added without touching main.
package handler

import (
	"github.com/thsrealty/backoffice/internal/config"
	"github.com/thsrealty/backoffice/internal/handler/http"
	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/internal/ratelimit"
	"github.com/thsrealty/backoffice/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, loginLimiter, submissionLimiter *ratelimit.Limiter, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App, loginLimiter, submissionLimiter, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
