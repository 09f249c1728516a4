// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

// Package service implements the business logic of the back-office server:
// admin authentication, the submission intake pipeline, listing management,
// site settings, and image uploads.
package service

import (
	"github.com/thsrealty/backoffice/internal/config"
	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/internal/store"
)

// Services aggregates every business-logic service the HTTP layer depends on.
type Services struct {
	AuthService       AuthService
	SubmissionService SubmissionService
	PropertyService   PropertyService
	SettingsService   SettingsService
	UploadService     UploadService
}

// NewServices wires all services onto the given storages and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(cfg.App, logger),
		SubmissionService: NewSubmissionService(storages.SubmissionRepository, logger),
		PropertyService:   NewPropertyService(storages.PropertyRepository, logger),
		SettingsService:   NewSettingsService(storages.SettingsRepository, logger),
		UploadService:     NewUploadService(storages.ObjectStorage, logger),
	}
}
