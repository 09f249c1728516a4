// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package service

import (
	"context"

	"github.com/thsrealty/backoffice/internal/intake"
	"github.com/thsrealty/backoffice/models"
)

// AuthService verifies admin dashboard credentials.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) error
}

// SubmissionService runs the intake pipeline over public form payloads and
// exposes the stored records to the dashboard.
type SubmissionService interface {
	Accept(ctx context.Context, payload intake.Payload) (models.Submission, error)
	List(ctx context.Context) ([]models.Submission, error)
}

// PropertyService manages catalog listings on behalf of the dashboard.
type PropertyService interface {
	List(ctx context.Context) ([]models.Property, error)
	Create(ctx context.Context, input models.PropertyInput) (models.Property, error)
	Update(ctx context.Context, input models.PropertyInput) (models.Property, error)
	Delete(ctx context.Context, id int64) error
}

// SettingsService reads and writes the site configuration.
type SettingsService interface {
	Get(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, input models.SettingsInput) (models.Settings, error)
}

// UploadService stores listing images and returns their public URL.
type UploadService interface {
	Upload(ctx context.Context, request models.UploadRequest) (string, error)
}
