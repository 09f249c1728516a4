// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package store

import (
	"context"

	"github.com/thsrealty/backoffice/models"
)

// SubmissionRepository persists and lists lead-capture submissions.
type SubmissionRepository interface {
	Insert(ctx context.Context, submission models.Submission) (models.Submission, error)
	List(ctx context.Context) ([]models.Submission, error)
}

// PropertyRepository manages catalog listings.
type PropertyRepository interface {
	List(ctx context.Context) ([]models.Property, error)
	Insert(ctx context.Context, property models.Property) (models.Property, error)
	Update(ctx context.Context, property models.Property) (models.Property, error)
	Delete(ctx context.Context, id int64) error
}

// SettingsRepository reads and writes the single-row site configuration.
type SettingsRepository interface {
	Get(ctx context.Context) (models.Settings, error)
	Upsert(ctx context.Context, settings models.Settings) (models.Settings, error)
}

// ObjectStorage stores uploaded listing images and returns their public URL.
type ObjectStorage interface {
	Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}
