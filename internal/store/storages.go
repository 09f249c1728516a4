// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

// Package store implements the persistence layer of the back-office server:
// PostgreSQL repositories for submissions, listings, and site settings, and
// an S3-compatible object store for uploaded images.
package store

import (
	"github.com/thsrealty/backoffice/internal/logger"
)

// Storages aggregates every persistence backend the service layer depends on.
type Storages struct {
	SubmissionRepository SubmissionRepository
	PropertyRepository   PropertyRepository
	SettingsRepository   SettingsRepository
	ObjectStorage        ObjectStorage
}

// NewStorages wires all repositories onto the shared database connection and
// attaches the given object store.
func NewStorages(db *DB, objects ObjectStorage, log *logger.Logger) *Storages {
	return &Storages{
		SubmissionRepository: NewSubmissionRepository(db, log),
		PropertyRepository:   NewPropertyRepository(db, log),
		SettingsRepository:   NewSettingsRepository(db, log),
		ObjectStorage:        objects,
	}
}
