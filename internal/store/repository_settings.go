// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/models"
)

// settingsRepository is the PostgreSQL-backed implementation of
// [SettingsRepository]. The settings table holds a single row with a fixed
// id of 1; Upsert creates it on first write.
type settingsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSettingsRepository constructs a [SettingsRepository] backed by the
// provided database connection and logger.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves the current site configuration.
//
// Returns [ErrSettingsNotFound] when the row has never been written.
func (r *settingsRepository) Get(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx)

	var settings models.Settings
	row := r.db.QueryRowContext(ctx, getSettings)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*settingsRepository.Get").Msg("error: row is nil")
		return models.Settings{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&settings.ID, &settings.BannerVisible, &settings.BannerImage, &settings.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Settings{}, ErrSettingsNotFound
		}
		log.Err(err).Str("func", "*settingsRepository.Get").Msg("error: scanning error")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return settings, nil
}

// Upsert writes the site configuration, creating the singleton row when it
// does not exist yet, and returns the stored state with the server-assigned
// UpdatedAt timestamp.
func (r *settingsRepository) Upsert(ctx context.Context, settings models.Settings) (models.Settings, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertSettings, settings.BannerVisible, settings.BannerImage)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*settingsRepository.Upsert").Msg("error: row is nil")
		return models.Settings{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&settings.ID, &settings.BannerVisible, &settings.BannerImage, &settings.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*settingsRepository.Upsert").Msg("error: scanning error")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return settings, nil
}
