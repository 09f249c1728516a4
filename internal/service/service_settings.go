// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/internal/sanitize"
	"github.com/thsrealty/backoffice/internal/store"
	"github.com/thsrealty/backoffice/models"
)

// settingsService is the concrete implementation of SettingsService.
type settingsService struct {
	settingsRepository store.SettingsRepository

	logger *logger.Logger
}

// NewSettingsService constructs a SettingsService wired to the given
// repository.
func NewSettingsService(settingsRepository store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		logger:             logger,
	}
}

// Get returns the current site configuration. A missing row and a failed
// read both degrade to the safe defaults (banner hidden, no image) so the
// public site never breaks on a settings problem.
func (s *settingsService) Get(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx)

	settings, err := s.settingsRepository.Get(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSettingsNotFound) {
			log.Err(err).Msg("settings read failed, serving defaults")
		}
		return models.Settings{ID: 1, BannerVisible: false}, nil
	}

	return settings, nil
}

// Update writes the site configuration. BannerVisible defaults to true when
// omitted; the image URL is sanitized like every other free-text field.
func (s *settingsService) Update(ctx context.Context, input models.SettingsInput) (models.Settings, error) {
	log := logger.FromContext(ctx)

	visible := true
	if input.BannerVisible != nil {
		visible = *input.BannerVisible
	}

	settings := models.Settings{
		BannerVisible: visible,
		BannerImage:   sanitize.Text(input.BannerImage),
	}

	updated, err := s.settingsRepository.Upsert(ctx, settings)
	if err != nil {
		log.Err(err).Msg("settings update ended with error")
		return models.Settings{}, fmt.Errorf("settings update ended with error: %w", err)
	}

	return updated, nil
}
