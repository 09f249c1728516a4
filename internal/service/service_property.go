// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/internal/sanitize"
	"github.com/thsrealty/backoffice/internal/store"
	"github.com/thsrealty/backoffice/models"
)

// placeholderImage is substituted when a listing is saved without an image.
const placeholderImage = "https://picsum.photos/seed/new/800/600"

const minTitleLength = 2

// propertyService is the concrete implementation of PropertyService. It
// sanitizes every free-text field, coerces the enumerated fields to their
// allowed values, and applies the listing defaults before persistence.
type propertyService struct {
	propertyRepository store.PropertyRepository

	logger *logger.Logger
}

// NewPropertyService constructs a PropertyService wired to the given
// repository.
func NewPropertyService(propertyRepository store.PropertyRepository, logger *logger.Logger) PropertyService {
	return &propertyService{
		propertyRepository: propertyRepository,
		logger:             logger,
	}
}

// List returns every listing, newest first.
func (p *propertyService) List(ctx context.Context) ([]models.Property, error) {
	return p.propertyRepository.List(ctx)
}

// Create sanitizes and persists a new listing.
//
// Returns ErrTitleTooShort when the sanitized title is shorter than two
// characters; nothing is persisted in that case.
func (p *propertyService) Create(ctx context.Context, input models.PropertyInput) (models.Property, error) {
	log := logger.FromContext(ctx)

	property, err := normalizeProperty(input)
	if err != nil {
		log.Error().Err(err).Msg("property rejected by normalization")
		return models.Property{}, err
	}

	saved, err := p.propertyRepository.Insert(ctx, property)
	if err != nil {
		log.Err(err).Msg("property insert ended with error")
		return models.Property{}, fmt.Errorf("property insert ended with error: %w", err)
	}

	return saved, nil
}

// Update sanitizes and overwrites an existing listing.
//
// Returns ErrIDRequired when the input carries no id, ErrTitleTooShort when
// the sanitized title is too short, or store.ErrPropertyNotFound when the id
// does not exist.
func (p *propertyService) Update(ctx context.Context, input models.PropertyInput) (models.Property, error) {
	log := logger.FromContext(ctx)

	if input.ID == 0 {
		return models.Property{}, ErrIDRequired
	}

	property, err := normalizeProperty(input)
	if err != nil {
		log.Error().Err(err).Int64("id", input.ID).Msg("property rejected by normalization")
		return models.Property{}, err
	}
	property.ID = input.ID

	updated, err := p.propertyRepository.Update(ctx, property)
	if err != nil {
		log.Err(err).Int64("id", input.ID).Msg("property update ended with error")
		return models.Property{}, fmt.Errorf("property update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes a listing by id.
//
// Returns ErrIDRequired when id is zero, or store.ErrPropertyNotFound when
// the id does not exist.
func (p *propertyService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if id == 0 {
		return ErrIDRequired
	}

	if err := p.propertyRepository.Delete(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("property delete ended with error")
		return err
	}

	return nil
}

// normalizeProperty maps an untrusted listing input to the canonical model:
// free text is sanitized, enumerated fields are coerced to their defaults,
// ShowPrice defaults to true, and a placeholder image is substituted when
// none is given.
func normalizeProperty(input models.PropertyInput) (models.Property, error) {
	title := sanitize.Text(input.Title)
	if utf8.RuneCountInString(title) < minTitleLength {
		return models.Property{}, ErrTitleTooShort
	}

	features := make([]string, 0, len(input.Features))
	for _, feature := range input.Features {
		if cleaned := sanitize.Text(feature); cleaned != "" {
			features = append(features, cleaned)
		}
	}

	image := sanitize.Text(input.Image)
	if image == "" {
		image = placeholderImage
	}

	showPrice := true
	if input.ShowPrice != nil {
		showPrice = *input.ShowPrice
	}

	return models.Property{
		Title:          title,
		Price:          input.Price,
		Location:       sanitize.Text(input.Location),
		Type:           coerceListingType(input.Type),
		Category:       coerceCategory(input.Category),
		Bedrooms:       input.Bedrooms,
		Bathrooms:      input.Bathrooms,
		Area:           input.Area,
		Description:    sanitize.Text(input.Description),
		Features:       features,
		Image:          image,
		ShowPrice:      showPrice,
		PropertyNumber: sanitize.Text(input.PropertyNumber),
		LicenseNumber:  sanitize.Text(input.LicenseNumber),
		SubType:        sanitize.Text(input.SubType),
	}, nil
}

func coerceListingType(value string) string {
	switch value {
	case models.ListingSale, models.ListingRent:
		return value
	default:
		return models.ListingSale
	}
}

func coerceCategory(value string) string {
	switch value {
	case models.CategoryApartment, models.CategoryVilla, models.CategoryOffice, models.CategoryLand:
		return value
	default:
		return models.CategoryApartment
	}
}
