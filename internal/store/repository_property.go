// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/models"
)

// propertyRepository is the PostgreSQL-backed implementation of
// [PropertyRepository]. It manages catalog listings in the "properties"
// table; all statements are built dynamically with squirrel.
//
// The Features slice is persisted as a JSONB column, so it survives
// round-trips without a PostgreSQL array decoder.
type propertyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPropertyRepository constructs a [PropertyRepository] backed by the
// provided database connection and logger.
func NewPropertyRepository(db *DB, logger *logger.Logger) PropertyRepository {
	logger.Debug().Msg("creating property repository")
	return &propertyRepository{
		db:     db,
		logger: logger,
	}
}

// List retrieves every listing ordered newest-first.
//
// Returns an empty slice when the catalog is empty.
func (r *propertyRepository) List(ctx context.Context) ([]models.Property, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPropertiesQuery()
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.List").Msg("failed to execute query for listing properties")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Property, 0, 20)

	for rows.Next() {
		item, scanErr := scanProperty(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*propertyRepository.List").Msg("failed to scan property row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*propertyRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Insert persists a new listing and returns it with the server-assigned
// fields (ID, CreatedAt) populated.
func (r *propertyRepository) Insert(ctx context.Context, property models.Property) (models.Property, error) {
	log := logger.FromContext(ctx)

	features, err := encodeFeatures(property.Features)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.Insert").Msg("failed to encode features")
		return models.Property{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := buildInsertPropertyQuery(property, features)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.Insert").Msg("failed to build query")
		return models.Property{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*propertyRepository.Insert").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Property{}, ErrPropertyNumberTaken
		default:
			return models.Property{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&property.ID, &property.CreatedAt); err != nil {
		log.Err(err).Str("func", "*propertyRepository.Insert").Msg("error: scanning error")
		return models.Property{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return property, nil
}

// Update overwrites every mutable column of an existing listing.
//
// Returns [ErrPropertyNotFound] when no row matches property.ID.
func (r *propertyRepository) Update(ctx context.Context, property models.Property) (models.Property, error) {
	log := logger.FromContext(ctx)

	features, err := encodeFeatures(property.Features)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.Update").Msg("failed to encode features")
		return models.Property{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := buildUpdatePropertyQuery(property, features)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.Update").Msg("failed to build query")
		return models.Property{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*propertyRepository.Update").Int64("id", property.ID).Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Property{}, ErrPropertyNumberTaken
		default:
			return models.Property{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&property.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Property{}, ErrPropertyNotFound
		}
		log.Err(err).Str("func", "*propertyRepository.Update").Int64("id", property.ID).Msg("error: scanning error")
		return models.Property{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return property, nil
}

// Delete removes a listing by id.
//
// Returns [ErrPropertyNotFound] when no row matches.
func (r *propertyRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePropertyQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.Delete").Int64("id", id).Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.Delete").Int64("id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPropertyNotFound
	}

	return nil
}

// scanProperty scans the full propertyColumns set from the current row and
// decodes the JSONB features payload.
func scanProperty(rows *sql.Rows) (models.Property, error) {
	var item models.Property
	var features []byte

	err := rows.Scan(
		&item.ID,
		&item.Title,
		&item.Price,
		&item.Location,
		&item.Type,
		&item.Category,
		&item.Bedrooms,
		&item.Bathrooms,
		&item.Area,
		&item.Description,
		&features,
		&item.Image,
		&item.ShowPrice,
		&item.PropertyNumber,
		&item.LicenseNumber,
		&item.SubType,
		&item.CreatedAt,
	)
	if err != nil {
		return models.Property{}, err
	}

	if len(features) > 0 {
		if err := json.Unmarshal(features, &item.Features); err != nil {
			return models.Property{}, err
		}
	}

	return item, nil
}

// encodeFeatures serializes the features slice for the JSONB column.
// A nil slice is stored as an empty JSON array, never as NULL.
func encodeFeatures(features []string) ([]byte, error) {
	if features == nil {
		features = []string{}
	}
	return json.Marshal(features)
}
