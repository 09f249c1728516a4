// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package store

import (
	"context"
	"fmt"

	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/models"
)

// submissionRepository is the PostgreSQL-backed implementation of
// [SubmissionRepository]. It writes sanitized lead records into the
// "property_requests" table and lists them newest-first for the dashboard.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type submissionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSubmissionRepository constructs a [SubmissionRepository] backed by the
// provided database connection and logger.
func NewSubmissionRepository(db *DB, logger *logger.Logger) SubmissionRepository {
	logger.Debug().Msg("creating submission repository")
	return &submissionRepository{
		db:     db,
		logger: logger,
	}
}

// Insert persists a new submission record and returns it with the
// server-assigned fields (ID, CreatedAt) populated.
//
// The record is stored exactly as received: normalization and validation are
// the intake pipeline's responsibility, the repository never mutates fields.
func (r *submissionRepository) Insert(ctx context.Context, submission models.Submission) (models.Submission, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, insertSubmission,
		submission.Kind,
		submission.Name,
		submission.Email,
		submission.Employer,
		submission.JobTitle,
		submission.Age,
		submission.Phone,
		submission.ContactMethod,
		submission.MonthlyIncome,
		submission.HasObligations,
		submission.ObligationAmount,
		submission.HasDownPayment,
		submission.DownPaymentAmount,
		submission.HasJointApplicants,
		submission.JointApplicantIncome,
		submission.PropertyType,
		submission.PropertyValue,
		submission.District,
		submission.City,
		submission.Area,
		submission.PropertyID,
		submission.PropertyNumber,
		submission.PropertyTitle,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*submissionRepository.Insert").Str("kind", string(submission.Kind)).Msg("error: row is nil")
		return models.Submission{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved submission from db
	if err := row.Scan(&submission.ID, &submission.CreatedAt); err != nil {
		log.Err(err).Str("func", "*submissionRepository.Insert").Msg("error: scanning error")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return submission, nil
}

// List retrieves every stored submission ordered newest-first.
//
// Returns an empty slice when no records exist.
func (r *submissionRepository) List(ctx context.Context) ([]models.Submission, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listSubmissions)
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.List").Msg("failed to execute query for listing submissions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Submission, 0, 50)

	for rows.Next() {
		var item models.Submission

		scanErr := rows.Scan(
			&item.ID,
			&item.Kind,
			&item.Name,
			&item.Email,
			&item.Employer,
			&item.JobTitle,
			&item.Age,
			&item.Phone,
			&item.ContactMethod,
			&item.MonthlyIncome,
			&item.HasObligations,
			&item.ObligationAmount,
			&item.HasDownPayment,
			&item.DownPaymentAmount,
			&item.HasJointApplicants,
			&item.JointApplicantIncome,
			&item.PropertyType,
			&item.PropertyValue,
			&item.District,
			&item.City,
			&item.Area,
			&item.PropertyID,
			&item.PropertyNumber,
			&item.PropertyTitle,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*submissionRepository.List").Msg("failed to scan submission row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*submissionRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
