// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package service

import (
	"context"
	"fmt"

	"github.com/thsrealty/backoffice/internal/intake"
	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/internal/store"
	"github.com/thsrealty/backoffice/internal/validators"
	"github.com/thsrealty/backoffice/models"
)

// submissionService is the concrete implementation of SubmissionService.
// Accept runs the full intake pipeline: normalization, validation, insert.
type submissionService struct {
	submissionRepository store.SubmissionRepository
	validator            validators.Validator

	logger *logger.Logger
}

// NewSubmissionService constructs a SubmissionService wired to the given
// repository. Validation rules are fixed at construction time.
func NewSubmissionService(submissionRepository store.SubmissionRepository, logger *logger.Logger) SubmissionService {
	return &submissionService{
		submissionRepository: submissionRepository,
		validator:            validators.NewSubmissionValidator(),
		logger:               logger,
	}
}

// Accept normalizes the untrusted payload into a canonical submission,
// validates it, and persists it.
//
// Returns the stored record (with server-assigned ID and CreatedAt) or:
//   - validators.ErrNameTooShort / validators.ErrPhoneInvalid when the
//     sanitized record fails validation. Nothing is persisted in that case.
//   - A wrapped storage error if the insert fails.
func (s *submissionService) Accept(ctx context.Context, payload intake.Payload) (models.Submission, error) {
	log := logger.FromContext(ctx)

	submission := intake.Normalize(payload)

	if err := s.validator.Validate(ctx, submission); err != nil {
		log.Error().Err(err).Str("kind", string(submission.Kind)).Msg("submission rejected by validation")
		return models.Submission{}, err
	}

	saved, err := s.submissionRepository.Insert(ctx, submission)
	if err != nil {
		log.Err(err).Str("kind", string(submission.Kind)).Msg("submission insert ended with error")
		return models.Submission{}, fmt.Errorf("submission insert ended with error: %w", err)
	}

	return saved, nil
}

// List returns every stored submission, newest first.
func (s *submissionService) List(ctx context.Context) ([]models.Submission, error) {
	return s.submissionRepository.List(ctx)
}
