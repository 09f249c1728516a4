// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package validators

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/thsrealty/backoffice/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the applicant name of a submission.
	FieldName = "name"

	// FieldPhone targets the applicant phone number of a submission.
	FieldPhone = "phone"
)

// Minimum lengths enforced after sanitization. The interest form is stricter
// because its legacy client always sent full mobile numbers.
const (
	minNameLength           = 2
	minOwnershipPhoneLength = 9
	minInterestPhoneLength  = 10
)

// phonePattern is the character class the interest form enforces on phone
// numbers. The sanitizer already strips everything else, so in practice this
// rejects only values emptied by sanitization, but the contract is explicit.
var phonePattern = regexp.MustCompile(`^[0-9+\-() ]+$`)

// SubmissionValidator implements [Validator] for models.Submission. It
// checks the post-normalization invariants that gate persistence: name and
// phone minimums, with the phone rule depending on the form variant.
type SubmissionValidator struct{}

// NewSubmissionValidator constructs a SubmissionValidator ready for use.
func NewSubmissionValidator() *SubmissionValidator {
	return &SubmissionValidator{}
}

// Validate checks the given models.Submission (value or pointer). With no
// field names it validates everything; otherwise only the named fields.
func (v *SubmissionValidator) Validate(_ context.Context, input any, fields ...string) error {
	var submission models.Submission
	switch s := input.(type) {
	case models.Submission:
		submission = s
	case *models.Submission:
		submission = *s
	default:
		return ErrUnsupportedInput
	}

	if len(fields) == 0 {
		fields = []string{FieldName, FieldPhone}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if err := v.validateName(submission); err != nil {
				return err
			}
		case FieldPhone:
			if err := v.validatePhone(submission); err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *SubmissionValidator) validateName(s models.Submission) error {
	if utf8.RuneCountInString(s.Name) < minNameLength {
		return ErrNameTooShort
	}
	return nil
}

func (v *SubmissionValidator) validatePhone(s models.Submission) error {
	length := utf8.RuneCountInString(s.Phone)

	if s.Kind == models.KindInterest {
		if length < minInterestPhoneLength || !phonePattern.MatchString(s.Phone) {
			return ErrPhoneInvalid
		}
		return nil
	}

	if length < minOwnershipPhoneLength {
		return ErrPhoneInvalid
	}
	return nil
}
