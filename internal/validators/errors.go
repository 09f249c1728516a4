// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package validators

import "errors"

// Sentinel errors returned by SubmissionValidator. The transport layer maps
// them to HTTP 400 with a localized, field-specific message.
var (
	// ErrNameTooShort is returned when the sanitized name is shorter than
	// two characters.
	ErrNameTooShort = errors.New("name is required")

	// ErrPhoneInvalid is returned when the sanitized phone number is too
	// short for the form variant, or fails the interest-form pattern check.
	ErrPhoneInvalid = errors.New("phone number is invalid")

	// ErrUnsupportedInput is returned when a value of an unexpected type is
	// passed to a validator.
	ErrUnsupportedInput = errors.New("unsupported input type for validation")
)
