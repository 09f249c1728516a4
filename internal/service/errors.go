// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package service

import "errors"

var (
	// ErrMissingCredentials is returned when the login request omits the
	// username or the password.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrInvalidCredentials is returned when the username or the password is
	// wrong. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTitleTooShort is returned when a listing is created or updated with
	// a sanitized title shorter than two characters.
	ErrTitleTooShort = errors.New("property title is too short")

	// ErrIDRequired is returned when a listing update or delete omits the id.
	ErrIDRequired = errors.New("id is required")

	// ErrFileRequired is returned when the upload request omits the file
	// payload or the file name.
	ErrFileRequired = errors.New("file and file name are required")

	// ErrInvalidFilePayload is returned when the upload payload is not
	// decodable base64.
	ErrInvalidFilePayload = errors.New("file payload is not valid base64")
)
