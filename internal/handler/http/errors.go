// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package http

import "errors"

var (
	// ErrMissingSessionCookie is logged when a dashboard request arrives
	// without the session cookie.
	ErrMissingSessionCookie = errors.New("session cookie is missing")

	// ErrInvalidSessionCookie is logged when the presented session cookie
	// does not match the server secret.
	ErrInvalidSessionCookie = errors.New("session cookie is invalid")
)
