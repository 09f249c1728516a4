// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package models

// Credentials is the login request body for the admin dashboard.
// The password is compared against a bcrypt hash held in configuration;
// it is never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
