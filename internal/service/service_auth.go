// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package service

import (
	"context"
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/thsrealty/backoffice/internal/config"
	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/models"
)

// authService is the concrete implementation of AuthService. The dashboard
// has a single admin account configured at startup, so verification is a
// comparison against the configured username and bcrypt password hash, no
// user storage is involved.
type authService struct {
	// adminUsername is the single dashboard account name.
	adminUsername string

	// adminPasswordHash is the bcrypt hash the submitted password is
	// compared against.
	adminPasswordHash string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the application config.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminUsername:     cfg.AdminUsername,
		adminPasswordHash: cfg.AdminPasswordHash,
		logger:            logger,
	}
}

// Login verifies the submitted credentials against the configured admin
// account.
//
// Returns nil on success or:
//   - ErrMissingCredentials if the username or password is empty.
//   - ErrInvalidCredentials on any mismatch. The username and password
//     checks both run so the two failure modes take comparable time.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) error {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Msg("login attempted with missing credentials")
		return ErrMissingCredentials
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(credentials.Username), []byte(a.adminUsername)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(a.adminPasswordHash), []byte(credentials.Password))

	if !usernameMatch || passwordErr != nil {
		log.Error().Str("username", credentials.Username).Msg("login attempt rejected")
		return ErrInvalidCredentials
	}

	return nil
}
