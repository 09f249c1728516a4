// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/thsrealty/backoffice/internal/config"
	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/models"
)

func newTestAuthService(t *testing.T, username, password string) AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return NewAuthService(config.App{
		AdminUsername:     username,
		AdminPasswordHash: string(hash),
	}, logger.NewLogger("test"))
}

func TestAuthLogin_Success(t *testing.T) {
	auth := newTestAuthService(t, "admin", "s3cret")

	err := auth.Login(context.Background(), models.Credentials{Username: "admin", Password: "s3cret"})

	assert.NoError(t, err)
}

func TestAuthLogin_MissingCredentials(t *testing.T) {
	auth := newTestAuthService(t, "admin", "s3cret")

	tests := []struct {
		name        string
		credentials models.Credentials
	}{
		{name: "no username", credentials: models.Credentials{Password: "s3cret"}},
		{name: "no password", credentials: models.Credentials{Username: "admin"}},
		{name: "empty", credentials: models.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.Login(context.Background(), tt.credentials)
			assert.ErrorIs(t, err, ErrMissingCredentials)
		})
	}
}

func TestAuthLogin_WrongUsername(t *testing.T) {
	auth := newTestAuthService(t, "admin", "s3cret")

	err := auth.Login(context.Background(), models.Credentials{Username: "root", Password: "s3cret"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	auth := newTestAuthService(t, "admin", "s3cret")

	err := auth.Login(context.Background(), models.Credentials{Username: "admin", Password: "guess"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
