// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package http

import (
	"context"

	"github.com/thsrealty/backoffice/internal/intake"
	"github.com/thsrealty/backoffice/models"
)

// Service mocks with per-test overridable behaviour.

type mockAuthService struct {
	loginFn func(ctx context.Context, credentials models.Credentials) error
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) error {
	return m.loginFn(ctx, credentials)
}

type mockSubmissionService struct {
	acceptFn func(ctx context.Context, payload intake.Payload) (models.Submission, error)
	listFn   func(ctx context.Context) ([]models.Submission, error)
}

func (m *mockSubmissionService) Accept(ctx context.Context, payload intake.Payload) (models.Submission, error) {
	return m.acceptFn(ctx, payload)
}

func (m *mockSubmissionService) List(ctx context.Context) ([]models.Submission, error) {
	return m.listFn(ctx)
}

type mockPropertyService struct {
	listFn   func(ctx context.Context) ([]models.Property, error)
	createFn func(ctx context.Context, input models.PropertyInput) (models.Property, error)
	updateFn func(ctx context.Context, input models.PropertyInput) (models.Property, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockPropertyService) List(ctx context.Context) ([]models.Property, error) {
	return m.listFn(ctx)
}

func (m *mockPropertyService) Create(ctx context.Context, input models.PropertyInput) (models.Property, error) {
	return m.createFn(ctx, input)
}

func (m *mockPropertyService) Update(ctx context.Context, input models.PropertyInput) (models.Property, error) {
	return m.updateFn(ctx, input)
}

func (m *mockPropertyService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockSettingsService struct {
	getFn    func(ctx context.Context) (models.Settings, error)
	updateFn func(ctx context.Context, input models.SettingsInput) (models.Settings, error)
}

func (m *mockSettingsService) Get(ctx context.Context) (models.Settings, error) {
	return m.getFn(ctx)
}

func (m *mockSettingsService) Update(ctx context.Context, input models.SettingsInput) (models.Settings, error) {
	return m.updateFn(ctx, input)
}

type mockUploadService struct {
	uploadFn func(ctx context.Context, request models.UploadRequest) (string, error)
}

func (m *mockUploadService) Upload(ctx context.Context, request models.UploadRequest) (string, error) {
	return m.uploadFn(ctx, request)
}
