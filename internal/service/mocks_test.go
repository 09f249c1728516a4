// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package service

import (
	"context"

	"github.com/thsrealty/backoffice/models"
)

// Hand-rolled repository mocks with overridable behaviour per test.

type submissionRepoMock struct {
	insertFunc func(ctx context.Context, submission models.Submission) (models.Submission, error)
	listFunc   func(ctx context.Context) ([]models.Submission, error)
}

func (m *submissionRepoMock) Insert(ctx context.Context, submission models.Submission) (models.Submission, error) {
	return m.insertFunc(ctx, submission)
}

func (m *submissionRepoMock) List(ctx context.Context) ([]models.Submission, error) {
	return m.listFunc(ctx)
}

type propertyRepoMock struct {
	listFunc   func(ctx context.Context) ([]models.Property, error)
	insertFunc func(ctx context.Context, property models.Property) (models.Property, error)
	updateFunc func(ctx context.Context, property models.Property) (models.Property, error)
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *propertyRepoMock) List(ctx context.Context) ([]models.Property, error) {
	return m.listFunc(ctx)
}

func (m *propertyRepoMock) Insert(ctx context.Context, property models.Property) (models.Property, error) {
	return m.insertFunc(ctx, property)
}

func (m *propertyRepoMock) Update(ctx context.Context, property models.Property) (models.Property, error) {
	return m.updateFunc(ctx, property)
}

func (m *propertyRepoMock) Delete(ctx context.Context, id int64) error {
	return m.deleteFunc(ctx, id)
}

type settingsRepoMock struct {
	getFunc    func(ctx context.Context) (models.Settings, error)
	upsertFunc func(ctx context.Context, settings models.Settings) (models.Settings, error)
}

func (m *settingsRepoMock) Get(ctx context.Context) (models.Settings, error) {
	return m.getFunc(ctx)
}

func (m *settingsRepoMock) Upsert(ctx context.Context, settings models.Settings) (models.Settings, error) {
	return m.upsertFunc(ctx, settings)
}

type objectStorageMock struct {
	putFunc func(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

func (m *objectStorageMock) Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	return m.putFunc(ctx, objectName, data, contentType)
}
