// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package service

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/models"
)

func TestUpload_DataURL(t *testing.T) {
	payload := []byte("fake image bytes")
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	var gotName, gotContentType string
	var gotData []byte
	storage := &objectStorageMock{
		putFunc: func(_ context.Context, objectName string, data []byte, contentType string) (string, error) {
			gotName, gotData, gotContentType = objectName, data, contentType
			return "https://cdn.example.com/" + objectName, nil
		},
	}
	svc := NewUploadService(storage, logger.NewLogger("test"))

	url, err := svc.Upload(context.Background(), models.UploadRequest{File: encoded, FileName: "photo.PNG"})
	require.NoError(t, err)

	assert.Equal(t, payload, gotData)
	assert.Equal(t, "image/png", gotContentType)
	assert.True(t, strings.HasPrefix(gotName, "properties/"))
	assert.True(t, strings.HasSuffix(gotName, ".png"))
	assert.Equal(t, "https://cdn.example.com/"+gotName, url)
}

func TestUpload_BareBase64(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF}
	storage := &objectStorageMock{
		putFunc: func(_ context.Context, objectName string, data []byte, contentType string) (string, error) {
			assert.Equal(t, payload, data)
			assert.Equal(t, "image/jpeg", contentType)
			return "https://cdn.example.com/" + objectName, nil
		},
	}
	svc := NewUploadService(storage, logger.NewLogger("test"))

	_, err := svc.Upload(context.Background(), models.UploadRequest{
		File:     base64.StdEncoding.EncodeToString(payload),
		FileName: "photo.jpg",
	})
	assert.NoError(t, err)
}

func TestUpload_UniqueObjectNames(t *testing.T) {
	names := make(map[string]struct{})
	storage := &objectStorageMock{
		putFunc: func(_ context.Context, objectName string, _ []byte, _ string) (string, error) {
			names[objectName] = struct{}{}
			return objectName, nil
		},
	}
	svc := NewUploadService(storage, logger.NewLogger("test"))

	request := models.UploadRequest{
		File:     base64.StdEncoding.EncodeToString([]byte("x")),
		FileName: "photo.webp",
	}
	for i := 0; i < 5; i++ {
		_, err := svc.Upload(context.Background(), request)
		require.NoError(t, err)
	}

	assert.Len(t, names, 5)
}

func TestUpload_MissingFields(t *testing.T) {
	svc := NewUploadService(&objectStorageMock{}, logger.NewLogger("test"))

	tests := []struct {
		name    string
		request models.UploadRequest
	}{
		{name: "no file", request: models.UploadRequest{FileName: "photo.png"}},
		{name: "no file name", request: models.UploadRequest{File: "aGk="}},
		{name: "empty", request: models.UploadRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), tt.request)
			assert.ErrorIs(t, err, ErrFileRequired)
		})
	}
}

func TestUpload_InvalidBase64(t *testing.T) {
	svc := NewUploadService(&objectStorageMock{}, logger.NewLogger("test"))

	_, err := svc.Upload(context.Background(), models.UploadRequest{File: "%%%not-base64%%%", FileName: "photo.png"})
	assert.ErrorIs(t, err, ErrInvalidFilePayload)
}

func TestUpload_UnknownExtensionFallsBack(t *testing.T) {
	storage := &objectStorageMock{
		putFunc: func(_ context.Context, _ string, _ []byte, contentType string) (string, error) {
			assert.Equal(t, "image/jpeg", contentType)
			return "url", nil
		},
	}
	svc := NewUploadService(storage, logger.NewLogger("test"))

	_, err := svc.Upload(context.Background(), models.UploadRequest{
		File:     base64.StdEncoding.EncodeToString([]byte("x")),
		FileName: "photo.bmp",
	})
	assert.NoError(t, err)
}
