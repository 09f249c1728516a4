// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thsrealty/backoffice/internal/logger"
	"github.com/thsrealty/backoffice/internal/store"
	"github.com/thsrealty/backoffice/models"
)

// contentTypes maps the accepted image file extensions to the content type
// stored alongside the object. Unknown extensions fall back to jpeg, the
// format the legacy dashboard always produced.
var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// uploadService is the concrete implementation of UploadService. It decodes
// the base64 image payload and stores it in the object store under a
// collision-free name derived from the original extension.
type uploadService struct {
	objectStorage store.ObjectStorage

	logger *logger.Logger
}

// NewUploadService constructs an UploadService wired to the given object
// store.
func NewUploadService(objectStorage store.ObjectStorage, logger *logger.Logger) UploadService {
	return &uploadService{
		objectStorage: objectStorage,
		logger:        logger,
	}
}

// Upload decodes the image payload and stores it, returning the public URL
// of the stored object.
//
// The payload may be a data URL ("data:image/png;base64,....") or a bare
// base64 string. Returns ErrFileRequired when the file or its name is
// missing, ErrInvalidFilePayload when the base64 does not decode, or a
// wrapped storage error.
func (u *uploadService) Upload(ctx context.Context, request models.UploadRequest) (string, error) {
	log := logger.FromContext(ctx)

	if request.File == "" || request.FileName == "" {
		return "", ErrFileRequired
	}

	encoded := request.File
	if _, after, found := strings.Cut(encoded, ";base64,"); found {
		encoded = after
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		log.Error().Err(err).Str("file_name", request.FileName).Msg("upload payload is not decodable")
		return "", fmt.Errorf("%w: %w", ErrInvalidFilePayload, err)
	}

	ext := strings.ToLower(path.Ext(request.FileName))
	contentType, ok := contentTypes[ext]
	if !ok {
		contentType = "image/jpeg"
	}

	// Unix-millisecond prefix keeps objects roughly chronological in bucket
	// listings; the UUID makes the name collision-free.
	objectName := fmt.Sprintf("properties/%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	url, err := u.objectStorage.Put(ctx, objectName, data, contentType)
	if err != nil {
		log.Err(err).Str("object", objectName).Msg("image upload ended with error")
		return "", fmt.Errorf("image upload ended with error: %w", err)
	}

	return url, nil
}
