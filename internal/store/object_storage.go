// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/thsrealty/backoffice/internal/config"
	"github.com/thsrealty/backoffice/internal/logger"
)

// MinioStorage is the S3-compatible implementation of [ObjectStorage] used
// for listing images and banner uploads. Objects are written publicly
// readable under the configured bucket and addressed through PublicBaseURL.
type MinioStorage struct {
	client        *minio.Client
	bucket        string
	region        string
	publicBaseURL string
	logger        *logger.Logger
}

// NewObjectStorage creates a MinIO client from the S3 configuration.
func NewObjectStorage(cfg config.S3, log *logger.Logger) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		log.Err(err).Str("func", "NewObjectStorage").Msg("error initializing object storage client")
		return nil, fmt.Errorf("init minio: %w", err)
	}

	return &MinioStorage{
		client:        client,
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        log,
	}, nil
}

// EnsureBucket makes sure the image bucket exists before first use.
func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("make bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

// Put uploads the object and returns its public URL.
//
// The URL is PublicBaseURL joined with the object name; when no public base
// is configured the endpoint-relative path is used instead.
func (s *MinioStorage) Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	log := logger.FromContext(ctx)

	opts := minio.PutObjectOptions{ContentType: contentType}
	info, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), opts)
	if err != nil {
		log.Err(err).Str("func", "*MinioStorage.Put").Str("object", objectName).Msg("failed to upload object")
		return "", fmt.Errorf("upload object: %w", err)
	}
	if info.Size == 0 && len(data) > 0 {
		return "", ErrObjectNotStored
	}

	return s.PublicURL(objectName), nil
}

// PublicURL returns the address under which the stored object is reachable.
func (s *MinioStorage) PublicURL(objectName string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + objectName
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.client.EndpointURL().String(), "/"), s.bucket, objectName)
}
