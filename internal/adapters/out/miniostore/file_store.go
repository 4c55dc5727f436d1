// Package miniostore provides the MinIO-backed implementation of the
// FileStore port. Document bytes live in a single bucket, addressed by the
// storage keys generated at upload time.
package miniostore

import (
	"context"
	"fmt"
	"io"

	"docflow/internal/pkg/errs"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config carries the connection settings for the object storage.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioFileStore stores document bytes in a MinIO bucket.
type MinioFileStore struct {
	client *minio.Client
	bucket string
}

// NewMinioFileStore connects to the object storage and ensures the bucket
// exists.
func NewMinioFileStore(ctx context.Context, cfg Config) (*MinioFileStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", cfg.Bucket, err)
		}
	}

	return &MinioFileStore{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// Write stores the content under the given key, replacing any existing
// object.
func (s *MinioFileStore) Write(ctx context.Context, key string, content io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errs.NewStorageWriteError(key, err)
	}

	return nil
}

// Read opens the object stored under the given key. The caller must close
// the returned reader.
func (s *MinioFileStore) Read(ctx context.Context, key string) (io.ReadCloser, error) {
	// GetObject defers errors until the first read, so probe first to
	// report missing objects up front.
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, errs.NewObjectNotFoundError("object", key)
		}
		return nil, fmt.Errorf("stat object %q: %w", key, err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}

	return obj, nil
}

// Delete removes the object stored under the given key. Missing objects are
// not an error.
func (s *MinioFileStore) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return errs.NewStorageDeleteError(key, err)
	}

	return nil
}
