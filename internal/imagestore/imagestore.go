// Package imagestore uploads images to an S3-compatible bucket and hands
// back the object's public URL.
package imagestore

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config carries the object-storage connection settings.
type Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	UseSSL        bool
}

// Store wraps a MinIO client bound to one bucket.
type Store struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// New connects a Store. The bucket must already exist.
func New(cfg Config) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio.New: %w", err)
	}
	return &Store{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload stores the file under a randomized name preserving the original
// extension (avoids collisions between same-named uploads) and returns
// the public URL. No retry and no partial-upload cleanup: a failed upload
// is surfaced to the operator to re-attempt.
func (s *Store) Upload(ctx context.Context, r io.Reader, originalFilename string, size int64, contentType string) (string, error) {
	object := uuid.NewString() + strings.ToLower(filepath.Ext(originalFilename))

	_, err := s.client.PutObject(ctx, s.bucket, object, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", object, err)
	}

	return s.publicBase + "/" + s.bucket + "/" + object, nil
}
