// Package storage implements the DocumentStore interface on a
// gocloud.dev blob bucket. The bucket URL selects the backend: local
// filesystem in development, a cloud bucket in production.
package storage

import (
	"context"
	"io"
	"log/slog"

	"zeemart/config"
	"zeemart/internal/domain/service"
	"zeemart/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the file:// bucket driver for local development.
	_ "gocloud.dev/blob/fileblob"
)

type blobStore struct {
	bucket *blob.Bucket
}

// StoreParams holds dependencies for DocumentStore, injected by Fx
type StoreParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore opens the configured bucket and registers its shutdown hook.
func NewBlobStore(params StoreParams) (service.DocumentStore, error) {
	if params.Config.Upload == nil || params.Config.Upload.BucketURL == "" {
		return nil, errors.New("upload bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Upload.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open upload bucket")
	}

	params.Logger.Info("Upload bucket opened",
		slog.String("bucketUrl", params.Config.Upload.BucketURL),
	)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{bucket: bucket}, nil
}

// Save writes the body under the given key.
func (s *blobStore) Save(ctx context.Context, key string, contentType string, body io.Reader) error {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()

		return errors.Wrap(err, "failed to write document")
	}

	return errors.Wrap(writer.Close(), "failed to finalize document write")
}

// Open returns a reader for the stored document.
func (s *blobStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open document")
	}

	return reader, nil
}

// Delete removes a stored document.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	return errors.Wrap(s.bucket.Delete(ctx, key), "failed to delete document")
}
