package service

import (
	"context"
	"io"
)

// DocumentStore persists uploaded files (verification documents, delivery
// attachments) in a blob bucket keyed by an opaque storage key.
type DocumentStore interface {
	Save(ctx context.Context, key string, contentType string, body io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
