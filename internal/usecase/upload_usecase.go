package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// UploadInput carries one multipart file destined for the document bucket.
// Body is read at most once; size and MIME checks happen before any write.
type UploadInput struct {
	UserID       uuid.UUID
	DocumentType string
	FileName     string
	Size         int64
	Body         io.Reader
}

// UploadOutput returns the storage key of the persisted document.
type UploadOutput struct {
	Key         string
	ContentType string
	Size        int64
}

// UploadUsecase defines the interface for file-upload business operations.
type UploadUsecase interface {
	// Upload rejects files over 5MB or outside the accepted MIME set
	// (jpeg, png, webp, pdf) before touching the bucket.
	Upload(ctx context.Context, input *UploadInput) (*UploadOutput, error)
}
