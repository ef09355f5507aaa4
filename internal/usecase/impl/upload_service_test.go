package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	domainerrors "zeemart/internal/domain/errors"
	mockSvc "zeemart/internal/mocks/service"
	"zeemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func createTestUploadService(t *testing.T) (usecase.UploadUsecase, *mockSvc.MockDocumentStore) {
	store := mockSvc.NewMockDocumentStore(t)
	svc := NewUploadService(UploadServiceParams{
		Store:  store,
		Logger: newDiscardLogger(),
	})

	return svc, store
}

func TestUploadService_Upload_Success(t *testing.T) {
	svc, store := createTestUploadService(t)

	ctx := context.Background()
	userID := uuid.New()
	payload := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0x00}, 100)...)

	var savedBody []byte
	store.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		RunAndReturn(func(ctx context.Context, key string, contentType string, body io.Reader) error {
			data, err := io.ReadAll(body)
			require.NoError(t, err)
			savedBody = data

			return nil
		})

	output, err := svc.Upload(ctx, &usecase.UploadInput{
		UserID:       userID,
		DocumentType: "business_license",
		FileName:     "license.png",
		Size:         int64(len(payload)),
		Body:         bytes.NewReader(payload),
	})

	require.NoError(t, err)
	assert.Equal(t, "image/png", output.ContentType)
	assert.True(t, strings.HasPrefix(output.Key, userID.String()+"/business_license/"))
	assert.True(t, strings.HasSuffix(output.Key, ".png"))
	// The full payload reaches the bucket, including the sniffed head.
	assert.Equal(t, payload, savedBody)
}

func TestUploadService_Upload_PDFDetectedFromContent(t *testing.T) {
	svc, store := createTestUploadService(t)

	ctx := context.Background()
	payload := []byte("%PDF-1.7 fake document body")

	store.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		RunAndReturn(func(ctx context.Context, key string, contentType string, body io.Reader) error {
			_, err := io.Copy(io.Discard, body)

			return err
		})

	output, err := svc.Upload(ctx, &usecase.UploadInput{
		UserID: uuid.New(),
		// Misleading extension; the sniffed content wins.
		FileName: "document.png",
		Size:     int64(len(payload)),
		Body:     bytes.NewReader(payload),
	})

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", output.ContentType)
	assert.True(t, strings.HasSuffix(output.Key, ".pdf"))
}

func TestUploadService_Upload_TooLarge(t *testing.T) {
	svc, _ := createTestUploadService(t)

	output, err := svc.Upload(context.Background(), &usecase.UploadInput{
		UserID:   uuid.New(),
		FileName: "huge.png",
		Size:     MaxUploadSize + 1,
		Body:     bytes.NewReader(pngHeader),
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
}

func TestUploadService_Upload_UnsupportedType(t *testing.T) {
	svc, _ := createTestUploadService(t)

	payload := []byte("#!/bin/sh\nrm -rf /tmp/scratch\n")

	output, err := svc.Upload(context.Background(), &usecase.UploadInput{
		UserID:   uuid.New(),
		FileName: "script.png",
		Size:     int64(len(payload)),
		Body:     bytes.NewReader(payload),
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
}
