package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"path"

	deliverycontext "zeemart/internal/delivery/context"
	domainerrors "zeemart/internal/domain/errors"
	"zeemart/internal/domain/service"
	"zeemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MaxUploadSize bounds a single uploaded document.
const MaxUploadSize = 5 << 20 // 5MB

// Accepted MIME types with the extension used for the storage key.
var acceptedMIMETypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	store  service.DocumentStore
	logger *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Store  service.DocumentStore
	Logger *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		store:  params.Store,
		logger: params.Logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload validates size and sniffed MIME type before anything touches the
// bucket, then stores the file under <userID>/<documentType>/<uuid><ext>.
func (srv *uploadService) Upload(ctx context.Context, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	if input.Size > MaxUploadSize {
		return nil, domainerrors.ErrFileTooLarge
	}

	// Sniff the real content type from the first bytes; the client-declared
	// type is not trusted.
	head := make([]byte, 512)
	n, err := io.ReadFull(input.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := acceptedMIMETypes[contentType]
	if !ok {
		return nil, domainerrors.ErrUnsupportedFileType
	}

	docType := input.DocumentType
	if docType == "" {
		docType = "document"
	}
	key := path.Join(input.UserID.String(), docType, uuid.NewString()+ext)

	body := io.MultiReader(bytes.NewReader(head), io.LimitReader(input.Body, MaxUploadSize-int64(n)))
	if err := srv.store.Save(ctx, key, contentType, body); err != nil {
		return nil, errors.Wrap(err, "failed to store document")
	}

	srv.log(ctx).Info("Document uploaded",
		slog.Any("userID", input.UserID),
		slog.String("key", key),
		slog.String("contentType", contentType),
	)

	return &usecase.UploadOutput{
		Key:         key,
		ContentType: contentType,
		Size:        input.Size,
	}, nil
}
