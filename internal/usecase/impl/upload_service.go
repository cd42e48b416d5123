package impl

import (
	"context"
	"log/slog"

	deliverycontext "wellkart/internal/delivery/context"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/service"
	"wellkart/internal/usecase"

	"github.com/pkg/errors"
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	storage service.FileStorage
	logger  *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(
	storage service.FileStorage,
	logger *slog.Logger,
) usecase.UploadUsecase {
	return &uploadService{
		storage: storage,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores one file and returns its public URL.
func (srv *uploadService) Upload(ctx context.Context, file *service.UploadedFile) (*usecase.UploadOutput, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "file payload is empty")
	}

	url, err := srv.storage.Upload(ctx, file)
	if err != nil {
		srv.log(ctx).Error("Failed to upload file", slog.String("name", file.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to upload file")
	}

	srv.log(ctx).Debug("File uploaded", slog.String("name", file.Name), slog.String("url", url))

	return &usecase.UploadOutput{URL: url}, nil
}

// UploadMany stores several files. Files already stored are deleted again
// when a later one fails, so the call is all-or-nothing.
func (srv *uploadService) UploadMany(ctx context.Context, files []*service.UploadedFile) ([]*usecase.UploadOutput, error) {
	if len(files) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no files provided")
	}

	outputs := make([]*usecase.UploadOutput, 0, len(files))
	for _, file := range files {
		out, err := srv.Upload(ctx, file)
		if err != nil {
			for _, stored := range outputs {
				if delErr := srv.storage.Delete(ctx, stored.URL); delErr != nil {
					srv.log(ctx).Warn("Failed to roll back stored file", slog.String("url", stored.URL), slog.Any("error", delErr))
				}
			}

			return nil, err
		}
		outputs = append(outputs, out)
	}

	return outputs, nil
}

// Delete removes a stored file. Missing files are a no-op.
func (srv *uploadService) Delete(ctx context.Context, url string) error {
	if err := srv.storage.Delete(ctx, url); err != nil {
		srv.log(ctx).Error("Failed to delete file", slog.String("url", url), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete file")
	}

	return nil
}
