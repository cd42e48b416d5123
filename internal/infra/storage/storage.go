// Package storage implements the FileStorage service on top of go-cloud blob
// buckets, so local disk and S3 share one code path.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"wellkart/config"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob" // register the s3:// URL scheme
	"gocloud.dev/gcerrors"
)

// Supported storage providers.
const (
	ProviderDisk = "disk"
	ProviderS3   = "s3"
)

// blobStorage implements service.FileStorage over a *blob.Bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for FileStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New selects the storage backend from configuration, once at startup.
func New(params Params) (service.FileStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		return nil, errors.New("storage configuration is missing")
	}

	var bucket *blob.Bucket
	var publicBaseURL string
	var err error

	switch cfg.Provider {
	case ProviderDisk, "":
		diskPath := cfg.DiskPath
		if diskPath == "" {
			diskPath = "./uploads"
		}
		if err := os.MkdirAll(diskPath, 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create upload directory")
		}

		bucket, err = fileblob.OpenBucket(diskPath, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open disk bucket")
		}
		publicBaseURL = strings.TrimSuffix(cfg.PublicBaseURL, "/")

		params.Logger.Info("Using disk file storage",
			slog.String("path", diskPath),
		)

	case ProviderS3:
		if cfg.Bucket == "" {
			return nil, errors.New("bucket is required for s3 storage")
		}

		url := fmt.Sprintf("s3://%s?region=%s", cfg.Bucket, cfg.Region)
		bucket, err = blob.OpenBucket(params.Ctx, url)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open s3 bucket")
		}
		publicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)

		params.Logger.Info("Using S3 file storage",
			slog.String("bucket", cfg.Bucket),
			slog.String("region", cfg.Region),
		)

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
		logger:        params.Logger,
	}, nil
}

// Upload stores the file under a collision-free key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, file *service.UploadedFile) (string, error) {
	key := storageKey(file.Name)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		return "", domainerrors.ErrStorageFailed.WrapMessage("failed to open blob writer")
	}

	if _, err := writer.Write(file.Data); err != nil {
		writer.Close()

		return "", domainerrors.ErrStorageFailed.WrapMessage("failed to write blob")
	}

	if err := writer.Close(); err != nil {
		return "", domainerrors.ErrStorageFailed.WrapMessage("failed to finish blob write")
	}

	s.logger.Debug("Stored file",
		slog.String("key", key),
		slog.Int("bytes", len(file.Data)),
	)

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the file behind a previously returned URL.
// Deleting a missing file is a no-op, not an error.
func (s *blobStorage) Delete(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, s.publicBaseURL+"/") {
		// URL from a different base; nothing we own.
		return nil
	}
	key := strings.TrimPrefix(url, s.publicBaseURL+"/")
	if key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return domainerrors.ErrStorageFailed.WrapMessage("failed to delete blob")
	}

	return nil
}

// storageKey derives a collision-free key from the original filename.
func storageKey(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(filepath.Base(name), ext)
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	if base == "" {
		base = "file"
	}

	return fmt.Sprintf("%s-%s%s", base, uuid.NewString(), ext)
}
