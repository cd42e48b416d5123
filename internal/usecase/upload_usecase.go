// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"wellkart/internal/domain/service"
)

// --- Output DTOs ---

// UploadOutput returns the stored file's public URL.
type UploadOutput struct {
	URL string
}

// UploadUsecase defines the interface for file upload operations. The storage
// backend is chosen once at startup; callers never branch on it.
type UploadUsecase interface {
	Upload(ctx context.Context, file *service.UploadedFile) (*UploadOutput, error)
	UploadMany(ctx context.Context, files []*service.UploadedFile) ([]*UploadOutput, error)

	// Delete removes the file behind a previously returned URL.
	// Missing files are a no-op.
	Delete(ctx context.Context, url string) error
}
