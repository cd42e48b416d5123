package service

import "context"

// UploadedFile is the payload handed to storage after multipart parsing.
type UploadedFile struct {
	Name        string // Original filename, used to derive the stored key.
	ContentType string
	Data        []byte
}

// FileStorage stores uploaded files and returns retrievable URLs.
// The backend (local disk or object store) is chosen once at startup and
// injected; callers never branch on it.
type FileStorage interface {
	// Upload stores the file and returns its public URL.
	Upload(ctx context.Context, file *UploadedFile) (string, error)

	// Delete removes the file behind a previously returned URL.
	// Deleting a missing file is a no-op, not an error.
	Delete(ctx context.Context, url string) error
}
