package storage

import "context"

// StorageService defines the interface for photo storage operations.
type StorageService interface {
	// Upload stores a local file under the given folder and returns the
	// permanent public ID and a serving URL.
	Upload(ctx context.Context, localFilePath, destFolder string) (publicID, url string, err error)
	// Delete removes a stored file given its public ID.
	Delete(ctx context.Context, publicID string) error
}
