package storage

import (
	"context"
	"time"
)

// Default expiry for presigned URLs.
const DefaultPresignedURLExpiry = 15 * time.Minute

// AssetStorage is the object-storage boundary for progress photo assets.
// The core only tracks asset keys; bytes move directly between the client
// and the storage provider via presigned URLs.
type AssetStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL accepting a PUT
	// of the object under the given key.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL serving a GET
	// of the object under the given key.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
