package library

import "context"

// ObjectStorage is the blob-storage contract the book services depend on.
// Implementations live in infrastructure/storage (S3-compatible backends and
// the OAuth-credentialed remote drive).
type ObjectStorage interface {
	// Upload stores the payload under the given key and returns a public URL
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// DeleteObject removes a stored object. Best effort; callers treat
	// failures as log-and-continue.
	DeleteObject(ctx context.Context, key string) error
}
