package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// MediaStorage is the object-storage surface for exercise demo media.
// Catalog records store object keys; every URL handed to a client is
// presigned and short-lived.
type MediaStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL for a direct PUT
	// of a media object (used when seeding or replacing demo media).
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL for a direct GET
	// of a media object (attached to catalog responses).
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes a media object.
	DeleteObject(ctx context.Context, objectKey string) error
}
