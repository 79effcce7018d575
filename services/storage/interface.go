package storage

import "context"

// StorageService hosts listing images.
type StorageService interface {
	// UploadImage uploads a base64 data URI or remote URL into folder and returns its secure URL.
	UploadImage(ctx context.Context, image, folder string) (string, error)
	// DeleteImage removes an uploaded image by its public ID.
	DeleteImage(ctx context.Context, publicID string) error
}
