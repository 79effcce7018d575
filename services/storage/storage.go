package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// ErrInvalidImage is returned for payloads that are neither data URIs nor URLs.
var ErrInvalidImage = errors.New("image must be a base64 data URI or an http(s) URL")

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	logger *zap.Logger
}

// NewStorageService creates a Cloudinary-backed StorageService.
func NewStorageService(cloudName, apiKey, apiSecret string, logger *zap.Logger) (StorageService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld, logger: logger}, nil
}

// ValidImagePayload reports whether image is something Cloudinary can ingest directly.
func ValidImagePayload(image string) bool {
	switch {
	case strings.HasPrefix(image, "data:image/") && strings.Contains(image, ";base64,"):
		return true
	case strings.HasPrefix(image, "https://"), strings.HasPrefix(image, "http://"):
		return true
	default:
		return false
	}
}

// UploadImage uploads the image and returns its secure URL.
func (s *CloudinaryStorage) UploadImage(ctx context.Context, image, folder string) (string, error) {
	if !ValidImagePayload(image) {
		return "", ErrInvalidImage
	}
	result, err := s.cld.Upload.Upload(ctx, image, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("failed to upload image: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("failed to upload image: no secure URL returned")
	}
	s.logger.Debug("image uploaded", zap.String("publicId", result.PublicID))
	return result.SecureURL, nil
}

// DeleteImage deletes an image from Cloudinary given its public ID.
func (s *CloudinaryStorage) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
