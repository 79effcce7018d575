package utils

import (
	"fmt"

	"tinyhouse/config"
	"tinyhouse/services/storage"
)

// Cloudinary initializes the image storage service from configuration.
func Cloudinary() (storage.StorageService, error) {
	cfg := config.AppConfig
	svc, err := storage.NewStorageService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, GetLogger())
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: %w", err)
	}
	return svc, nil
}
