package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService builds a Cloudinary storage service from credentials.
func NewStorageService(cloudName, apiKey, apiSecret string) (StorageService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to initialize Cloudinary: %w", err)
	}
	return &StorageServiceImpl{cld: cld}, nil
}

// UploadFile uploads a file into the destination folder and returns the
// permanent identifier and public URL.
func (s *StorageServiceImpl) UploadFile(ctx context.Context, file interface{}, destFolder string) (*UploadResult, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: destFolder})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("storage: no public ID returned")
	}
	return &UploadResult{PublicID: result.PublicID, URL: result.SecureURL}, nil
}

// DeleteFile deletes a file given its public ID.
func (s *StorageServiceImpl) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("storage: failed to delete file %s: %w", publicID, err)
	}
	return nil
}
