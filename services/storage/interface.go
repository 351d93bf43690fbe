package storage

import "context"

// UploadResult identifies a stored object.
type UploadResult struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// StorageService is the narrow object-storage contract: upload returns a
// public id and URL, delete takes the public id.
type StorageService interface {
	UploadFile(ctx context.Context, file interface{}, destFolder string) (*UploadResult, error)
	DeleteFile(ctx context.Context, publicID string) error
}
