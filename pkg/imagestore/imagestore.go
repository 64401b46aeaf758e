// Package imagestore uploads product images to external object storage.
package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ErrNoURL is returned when the storage accepted an upload but did not
// report where it lives.
var ErrNoURL = errors.New("image upload returned no secure URL")

// Uploader stores an image and returns its public HTTPS URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Config holds Cloudinary credentials and the destination folder.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// CloudinaryStore uploads images to Cloudinary.
type CloudinaryStore struct {
	cld     *cloudinary.Cloudinary
	folder  string
	initErr error
}

// NewCloudinaryStore builds a store from cfg. Bad or missing credentials
// are reported by Upload, not here.
func NewCloudinaryStore(cfg Config) *CloudinaryStore {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	return &CloudinaryStore{cld: cld, folder: cfg.Folder, initErr: err}
}

// Upload sends r to Cloudinary as an image resource.
func (s *CloudinaryStore) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	if s.initErr != nil {
		return "", fmt.Errorf("cloudinary is not configured: %w", s.initErr)
	}

	resp, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       s.folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", filename, err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("failed to upload %s: %s", filename, resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return "", ErrNoURL
	}
	return resp.SecureURL, nil
}
