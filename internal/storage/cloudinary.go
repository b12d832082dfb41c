// filepath: internal/storage/cloudinary.go
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var _ BlobStore = (*CloudinaryStore)(nil)

// CloudinaryStore uploads images to Cloudinary.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore initializes the client from a cloudinary:// URL.
func NewCloudinaryStore(cloudinaryURL string) (*CloudinaryStore, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary storage requires a cloudinary URL")
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

// Name implements BlobStore.
func (s *CloudinaryStore) Name() string { return "cloudinary" }

// Store uploads the file and returns its HTTPS delivery URL.
func (s *CloudinaryStore) Store(ctx context.Context, data []byte, _ string, filename string) (string, error) {
	publicID := fmt.Sprintf("%s_%d",
		strings.TrimSuffix(filename, filepath.Ext(filename)),
		time.Now().UnixNano(),
	)

	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     publicID,
		Folder:       "recipe-images",
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	// Prefer the HTTPS URL so browsers never block mixed content.
	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	return result.URL, nil
}
