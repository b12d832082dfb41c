// filepath: internal/services/upload_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/http"
	"strings"

	// Registered image formats for the decode check.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/shinohara-jil/recipe-app/internal/config"
	"github.com/shinohara-jil/recipe-app/internal/logging"
	"github.com/shinohara-jil/recipe-app/internal/storage"
)

var _ UploadService = (*uploadService)(nil)

// uploadService validates image uploads and hands them to the configured
// blob store. A nil store means "storage not configured": every upload fails
// with ErrNotConfigured.
type uploadService struct {
	Store   storage.BlobStore
	MaxSize int64
}

// NewUploadService creates a new UploadService.
func NewUploadService(store storage.BlobStore, cfg *config.Config) *uploadService {
	return &uploadService{
		Store:   store,
		MaxSize: cfg.MaxUploadSizeBytes,
	}
}

// MaxUploadSizeBytes returns the configured upload limit.
func (s *uploadService) MaxUploadSizeBytes() int64 {
	return s.MaxSize
}

// Upload validates the file and stores it, returning its public URL.
// Validation: non-empty, within the size limit, and an actual decodable
// image (JPEG, PNG, GIF or WebP). The declared Content-Type alone is not
// trusted.
func (s *uploadService) Upload(ctx context.Context, data []byte, contentType, filename string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: no file provided", ErrValidation)
	}
	if int64(len(data)) > s.MaxSize {
		return "", fmt.Errorf("%w: file size must be less than %d bytes", ErrValidation, s.MaxSize)
	}

	sniffed := http.DetectContentType(data)
	if !strings.HasPrefix(sniffed, "image/") {
		return "", fmt.Errorf("%w: only image files are allowed", ErrValidation)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: unsupported image format", ErrValidation)
	}

	if s.Store == nil {
		return "", fmt.Errorf("%w: blob storage", ErrNotConfigured)
	}

	url, err := s.Store.Store(ctx, data, sniffed, filename)
	if err != nil {
		logging.Log.Errorf("UploadService: failed to store %q: %v", filename, err)
		return "", fmt.Errorf("failed to store file: %w", err)
	}

	logging.Log.Infof("Image uploaded: %s (%s %dx%d, %d bytes)", url, format, cfg.Width, cfg.Height, len(data))
	return url, nil
}
