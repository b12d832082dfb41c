// Package storage provides the pluggable blob stores behind the image upload
// endpoint. Each backend accepts raw file bytes and returns a public URL.
package storage

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/shinohara-jil/recipe-app/internal/config"
)

// BlobStore stores an uploaded file and returns its public URL.
type BlobStore interface {
	Store(ctx context.Context, data []byte, contentType, filename string) (string, error)
	Name() string
}

// NewFromConfig builds the configured blob store. A nil store (no error)
// means uploads are not configured; callers surface that as 503.
func NewFromConfig(ctx context.Context, cfg *config.Config) (BlobStore, error) {
	switch cfg.Storage.Backend {
	case "":
		return nil, nil
	case "local":
		return NewLocalStore(cfg.Storage.LocalRoot, cfg.Storage.PublicBaseURL)
	case "s3":
		return NewS3Store(ctx, cfg.Storage.S3Bucket, cfg.Storage.S3Region, cfg.Storage.S3BaseURL)
	case "cloudinary":
		return NewCloudinaryStore(cfg.Storage.CloudinaryURL)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

// objectName builds a collision-free object name, keeping the original
// extension when there is one and deriving it from the MIME type otherwise.
func objectName(contentType, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		switch contentType {
		case "image/jpeg":
			ext = ".jpg"
		default:
			if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
				ext = exts[0]
			}
		}
	}
	return uuid.New().String() + ext
}
