// filepath: internal/storage/local.go
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shinohara-jil/recipe-app/internal/logging"
)

var _ BlobStore = (*LocalStore)(nil)

// LocalStore writes images to a directory on disk. The HTTP server exposes
// that directory under /images/, so the returned URLs resolve against the
// same process.
type LocalStore struct {
	Root    string
	BaseURL string // optional absolute prefix, e.g. "https://recipes.example.com"
}

// NewLocalStore creates the storage root if needed.
func NewLocalStore(root, baseURL string) (*LocalStore, error) {
	if root == "" {
		root = "image_store"
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %w", root, err)
	}
	return &LocalStore{Root: root, BaseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Name implements BlobStore.
func (s *LocalStore) Name() string { return "local" }

// Store writes the file under a fresh object name and returns its URL.
func (s *LocalStore) Store(_ context.Context, data []byte, contentType, filename string) (string, error) {
	name := objectName(contentType, filename)

	path, err := s.validatePath(name)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", path, err)
	}

	logging.Log.Debugf("LocalStore: wrote %s (%d bytes)", path, len(data))
	return s.BaseURL + "/images/" + name, nil
}

// validatePath cleans a path and ensures it's within the storage root.
func (s *LocalStore) validatePath(name string) (string, error) {
	fullPath := filepath.Join(s.Root, name)
	cleanedPath := filepath.Clean(fullPath)
	cleanedRoot := filepath.Clean(s.Root)

	if !strings.HasPrefix(cleanedPath, cleanedRoot+string(filepath.Separator)) {
		logging.Log.Warnf("Path traversal attempt blocked for: %s", fullPath)
		return "", fmt.Errorf("invalid path")
	}
	return cleanedPath, nil
}
