// filepath: internal/storage/local_test.go
package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalStore_Store(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root, "")
	assert.NoError(t, err)
	assert.Equal(t, "local", store.Name())

	url, err := store.Store(context.Background(), []byte("image bytes"), "image/jpeg", "dish.jpg")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/images/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	// The object name is fresh per store; the file exists under the root.
	name := strings.TrimPrefix(url, "/images/")
	data, err := os.ReadFile(filepath.Join(root, name))
	assert.NoError(t, err)
	assert.Equal(t, []byte("image bytes"), data)

	// Two uploads of the same filename never collide.
	url2, err := store.Store(context.Background(), []byte("other"), "image/jpeg", "dish.jpg")
	assert.NoError(t, err)
	assert.NotEqual(t, url, url2)
}

func TestLocalStore_BaseURL(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "https://recipes.example.com/")
	assert.NoError(t, err)

	url, err := store.Store(context.Background(), []byte("x"), "image/png", "a.png")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://recipes.example.com/images/"))
}

func TestLocalStore_ValidatePath(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "")
	assert.NoError(t, err)

	_, err = store.validatePath("../escape.jpg")
	assert.Error(t, err)

	_, err = store.validatePath("ok.jpg")
	assert.NoError(t, err)
}

func TestObjectName(t *testing.T) {
	name := objectName("image/jpeg", "photo.jpeg")
	assert.True(t, strings.HasSuffix(name, ".jpeg"))

	// Extension falls back to the content type when the filename has none.
	name = objectName("image/jpeg", "photo")
	assert.True(t, strings.HasSuffix(name, ".jpg"))
}
