// filepath: internal/api/handlers/upload_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shinohara-jil/recipe-app/internal/models"
	"github.com/shinohara-jil/recipe-app/internal/services"
)

func multipartBody(t *testing.T, fieldName, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	assert.NoError(t, err)
	_, err = part.Write(data)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	h, _, _, upload := newTestHandlers()
	data := []byte("fake image bytes")
	upload.On("MaxUploadSizeBytes").Return(int64(5 << 20))
	upload.On("Upload", mock.Anything, data, mock.Anything, "dish.jpg").
		Return("https://cdn.example.com/abc.jpg", nil)

	body, contentType := multipartBody(t, "file", "dish.jpg", data)
	req, _ := http.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.UploadImage(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var response models.UploadResult
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "https://cdn.example.com/abc.jpg", response.URL)
	upload.AssertExpectations(t)
}

func TestUploadImage_NoFileField(t *testing.T) {
	h, _, _, upload := newTestHandlers()
	upload.On("MaxUploadSizeBytes").Return(int64(5 << 20))

	body, contentType := multipartBody(t, "wrong_field", "dish.jpg", []byte("data"))
	req, _ := http.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.UploadImage(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var response ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "No file provided", response.Error)
	upload.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadImage_NotAnImage(t *testing.T) {
	h, _, _, upload := newTestHandlers()
	data := []byte("plain text pretending to be an image")
	upload.On("MaxUploadSizeBytes").Return(int64(5 << 20))
	upload.On("Upload", mock.Anything, data, mock.Anything, "fake.jpg").
		Return("", services.ErrValidation)

	body, contentType := multipartBody(t, "file", "fake.jpg", data)
	req, _ := http.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.UploadImage(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var response ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "Only image files are allowed", response.Error)
}

func TestUploadImage_TooLarge(t *testing.T) {
	h, _, _, upload := newTestHandlers()
	upload.On("MaxUploadSizeBytes").Return(int64(5 << 20))
	// Just over the limit, but still within the request body bound.
	data := make([]byte, (5<<20)+1024)
	upload.On("Upload", mock.Anything, mock.Anything, mock.Anything, "huge.jpg").
		Return("", services.ErrValidation)

	body, contentType := multipartBody(t, "file", "huge.jpg", data)
	req, _ := http.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.UploadImage(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var response ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "File size must be less than 5MB", response.Error)
}

func TestUploadImage_StorageNotConfigured(t *testing.T) {
	h, _, _, upload := newTestHandlers()
	data := []byte("fake image bytes")
	upload.On("MaxUploadSizeBytes").Return(int64(5 << 20))
	upload.On("Upload", mock.Anything, data, mock.Anything, "dish.jpg").
		Return("", services.ErrNotConfigured)

	body, contentType := multipartBody(t, "file", "dish.jpg", data)
	req, _ := http.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.UploadImage(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	var response ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "Blob storage not configured", response.Error)
}
