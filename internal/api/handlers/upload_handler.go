// filepath: internal/api/handlers/upload_handler.go
package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shinohara-jil/recipe-app/internal/logging"
	"github.com/shinohara-jil/recipe-app/internal/models"
	"github.com/shinohara-jil/recipe-app/internal/services"
)

// @Summary Upload an image
// @Description Accepts a multipart image file, validates size and format, stores it in the configured blob store and returns its public URL.
// @Tags upload
// @Accept  multipart/form-data
// @Produce  json
// @Param   file  formData  file  true  "Image file (max 5MB)"
// @Success 200 {object} models.UploadResult
// @Failure 400 {object} ErrorResponse "Missing file, oversized file or non-image"
// @Failure 503 {object} ErrorResponse "Blob storage not configured"
// @Router /upload [post]
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	maxSize := h.Upload.MaxUploadSizeBytes()

	// Bound the request body before parsing; the extra headroom covers the
	// multipart framing around the file itself.
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+(1<<20))

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logging.Log.Errorf("Failed to read uploaded file: %v", err)
		respondWithError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	url, err := h.Upload.Upload(r.Context(), data, header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, uploadValidationMessage(int64(len(data)), maxSize))
		} else if errors.Is(err, services.ErrNotConfigured) {
			respondWithError(w, http.StatusServiceUnavailable, "Blob storage not configured")
		} else {
			logging.Log.Errorf("Failed to upload file %q: %v", header.Filename, err)
			respondWithError(w, http.StatusInternalServerError, "Failed to upload file")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, models.UploadResult{URL: url})
}

func uploadValidationMessage(size, maxSize int64) string {
	if size == 0 {
		return "No file provided"
	}
	if size > maxSize {
		return fmt.Sprintf("File size must be less than %dMB", maxSize>>20)
	}
	return "Only image files are allowed"
}
