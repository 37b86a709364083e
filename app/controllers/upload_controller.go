package controllers

import (
	"io"
	"net/http"

	"github.com/moyashi0060/kittchen-POS-app/app/services"
	"github.com/moyashi0060/kittchen-POS-app/pkg/logger"
	"github.com/moyashi0060/kittchen-POS-app/pkg/response"
)

// maxUploadBytes caps a single product image at 16 MB.
const maxUploadBytes = 16 << 20

type UploadController struct {
	uploads *services.UploadService
}

func NewUploadController(uploads *services.UploadService) *UploadController {
	return &UploadController{uploads: uploads}
}

type uploadResponse struct {
	FileURL string `json:"file_url"`
}

// Store handles POST /api/upload: one multipart part named "file".
// On success the body is {"file_url": <public URL>}; the URL is not
// attached to any product here.
func (c *UploadController) Store(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "no file provided")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	// Read one byte past the cap so an oversized file is rejected
	// outright instead of being truncated and stored corrupt.
	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to read file")
		return
	}
	if len(content) > maxUploadBytes {
		response.Error(w, http.StatusBadRequest, "file too large (max 16 MB)")
		return
	}

	url, err := c.uploads.Store(header.Filename, header.Header.Get("Content-Type"), content)
	if err != nil {
		logger.WithCtx(r.Context()).Error("upload failed", "filename", header.Filename, "error", err)
		response.FromError(w, err)
		return
	}

	response.JSON(w, uploadResponse{FileURL: url})
}
