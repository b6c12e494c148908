package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jwebster45206/intuition-engine/pkg/photos"
)

// PhotosHandler serves the photo pool listing and per-photo dimensions.
type PhotosHandler struct {
	photos *photos.Pool
	logger *slog.Logger
}

func NewPhotosHandler(logger *slog.Logger, photos *photos.Pool) *PhotosHandler {
	return &PhotosHandler{
		photos: photos,
		logger: logger,
	}
}

// PhotoListResponse is the listing of all photos in the pool.
type PhotoListResponse struct {
	Photos []string `json:"photos"`
	Count  int      `json:"count"`
}

// ServeHTTP handles HTTP requests for photo pool operations
// Routes:
// GET /v1/photos                        - List photo filenames
// GET /v1/photos/{filename}/dimensions  - Pixel dimensions of one photo
func (h *PhotosHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		h.logger.Warn("Method not allowed for photos endpoint", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		if err := json.NewEncoder(w).Encode(ErrorResponse{Error: "Method not allowed. Supported methods: GET"}); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/photos"), "/")

	if path == "" {
		files := h.photos.List()
		response := PhotoListResponse{Photos: files, Count: len(files)}
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			h.logger.Error("Failed to encode photo list response", "error", err)
		}
		return
	}

	filename, ok := strings.CutSuffix(path, "/dimensions")
	if !ok || filename == "" || strings.Contains(filename, "/") {
		w.WriteHeader(http.StatusNotFound)
		if err := json.NewEncoder(w).Encode(ErrorResponse{Error: "Not found"}); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	dims, ok := h.photos.Dimensions(filename)
	if !ok {
		h.logger.Warn("Photo not found", "file", filename)
		w.WriteHeader(http.StatusNotFound)
		if err := json.NewEncoder(w).Encode(ErrorResponse{Error: "Photo not found"}); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dims); err != nil {
		h.logger.Error("Failed to encode dimensions response", "error", err)
	}
}
