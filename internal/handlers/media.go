package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// contentTypes maps the file extensions the game serves to MIME types.
// Anything else is refused rather than sniffed.
var contentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
}

// MediaHandler serves static game assets (photos and ambient audio) from
// a single directory, one level deep.
type MediaHandler struct {
	dir    string
	prefix string
	logger *slog.Logger
}

// NewMediaHandler creates a handler serving files from dir under the
// given URL prefix, e.g. NewMediaHandler(log, "/images/", cfg.ImagesDir).
func NewMediaHandler(logger *slog.Logger, prefix string, dir string) *MediaHandler {
	return &MediaHandler{
		dir:    dir,
		prefix: prefix,
		logger: logger,
	}
}

func (h *MediaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		if err := json.NewEncoder(w).Encode(ErrorResponse{Error: "Method not allowed. Supported methods: GET, HEAD"}); err != nil {
			h.logger.Error("Failed to encode error response", "error", err)
		}
		return
	}

	filename := strings.TrimPrefix(r.URL.Path, h.prefix)

	// Only bare filenames are served; no subdirectories, no traversal.
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		h.notFound(w)
		return
	}

	contentType, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		h.logger.Warn("Refused media request with unsupported extension", "file", filename)
		h.notFound(w)
		return
	}

	path := filepath.Join(h.dir, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		h.notFound(w)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	http.ServeFile(w, r, path)
}

func (h *MediaHandler) notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: "File not found"}); err != nil {
		h.logger.Error("Failed to encode error response", "error", err)
	}
}
