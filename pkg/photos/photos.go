package photos

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Dimensions describes a photo's pixel size.
type Dimensions struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// Pool scans a directory of PNG photos and caches their dimensions.
// Safe for concurrent use by request handlers.
type Pool struct {
	dir    string
	logger *slog.Logger

	mu    sync.RWMutex
	files []string
	dims  map[string]Dimensions
}

// NewPool creates a pool over the given directory. Call Refresh to scan.
func NewPool(dir string, logger *slog.Logger) *Pool {
	return &Pool{
		dir:    dir,
		logger: logger,
		dims:   make(map[string]Dimensions),
	}
}

// Dir returns the directory the pool serves photos from.
func (p *Pool) Dir() string {
	return p.dir
}

// Refresh rescans the directory for PNG files and pre-loads their
// dimensions. A missing directory is created and yields an empty pool
// rather than an error.
func (p *Pool) Refresh() error {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		if os.IsNotExist(err) {
			if mkErr := os.MkdirAll(p.dir, 0o755); mkErr != nil {
				return fmt.Errorf("failed to create photo directory: %w", mkErr)
			}
			p.mu.Lock()
			p.files = nil
			p.mu.Unlock()
			return nil
		}
		return fmt.Errorf("failed to read photo directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.ToLower(filepath.Ext(entry.Name())) != ".png" {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	p.mu.Lock()
	p.files = files
	p.mu.Unlock()

	for _, name := range files {
		if _, ok := p.Dimensions(name); !ok {
			p.logger.Warn("Failed to read photo dimensions", "file", name)
		}
	}

	p.logger.Debug("Photo pool refreshed", "dir", p.dir, "count", len(files))
	return nil
}

// List returns the photo filenames in sorted order.
func (p *Pool) List() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]string(nil), p.files...)
}

// Dimensions returns the pixel dimensions of a photo, reading only the
// PNG header on a cache miss.
func (p *Pool) Dimensions(filename string) (Dimensions, bool) {
	if filename != filepath.Base(filename) {
		return Dimensions{}, false
	}

	p.mu.RLock()
	dims, ok := p.dims[filename]
	p.mu.RUnlock()
	if ok {
		return dims, true
	}

	file, err := os.Open(filepath.Join(p.dir, filename))
	if err != nil {
		return Dimensions{}, false
	}
	defer func() {
		_ = file.Close()
	}()

	cfg, err := png.DecodeConfig(file)
	if err != nil {
		p.logger.Warn("Failed to decode PNG header", "file", filename, "error", err)
		return Dimensions{}, false
	}

	dims = Dimensions{Width: cfg.Width, Height: cfg.Height, Format: "PNG"}
	p.mu.Lock()
	p.dims[filename] = dims
	p.mu.Unlock()
	return dims, true
}
