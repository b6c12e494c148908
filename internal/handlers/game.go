package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jwebster45206/intuition-engine/internal/storage"
	"github.com/jwebster45206/intuition-engine/pkg/game"
	"github.com/jwebster45206/intuition-engine/pkg/photos"
	"github.com/jwebster45206/intuition-engine/pkg/poem"
	"github.com/jwebster45206/intuition-engine/pkg/textfilter"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// GameHandler serves the game session lifecycle.
type GameHandler struct {
	storage storage.Storage
	photos  *photos.Pool
	filter  *textfilter.Filter // nil when output filtering is disabled
	logger  *slog.Logger
}

func NewGameHandler(logger *slog.Logger, storage storage.Storage, photos *photos.Pool, filter *textfilter.Filter) *GameHandler {
	return &GameHandler{
		storage: storage,
		photos:  photos,
		filter:  filter,
		logger:  logger,
	}
}

// SelectRequest is the body of a photo selection.
type SelectRequest struct {
	PhotoID string `json:"photo_id"`
}

// CollageResponse is the layout of the chosen photos on the board.
type CollageResponse struct {
	Items  []game.CollageItem `json:"items"`
	Width  float64            `json:"width"`
	Height float64            `json:"height"`
}

// WorldResponse describes the generated world shown after the collage.
type WorldResponse struct {
	SelectedImages   []string   `json:"selected_images"`
	SelectedPrompts  []string   `json:"selected_prompts"`
	GenerationPrompt string     `json:"generation_prompt"`
	DominantColor    game.Color `json:"dominant_color"`
	GeneratedPoem    []string   `json:"generated_poem"`
}

// ServeHTTP handles HTTP requests for game session operations
// Routes:
// POST /v1/games               - Create new game session
// GET /v1/games/{id}           - Read game session by ID
// POST /v1/games/{id}/start    - Mark the game as started
// POST /v1/games/{id}/select   - Choose one of the current photo options
// GET /v1/games/{id}/collage   - Collage layout of the chosen photos
// GET /v1/games/{id}/world     - Generated world: prompt, color, poem
func (h *GameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/games"), "/")

	if path == "" {
		if r.Method != http.MethodPost {
			h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Use POST to create a game")
			return
		}
		h.handleCreate(w, r)
		return
	}

	parts := strings.SplitN(path, "/", 2)
	gameID, err := uuid.Parse(parts[0])
	if err != nil {
		h.logger.Warn("Invalid game ID", "id", parts[0], "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid game ID format")
		return
	}

	action := ""
	if len(parts) == 2 {
		action = parts[1]
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		h.handleRead(w, r, gameID)
	case action == "start" && r.Method == http.MethodPost:
		h.handleStart(w, r, gameID)
	case action == "select" && r.Method == http.MethodPost:
		h.handleSelect(w, r, gameID)
	case action == "collage" && r.Method == http.MethodGet:
		h.handleCollage(w, r, gameID)
	case action == "world" && r.Method == http.MethodGet:
		h.handleWorld(w, r, gameID)
	default:
		h.logger.Warn("Unknown game route", "method", r.Method, "path", r.URL.Path)
		h.writeError(w, http.StatusNotFound, "Not found")
	}
}

func (h *GameHandler) writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		h.logger.Error("Failed to encode error response", "error", err)
	}
}

// loadSession fetches a session and writes the error response itself when
// the session is missing or the load fails.
func (h *GameHandler) loadSession(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) *game.Session {
	s, err := h.storage.LoadSession(r.Context(), gameID)
	if err != nil {
		h.logger.Error("Failed to load game session", "error", err, "id", gameID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to load game session")
		return nil
	}
	if s == nil {
		h.logger.Warn("Game session not found", "id", gameID.String())
		h.writeError(w, http.StatusNotFound, "Game session not found")
		return nil
	}
	return s
}

func (h *GameHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Creating new game session")

	pool := h.photos.List()
	if len(pool) < 2 {
		h.logger.Error("Photo pool too small to start a game", "count", len(pool))
		h.writeError(w, http.StatusServiceUnavailable, "Not enough photos available to start a game")
		return
	}

	s := game.NewSession(pool)
	if err := h.storage.SaveSession(r.Context(), s.ID, s); err != nil {
		h.logger.Error("Failed to save new game session", "error", err, "id", s.ID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to create game session")
		return
	}

	h.logger.Debug("Game session created", "id", s.ID.String())
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(s); err != nil {
		h.logger.Error("Failed to encode game session response", "error", err)
	}
}

func (h *GameHandler) handleRead(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) {
	s := h.loadSession(w, r, gameID)
	if s == nil {
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(s); err != nil {
		h.logger.Error("Failed to encode game session response", "error", err)
	}
}

func (h *GameHandler) handleStart(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) {
	s := h.loadSession(w, r, gameID)
	if s == nil {
		return
	}

	s.Start()
	if err := h.storage.SaveSession(r.Context(), gameID, s); err != nil {
		h.logger.Error("Failed to save started game session", "error", err, "id", gameID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to save game session")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(s); err != nil {
		h.logger.Error("Failed to encode game session response", "error", err)
	}
}

func (h *GameHandler) handleSelect(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) {
	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in select request body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if req.PhotoID == "" {
		h.writeError(w, http.StatusBadRequest, "photo_id field is required")
		return
	}

	s := h.loadSession(w, r, gameID)
	if s == nil {
		return
	}

	if !s.Select(req.PhotoID, h.photos.List()) {
		h.logger.Warn("Rejected photo selection", "id", gameID.String(), "photo_id", req.PhotoID)
		h.writeError(w, http.StatusBadRequest, "Photo is not one of the current options")
		return
	}

	if err := h.storage.SaveSession(r.Context(), gameID, s); err != nil {
		h.logger.Error("Failed to save game session after selection", "error", err, "id", gameID.String())
		h.writeError(w, http.StatusInternalServerError, "Failed to save game session")
		return
	}

	h.logger.Debug("Photo selected", "id", gameID.String(), "photo_id", req.PhotoID, "steps_remaining", s.StepsRemaining)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(s); err != nil {
		h.logger.Error("Failed to encode game session response", "error", err)
	}
}

func (h *GameHandler) handleCollage(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) {
	s := h.loadSession(w, r, gameID)
	if s == nil {
		return
	}

	response := CollageResponse{
		Items:  s.CollageLayout(),
		Width:  s.Width,
		Height: s.Height,
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode collage response", "error", err)
	}
}

func (h *GameHandler) handleWorld(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) {
	s := h.loadSession(w, r, gameID)
	if s == nil {
		return
	}

	photoIDs, prompts := s.SelectedPrompts()
	lines := poem.Generate(prompts)
	if h.filter != nil {
		lines = h.filter.Lines(lines)
	}

	response := WorldResponse{
		SelectedImages:   photoIDs,
		SelectedPrompts:  prompts,
		GenerationPrompt: game.WorldPrompt(prompts),
		DominantColor:    s.DominantColor(),
		GeneratedPoem:    lines,
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode world response", "error", err)
	}
}
