package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jwebster45206/intuition-engine/internal/storage"
	"github.com/jwebster45206/intuition-engine/pkg/game"
	"github.com/jwebster45206/intuition-engine/pkg/photos"
	"github.com/jwebster45206/intuition-engine/pkg/textfilter"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))
}

// testPhotoPool builds a pool over a temp directory with n placeholder
// PNG files. The game handler only needs filenames, not decodable images.
func testPhotoPool(t *testing.T, n int) *photos.Pool {
	t.Helper()
	dir := t.TempDir()
	for i := 0; i < n; i++ {
		name := filepath.Join(dir, fmt.Sprintf("photo%02d.png", i))
		if err := os.WriteFile(name, []byte("png"), 0o644); err != nil {
			t.Fatalf("Failed to write test photo: %v", err)
		}
	}
	pool := photos.NewPool(dir, testLogger())
	if err := pool.Refresh(); err != nil {
		t.Fatalf("Failed to refresh photo pool: %v", err)
	}
	return pool
}

func TestGameHandler_Create(t *testing.T) {
	logger := testLogger()
	mockStorage := storage.NewMockStorage()
	handler := NewGameHandler(logger, mockStorage, testPhotoPool(t, 20), nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/games", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Response body: %s", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %s", rr.Header().Get("Content-Type"))
	}

	var response game.Session
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.ID == uuid.Nil {
		t.Error("Expected non-nil game ID")
	}
	if response.StepsRemaining != game.TotalSteps {
		t.Errorf("Expected %d steps remaining, got %d", game.TotalSteps, response.StepsRemaining)
	}
	if len(response.CurrentOptions) != 2 {
		t.Errorf("Expected 2 photo options, got %d", len(response.CurrentOptions))
	}
	if response.CurrentPrompt == "" {
		t.Error("Expected a current prompt")
	}

	// The new session is persisted.
	saved, err := mockStorage.LoadSession(context.Background(), response.ID)
	if err != nil {
		t.Fatalf("LoadSession failed: %v", err)
	}
	if saved == nil {
		t.Error("Expected session to be saved")
	}
}

func TestGameHandler_CreateEmptyPool(t *testing.T) {
	handler := NewGameHandler(testLogger(), storage.NewMockStorage(), testPhotoPool(t, 0), nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/games", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", rr.Code)
	}
}

func TestGameHandler_Read(t *testing.T) {
	mockStorage := storage.NewMockStorage()
	pool := testPhotoPool(t, 20)
	handler := NewGameHandler(testLogger(), mockStorage, pool, nil)

	session := game.NewSessionWithSeed(pool.List(), 1)
	if err := mockStorage.SaveSession(context.Background(), session.ID, session); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{
			name:           "existing session",
			path:           "/v1/games/" + session.ID.String(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing session",
			path:           "/v1/games/" + uuid.New().String(),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed ID",
			path:           "/v1/games/not-a-uuid",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Response body: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestGameHandler_Start(t *testing.T) {
	mockStorage := storage.NewMockStorage()
	pool := testPhotoPool(t, 20)
	handler := NewGameHandler(testLogger(), mockStorage, pool, nil)

	session := game.NewSessionWithSeed(pool.List(), 2)
	if err := mockStorage.SaveSession(context.Background(), session.ID, session); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/games/"+session.ID.String()+"/start", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Response body: %s", rr.Code, rr.Body.String())
	}

	var response game.Session
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !response.Started {
		t.Error("Expected game to be started")
	}
}

func TestGameHandler_Select(t *testing.T) {
	mockStorage := storage.NewMockStorage()
	pool := testPhotoPool(t, 20)
	handler := NewGameHandler(testLogger(), mockStorage, pool, nil)

	session := game.NewSessionWithSeed(pool.List(), 3)
	session.Start()
	if err := mockStorage.SaveSession(context.Background(), session.ID, session); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	offered := session.CurrentOptions[0].PhotoID
	reqBody := fmt.Sprintf(`{"photo_id":%q}`, offered)
	req := httptest.NewRequest(http.MethodPost, "/v1/games/"+session.ID.String()+"/select", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Response body: %s", rr.Code, rr.Body.String())
	}

	var response game.Session
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.StepsRemaining != game.TotalSteps-1 {
		t.Errorf("Expected %d steps remaining, got %d", game.TotalSteps-1, response.StepsRemaining)
	}
	if len(response.ChosenPhotos) != 1 || response.ChosenPhotos[0].PhotoID != offered {
		t.Errorf("Expected chosen photo %s, got %+v", offered, response.ChosenPhotos)
	}
}

func TestGameHandler_SelectRejected(t *testing.T) {
	mockStorage := storage.NewMockStorage()
	pool := testPhotoPool(t, 20)
	handler := NewGameHandler(testLogger(), mockStorage, pool, nil)

	session := game.NewSessionWithSeed(pool.List(), 4)
	if err := mockStorage.SaveSession(context.Background(), session.ID, session); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "photo not on offer",
			body:           `{"photo_id":"not_offered.png"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing photo_id",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/games/"+session.ID.String()+"/select", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Response body: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

// playFullGame drives a session through all selection steps via the handler.
func playFullGame(t *testing.T, handler *GameHandler, mockStorage *storage.MockStorage, session *game.Session) {
	t.Helper()
	for step := 0; step < game.TotalSteps; step++ {
		current, err := mockStorage.LoadSession(context.Background(), session.ID)
		if err != nil || current == nil {
			t.Fatalf("Failed to reload session at step %d: %v", step, err)
		}
		if len(current.CurrentOptions) == 0 {
			t.Fatalf("No options at step %d", step)
		}

		reqBody := fmt.Sprintf(`{"photo_id":%q}`, current.CurrentOptions[0].PhotoID)
		req := httptest.NewRequest(http.MethodPost, "/v1/games/"+session.ID.String()+"/select", strings.NewReader(reqBody))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("Select failed at step %d: status %d, body %s", step, rr.Code, rr.Body.String())
		}
	}
}

func TestGameHandler_CollageAndWorld(t *testing.T) {
	mockStorage := storage.NewMockStorage()
	pool := testPhotoPool(t, 40)
	handler := NewGameHandler(testLogger(), mockStorage, pool, nil)

	session := game.NewSessionWithSeed(pool.List(), 5)
	session.Start()
	if err := mockStorage.SaveSession(context.Background(), session.ID, session); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	playFullGame(t, handler, mockStorage, session)

	// Collage over the finished game
	req := httptest.NewRequest(http.MethodGet, "/v1/games/"+session.ID.String()+"/collage", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Collage failed: status %d, body %s", rr.Code, rr.Body.String())
	}

	var collage CollageResponse
	if err := json.NewDecoder(rr.Body).Decode(&collage); err != nil {
		t.Fatalf("Failed to decode collage response: %v", err)
	}
	if len(collage.Items) != game.TotalSteps {
		t.Errorf("Expected %d collage items, got %d", game.TotalSteps, len(collage.Items))
	}
	if collage.Width != game.DefaultWidth || collage.Height != game.DefaultHeight {
		t.Errorf("Unexpected board size %fx%f", collage.Width, collage.Height)
	}

	// World over the finished game
	req = httptest.NewRequest(http.MethodGet, "/v1/games/"+session.ID.String()+"/world", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("World failed: status %d, body %s", rr.Code, rr.Body.String())
	}

	var world WorldResponse
	if err := json.NewDecoder(rr.Body).Decode(&world); err != nil {
		t.Fatalf("Failed to decode world response: %v", err)
	}
	if len(world.SelectedImages) != 4 {
		t.Errorf("Expected 4 selected images, got %d", len(world.SelectedImages))
	}
	if len(world.SelectedPrompts) != 4 {
		t.Errorf("Expected 4 selected prompts, got %d", len(world.SelectedPrompts))
	}
	if !strings.Contains(world.GenerationPrompt, "surrealist collage world") {
		t.Errorf("Unexpected generation prompt: %s", world.GenerationPrompt)
	}
	if len(world.GeneratedPoem) < 15 || len(world.GeneratedPoem) > 19 {
		t.Errorf("Expected poem of 15-19 lines, got %d", len(world.GeneratedPoem))
	}
}

func TestGameHandler_WorldWithFilter(t *testing.T) {
	mockStorage := storage.NewMockStorage()
	pool := testPhotoPool(t, 20)
	handler := NewGameHandler(testLogger(), mockStorage, pool, textfilter.New())

	session := game.NewSessionWithSeed(pool.List(), 6)
	if err := mockStorage.SaveSession(context.Background(), session.ID, session); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	// A fresh session has no chosen photos, so the poem falls back to the
	// fixed three lines. The filter leaves clean text untouched.
	req := httptest.NewRequest(http.MethodGet, "/v1/games/"+session.ID.String()+"/world", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("World failed: status %d, body %s", rr.Code, rr.Body.String())
	}

	var world WorldResponse
	if err := json.NewDecoder(rr.Body).Decode(&world); err != nil {
		t.Fatalf("Failed to decode world response: %v", err)
	}
	if len(world.GeneratedPoem) != 3 {
		t.Errorf("Expected 3-line fallback poem, got %d lines", len(world.GeneratedPoem))
	}
	if world.DominantColor.R != 150 || world.DominantColor.G != 150 || world.DominantColor.B != 150 {
		t.Errorf("Expected neutral gray for empty session, got %+v", world.DominantColor)
	}
}

func TestGameHandler_MethodNotAllowed(t *testing.T) {
	handler := NewGameHandler(testLogger(), storage.NewMockStorage(), testPhotoPool(t, 20), nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/games", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", rr.Code)
	}
}
