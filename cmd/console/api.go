package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jwebster45206/intuition-engine/internal/handlers"
	"github.com/jwebster45206/intuition-engine/pkg/game"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

// decodeSession reads an API response into a game session, surfacing the
// API's error message when the status is unexpected.
func decodeSession(resp *http.Response, wantStatus int) (*game.Session, error) {
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != wantStatus {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%s", errorResp.Error)
	}

	var session game.Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to parse game response: %w", err)
	}
	return &session, nil
}

func createGame(client *http.Client, baseURL string) (*game.Session, error) {
	resp, err := client.Post(baseURL+"/v1/games", "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return decodeSession(resp, http.StatusCreated)
}

func startGame(client *http.Client, baseURL string, gameID uuid.UUID) (*game.Session, error) {
	resp, err := client.Post(fmt.Sprintf("%s/v1/games/%s/start", baseURL, gameID), "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return decodeSession(resp, http.StatusOK)
}

func getGame(client *http.Client, baseURL string, gameID uuid.UUID) (*game.Session, error) {
	resp, err := client.Get(fmt.Sprintf("%s/v1/games/%s", baseURL, gameID))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return decodeSession(resp, http.StatusOK)
}

func selectPhoto(client *http.Client, baseURL string, gameID uuid.UUID, photoID string) (*game.Session, error) {
	reqBody := handlers.SelectRequest{PhotoID: photoID}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(
		fmt.Sprintf("%s/v1/games/%s/select", baseURL, gameID),
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return decodeSession(resp, http.StatusOK)
}

func getCollage(client *http.Client, baseURL string, gameID uuid.UUID) (*handlers.CollageResponse, error) {
	resp, err := client.Get(fmt.Sprintf("%s/v1/games/%s/collage", baseURL, gameID))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("failed to get collage: %s", errorResp.Error)
	}

	var collage handlers.CollageResponse
	if err := json.Unmarshal(body, &collage); err != nil {
		return nil, fmt.Errorf("failed to parse collage response: %w", err)
	}
	return &collage, nil
}

func getWorld(client *http.Client, baseURL string, gameID uuid.UUID) (*handlers.WorldResponse, error) {
	resp, err := client.Get(fmt.Sprintf("%s/v1/games/%s/world", baseURL, gameID))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("failed to get world: %s", errorResp.Error)
	}

	var world handlers.WorldResponse
	if err := json.Unmarshal(body, &world); err != nil {
		return nil, fmt.Errorf("failed to parse world response: %w", err)
	}
	return &world, nil
}
