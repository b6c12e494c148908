package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/intuition-engine/internal/config"
	"github.com/jwebster45206/intuition-engine/internal/handlers"
	"github.com/jwebster45206/intuition-engine/internal/logger"
	"github.com/jwebster45206/intuition-engine/internal/middleware"
	"github.com/jwebster45206/intuition-engine/internal/storage"
	"github.com/jwebster45206/intuition-engine/pkg/photos"
	"github.com/jwebster45206/intuition-engine/pkg/textfilter"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	log.Info("Starting Intuition Engine API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"images_dir", cfg.ImagesDir,
		"filter_output", cfg.FilterOutput)

	var store storage.Storage = storage.NewRedisStorage(cfg.RedisURL, log)
	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()

	if err := store.Ping(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}
	log.Info("Storage connection established successfully")

	photoPool := photos.NewPool(cfg.ImagesDir, log)
	if err := photoPool.Refresh(); err != nil {
		log.Error("Failed to scan photo directory", "error", err, "dir", cfg.ImagesDir)
		os.Exit(1)
	}
	log.Info("Photo pool loaded", "count", len(photoPool.List()))

	var filter *textfilter.Filter
	if cfg.FilterOutput {
		filter = textfilter.New()
	}

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, log)
	mux.Handle("/health", healthHandler)

	gameHandler := handlers.NewGameHandler(log, store, photoPool, filter)
	mux.Handle("/v1/games", gameHandler)
	mux.Handle("/v1/games/", gameHandler)

	photosHandler := handlers.NewPhotosHandler(log, photoPool)
	mux.Handle("/v1/photos", photosHandler)
	mux.Handle("/v1/photos/", photosHandler)

	mux.Handle("/images/", handlers.NewMediaHandler(log, "/images/", cfg.ImagesDir))
	mux.Handle("/audio/", handlers.NewMediaHandler(log, "/audio/", cfg.AudioDir))

	handler := middleware.Logger(mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
