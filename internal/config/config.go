package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Port         string
	Environment  string
	LogLevel     slog.Level
	RedisURL     string
	ImagesDir    string
	AudioDir     string
	FilterOutput bool
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "info")),
		RedisURL:     getEnv("REDIS_URL", "localhost:6379"),
		ImagesDir:    getEnv("IMAGES_DIR", "data/images"),
		AudioDir:     getEnv("AUDIO_DIR", "data/audio"),
		FilterOutput: parseBool(getEnv("FILTER_OUTPUT", "true")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
