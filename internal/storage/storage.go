package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jwebster45206/intuition-engine/pkg/game"
)

// Storage defines the session registry used by the HTTP layer.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Session operations
	SaveSession(ctx context.Context, id uuid.UUID, s *game.Session) error
	// LoadSession returns nil, nil when the session does not exist.
	LoadSession(ctx context.Context, id uuid.UUID) (*game.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
}
