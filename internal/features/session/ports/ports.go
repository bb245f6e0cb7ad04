package ports

import (
	"context"

	"ongkir-api/internal/features/session/domain"
)

// SessionRepository defines the interface for persisting sessions.
type SessionRepository interface {
	// Save persists a session under the given token.
	Save(ctx context.Context, token string, session domain.Session) error

	// Get returns the session stored under the token, or nil when no
	// readable session exists.
	Get(ctx context.Context, token string) (*domain.Session, error)

	// Delete removes the session stored under the token. Deleting an
	// absent token is not an error.
	Delete(ctx context.Context, token string) error
}
