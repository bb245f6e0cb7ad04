package ports

import (
	"context"

	"ongkir-api/internal/features/history/domain"
	rates "ongkir-api/internal/features/rates/domain"
)

// HistoryRepository defines the secondary port for journal storage.
type HistoryRepository interface {
	// Append stamps and prepends the calculation, truncates to the journal
	// capacity, persists, and returns the updated journal.
	Append(ctx context.Context, userID string, calc rates.ShippingCalculation) (domain.Journal, error)
	// List returns the persisted journal. A missing or unreadable payload
	// yields an empty journal, not an error.
	List(ctx context.Context, userID string) (domain.Journal, error)
	// Clear deletes the entire persisted journal unconditionally.
	Clear(ctx context.Context, userID string) error
}

// SessionResolver resolves an opaque session token to a user id.
// An empty result means no valid session exists for the token.
type SessionResolver interface {
	ResolveUser(ctx context.Context, token string) string
}
