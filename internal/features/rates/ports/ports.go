package ports

import (
	"context"

	"ongkir-api/internal/features/rates/domain"
)

// RateProvider defines the interface for fetching courier costs from the
// remote rate endpoint. This is a Secondary Port (Driven Port).
type RateProvider interface {
	// FetchCost submits one origin/destination/weight/courier request and
	// returns the per-courier cost lines. Weight is in integer grams.
	FetchCost(ctx context.Context, originID, destinationID string, grams int, courier string) ([]domain.CourierResult, error)
}

// HistoryRecorder persists completed calculations for a user.
type HistoryRecorder interface {
	// Record appends a calculation to the user's history journal.
	Record(ctx context.Context, userID string, calc domain.ShippingCalculation) error
}

// SessionResolver resolves an opaque session token to a user id.
// An empty result means no valid session exists for the token.
type SessionResolver interface {
	ResolveUser(ctx context.Context, token string) string
}
