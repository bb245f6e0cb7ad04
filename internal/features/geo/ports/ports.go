package ports

import (
	"context"

	"ongkir-api/internal/features/geo/domain"
)

// GeoProvider defines the interface for fetching the geographic catalog.
// This is a Secondary Port (Driven Port).
type GeoProvider interface {
	// FetchProvinces retrieves the full province list from the upstream resource.
	FetchProvinces(ctx context.Context) ([]domain.Province, error)
	// FetchCities retrieves the full city list. The upstream resource is not
	// scoped by province; filtering happens in the service.
	FetchCities(ctx context.Context) ([]domain.City, error)
}
