package service

import (
	"context"

	"ongkir-api/internal/core/logger"
	"ongkir-api/internal/features/geo/domain"
	"ongkir-api/internal/features/geo/ports"

	"go.uber.org/zap"
)

// CatalogService supplies the province and city selection lists.
// Failures degrade to empty lists: callers must treat an empty result
// as "unavailable", not "no provinces exist".
type CatalogService struct {
	provider ports.GeoProvider
}

// NewCatalogService creates a new CatalogService with the given provider.
func NewCatalogService(provider ports.GeoProvider) *CatalogService {
	return &CatalogService{
		provider: provider,
	}
}

// ListProvinces returns the full province list. Each call re-fetches;
// there is no caching and no retry.
func (s *CatalogService) ListProvinces(ctx context.Context) []domain.Province {
	provinces, err := s.provider.FetchProvinces(ctx)
	if err != nil {
		logger.Get().Error("Failed to fetch provinces", zap.Error(err))
		return []domain.Province{}
	}
	if provinces == nil {
		return []domain.Province{}
	}
	return provinces
}

// ListCities returns the city list, filtered to the given province when
// provinceID is non-empty. The upstream resource always returns the full
// set, so filtering happens here.
func (s *CatalogService) ListCities(ctx context.Context, provinceID string) []domain.City {
	cities, err := s.provider.FetchCities(ctx)
	if err != nil {
		logger.Get().Error("Failed to fetch cities",
			zap.String("province_id", provinceID),
			zap.Error(err),
		)
		return []domain.City{}
	}

	if provinceID == "" {
		if cities == nil {
			return []domain.City{}
		}
		return cities
	}

	filtered := make([]domain.City, 0, len(cities))
	for _, city := range cities {
		if city.ProvinceID == provinceID {
			filtered = append(filtered, city)
		}
	}
	return filtered
}
