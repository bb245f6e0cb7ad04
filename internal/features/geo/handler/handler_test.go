package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"ongkir-api/internal/features/geo/domain"
	"ongkir-api/internal/features/geo/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockGeoProvider is a mock implementation of GeoProvider for testing.
type mockGeoProvider struct {
	provinces   []domain.Province
	cities      []domain.City
	returnError error
}

// FetchProvinces implements GeoProvider.
func (m *mockGeoProvider) FetchProvinces(ctx context.Context) ([]domain.Province, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.provinces, nil
}

// FetchCities implements GeoProvider.
func (m *mockGeoProvider) FetchCities(ctx context.Context) ([]domain.City, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.cities, nil
}

func newTestApp(provider *mockGeoProvider) *fiber.App {
	handler := NewCatalogHandler(service.NewCatalogService(provider))

	app := fiber.New()
	app.Get("/provinces", handler.ListProvinces)
	app.Get("/cities", handler.ListCities)
	return app
}

// TestCatalogHandler_ListProvinces_Success verifies the provinces endpoint.
func TestCatalogHandler_ListProvinces_Success(t *testing.T) {
	app := newTestApp(&mockGeoProvider{
		provinces: []domain.Province{{ID: "6", Name: "DKI Jakarta"}},
	})

	req := httptest.NewRequest("GET", "/provinces", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result []domain.Province
	err = json.NewDecoder(resp.Body).Decode(&result)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "DKI Jakarta", result[0].Name)
}

// TestCatalogHandler_ListProvinces_UpstreamFailure verifies the empty-list degradation.
func TestCatalogHandler_ListProvinces_UpstreamFailure(t *testing.T) {
	app := newTestApp(&mockGeoProvider{
		returnError: errors.New("unreachable"),
	})

	req := httptest.NewRequest("GET", "/provinces", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result []domain.Province
	err = json.NewDecoder(resp.Body).Decode(&result)
	require.NoError(t, err)
	assert.Empty(t, result)
}

// TestCatalogHandler_ListCities_ProvinceFilter verifies the province query parameter.
func TestCatalogHandler_ListCities_ProvinceFilter(t *testing.T) {
	app := newTestApp(&mockGeoProvider{
		cities: []domain.City{
			{ID: "151", ProvinceID: "6", Name: "Jakarta Barat"},
			{ID: "22", ProvinceID: "9", Name: "Bandung"},
		},
	})

	req := httptest.NewRequest("GET", "/cities?province=9", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result []domain.City
	err = json.NewDecoder(resp.Body).Decode(&result)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Bandung", result[0].Name)
}
