package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ongkir-api/internal/core/config"
	"ongkir-api/internal/core/httpclient"
	"ongkir-api/internal/features/geo/domain"
)

// RajaOngkirAdapter implements the GeoProvider interface against the
// RajaOngkir-style province and city resources.
type RajaOngkirAdapter struct {
	// provinceURL is the provinces resource.
	provinceURL string
	// cityURL is the cities resource.
	cityURL string
	// client is the HTTP client used for API requests.
	client *http.Client
}

// NewRajaOngkirAdapter creates a new instance of RajaOngkirAdapter.
func NewRajaOngkirAdapter(cfg config.RajaOngkirConfig, timeout time.Duration) *RajaOngkirAdapter {
	return &RajaOngkirAdapter{
		provinceURL: cfg.ProvinceURL,
		cityURL:     cfg.CityURL,
		client:      httpclient.NewClient(timeout),
	}
}

// provinceEnvelope mirrors the upstream {"rajaongkir":{"results":[...]}} wrapper.
type provinceEnvelope struct {
	RajaOngkir struct {
		Results []domain.Province `json:"results"`
	} `json:"rajaongkir"`
}

// cityEnvelope mirrors the upstream wrapper for the cities resource.
type cityEnvelope struct {
	RajaOngkir struct {
		Results []domain.City `json:"results"`
	} `json:"rajaongkir"`
}

// FetchProvinces retrieves the full province list.
func (a *RajaOngkirAdapter) FetchProvinces(ctx context.Context) ([]domain.Province, error) {
	body, err := a.get(ctx, a.provinceURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var envelope provinceEnvelope
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode province response: %w", err)
	}

	return envelope.RajaOngkir.Results, nil
}

// FetchCities retrieves the full city list across all provinces.
func (a *RajaOngkirAdapter) FetchCities(ctx context.Context) ([]domain.City, error) {
	body, err := a.get(ctx, a.cityURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var envelope cityEnvelope
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode city response: %w", err)
	}

	return envelope.RajaOngkir.Results, nil
}

// get issues a GET request and returns the body on HTTP 200.
func (a *RajaOngkirAdapter) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("geo endpoint returned status: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
