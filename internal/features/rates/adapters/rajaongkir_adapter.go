package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ongkir-api/internal/core/config"
	"ongkir-api/internal/core/httpclient"
	"ongkir-api/internal/features/rates/domain"
)

// ErrRateRejected is returned when the provider answers with an embedded
// status code other than 200, regardless of the HTTP transport status.
var ErrRateRejected = errors.New("rate request rejected")

// RajaOngkirAdapter implements the RateProvider interface against the
// RajaOngkir-style cost resource.
type RajaOngkirAdapter struct {
	// costURL is the shipping cost resource.
	costURL string
	// client is the HTTP client used for API requests.
	client *http.Client
}

// NewRajaOngkirAdapter creates a new instance of RajaOngkirAdapter.
func NewRajaOngkirAdapter(cfg config.RajaOngkirConfig, timeout time.Duration) *RajaOngkirAdapter {
	return &RajaOngkirAdapter{
		costURL: cfg.CostURL,
		client:  httpclient.NewClient(timeout),
	}
}

// costRequest is the JSON body transmitted to the cost resource.
// Weight is in integer grams.
type costRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Weight      int    `json:"weight"`
	Courier     string `json:"courier"`
}

// costEnvelope mirrors the upstream wrapper. Status carries an
// application-level code independent of the HTTP status.
type costEnvelope struct {
	RajaOngkir struct {
		Status struct {
			Code        int    `json:"code"`
			Description string `json:"description"`
		} `json:"status"`
		Results []domain.CourierResult `json:"results"`
	} `json:"rajaongkir"`
}

// FetchCost submits a single cost request. No retries.
func (a *RajaOngkirAdapter) FetchCost(ctx context.Context, originID, destinationID string, grams int, courier string) ([]domain.CourierResult, error) {
	payload, err := json.Marshal(costRequest{
		Origin:      originID,
		Destination: destinationID,
		Weight:      grams,
		Courier:     courier,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode cost request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.costURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cost endpoint returned status: %d", resp.StatusCode)
	}

	var envelope costEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode cost response: %w", err)
	}

	if envelope.RajaOngkir.Status.Code != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrRateRejected, envelope.RajaOngkir.Status.Description)
	}

	return envelope.RajaOngkir.Results, nil
}
