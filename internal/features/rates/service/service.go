package service

import (
	"context"
	"errors"
	"fmt"

	"ongkir-api/internal/core/logger"
	geo "ongkir-api/internal/features/geo/domain"
	"ongkir-api/internal/features/rates/domain"
	"ongkir-api/internal/features/rates/ports"

	"go.uber.org/zap"
)

var (
	// ErrInvalidWeight is returned when the weight is zero or negative.
	ErrInvalidWeight = errors.New("weight must be greater than zero")
	// ErrUnknownCourier is returned when the courier selector is not one of the picker choices.
	ErrUnknownCourier = errors.New("unknown courier selector")
	// ErrMissingCity is returned when the origin or destination is absent.
	ErrMissingCity = errors.New("origin and destination are required")
)

// courierSelectors mirrors the calculator's fixed picker choices.
var courierSelectors = map[string]bool{
	"jne":  true,
	"pos":  true,
	"tiki": true,
	"all":  true,
}

// CalculationRequest carries the caller-side inputs of a rate lookup.
// The full city records travel with the request so a successful lookup
// can be journaled without a second catalog fetch.
type CalculationRequest struct {
	// Origin is the selected origin city.
	Origin geo.City `json:"origin"`
	// Destination is the selected destination city.
	Destination geo.City `json:"destination"`
	// Weight is the package weight in kilograms.
	Weight float64 `json:"weight"`
	// Courier is the courier selector ("jne", "pos", "tiki" or "all").
	Courier string `json:"courier"`
}

// RateService orchestrates rate lookups and forwards successful
// calculations to the history journal when a session exists.
type RateService struct {
	provider ports.RateProvider
	recorder ports.HistoryRecorder
}

// NewRateService creates a new RateService.
func NewRateService(provider ports.RateProvider, recorder ports.HistoryRecorder) *RateService {
	return &RateService{
		provider: provider,
		recorder: recorder,
	}
}

// Calculate validates the request, converts the weight to grams (rounded
// up), and issues a single cost lookup. When userID is non-empty the
// successful calculation is journaled; journal failures are logged and
// never fail the lookup itself.
func (s *RateService) Calculate(ctx context.Context, req CalculationRequest, userID string) ([]domain.CourierResult, error) {
	if req.Origin.ID == "" || req.Destination.ID == "" {
		return nil, ErrMissingCity
	}
	if req.Weight <= 0 {
		return nil, ErrInvalidWeight
	}
	if !courierSelectors[req.Courier] {
		return nil, ErrUnknownCourier
	}

	results, err := s.provider.FetchCost(ctx, req.Origin.ID, req.Destination.ID, domain.Grams(req.Weight), req.Courier)
	if err != nil {
		return nil, fmt.Errorf("failed to get cost from provider: %w", err)
	}

	if userID != "" {
		calc := domain.ShippingCalculation{
			Origin:      req.Origin,
			Destination: req.Destination,
			Weight:      req.Weight,
			Courier:     req.Courier,
			Results:     results,
		}
		if err := s.recorder.Record(ctx, userID, calc); err != nil {
			logger.Get().Warn("Failed to record calculation",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}

	return results, nil
}
