package domain

import (
	"math"
	"time"

	geo "ongkir-api/internal/features/geo/domain"
)

// CostOption is a single price option for a courier service.
type CostOption struct {
	// Value is the price in the smallest currency unit (IDR).
	Value int64 `json:"value"`
	// ETD is the estimated time of delivery, an opaque upstream string.
	ETD string `json:"etd"`
	// Note is a free-text remark from the provider.
	Note string `json:"note"`
}

// CourierCost is one named service offered by a courier, with its price options.
// Cost is non-empty on the success path; display uses the first element.
type CourierCost struct {
	// Service is the service name, e.g. "REG" or "YES".
	Service string `json:"service"`
	// Description is the service description.
	Description string `json:"description"`
	// Cost holds the ordered price options for this service.
	Cost []CostOption `json:"cost"`
}

// CourierResult groups the service costs returned for one courier.
type CourierResult struct {
	// Code is the courier code, e.g. "jne".
	Code string `json:"code"`
	// Name is the courier display name.
	Name string `json:"name"`
	// Costs holds the ordered service cost lines.
	Costs []CourierCost `json:"costs"`
}

// ShippingCalculation is one completed rate lookup. It is immutable once
// recorded into the history journal.
type ShippingCalculation struct {
	// Origin is the origin city as selected by the caller.
	Origin geo.City `json:"origin"`
	// Destination is the destination city as selected by the caller.
	Destination geo.City `json:"destination"`
	// Weight is the package weight in kilograms.
	Weight float64 `json:"weight"`
	// Courier is the requested courier selector ("jne", "pos", "tiki" or "all").
	Courier string `json:"courier"`
	// Results holds the per-courier cost lines returned upstream.
	Results []CourierResult `json:"results"`
	// RecordedAt is assigned at persistence time.
	RecordedAt time.Time `json:"timestamp,omitempty"`
}

// Grams converts a kilogram weight to the integer gram value transmitted
// upstream. Always rounds up so the quote never underestimates cost;
// any positive weight maps to at least one gram.
func Grams(weightKg float64) int {
	return int(math.Ceil(weightKg * 1000))
}
