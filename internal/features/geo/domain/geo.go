package domain

// Province is an upstream-issued administrative region.
// Identifiers are opaque strings from the rate provider; no local validation.
type Province struct {
	// ID is the upstream province identifier.
	ID string `json:"province_id"`
	// Name is the province display name.
	Name string `json:"province"`
}

// City belongs to a Province. The province name is denormalized upstream
// and carried along unchanged.
type City struct {
	// ID is the upstream city identifier.
	ID string `json:"city_id"`
	// ProvinceID links the city to its province.
	ProvinceID string `json:"province_id"`
	// ProvinceName is the denormalized province display name.
	ProvinceName string `json:"province"`
	// Type is the administrative type, e.g. "Kota" or "Kabupaten".
	Type string `json:"type"`
	// Name is the city display name.
	Name string `json:"city_name"`
	// PostalCode is the city postal code.
	PostalCode string `json:"postal_code"`
}
