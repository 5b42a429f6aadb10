package models

// HotelBedsSearchParams are the caller-facing parameters of the catalog
// search proxy. Page/Limit are translated to the provider's from/to window.
type HotelBedsSearchParams struct {
	CheckIn         string `form:"checkIn"`
	CheckOut        string `form:"checkOut"`
	DestinationCode string `form:"destinationCode"`
	Adults          int    `form:"adults"`
	Children        int    `form:"children"`
	Rooms           int    `form:"rooms"`
	Page            int    `form:"page"`
	Limit           int    `form:"limit"`
}

// HotelBedsContent mirrors the subset of the provider's hotel payload
// that the sync path consumes.
type HotelBedsContent struct {
	Code        int                  `json:"code"`
	Name        HotelBedsText        `json:"name"`
	Description HotelBedsText        `json:"description"`
	Address     HotelBedsText        `json:"address"`
	City        HotelBedsText        `json:"city"`
	PostalCode  string               `json:"postalCode"`
	Email       string               `json:"email"`
	CountryCode string               `json:"countryCode"`
	StateCode   string               `json:"stateCode"`
	Destination string               `json:"destinationCode"`
	ZoneCode    int                  `json:"zoneCode"`
	Coordinates HotelBedsCoordinates `json:"coordinates"`
	Category    string               `json:"categoryCode"`
	Phones      []Phone              `json:"phones"`
	Images      []HotelBedsImage     `json:"images"`
}

// HotelBedsText is the provider's localized-string wrapper
type HotelBedsText struct {
	Content string `json:"content"`
}

// HotelBedsCoordinates is the provider's geo pair
type HotelBedsCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HotelBedsImage is one provider image entry
type HotelBedsImage struct {
	Path string `json:"path"`
}

// HotelBedsSearchResponse is the provider's hotel list envelope
type HotelBedsSearchResponse struct {
	From   int                `json:"from"`
	To     int                `json:"to"`
	Total  int                `json:"total"`
	Hotels []HotelBedsContent `json:"hotels"`
}

// SyncResult reports the outcome of one catalog sync batch
type SyncResult struct {
	BatchID string `json:"batch_id"`
	Synced  int    `json:"synced"`
	Errors  int    `json:"errors"`
}
