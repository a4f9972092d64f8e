package providers

import (
	"context"

	"github.com/kelvins/geocoder"
	"weatherdash.app/errors"
)

// AddressLocator resolves free-text addresses to coordinates through the
// Google Geocoding API. It is the server-side stand-in for browser
// geolocation: a failed resolution surfaces as "location unavailable"
// and the caller falls back to the manual-city path.
type AddressLocator struct{}

// NewAddressLocator configures the geocoding backend with an API key.
func NewAddressLocator(apiKey string) *AddressLocator {
	geocoder.ApiKey = apiKey
	return &AddressLocator{}
}

// Locate resolves an address to latitude and longitude.
func (l *AddressLocator) Locate(ctx context.Context, address string) (float64, float64, error) {
	if address == "" {
		return 0, 0, errors.NewValidationError("address cannot be empty")
	}

	location, err := geocoder.Geocoding(geocoder.Address{City: address})
	if err != nil {
		return 0, 0, errors.NewGeocodingError("location unavailable", err)
	}

	return location.Latitude, location.Longitude, nil
}

var _ Locator = (*AddressLocator)(nil)
