package providers

import (
	"context"
	"time"

	"weatherdash.app/models"
)

// ForecastProvider defines the four read operations the dashboard needs
// from a weather data provider.
type ForecastProvider interface {
	SearchLocations(ctx context.Context, query string) ([]models.SearchLocation, error)
	GetForecastByCity(ctx context.Context, city string) (*models.ForecastResponse, error)
	GetForecastByCoordinates(ctx context.Context, lat, lon float64) (*models.ForecastResponse, error)
	GetHistory(ctx context.Context, query, date string) (*models.ForecastResponse, error)
}

// Locator resolves a free-text address to coordinates. It stands in for
// the browser geolocation the dashboard cannot reach from the server
// side.
type Locator interface {
	Locate(ctx context.Context, address string) (lat, lon float64, err error)
}

// RequestLogger defines the interface for provider call logging.
type RequestLogger interface {
	LogRequest(operation, query string)
	LogResponse(operation, query string, duration time.Duration)
	LogError(operation, query string, err error, duration time.Duration)
}
