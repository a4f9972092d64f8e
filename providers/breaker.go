package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"weatherdash.app/models"
)

// BreakerProvider wraps a ForecastProvider with a circuit breaker so a
// failing upstream trips open instead of being hammered on every
// keystroke.
type BreakerProvider struct {
	provider ForecastProvider
	circuit  *gobreaker.CircuitBreaker
}

// NewBreakerProvider creates a circuit-breaking provider wrapper.
func NewBreakerProvider(provider ForecastProvider) *BreakerProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weatherapi",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &BreakerProvider{
		provider: provider,
		circuit:  cb,
	}
}

func (b *BreakerProvider) execute(call func() (interface{}, error)) (interface{}, error) {
	result, err := b.circuit.Execute(call)
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return nil, fmt.Errorf("weather provider circuit open: %w", err)
	}
	return result, err
}

func (b *BreakerProvider) SearchLocations(ctx context.Context, query string) ([]models.SearchLocation, error) {
	result, err := b.execute(func() (interface{}, error) {
		return b.provider.SearchLocations(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.SearchLocation), nil
}

func (b *BreakerProvider) GetForecastByCity(ctx context.Context, city string) (*models.ForecastResponse, error) {
	result, err := b.execute(func() (interface{}, error) {
		return b.provider.GetForecastByCity(ctx, city)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.ForecastResponse), nil
}

func (b *BreakerProvider) GetForecastByCoordinates(ctx context.Context, lat, lon float64) (*models.ForecastResponse, error) {
	result, err := b.execute(func() (interface{}, error) {
		return b.provider.GetForecastByCoordinates(ctx, lat, lon)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.ForecastResponse), nil
}

func (b *BreakerProvider) GetHistory(ctx context.Context, query, date string) (*models.ForecastResponse, error) {
	result, err := b.execute(func() (interface{}, error) {
		return b.provider.GetHistory(ctx, query, date)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.ForecastResponse), nil
}

var _ ForecastProvider = (*BreakerProvider)(nil)
