package providers

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	"weatherdash.app/models"
)

// RateLimitedProvider wraps a ForecastProvider with a shared token
// bucket so burst traffic from the dashboard never exhausts the
// upstream plan's request quota.
type RateLimitedProvider struct {
	provider ForecastProvider
	limiter  *rate.Limiter
}

// NewRateLimitedProvider creates a rate limited provider allowing rps
// requests per second with the given burst. rps may be fractional.
func NewRateLimitedProvider(provider ForecastProvider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedProvider) wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return nil
}

func (r *RateLimitedProvider) SearchLocations(ctx context.Context, query string) ([]models.SearchLocation, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.SearchLocations(ctx, query)
}

func (r *RateLimitedProvider) GetForecastByCity(ctx context.Context, city string) (*models.ForecastResponse, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.GetForecastByCity(ctx, city)
}

func (r *RateLimitedProvider) GetForecastByCoordinates(ctx context.Context, lat, lon float64) (*models.ForecastResponse, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.GetForecastByCoordinates(ctx, lat, lon)
}

func (r *RateLimitedProvider) GetHistory(ctx context.Context, query, date string) (*models.ForecastResponse, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.GetHistory(ctx, query, date)
}

var _ ForecastProvider = (*RateLimitedProvider)(nil)
