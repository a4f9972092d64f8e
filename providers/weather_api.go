package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"weatherdash.app/config"
	"weatherdash.app/errors"
	"weatherdash.app/models"
)

// forecastDays is how many days forecast.json is asked for. Free-tier
// keys silently cap the answer at 3; the normalizer pads the shortfall.
const forecastDays = 10

// WeatherAPIProvider implements ForecastProvider for WeatherAPI.com
type WeatherAPIProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewWeatherAPIProvider creates a new WeatherAPI.com provider
func NewWeatherAPIProvider(config *config.WeatherConfig) *WeatherAPIProvider {
	return &WeatherAPIProvider{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchLocations resolves a text prefix to matching locations via the
// autocomplete endpoint.
func (p *WeatherAPIProvider) SearchLocations(ctx context.Context, query string) ([]models.SearchLocation, error) {
	if query == "" {
		return nil, errors.NewValidationError("search query cannot be empty")
	}

	var results []models.SearchLocation
	if err := p.getJSON(ctx, "/search.json", url.Values{"q": {query}}, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetForecastByCity retrieves the multi-day forecast for a city name.
func (p *WeatherAPIProvider) GetForecastByCity(ctx context.Context, city string) (*models.ForecastResponse, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}
	return p.getForecast(ctx, city)
}

// GetForecastByCoordinates retrieves the multi-day forecast for a
// latitude/longitude pair.
func (p *WeatherAPIProvider) GetForecastByCoordinates(ctx context.Context, lat, lon float64) (*models.ForecastResponse, error) {
	return p.getForecast(ctx, fmt.Sprintf("%f,%f", lat, lon))
}

func (p *WeatherAPIProvider) getForecast(ctx context.Context, query string) (*models.ForecastResponse, error) {
	values := url.Values{
		"q":      {query},
		"days":   {fmt.Sprintf("%d", forecastDays)},
		"aqi":    {"no"},
		"alerts": {"no"},
	}

	var result models.ForecastResponse
	if err := p.getJSON(ctx, "/forecast.json", values, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetHistory retrieves the single-day history payload for a city name or
// "lat,lon" query at the given YYYY-MM-DD date.
func (p *WeatherAPIProvider) GetHistory(ctx context.Context, query, date string) (*models.ForecastResponse, error) {
	if query == "" {
		return nil, errors.NewValidationError("history query cannot be empty")
	}

	values := url.Values{
		"q":  {query},
		"dt": {date},
	}

	var result models.ForecastResponse
	if err := p.getJSON(ctx, "/history.json", values, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (p *WeatherAPIProvider) getJSON(ctx context.Context, endpoint string, values url.Values, out interface{}) error {
	values.Set("key", p.apiKey)
	requestURL := fmt.Sprintf("%s%s?%s", p.baseURL, endpoint, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return errors.NewExternalAPIError("failed to create request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError("failed to get weather data", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	// WeatherAPI answers 400 for unknown locations.
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest {
		return errors.NewNotFoundError("location not found")
	}

	if resp.StatusCode != http.StatusOK {
		return errors.NewExternalAPIError(fmt.Sprintf("weather API returned status code %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError("failed to decode weather data", err)
	}

	return nil
}
