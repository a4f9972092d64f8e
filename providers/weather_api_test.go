package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/config"
	apperrors "weatherdash.app/errors"
)

const forecastPayload = `{
	"location": {"name": "London", "country": "United Kingdom"},
	"current": {
		"temp_c": 21.4,
		"feelslike_c": 20.2,
		"feelslike_f": 68.4,
		"humidity": 55,
		"wind_kph": 12.5,
		"condition": {"text": "Partly cloudy", "icon": "//cdn.weatherapi.com/day/116.png"}
	},
	"forecast": {"forecastday": [
		{"date": "2026-08-30", "day": {"avgtemp_c": 20.4, "avghumidity": 50, "maxwind_kph": 10.5, "condition": {"text": "Sunny"}},
		 "hour": [{"time": "2026-08-30 09:00", "temp_c": 18.2, "condition": {"text": "Sunny"}}]}
	]}
}`

func newTestProvider(baseURL string) *WeatherAPIProvider {
	return NewWeatherAPIProvider(&config.WeatherConfig{
		APIKey:  "test-api-key",
		BaseURL: baseURL,
	})
}

func TestWeatherAPIProvider_GetForecastByCity(t *testing.T) {
	t.Run("ValidForecastResponse", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.String(), "/forecast.json")
			assert.Contains(t, r.URL.String(), "q=London")
			assert.Contains(t, r.URL.String(), "days=10")
			assert.Contains(t, r.URL.String(), "key=test-api-key")

			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(forecastPayload))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := newTestProvider(mockServer.URL)
		forecast, err := provider.GetForecastByCity(context.Background(), "London")

		require.NoError(t, err)
		require.NotNil(t, forecast)
		assert.Equal(t, "London", forecast.Location.Name)
		require.NotNil(t, forecast.Current)
		assert.Equal(t, 21.4, forecast.Current.TempC)
		require.Len(t, forecast.Forecast.Forecastday, 1)
		assert.Equal(t, "2026-08-30", forecast.Forecast.Forecastday[0].Date)
	})

	t.Run("EmptyCity", func(t *testing.T) {
		provider := newTestProvider("https://api.example.com")
		forecast, err := provider.GetForecastByCity(context.Background(), "")

		assert.Error(t, err)
		assert.Nil(t, forecast)

		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})

	t.Run("LocationNotFound", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer mockServer.Close()

		provider := newTestProvider(mockServer.URL)
		forecast, err := provider.GetForecastByCity(context.Background(), "Atlantis")

		assert.Error(t, err)
		assert.Nil(t, forecast)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.NotFoundError, appErr.Type)
		assert.Contains(t, appErr.Message, "location not found")
	})

	t.Run("ServerError", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer mockServer.Close()

		provider := newTestProvider(mockServer.URL)
		_, err := provider.GetForecastByCity(context.Background(), "London")

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ExternalAPIError, appErr.Type)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer mockServer.Close()

		provider := newTestProvider(mockServer.URL)
		_, err := provider.GetForecastByCity(context.Background(), "London")

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ExternalAPIError, appErr.Type)
	})
}

func TestWeatherAPIProvider_GetForecastByCoordinates(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "51.500000,-0.120000", r.URL.Query().Get("q"))
		_, err := w.Write([]byte(forecastPayload))
		require.NoError(t, err)
	}))
	defer mockServer.Close()

	provider := newTestProvider(mockServer.URL)
	forecast, err := provider.GetForecastByCoordinates(context.Background(), 51.5, -0.12)

	require.NoError(t, err)
	assert.Equal(t, "London", forecast.Location.Name)
}

func TestWeatherAPIProvider_GetHistory(t *testing.T) {
	t.Run("ValidHistoryResponse", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.String(), "/history.json")
			assert.Equal(t, "2026-08-29", r.URL.Query().Get("dt"))

			_, err := w.Write([]byte(`{
				"forecast": {"forecastday": [
					{"date": "2026-08-29", "day": {"avgtemp_c": 17.6, "avghumidity": 60, "maxwind_kph": 14, "condition": {"text": "Light rain"}}}
				]}
			}`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := newTestProvider(mockServer.URL)
		history, err := provider.GetHistory(context.Background(), "London", "2026-08-29")

		require.NoError(t, err)
		assert.Nil(t, history.Current)
		require.Len(t, history.Forecast.Forecastday, 1)
		assert.Equal(t, "Light rain", history.Forecast.Forecastday[0].Day.Condition.Text)
	})

	t.Run("EmptyQuery", func(t *testing.T) {
		provider := newTestProvider("https://api.example.com")
		_, err := provider.GetHistory(context.Background(), "", "2026-08-29")

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})
}

func TestWeatherAPIProvider_SearchLocations(t *testing.T) {
	t.Run("ValidSearchResponse", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.String(), "/search.json")
			assert.Equal(t, "Lon", r.URL.Query().Get("q"))

			_, err := w.Write([]byte(`[
				{"id": 1, "name": "London", "country": "United Kingdom", "lat": 51.52, "lon": -0.11},
				{"id": 2, "name": "Long Beach", "country": "United States of America", "lat": 33.77, "lon": -118.19}
			]`))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := newTestProvider(mockServer.URL)
		locations, err := provider.SearchLocations(context.Background(), "Lon")

		require.NoError(t, err)
		require.Len(t, locations, 2)
		assert.Equal(t, "London", locations[0].Name)
		assert.Equal(t, "United Kingdom", locations[0].Country)
	})

	t.Run("EmptyQuery", func(t *testing.T) {
		provider := newTestProvider("https://api.example.com")
		_, err := provider.SearchLocations(context.Background(), "")

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})
}

func TestWeatherAPIProvider_ContextCancellation(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(forecastPayload))
	}))
	defer mockServer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := newTestProvider(mockServer.URL)
	_, err := provider.GetForecastByCity(ctx, "London")

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ExternalAPIError, appErr.Type)
}
