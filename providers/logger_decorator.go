package providers

import (
	"context"
	"log/slog"
	"time"

	"weatherdash.app/models"
)

// SlogRequestLogger logs provider traffic through the application's
// structured logger.
type SlogRequestLogger struct {
	providerName string
}

// NewSlogRequestLogger creates a structured request logger for the named
// provider.
func NewSlogRequestLogger(providerName string) *SlogRequestLogger {
	return &SlogRequestLogger{providerName: providerName}
}

func (l *SlogRequestLogger) LogRequest(operation, query string) {
	slog.Debug("provider request", "provider", l.providerName, "operation", operation, "query", query)
}

func (l *SlogRequestLogger) LogResponse(operation, query string, duration time.Duration) {
	slog.Info("provider response", "provider", l.providerName, "operation", operation, "query", query, "duration_ms", duration.Milliseconds())
}

func (l *SlogRequestLogger) LogError(operation, query string, err error, duration time.Duration) {
	slog.Error("provider error", "provider", l.providerName, "operation", operation, "query", query, "error", err, "duration_ms", duration.Milliseconds())
}

// LoggingProvider decorates a ForecastProvider with request/response
// logging.
type LoggingProvider struct {
	provider ForecastProvider
	logger   RequestLogger
}

// NewLoggingProvider creates a logging decorator around a provider.
func NewLoggingProvider(provider ForecastProvider, logger RequestLogger) *LoggingProvider {
	return &LoggingProvider{
		provider: provider,
		logger:   logger,
	}
}

func (p *LoggingProvider) SearchLocations(ctx context.Context, query string) ([]models.SearchLocation, error) {
	p.logger.LogRequest("search", query)
	start := time.Now()

	results, err := p.provider.SearchLocations(ctx, query)
	if err != nil {
		p.logger.LogError("search", query, err, time.Since(start))
		return nil, err
	}

	p.logger.LogResponse("search", query, time.Since(start))
	return results, nil
}

func (p *LoggingProvider) GetForecastByCity(ctx context.Context, city string) (*models.ForecastResponse, error) {
	p.logger.LogRequest("forecast", city)
	start := time.Now()

	result, err := p.provider.GetForecastByCity(ctx, city)
	if err != nil {
		p.logger.LogError("forecast", city, err, time.Since(start))
		return nil, err
	}

	p.logger.LogResponse("forecast", city, time.Since(start))
	return result, nil
}

func (p *LoggingProvider) GetForecastByCoordinates(ctx context.Context, lat, lon float64) (*models.ForecastResponse, error) {
	query := coordinateQuery(lat, lon)
	p.logger.LogRequest("forecast", query)
	start := time.Now()

	result, err := p.provider.GetForecastByCoordinates(ctx, lat, lon)
	if err != nil {
		p.logger.LogError("forecast", query, err, time.Since(start))
		return nil, err
	}

	p.logger.LogResponse("forecast", query, time.Since(start))
	return result, nil
}

func (p *LoggingProvider) GetHistory(ctx context.Context, query, date string) (*models.ForecastResponse, error) {
	p.logger.LogRequest("history", query)
	start := time.Now()

	result, err := p.provider.GetHistory(ctx, query, date)
	if err != nil {
		p.logger.LogError("history", query, err, time.Since(start))
		return nil, err
	}

	p.logger.LogResponse("history", query, time.Since(start))
	return result, nil
}

var _ ForecastProvider = (*LoggingProvider)(nil)
