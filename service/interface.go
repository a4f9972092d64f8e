package service

import (
	"context"

	"weatherdash.app/models"
)

// DashboardServiceInterface defines the interface for dashboard operations
type DashboardServiceInterface interface {
	QueryCity(ctx context.Context, city string, page, perPage int) (*models.ViewState, error)
	QueryCoordinates(ctx context.Context, lat, lon float64, page, perPage int) (*models.ViewState, error)
	QueryAddress(ctx context.Context, address string, page, perPage int) (*models.ViewState, error)
	Autocomplete(ctx context.Context, query string) ([]string, error)
	View() (*models.ViewState, error)
	Paginate(page, perPage int) (*models.ViewState, error)
	ImportCSV(text string) (*models.ViewState, error)
	ExportCSV() (content, filename string, err error)
	SearchHistory() ([]models.SearchEntry, error)
	DeleteHistoryEntry(id uint) error
	ClearHistory() error
}

// SearchHistoryRepositoryInterface defines the interface for search history data operations
type SearchHistoryRepositoryInterface interface {
	Recent() ([]models.SearchEntry, error)
	Record(term string) (*models.SearchEntry, error)
	Delete(id uint) error
	Clear() error
	PruneExpired() error
}

// Ensure implementations satisfy interfaces
var _ DashboardServiceInterface = (*DashboardService)(nil)
