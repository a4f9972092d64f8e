// Package service implements the dashboard business logic on top of the
// forecast pipeline and the provider stack.
package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"weatherdash.app/errors"
	"weatherdash.app/forecast"
	"weatherdash.app/models"
	"weatherdash.app/pkg/validation"
	"weatherdash.app/providers"
)

const historyDateLayout = "2006-01-02"

// DashboardService handles weather dashboard operations. It retains the
// view produced by the most recent successful query so that pagination
// and export operate on it without refetching.
type DashboardService struct {
	provider     providers.ForecastProvider
	locator      providers.Locator
	historyRepo  SearchHistoryRepositoryInterface
	hoursPerPage int
	now          func() time.Time

	mu          sync.Mutex
	latestQuery uuid.UUID
	state       *models.ViewState
	table       *forecast.HourlyTable
}

// NewDashboardService creates a new dashboard service. The locator may be
// nil when address resolution is not configured. hoursPerPage is the page
// size used when a request does not pick one; a non-positive value falls
// back to the built-in default.
func NewDashboardService(
	provider providers.ForecastProvider,
	locator providers.Locator,
	historyRepo SearchHistoryRepositoryInterface,
	hoursPerPage int,
) *DashboardService {
	if hoursPerPage <= 0 {
		hoursPerPage = forecast.DefaultHoursPerPage
	}
	return &DashboardService{
		provider:     provider,
		locator:      locator,
		historyRepo:  historyRepo,
		hoursPerPage: hoursPerPage,
		now:          time.Now,
	}
}

// resolvePerPage substitutes the configured page size when the request
// did not choose one.
func (s *DashboardService) resolvePerPage(perPage int) int {
	if perPage <= 0 {
		return s.hoursPerPage
	}
	return perPage
}

// QueryCity loads and normalizes the forecast for a city name
func (s *DashboardService) QueryCity(ctx context.Context, city string, page, perPage int) (*models.ViewState, error) {
	log.Printf("[DEBUG] DashboardService.QueryCity called for city: %s\n", city)

	trimmed, ok := validation.TrimAndValidate(city)
	if !ok {
		return nil, errors.NewValidationError("city cannot be empty")
	}
	if !validation.IsValidCity(trimmed) {
		return nil, errors.NewValidationError("city contains invalid characters")
	}

	fetch := func(ctx context.Context) (*models.ForecastResponse, error) {
		return s.provider.GetForecastByCity(ctx, trimmed)
	}
	return s.runQuery(ctx, fetch, trimmed, trimmed, page, perPage)
}

// QueryCoordinates loads and normalizes the forecast for a coordinate pair
func (s *DashboardService) QueryCoordinates(ctx context.Context, lat, lon float64, page, perPage int) (*models.ViewState, error) {
	log.Printf("[DEBUG] DashboardService.QueryCoordinates called for: %f,%f\n", lat, lon)

	if !validation.IsValidCoordinates(lat, lon) {
		return nil, errors.NewValidationError("coordinates out of range")
	}

	fetch := func(ctx context.Context) (*models.ForecastResponse, error) {
		return s.provider.GetForecastByCoordinates(ctx, lat, lon)
	}
	historyQuery := fmt.Sprintf("%f,%f", lat, lon)
	return s.runQuery(ctx, fetch, historyQuery, "", page, perPage)
}

// QueryAddress resolves a street address to coordinates and loads the
// forecast for them
func (s *DashboardService) QueryAddress(ctx context.Context, address string, page, perPage int) (*models.ViewState, error) {
	log.Printf("[DEBUG] DashboardService.QueryAddress called for: %s\n", address)

	trimmed, ok := validation.TrimAndValidate(address)
	if !ok {
		return nil, errors.NewValidationError("address cannot be empty")
	}
	if s.locator == nil {
		return nil, errors.NewGeocodingError("address lookup is not configured", nil)
	}

	lat, lon, err := s.locator.Locate(ctx, trimmed)
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context) (*models.ForecastResponse, error) {
		return s.provider.GetForecastByCoordinates(ctx, lat, lon)
	}
	historyQuery := fmt.Sprintf("%f,%f", lat, lon)
	return s.runQuery(ctx, fetch, historyQuery, trimmed, page, perPage)
}

// runQuery fetches forecast and history concurrently, builds the view and
// publishes it unless a newer query has started in the meantime. A failed
// history lookup degrades to a missing previous day rather than an error;
// a failed forecast fetch clears any previously published view.
func (s *DashboardService) runQuery(
	ctx context.Context,
	fetch func(context.Context) (*models.ForecastResponse, error),
	historyQuery, recordTerm string,
	page, perPage int,
) (*models.ViewState, error) {
	queryID := s.beginQuery()
	yesterday := s.now().AddDate(0, 0, -1).Format(historyDateLayout)

	var (
		wg           sync.WaitGroup
		forecastResp *models.ForecastResponse
		historyResp  *models.ForecastResponse
		forecastErr  error
		historyErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		forecastResp, forecastErr = fetch(ctx)
	}()
	go func() {
		defer wg.Done()
		historyResp, historyErr = s.provider.GetHistory(ctx, historyQuery, yesterday)
	}()
	wg.Wait()

	if forecastErr != nil {
		log.Printf("[ERROR] Forecast provider error: %v\n", forecastErr)
		s.discard(queryID)
		return nil, forecastErr
	}
	if historyErr != nil {
		log.Printf("[WARNING] History lookup failed, previous day unavailable: %v\n", historyErr)
		historyResp = nil
	}

	city := forecastResp.Location.Name
	state, table := s.buildViewState(city, forecastResp, historyResp, page, perPage)

	if !s.publish(queryID, state, table) {
		log.Printf("[DEBUG] Query for %s superseded by a newer one, result not retained\n", city)
		return state, nil
	}

	if recordTerm != "" && s.historyRepo != nil {
		if _, err := s.historyRepo.Record(recordTerm); err != nil {
			log.Printf("[WARNING] Failed to record search term %q: %v\n", recordTerm, err)
		}
	}

	return state, nil
}

func (s *DashboardService) buildViewState(
	city string,
	forecastResp, historyResp *models.ForecastResponse,
	page, perPage int,
) (*models.ViewState, *forecast.HourlyTable) {
	snapshot := forecast.BuildSnapshot(forecastResp, historyResp)
	table := forecast.BuildHourlyTable(forecastResp.Forecast.Forecastday)

	paginator := forecast.NewPaginator(table.Hours, s.resolvePerPage(perPage))
	paginator.Seek(page)

	description := ""
	if snapshot != nil && snapshot.CurrentDay != nil {
		description = snapshot.CurrentDay.Description
	}

	state := &models.ViewState{
		City:            city,
		Source:          "live",
		Snapshot:        snapshot,
		HourlyDays:      table.Days,
		HourlyWeather:   table.Cells,
		Pagination:      paginator.State(),
		BackgroundVideo: forecast.BackgroundVideo(description, s.now()),
	}
	return state, table
}

func (s *DashboardService) beginQuery() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latestQuery = uuid.New()
	return s.latestQuery
}

// discard drops the published view after a failed update, so stale data
// is never served for a query that errored. A failure belonging to a
// superseded query leaves the newer state alone.
func (s *DashboardService) discard(queryID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if queryID != s.latestQuery {
		return
	}
	s.state = nil
	s.table = nil
}

// publish installs the view built for queryID. It reports false when a
// newer query has started since, in which case the stale view is dropped.
func (s *DashboardService) publish(queryID uuid.UUID, state *models.ViewState, table *forecast.HourlyTable) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if queryID != s.latestQuery {
		return false
	}
	s.state = state
	s.table = table
	return true
}

// Autocomplete returns "Name, Country" suggestions for a partial query
func (s *DashboardService) Autocomplete(ctx context.Context, query string) ([]string, error) {
	trimmed, ok := validation.TrimAndValidate(query)
	if !ok {
		return nil, errors.NewValidationError("query cannot be empty")
	}

	locations, err := s.provider.SearchLocations(ctx, trimmed)
	if err != nil {
		log.Printf("[ERROR] Location search error: %v\n", err)
		return nil, err
	}

	suggestions := make([]string, 0, len(locations))
	for _, loc := range locations {
		label := loc.Name
		if loc.Country != "" {
			label += ", " + loc.Country
		}
		suggestions = append(suggestions, label)
	}
	return suggestions, nil
}

// View returns the retained view unchanged
func (s *DashboardService) View() (*models.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, errors.NewNotFoundError("no weather data loaded")
	}
	view := *s.state
	return &view, nil
}

// Paginate rebuilds the hour window of the retained view. Page numbers
// and sizes outside the valid range are clamped, matching the behavior
// of the arrow controls.
func (s *DashboardService) Paginate(page, perPage int) (*models.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, errors.NewNotFoundError("no weather data loaded")
	}

	view := *s.state
	if s.table == nil {
		// CSV-sourced views carry no hourly data to page over.
		return &view, nil
	}

	paginator := forecast.NewPaginator(s.table.Hours, s.resolvePerPage(perPage))
	paginator.Seek(page)
	view.Pagination = paginator.State()
	s.state.Pagination = view.Pagination
	return &view, nil
}

// ImportCSV replaces the current view with one parsed from CSV text.
// Hourly data is not part of the CSV format, so the hourly grid is
// cleared until the next live query.
func (s *DashboardService) ImportCSV(text string) (*models.ViewState, error) {
	log.Println("[DEBUG] DashboardService.ImportCSV called")

	queryID := s.beginQuery()

	snapshot, city, err := forecast.ParseSnapshotCSV(text, s.now())
	if err != nil {
		log.Printf("[ERROR] CSV import failed: %v\n", err)
		return nil, err
	}

	description := ""
	if snapshot.CurrentDay != nil {
		description = snapshot.CurrentDay.Description
	}

	state := &models.ViewState{
		City:     city,
		Source:   "csv",
		Snapshot: snapshot,
		Pagination: models.PageState{
			HoursPerPage: s.hoursPerPage,
		},
		BackgroundVideo: forecast.BackgroundVideo(description, s.now()),
	}

	s.publish(queryID, state, nil)
	return state, nil
}

// ExportCSV serializes the retained snapshot and returns it together
// with a download filename derived from the city
func (s *DashboardService) ExportCSV() (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil || s.state.Snapshot == nil {
		return "", "", errors.NewNotFoundError("no weather data to export")
	}

	content := forecast.MarshalSnapshotCSV(s.state.Snapshot, s.state.City)
	safeCity := strings.ReplaceAll(strings.ToLower(s.state.City), " ", "_")
	if safeCity == "" {
		safeCity = "export"
	}
	filename := fmt.Sprintf("weather_%s.csv", safeCity)
	return content, filename, nil
}

// SearchHistory returns the non-expired search entries, newest first
func (s *DashboardService) SearchHistory() ([]models.SearchEntry, error) {
	if s.historyRepo == nil {
		return nil, nil
	}
	entries, err := s.historyRepo.Recent()
	if err != nil {
		return nil, errors.NewDatabaseError("failed to load search history", err)
	}
	return entries, nil
}

// DeleteHistoryEntry removes a single search entry
func (s *DashboardService) DeleteHistoryEntry(id uint) error {
	if s.historyRepo == nil {
		return errors.NewNotFoundError("search history is not available")
	}
	if err := s.historyRepo.Delete(id); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewNotFoundError("search entry not found")
		}
		return errors.NewDatabaseError("failed to delete search entry", err)
	}
	return nil
}

// ClearHistory removes all search entries
func (s *DashboardService) ClearHistory() error {
	if s.historyRepo == nil {
		return nil
	}
	if err := s.historyRepo.Clear(); err != nil {
		return errors.NewDatabaseError("failed to clear search history", err)
	}
	return nil
}
