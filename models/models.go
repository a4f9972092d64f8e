// Package models defines data structures used throughout the application
package models

import (
	"time"
)

// DaySummary is the canonical normalized representation of one calendar
// day's weather. A summary is fully self-contained; no field depends on
// sibling days.
type DaySummary struct {
	Date        string  `json:"date"`
	Temp        int     `json:"temp"`
	TempF       int     `json:"tempF"`
	FeelsLike   *int    `json:"feelsLike,omitempty"`
	FeelsLikeF  *int    `json:"feelsLikeF,omitempty"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Advice      string  `json:"advice"`
}

// WeatherSnapshot is the four-slot collection of day summaries shown in
// the dashboard. PreviousDay is nil when the history lookup failed or was
// unavailable.
type WeatherSnapshot struct {
	PreviousDay *DaySummary  `json:"previousDay"`
	CurrentDay  *DaySummary  `json:"currentDay"`
	NextDay     *DaySummary  `json:"nextDay"`
	FutureDays  []DaySummary `json:"futureDays"`
}

// HourlyCell holds the values displayed in one cell of the day-by-hour
// grid.
type HourlyCell struct {
	Temp        int    `json:"temp"`
	TempF       int    `json:"tempF"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// PageState describes one window over the sorted hour-label sequence.
type PageState struct {
	HoursPerPage   int      `json:"hoursPerPage"`
	CurrentPage    int      `json:"currentPage"`
	TotalPages     int      `json:"totalPages"`
	PaginatedHours []string `json:"paginatedHours"`
}

// ViewState is the full rendered state for one query or CSV import. It is
// rebuilt wholesale on every successful update; nothing is mutated
// incrementally.
type ViewState struct {
	City            string                           `json:"city"`
	Source          string                           `json:"source"` // "live" or "csv"
	Snapshot        *WeatherSnapshot                 `json:"snapshot"`
	HourlyDays      []string                         `json:"hourlyDays"`
	HourlyWeather   map[string]map[string]HourlyCell `json:"hourlyWeather"`
	Pagination      PageState                        `json:"pagination"`
	BackgroundVideo string                           `json:"backgroundVideo"`
}

// SearchEntry records one successful city query for the search-history
// panel. Entries older than 24 hours are treated as expired.
type SearchEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Term      string    `json:"term" gorm:"index;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"index;not null"`
}

// Condition is the WeatherAPI.com condition object.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// CurrentConditions is the WeatherAPI.com "current" object.
type CurrentConditions struct {
	LastUpdated string    `json:"last_updated"`
	TempC       float64   `json:"temp_c"`
	FeelslikeC  float64   `json:"feelslike_c"`
	FeelslikeF  float64   `json:"feelslike_f"`
	Humidity    int       `json:"humidity"`
	WindKph     float64   `json:"wind_kph"`
	Condition   Condition `json:"condition"`
}

// DayAggregate holds the per-day averages of a forecast day.
type DayAggregate struct {
	AvgTempC    float64   `json:"avgtemp_c"`
	AvgHumidity float64   `json:"avghumidity"`
	MaxWindKph  float64   `json:"maxwind_kph"`
	Condition   Condition `json:"condition"`
}

// HourEntry is one hourly record inside a forecast day. Time is formatted
// "YYYY-MM-DD HH:MM".
type HourEntry struct {
	Time      string    `json:"time"`
	TempC     float64   `json:"temp_c"`
	Condition Condition `json:"condition"`
}

// ForecastDay is one day of the WeatherAPI.com forecast list.
type ForecastDay struct {
	Date string       `json:"date"`
	Day  DayAggregate `json:"day"`
	Hour []HourEntry  `json:"hour"`
}

// Location is the WeatherAPI.com location object.
type Location struct {
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// ForecastResponse is the payload shape of both forecast.json and
// history.json. Current is nil for history payloads.
type ForecastResponse struct {
	Location Location           `json:"location"`
	Current  *CurrentConditions `json:"current,omitempty"`
	Forecast Forecast           `json:"forecast"`
}

// Forecast wraps the ordered forecast-day list, days ascending from today.
type Forecast struct {
	Forecastday []ForecastDay `json:"forecastday"`
}

// SearchLocation is one result of the autocomplete endpoint.
type SearchLocation struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}
