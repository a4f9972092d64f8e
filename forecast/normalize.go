package forecast

import (
	"time"

	"weatherdash.app/models"
)

// forecastWindow is how many forecast days downstream consumers always
// see: today plus ten future days.
const forecastWindow = 11

const dateLayout = "2006-01-02"

// BuildSnapshot assembles a weather snapshot from a forecast payload and
// an optional history payload. It returns nil when the forecast payload
// carries no forecast-day list. A nil history payload only leaves
// PreviousDay unset; the other three slots are unaffected.
func BuildSnapshot(forecast *models.ForecastResponse, history *models.ForecastResponse) *models.WeatherSnapshot {
	if forecast == nil || len(forecast.Forecast.Forecastday) == 0 {
		return nil
	}

	days := ExtendForecastDays(forecast.Forecast.Forecastday, forecastWindow)

	snapshot := &models.WeatherSnapshot{
		CurrentDay: SummarizeCurrent(forecast.Current),
		FutureDays: make([]models.DaySummary, 0, forecastWindow-1),
	}

	if len(days) > 1 {
		snapshot.NextDay = SummarizeForecastDay(days[1])
	}

	// Index 0 is today, already represented by CurrentDay.
	for _, day := range days[1:forecastWindow] {
		snapshot.FutureDays = append(snapshot.FutureDays, *SummarizeForecastDay(day))
	}

	if history != nil && len(history.Forecast.Forecastday) > 0 {
		snapshot.PreviousDay = SummarizeForecastDay(history.Forecast.Forecastday[0])
	}

	return snapshot
}

// ExtendForecastDays pads a short forecast-day list out to want entries
// by duplicating the last known day with its date advanced one calendar
// day per copy. Free-tier upstream plans return as few as 3 days; this
// degraded-data policy keeps the dashboard's window stable rather than
// treating a short list as an error.
func ExtendForecastDays(days []models.ForecastDay, want int) []models.ForecastDay {
	extended := make([]models.ForecastDay, len(days))
	copy(extended, days)

	for len(extended) < want {
		last := extended[len(extended)-1]
		mock := last
		mock.Date = nextDate(last.Date)
		extended = append(extended, mock)
	}

	return extended
}

func nextDate(date string) string {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return parsed.AddDate(0, 0, 1).Format(dateLayout)
}
