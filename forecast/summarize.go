package forecast

import (
	"strconv"
	"strings"

	"weatherdash.app/models"
)

// The summarizer accepts three explicit input variants - an API forecast
// day, the API "current" object, and a flattened CSV row - and reduces
// each to a models.DaySummary. Missing optional fields never fail:
// absent or invalid numerics default to 0, strings to "".

// SummarizeForecastDay reduces one forecast-day record to a day summary.
func SummarizeForecastDay(day models.ForecastDay) *models.DaySummary {
	temp := RoundTemp(day.Day.AvgTempC)

	return &models.DaySummary{
		Date:        day.Date,
		Temp:        temp,
		TempF:       CelsiusToFahrenheit(temp),
		Humidity:    RoundTemp(day.Day.AvgHumidity),
		WindSpeed:   day.Day.MaxWindKph,
		Description: day.Day.Condition.Text,
		Icon:        AbsolutizeIcon(day.Day.Condition.Icon),
		Advice:      Advice(day.Day.Condition.Text, temp),
	}
}

// SummarizeCurrent reduces the API "current" object to a day summary.
// Returns nil when the payload carried no current block.
func SummarizeCurrent(current *models.CurrentConditions) *models.DaySummary {
	if current == nil {
		return nil
	}

	temp := RoundTemp(current.TempC)
	feelsLike := RoundTemp(current.FeelslikeC)
	feelsLikeF := RoundTemp(current.FeelslikeF)

	return &models.DaySummary{
		Date:        current.LastUpdated,
		Temp:        temp,
		TempF:       CelsiusToFahrenheit(temp),
		FeelsLike:   &feelsLike,
		FeelsLikeF:  &feelsLikeF,
		Humidity:    current.Humidity,
		WindSpeed:   current.WindKph,
		Description: current.Condition.Text,
		Icon:        AbsolutizeIcon(current.Condition.Icon),
		Advice:      Advice(current.Condition.Text, temp),
	}
}

// SummarizeCSVRow reduces a parsed CSV row, keyed by lowercased header
// name, to a day summary. Column synonyms are tolerated: temp_c/temp,
// wind_kph/wind_speed, condition/description, feelslike_c/feels_like.
// FeelsLike stays unset when the source supplied no such column.
func SummarizeCSVRow(row map[string]string) *models.DaySummary {
	description := firstValue(row, "condition", "description")
	temp := RoundTemp(parseFloatOrZero(firstValue(row, "temp_c", "temp")))

	summary := &models.DaySummary{
		Date:        row["date"],
		Temp:        temp,
		TempF:       CelsiusToFahrenheit(temp),
		Humidity:    parseIntOrZero(row["humidity"]),
		WindSpeed:   parseFloatOrZero(firstValue(row, "wind_kph", "wind_speed")),
		Description: description,
		Icon:        AbsolutizeIcon(row["icon"]),
		Advice:      Advice(description, temp),
	}

	if raw := firstValue(row, "feelslike_c", "feels_like"); raw != "" {
		feelsLike := RoundTemp(parseFloatOrZero(raw))
		feelsLikeF := CelsiusToFahrenheit(feelsLike)
		summary.FeelsLike = &feelsLike
		summary.FeelsLikeF = &feelsLikeF
	}

	return summary
}

// AbsolutizeIcon turns a protocol-relative icon path into an absolute
// HTTPS URL. Full URLs and empty values are returned unchanged.
func AbsolutizeIcon(icon string) string {
	if icon == "" || strings.HasPrefix(icon, "http") {
		return icon
	}
	return "https:" + icon
}

func firstValue(row map[string]string, keys ...string) string {
	for _, key := range keys {
		if value := row[key]; value != "" {
			return value
		}
	}
	return ""
}

func parseFloatOrZero(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}

func parseIntOrZero(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return RoundTemp(parseFloatOrZero(raw))
	}
	return value
}
