package forecast

import (
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "weatherdash.app/errors"
	"weatherdash.app/models"
)

// csvBOM is prepended on export so spreadsheet tools pick up UTF-8.
const csvBOM = "\uFEFF"

// csvHeader is the fixed 7-column export header.
var csvHeader = []string{"Date", "City", "Description", "Temp (C)", "Temp (F)", "Humidity (%)", "Wind Speed (km/h)"}

// requiredColumnsHint names the columns an import needs; it is surfaced
// in parse failures so the user knows what to fix.
const requiredColumnsHint = "required columns: date, temp_c, condition, humidity, wind_kph"

// futureDayWindow caps how many rows after the current day become future
// days on import.
const futureDayWindow = 10

// MarshalSnapshotCSV serializes a snapshot to CSV text: a UTF-8 BOM, the
// fixed header, then one row per non-nil day in previous, current, next,
// future order. Field values containing a comma are wrapped in double
// quotes; embedded quotes are not escaped, which is acceptable for the
// constrained value domain.
func MarshalSnapshotCSV(snapshot *models.WeatherSnapshot, city string) string {
	rows := [][]string{csvHeader}

	appendDay := func(day *models.DaySummary) {
		if day == nil {
			return
		}
		rows = append(rows, []string{
			day.Date,
			city,
			day.Description,
			strconv.Itoa(day.Temp),
			strconv.Itoa(day.TempF),
			strconv.Itoa(day.Humidity),
			strconv.FormatFloat(day.WindSpeed, 'f', -1, 64),
		})
	}

	if snapshot != nil {
		appendDay(snapshot.PreviousDay)
		appendDay(snapshot.CurrentDay)
		appendDay(snapshot.NextDay)
		for i := range snapshot.FutureDays {
			appendDay(&snapshot.FutureDays[i])
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			if strings.Contains(cell, ",") {
				cell = `"` + cell + `"`
			}
			cells = append(cells, cell)
		}
		lines = append(lines, strings.Join(cells, ","))
	}

	return csvBOM + strings.Join(lines, "\n")
}

// ParseSnapshotCSV parses CSV text back into a snapshot plus the city
// name found on the current row. Blank lines and lines starting with '#'
// (export-tool comment headers) are skipped and a leading BOM is
// stripped. Rows are sorted by date; the row matching today's date, or
// the first row when today is absent, becomes the current day, with its
// neighbours as previous/next and up to ten following rows as future
// days. This is a naive comma split, not a full CSV grammar: embedded
// commas inside quoted fields are not unescaped.
func ParseSnapshotCSV(text string, today time.Time) (*models.WeatherSnapshot, string, error) {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) < 2 {
		return nil, "", apperrors.NewParseError("invalid CSV format, " + requiredColumnsHint)
	}

	headerLine := strings.TrimPrefix(lines[0], csvBOM)
	headers := splitFields(strings.ToLower(headerLine))
	for i, header := range headers {
		headers[i] = canonicalHeader(header)
	}

	rows := make([]map[string]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitFields(line)
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(values) {
				row[header] = values[i]
			}
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return parseRowDate(rows[i]["date"]).Before(parseRowDate(rows[j]["date"]))
	})

	currentIndex := 0
	todayStr := today.Format(dateLayout)
	for i, row := range rows {
		if row["date"] == todayStr {
			currentIndex = i
			break
		}
	}

	snapshot := &models.WeatherSnapshot{
		CurrentDay: SummarizeCSVRow(rows[currentIndex]),
		FutureDays: []models.DaySummary{},
	}
	if currentIndex > 0 {
		snapshot.PreviousDay = SummarizeCSVRow(rows[currentIndex-1])
	}
	if currentIndex < len(rows)-1 {
		snapshot.NextDay = SummarizeCSVRow(rows[currentIndex+1])
	}

	end := currentIndex + 1 + futureDayWindow
	if end > len(rows) {
		end = len(rows)
	}
	for _, row := range rows[currentIndex+1 : end] {
		snapshot.FutureDays = append(snapshot.FutureDays, *SummarizeCSVRow(row))
	}

	city := rows[currentIndex]["city"]
	if city == "" {
		city = "CSV Data"
	}

	return snapshot, city, nil
}

// canonicalHeader maps this codec's own export header names back to the
// flat column names the summarizer understands, so an exported snapshot
// re-imports without losing its numeric columns. Unknown headers pass
// through untouched.
func canonicalHeader(header string) string {
	switch header {
	case "temp (c)":
		return "temp_c"
	case "temp (f)":
		return "temp_f"
	case "humidity (%)":
		return "humidity"
	case "wind speed (km/h)":
		return "wind_kph"
	default:
		return header
	}
}

// splitFields splits a CSV line on commas, trimming whitespace and one
// pair of surrounding quotes per field.
func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		field := strings.TrimSpace(part)
		field = strings.TrimPrefix(field, `"`)
		field = strings.TrimSuffix(field, `"`)
		fields = append(fields, field)
	}
	return fields
}

// parseRowDate parses a row date leniently. Unparseable dates sort as
// the zero time instead of failing the whole import; a row with a broken
// date still renders with its remaining fields.
func parseRowDate(date string) time.Time {
	for _, layout := range []string{dateLayout, "2006-01-02 15:04"} {
		if parsed, err := time.Parse(layout, date); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
