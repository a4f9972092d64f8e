package forecast

import (
	"sort"
	"strings"
	"time"

	"weatherdash.app/models"
)

// HourlyTable is the day-by-hour lookup grid. Days keeps insertion order
// of the day labels; Hours is the union of hour labels across all days,
// deduplicated and sorted ascending. Hour labels are zero-padded 24-hour
// "HH:MM" strings, so lexicographic order is chronological order.
type HourlyTable struct {
	Days  []string
	Hours []string
	Cells map[string]map[string]models.HourlyCell
}

// BuildHourlyTable transforms per-day hourly arrays into an HourlyTable.
// Days without hourly data contribute nothing; an empty or nil input
// yields an empty table, which the display layer treats as "no hourly
// data".
func BuildHourlyTable(days []models.ForecastDay) *HourlyTable {
	table := &HourlyTable{
		Cells: make(map[string]map[string]models.HourlyCell),
	}

	seen := make(map[string]bool)

	for _, day := range days {
		label := DayLabel(day.Date)
		table.Days = append(table.Days, label)
		table.Cells[label] = make(map[string]models.HourlyCell)

		for _, hour := range day.Hour {
			hourLabel := hourLabel(hour.Time)
			if hourLabel == "" {
				continue
			}
			if !seen[hourLabel] {
				seen[hourLabel] = true
				table.Hours = append(table.Hours, hourLabel)
			}

			temp := RoundTemp(hour.TempC)
			table.Cells[label][hourLabel] = models.HourlyCell{
				Temp:        temp,
				TempF:       CelsiusToFahrenheit(temp),
				Description: hour.Condition.Text,
				Icon:        AbsolutizeIcon(hour.Condition.Icon),
			}
		}
	}

	sort.Strings(table.Hours)
	return table
}

// Lookup returns the cell for a day/hour pair, false when that slot has
// no data.
func (t *HourlyTable) Lookup(day, hour string) (models.HourlyCell, bool) {
	cells, ok := t.Cells[day]
	if !ok {
		return models.HourlyCell{}, false
	}
	cell, ok := cells[hour]
	return cell, ok
}

// DayLabel derives the display label for a calendar date, long weekday
// plus abbreviated month and day number, e.g. "Monday, Jan 5". Dates that
// fail to parse are returned verbatim.
func DayLabel(date string) string {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format("Monday, Jan 2")
}

// hourLabel extracts the "HH:MM" part of a "YYYY-MM-DD HH:MM" timestamp.
func hourLabel(timestamp string) string {
	_, hour, found := strings.Cut(timestamp, " ")
	if !found {
		return ""
	}
	return hour
}
