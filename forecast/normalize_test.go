package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/models"
)

func forecastResponseFixture(days int) *models.ForecastResponse {
	resp := &models.ForecastResponse{
		Location: models.Location{Name: "Lisbon", Country: "Portugal"},
		Current: &models.CurrentConditions{
			LastUpdated: "2026-08-30 13:00",
			TempC:       24.3,
			FeelslikeC:  25.1,
			FeelslikeF:  77.2,
			Humidity:    55,
			WindKph:     14.0,
			Condition:   models.Condition{Text: "Sunny", Icon: "//cdn/sun.png"},
		},
	}

	dates := []string{
		"2026-08-30", "2026-08-31", "2026-09-01", "2026-09-02", "2026-09-03",
		"2026-09-04", "2026-09-05", "2026-09-06", "2026-09-07", "2026-09-08",
		"2026-09-09", "2026-09-10",
	}
	for i := 0; i < days; i++ {
		resp.Forecast.Forecastday = append(resp.Forecast.Forecastday, models.ForecastDay{
			Date: dates[i],
			Day: models.DayAggregate{
				AvgTempC:    20 + float64(i),
				AvgHumidity: 60,
				MaxWindKph:  10,
				Condition:   models.Condition{Text: "Partly cloudy"},
			},
		})
	}
	return resp
}

func TestBuildSnapshot_NilWithoutForecastDays(t *testing.T) {
	assert.Nil(t, BuildSnapshot(nil, nil))
	assert.Nil(t, BuildSnapshot(&models.ForecastResponse{}, nil))
}

func TestBuildSnapshot_Decomposition(t *testing.T) {
	snapshot := BuildSnapshot(forecastResponseFixture(11), nil)

	require.NotNil(t, snapshot)
	require.NotNil(t, snapshot.CurrentDay)
	assert.Equal(t, "2026-08-30 13:00", snapshot.CurrentDay.Date)
	assert.Equal(t, 24, snapshot.CurrentDay.Temp)

	require.NotNil(t, snapshot.NextDay)
	assert.Equal(t, "2026-08-31", snapshot.NextDay.Date)

	// Today is carried by CurrentDay, so future days start at index 1.
	require.Len(t, snapshot.FutureDays, 10)
	assert.Equal(t, "2026-08-31", snapshot.FutureDays[0].Date)
	assert.Equal(t, "2026-09-09", snapshot.FutureDays[9].Date)

	assert.Nil(t, snapshot.PreviousDay)
}

func TestBuildSnapshot_MockDaySynthesis(t *testing.T) {
	snapshot := BuildSnapshot(forecastResponseFixture(3), nil)

	require.NotNil(t, snapshot)
	require.Len(t, snapshot.FutureDays, 10)

	// The two real future days keep their own values.
	assert.Equal(t, "2026-08-31", snapshot.FutureDays[0].Date)
	assert.Equal(t, "2026-09-01", snapshot.FutureDays[1].Date)

	// The synthesized tail continues with consecutive dates and carries
	// the last real day's weather.
	lastReal := snapshot.FutureDays[1]
	wantDates := []string{
		"2026-09-02", "2026-09-03", "2026-09-04", "2026-09-05",
		"2026-09-06", "2026-09-07", "2026-09-08", "2026-09-09",
	}
	for i, mock := range snapshot.FutureDays[2:] {
		assert.Equal(t, wantDates[i], mock.Date)
		assert.Equal(t, lastReal.Temp, mock.Temp)
		assert.Equal(t, lastReal.TempF, mock.TempF)
		assert.Equal(t, lastReal.Humidity, mock.Humidity)
		assert.Equal(t, lastReal.WindSpeed, mock.WindSpeed)
		assert.Equal(t, lastReal.Description, mock.Description)
	}
}

func TestBuildSnapshot_MonthRollover(t *testing.T) {
	days := []models.ForecastDay{{Date: "2026-08-31"}}
	extended := ExtendForecastDays(days, 3)

	require.Len(t, extended, 3)
	assert.Equal(t, "2026-09-01", extended[1].Date)
	assert.Equal(t, "2026-09-02", extended[2].Date)
}

func TestBuildSnapshot_HistoryPopulatesPreviousDay(t *testing.T) {
	history := &models.ForecastResponse{
		Forecast: models.Forecast{Forecastday: []models.ForecastDay{{
			Date: "2026-08-29",
			Day: models.DayAggregate{
				AvgTempC:  19.2,
				Condition: models.Condition{Text: "Overcast"},
			},
		}}},
	}

	snapshot := BuildSnapshot(forecastResponseFixture(11), history)

	require.NotNil(t, snapshot)
	require.NotNil(t, snapshot.PreviousDay)
	assert.Equal(t, "2026-08-29", snapshot.PreviousDay.Date)
	assert.Equal(t, 19, snapshot.PreviousDay.Temp)
}

// A failed or absent history fetch must never change the other three
// slots.
func TestBuildSnapshot_HistoryFailureTolerated(t *testing.T) {
	withHistory := BuildSnapshot(forecastResponseFixture(5), nil)
	withEmptyHistory := BuildSnapshot(forecastResponseFixture(5), &models.ForecastResponse{})

	require.NotNil(t, withHistory)
	require.NotNil(t, withEmptyHistory)
	assert.Nil(t, withHistory.PreviousDay)
	assert.Nil(t, withEmptyHistory.PreviousDay)
	assert.Equal(t, withHistory.CurrentDay, withEmptyHistory.CurrentDay)
	assert.Equal(t, withHistory.NextDay, withEmptyHistory.NextDay)
	assert.Equal(t, withHistory.FutureDays, withEmptyHistory.FutureDays)
}

func TestExtendForecastDays_NoOpWhenLongEnough(t *testing.T) {
	resp := forecastResponseFixture(12)
	extended := ExtendForecastDays(resp.Forecast.Forecastday, 11)
	assert.Len(t, extended, 12)
}
