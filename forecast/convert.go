// Package forecast implements the weather-data normalization pipeline:
// reducing raw WeatherAPI.com or CSV day records into canonical day
// summaries, assembling them into snapshots, building the day-by-hour
// grid, windowing hour labels into pages, and round-tripping snapshots
// through CSV.
package forecast

import "math"

// RoundTemp rounds a temperature to the nearest integer, halves away
// from zero.
func RoundTemp(value float64) int {
	return int(math.Round(value))
}

// CelsiusToFahrenheit converts an already-rounded Celsius temperature to
// rounded Fahrenheit. The Celsius value is rounded before conversion,
// never after; every summarizer path uses this same rule.
func CelsiusToFahrenheit(tempC int) int {
	return RoundTemp(float64(tempC)*9.0/5.0 + 32)
}
