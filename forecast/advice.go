package forecast

import "strings"

// Advice maps a condition description and rounded Celsius temperature to
// a short textual tip. Rules are checked in fixed priority order and the
// first match wins: a thunderstorm gets the stay-indoors tip regardless
// of temperature.
func Advice(description string, tempC int) string {
	desc := strings.ToLower(description)

	switch {
	case strings.Contains(desc, "rain") || strings.Contains(desc, "drizzle"):
		return "Carry umbrella ☂️"
	case strings.Contains(desc, "snow") || strings.Contains(desc, "ice") || strings.Contains(desc, "blizzard"):
		return "Wear warm clothes 🧥"
	case strings.Contains(desc, "thunder") || strings.Contains(desc, "storm"):
		return "Stay indoors ⚡"
	case tempC >= 30:
		return "Stay hydrated today 🥤"
	case tempC <= 10:
		return "Perfect for outdoor coffee☕"
	case strings.Contains(desc, "clear") || strings.Contains(desc, "sunny"):
		return "Avoid direct sunlight ☀️"
	default:
		return "Have a nice day! 😊"
	}
}
