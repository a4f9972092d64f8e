package validation

import (
	"regexp"
	"strings"
)

var cityRegex = regexp.MustCompile(`^[\p{L}0-9 .,'\-]+$`)

// IsValidCity validates a city search term
func IsValidCity(city string) bool {
	trimmed := strings.TrimSpace(city)
	return trimmed != "" && cityRegex.MatchString(trimmed)
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidCoordinates validates a latitude/longitude pair
func IsValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// IsValidPageSize validates an hours-per-page selection
func IsValidPageSize(size int) bool {
	return size == 5 || size == 10 || size == 15
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
