package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTemp_HalvesAwayFromZero(t *testing.T) {
	assert.Equal(t, 3, RoundTemp(2.5))
	assert.Equal(t, -3, RoundTemp(-2.5))
	assert.Equal(t, 2, RoundTemp(2.4))
	assert.Equal(t, -2, RoundTemp(-2.4))
	assert.Equal(t, 0, RoundTemp(0))
}

func TestCelsiusToFahrenheit(t *testing.T) {
	assert.Equal(t, 32, CelsiusToFahrenheit(0))
	assert.Equal(t, 212, CelsiusToFahrenheit(100))
	assert.Equal(t, 50, CelsiusToFahrenheit(10))
	assert.Equal(t, 14, CelsiusToFahrenheit(-10))
	// Odd Celsius values land on .6 and round up
	assert.Equal(t, 70, CelsiusToFahrenheit(21))
}

// Fahrenheit is always derived from the rounded Celsius value, never
// from the raw source float.
func TestConversion_RoundThenConvert(t *testing.T) {
	for _, raw := range []float64{21.4, 21.5, -0.4, -0.5, 17.49, 29.51} {
		rounded := RoundTemp(raw)
		assert.Equal(t, RoundTemp(float64(rounded)*9.0/5.0+32), CelsiusToFahrenheit(rounded), "raw=%v", raw)
	}
}
