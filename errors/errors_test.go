package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := NewValidationError("city cannot be empty")
	assert.Equal(t, "VALIDATION_ERROR: city cannot be empty", err.Error())
}

func TestAppError_ErrorWithCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewExternalAPIError("failed to get weather data", cause)
	assert.Equal(t, "EXTERNAL_API_ERROR: failed to get weather data (caused by: connection refused)", err.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewDatabaseError("failed to save entry", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))

	bare := NewParseError("invalid CSV format")
	assert.Nil(t, errors.Unwrap(bare))
}

func TestAppError_ErrorsAs(t *testing.T) {
	var appErr *AppError
	err := NewNotFoundError("location not found")

	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, NotFoundError, appErr.Type)
	assert.Equal(t, "location not found", appErr.Message)
}

func TestConstructorTypes(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		err      *AppError
		wantType ErrorType
	}{
		{NewValidationError("m"), ValidationError},
		{NewNotFoundError("m"), NotFoundError},
		{NewParseError("m"), ParseError},
		{NewDatabaseError("m", cause), DatabaseError},
		{NewExternalAPIError("m", cause), ExternalAPIError},
		{NewGeocodingError("m", cause), GeocodingError},
		{NewConfigurationError("m", cause), ConfigurationError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantType, tt.err.Type)
	}
}
