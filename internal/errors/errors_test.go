package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := NewError(ErrorTypeValidation, "BAD_FIELD", "field is bad")
	require.Equal(t, "field is bad", err.Error())

	detailed := err.FormatDetailed()
	require.Contains(t, detailed, "VALIDATION")
	require.Contains(t, detailed, "BAD_FIELD")
	require.Contains(t, detailed, "field is bad")
}

func TestWrapErrorUnwraps(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := WrapError(cause, ErrorTypeNetwork, "FETCH_FAILED", "fetch failed")

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "underlying failure")
}

func TestAsIpaHubError(t *testing.T) {
	inner := NewEmptyResultError("nothing there")
	wrapped := fmt.Errorf("while importing: %w", inner)

	var target *IpaHubError
	require.True(t, AsIpaHubError(wrapped, &target))
	require.Equal(t, ErrorTypeEmptyResult, target.Type)
	require.Equal(t, "NO_VALID_PACKAGES", target.Code)

	target = nil
	require.False(t, AsIpaHubError(fmt.Errorf("plain error"), &target))
}

func TestFetchErrorIsRetryable(t *testing.T) {
	err := NewFetchError("could not reach host", fmt.Errorf("dial timeout"))
	require.True(t, err.Retryable)
	require.Equal(t, ErrorTypeNetwork, err.Type)
	require.NotEmpty(t, err.Suggestions)
}

func TestMalformedInputCarriesContext(t *testing.T) {
	err := NewMalformedInputError("parse failed", "{bad json")
	require.Equal(t, "MALFORMED_INPUT", err.Code)
	require.Equal(t, "{bad json", err.Context["input"])

	detailed := err.FormatDetailed()
	require.Contains(t, detailed, "parse failed")
	require.Contains(t, detailed, "{bad json")
}

func TestWithContextAndSuggestion(t *testing.T) {
	err := NewError(ErrorTypeConfiguration, "MISSING_KEY", "key absent").
		WithContext("key", "repository.name").
		WithSuggestion("set repository.name in ipahub.yaml")

	require.Equal(t, "repository.name", err.Context["key"])
	require.Contains(t, err.Suggestions, "set repository.name in ipahub.yaml")
}
