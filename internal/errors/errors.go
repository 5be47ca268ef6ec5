package errors

import (
	goerrors "errors"
	"fmt"
	"strings"
	"time"
)

// ErrorType represents the type of error
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNetwork
	ErrorTypeParsing
	ErrorTypeEmptyResult
	ErrorTypeConfiguration
	ErrorTypeFileSystem
	ErrorTypeNotFound
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeValidation:
		return "VALIDATION"
	case ErrorTypeNetwork:
		return "NETWORK"
	case ErrorTypeParsing:
		return "PARSING"
	case ErrorTypeEmptyResult:
		return "EMPTY_RESULT"
	case ErrorTypeConfiguration:
		return "CONFIGURATION"
	case ErrorTypeFileSystem:
		return "FILESYSTEM"
	case ErrorTypeNotFound:
		return "NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// IpaHubError represents an enhanced error with context and suggestions
type IpaHubError struct {
	Type        ErrorType         `json:"type"`
	Code        string            `json:"code"`
	Message     string            `json:"message"`
	Cause       error             `json:"cause,omitempty"`
	Context     map[string]string `json:"context,omitempty"`
	Suggestions []string          `json:"suggestions,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
	Retryable   bool              `json:"retryable"`
}

// Error implements the error interface
func (e *IpaHubError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *IpaHubError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target
func (e *IpaHubError) Is(target error) bool {
	if t, ok := target.(*IpaHubError); ok {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// WithContext adds context to the error
func (e *IpaHubError) WithContext(key, value string) *IpaHubError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithSuggestion adds a suggestion to the error
func (e *IpaHubError) WithSuggestion(suggestion string) *IpaHubError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// SetRetryable marks the error as retryable or not
func (e *IpaHubError) SetRetryable(retryable bool) *IpaHubError {
	e.Retryable = retryable
	return e
}

// FormatDetailed returns a detailed error message with context and suggestions
func (e *IpaHubError) FormatDetailed() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("%s Error [%s]: %s\n", e.Type.String(), e.Code, e.Message))

	if len(e.Context) > 0 {
		builder.WriteString("\nContext:\n")
		for key, value := range e.Context {
			builder.WriteString(fmt.Sprintf("   %s: %s\n", key, value))
		}
	}

	if e.Cause != nil {
		builder.WriteString(fmt.Sprintf("\nUnderlying cause: %v\n", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		builder.WriteString("\nSuggestions:\n")
		for _, suggestion := range e.Suggestions {
			builder.WriteString(fmt.Sprintf("   - %s\n", suggestion))
		}
	}

	if e.Retryable {
		builder.WriteString("\nThis operation can be retried\n")
	}

	return builder.String()
}

// NewError creates a new IpaHubError
func NewError(errorType ErrorType, code, message string) *IpaHubError {
	return &IpaHubError{
		Type:      errorType,
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
		Context:   make(map[string]string),
	}
}

// WrapError wraps an existing error with IpaHubError
func WrapError(err error, errorType ErrorType, code, message string) *IpaHubError {
	wrapped := NewError(errorType, code, message)
	wrapped.Cause = err
	return wrapped
}

// AsIpaHubError reports whether err or anything it wraps is an IpaHubError,
// storing it in target when found.
func AsIpaHubError(err error, target **IpaHubError) bool {
	return goerrors.As(err, target)
}

// Common error constructors

// NewMalformedInputError reports input that could not be parsed into a
// repository document. The snippet shows the offending text.
func NewMalformedInputError(message, snippet string) *IpaHubError {
	err := NewError(ErrorTypeParsing, "MALFORMED_INPUT", message).
		WithSuggestion("Verify the document is valid JSON with an object at the root")
	if snippet != "" {
		err = err.WithContext("input", snippet)
	}
	return err
}

// NewFetchError reports a failed network fetch during ingestion.
func NewFetchError(message string, cause error) *IpaHubError {
	return WrapError(cause, ErrorTypeNetwork, "FETCH_FAILED", message).
		SetRetryable(true).
		WithSuggestion("Check your internet connection").
		WithSuggestion("Verify the repository URL is correct and reachable")
}

// NewEmptyResultError reports an index that parsed but yielded nothing usable.
func NewEmptyResultError(message string) *IpaHubError {
	return NewError(ErrorTypeEmptyResult, "NO_VALID_PACKAGES", message).
		WithSuggestion("Confirm the URL points at a package repository, not a plain website")
}

// NewDecompressionError reports a compressed index that could not be decoded.
func NewDecompressionError(cause error) *IpaHubError {
	return WrapError(cause, ErrorTypeParsing, "DECOMPRESSION_FAILED",
		"failed to decompress the package index").
		WithSuggestion("The repository may serve a corrupt Packages.gz; try again later")
}

// NewValidationError creates a validation error
func NewValidationError(code, message string) *IpaHubError {
	return NewError(ErrorTypeValidation, code, message).
		WithSuggestion("Check the input parameters and try again")
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(code, message string) *IpaHubError {
	return NewError(ErrorTypeConfiguration, code, message).
		WithSuggestion("Check the configuration file syntax").
		WithSuggestion("Run 'ipahub init' to regenerate configuration")
}
