package generate

import (
	"errors"
	"fmt"
)

// Common errors returned by generation backends.
var (
	// ErrNoToken indicates no API credential is configured.
	ErrNoToken = errors.New("no generation API token configured")

	// ErrAuth indicates an authentication error (missing/invalid token).
	ErrAuth = errors.New("generation API authentication error")

	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("generation API rate limit exceeded")

	// ErrUnavailable indicates the backend could not be reached.
	ErrUnavailable = errors.New("generation backend unavailable")
)

// APIError represents an error response from a generation API.
type APIError struct {
	StatusCode int
	Code       string // e.g. "api_error", "invalid_response"
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("generation API error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
}

// IsAuthError returns true if the error indicates an authentication problem.
func IsAuthError(err error) bool {
	if errors.Is(err, ErrAuth) || errors.Is(err, ErrNoToken) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}
