package elimu

import (
	"errors"

	"github.com/elimuhub/elimu-go/internal/types"
)

// Error is an API error carrying the backend's message and detail fields
type Error = types.Error

// ValidationError is a single pre-flight field validation failure
type ValidationError = types.ValidationError

// ValidationErrors is the set of pre-flight validation failures for a call
type ValidationErrors = types.ValidationErrors

// Errors shared with the internal layers
var (
	// ErrNotAuthenticated is returned when authentication is required
	ErrNotAuthenticated = types.ErrNotAuthenticated

	// ErrLoginFailed is returned when login fails
	ErrLoginFailed = types.ErrLoginFailed

	// ErrSessionExpired is returned when the session has expired
	ErrSessionExpired = types.ErrSessionExpired

	// ErrInvalidSession is returned when a session is missing its user or token
	ErrInvalidSession = types.ErrInvalidSession

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = types.ErrRateLimited

	// ErrTimeout is returned on timeout
	ErrTimeout = types.ErrTimeout

	// ErrNotFound is returned when a resource is not found
	ErrNotFound = types.ErrNotFound

	// ErrServerError is returned for server errors
	ErrServerError = types.ErrServerError
)

var (
	// ErrInvalidID is returned when an operation needs a non-empty id
	ErrInvalidID = errors.New("invalid id")

	// ErrMutationInFlight is returned when a Mutation already has a call running
	ErrMutationInFlight = errors.New("mutation already in flight")

	// ErrNothingPending is returned when Confirm is called with no pending delete
	ErrNothingPending = errors.New("no pending delete to confirm")
)

// IsAuthError checks if the error is authentication related
func IsAuthError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrLoginFailed) ||
		errors.Is(err, ErrSessionExpired)
}

// IsRetryable checks if the error is worth retrying
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServerError) {
		return true
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == 429
	}

	return false
}

// IsValidationError checks if the error was caught before any request was made
func IsValidationError(err error) bool {
	var verrs *ValidationErrors
	return errors.As(err, &verrs)
}
