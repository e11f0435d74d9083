package types

import (
	"errors"
	"time"
)

const (
	// DefaultBaseURL is the default Elimu API base URL
	DefaultBaseURL = "https://api.elimu.app"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string
	UserAgent = "elimu-go/1.0.0"

	// MaxSessionAge is how long a persisted session stays valid. Sessions
	// older than this are treated as anonymous on rehydration.
	MaxSessionAge = 24 * time.Hour
)

// Common errors
var (
	// ErrNotAuthenticated is returned when authentication is required
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrLoginFailed is returned when login fails
	ErrLoginFailed = errors.New("login failed")

	// ErrSessionExpired is returned when the session has expired
	ErrSessionExpired = errors.New("session expired")

	// ErrInvalidSession is returned when a session is missing its user or token
	ErrInvalidSession = errors.New("invalid session: user and token are required")

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout is returned on timeout
	ErrTimeout = errors.New("request timeout")

	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrServerError is returned for server errors
	ErrServerError = errors.New("server error")
)
