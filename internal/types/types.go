package types

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Session represents an authenticated session. It carries the three pieces of
// state the platform persists between runs: the user object as returned by the
// backend, the API token, and the time the session was saved.
type Session struct {
	User    json.RawMessage `json:"user,omitempty"`
	Token   string          `json:"token"`
	SavedAt time.Time       `json:"savedAt"`
}

// Age returns how long ago the session was persisted.
func (s *Session) Age() time.Duration {
	if s == nil || s.SavedAt.IsZero() {
		return 0
	}
	return time.Since(s.SavedAt)
}

// Expired reports whether the session is older than MaxSessionAge.
func (s *Session) Expired() bool {
	if s == nil || s.SavedAt.IsZero() {
		return false
	}
	return s.Age() > MaxSessionAge
}

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// RetryConfig configures retry behavior
type RetryConfig struct {
	MaxRetries int           `json:"maxRetries"`
	RetryWait  time.Duration `json:"retryWait"`
	MaxWait    time.Duration `json:"maxWait"`
}

// Hooks provides lifecycle hooks for requests
type Hooks struct {
	OnRequest  func(ctx context.Context, req *http.Request)
	OnResponse func(ctx context.Context, resp *http.Response, duration time.Duration)
	OnError    func(ctx context.Context, err error)
}
