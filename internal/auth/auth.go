package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/elimuhub/elimu-go/internal/transport"
	"github.com/elimuhub/elimu-go/internal/types"
	"github.com/pkg/errors"
)

const (
	loginEndpoint = "/auth/login"
	meEndpoint    = "/auth/me"
)

// Service handles authentication and session lifecycle
type Service struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
	session    *types.Session
	logger     types.Logger

	// Strict makes a failed /auth/me check clear the session instead of
	// falling back to the locally stored user.
	Strict bool
}

// NewService creates a new auth service
func NewService(baseURL string, httpClient *http.Client, logger types.Logger) *Service {
	headers := map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
		"User-Agent":   types.UserAgent,
	}

	return &Service{
		baseURL:    baseURL,
		httpClient: httpClient,
		headers:    headers,
		logger:     logger,
	}
}

// Login authenticates against the backend and establishes a session
func (s *Service) Login(ctx context.Context, email, password string) error {
	reqBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to marshal login request")
	}

	url := transport.ResolveURL(s.baseURL, loginEndpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create login request")
	}

	for k, v := range s.headers {
		req.Header.Set(k, v)
	}

	if s.logger != nil {
		s.logger.Debug("Login request", "email", email)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "login request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read login response")
	}

	if s.logger != nil {
		s.logger.Debug("Login response", "status", resp.StatusCode)
	}

	var loginResp loginResponse
	if err := json.Unmarshal(respBody, &loginResp); err != nil {
		return errors.Wrap(err, "failed to parse login response")
	}

	if loginResp.ErrorCode != "" {
		if loginResp.ErrorCode == "INVALID_CREDENTIALS" {
			return types.ErrLoginFailed
		}
		return &types.Error{
			Code:       loginResp.ErrorCode,
			Message:    loginResp.Message,
			StatusCode: resp.StatusCode,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			return types.ErrLoginFailed
		}
		return &types.Error{
			Code:       "LOGIN_FAILED",
			Message:    fmt.Sprintf("login failed with status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	token, user := loginResp.unpack()
	if token == "" {
		return errors.New("no token in login response")
	}

	s.session = &types.Session{
		User:    user,
		Token:   token,
		SavedAt: time.Now(),
	}

	if s.logger != nil {
		s.logger.Info("Login successful", "email", email)
	}

	return nil
}

// SetSession establishes a session from an already-known user and token.
// Both are required; a missing user or an empty token leaves the current
// state untouched.
func (s *Service) SetSession(user json.RawMessage, token string) error {
	token = strings.TrimSpace(token)
	if len(user) == 0 || token == "" {
		return types.ErrInvalidSession
	}

	s.session = &types.Session{
		User:    user,
		Token:   token,
		SavedAt: time.Now(),
	}
	return nil
}

// GetSession returns the current session
func (s *Service) GetSession() (*types.Session, error) {
	if s.session == nil {
		return nil, types.ErrNotAuthenticated
	}
	return s.session, nil
}

// Logout clears the in-memory session and removes the session file if given
func (s *Service) Logout(path string) error {
	s.session = nil
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove session file")
	}
	if s.logger != nil {
		s.logger.Info("Logged out", "path", path)
	}
	return nil
}

// SaveSession persists the session to file
func (s *Service) SaveSession(path string) error {
	if s.session == nil {
		return types.ErrNotAuthenticated
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return errors.Wrap(err, "failed to create session directory")
	}

	data, err := json.MarshalIndent(s.session, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal session")
	}

	// Restrictive permissions; the file holds the API token
	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write session file")
	}

	if s.logger != nil {
		s.logger.Info("Session saved", "path", path)
	}

	return nil
}

// LoadSession rehydrates the session from file. A session older than the
// maximum session age is discarded and the file removed, so the caller ends
// up anonymous regardless of how well-formed the stored data is.
func (s *Service) LoadSession(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.ErrNotAuthenticated
		}
		return errors.Wrap(err, "failed to read session file")
	}

	var session types.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return errors.Wrap(err, "failed to unmarshal session")
	}

	if session.Expired() {
		_ = os.Remove(path)
		return types.ErrSessionExpired
	}

	if session.Token == "" {
		return types.ErrNotAuthenticated
	}

	s.session = &session

	if s.logger != nil {
		s.logger.Info("Session loaded", "path", path, "age", session.Age().String())
	}

	return nil
}

// Validate checks the session token against the backend and refreshes the
// stored user object on success. By default a failed check is non-fatal: the
// locally stored user is trusted and the session kept, and a revoked token is
// only caught by the next mutating call. With Strict set, any failure clears
// the session.
func (s *Service) Validate(ctx context.Context) error {
	if s.session == nil || s.session.Token == "" {
		return types.ErrNotAuthenticated
	}

	url := transport.ResolveURL(s.baseURL, meEndpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create session check request")
	}

	for k, v := range s.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Authorization", "Token "+s.session.Token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return s.validateFailed(errors.Wrap(err, "session check failed"))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return s.validateFailed(errors.Wrap(err, "failed to read session check response"))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return s.validateFailed(&types.Error{
			Code:       "SESSION_CHECK_FAILED",
			Message:    fmt.Sprintf("session check failed with status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
			Err:        types.ErrNotAuthenticated,
		})
	}

	var meResp meResponse
	if err := json.Unmarshal(respBody, &meResp); err != nil {
		return s.validateFailed(errors.Wrap(err, "failed to parse session check response"))
	}

	if user := meResp.unpack(); len(user) > 0 {
		s.session.User = user
	}

	if s.logger != nil {
		s.logger.Debug("Session validated")
	}

	return nil
}

// validateFailed applies the configured leniency to a failed session check
func (s *Service) validateFailed(err error) error {
	if s.Strict {
		s.session = nil
		return err
	}
	if s.logger != nil {
		s.logger.Warn("Session check failed, keeping stored session", "error", err)
	}
	return nil
}

// loginResponse represents the login API response. The token and user appear
// either at the top level or under a data wrapper depending on the backend
// version.
type loginResponse struct {
	Token     string          `json:"token"`
	User      json.RawMessage `json:"user"`
	Data      *loginPayload   `json:"data"`
	ErrorCode string          `json:"error_code"`
	Message   string          `json:"message"`
}

type loginPayload struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

func (r *loginResponse) unpack() (string, json.RawMessage) {
	if r.Token != "" {
		return r.Token, r.User
	}
	if r.Data != nil {
		return r.Data.Token, r.Data.User
	}
	return "", nil
}

// meResponse represents the session check response
type meResponse struct {
	User json.RawMessage `json:"user"`
	Data *struct {
		User json.RawMessage `json:"user"`
	} `json:"data"`
}

func (r *meResponse) unpack() json.RawMessage {
	if len(r.User) > 0 {
		return r.User
	}
	if r.Data != nil {
		return r.Data.User
	}
	return nil
}
