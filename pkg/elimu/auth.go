package elimu

import (
	"context"
	"encoding/json"

	"github.com/elimuhub/elimu-go/internal/auth"
	internalTypes "github.com/elimuhub/elimu-go/internal/types"
	"github.com/pkg/errors"
)

// authService implements the AuthService interface
type authService struct {
	client  *Client
	service *auth.Service
}

// newAuthService creates a new auth service
func newAuthService(client *Client) *authService {
	service := auth.NewService(
		client.baseURL,
		client.httpClient,
		client.options.Logger,
	)
	service.Strict = client.options.StrictValidation

	return &authService{
		client:  client,
		service: service,
	}
}

// convertSession converts the internal session to the public one. A user
// payload that does not parse leaves User nil; the token still counts.
func (a *authService) convertSession(s *internalTypes.Session) *Session {
	if s == nil {
		return nil
	}
	session := &Session{
		Token:   s.Token,
		SavedAt: s.SavedAt,
	}
	if len(s.User) > 0 {
		var user User
		if err := json.Unmarshal(s.User, &user); err == nil {
			session.User = &user
		}
	}
	return session
}

// adopt installs the service's current session on the client and transport
func (a *authService) adopt() error {
	session, err := a.service.GetSession()
	if err != nil {
		return err
	}

	a.client.session = a.convertSession(session)
	a.client.transport.SetAuth(session.Token)

	if a.client.options.SessionFile != "" {
		_ = a.service.SaveSession(a.client.options.SessionFile)
	}

	return nil
}

// Login authenticates with email and password. The login call never touches
// cached list queries.
func (a *authService) Login(ctx context.Context, email, password string) error {
	if err := a.service.Login(ctx, email, password); err != nil {
		return err
	}
	return a.adopt()
}

// SetSession establishes a session from a known user and token
func (a *authService) SetSession(user *User, token string) error {
	if user == nil {
		return ErrInvalidSession
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "failed to marshal user")
	}

	if err := a.service.SetSession(raw, token); err != nil {
		return err
	}
	return a.adopt()
}

// Logout clears the in-memory session and the persisted one
func (a *authService) Logout() error {
	if err := a.service.Logout(a.client.options.SessionFile); err != nil {
		return err
	}
	a.client.session = nil
	a.client.transport.SetAuth("")
	return nil
}

// GetSession returns the current session
func (a *authService) GetSession() (*Session, error) {
	session, err := a.service.GetSession()
	if err != nil {
		return nil, err
	}
	return a.convertSession(session), nil
}

// SaveSession saves the session to file
func (a *authService) SaveSession(path string) error {
	return a.service.SaveSession(path)
}

// LoadSession rehydrates the session from file and checks it against the
// backend. The check is lenient unless StrictValidation is set: on failure
// the locally stored user is trusted.
func (a *authService) LoadSession(path string) error {
	if err := a.service.LoadSession(path); err != nil {
		return err
	}

	if err := a.service.Validate(context.Background()); err != nil {
		return err
	}

	// Strict validation may have cleared the session
	if _, err := a.service.GetSession(); err != nil {
		a.client.session = nil
		a.client.transport.SetAuth("")
		return err
	}

	return a.adopt()
}

// Validate checks the session token against the backend
func (a *authService) Validate(ctx context.Context) error {
	if err := a.service.Validate(ctx); err != nil {
		return err
	}

	session, err := a.service.GetSession()
	if err != nil {
		a.client.session = nil
		return err
	}
	a.client.session = a.convertSession(session)
	return nil
}
