package elimu

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/elimuhub/elimu-go/internal/cache"
	"github.com/elimuhub/elimu-go/internal/transport"
	internalTypes "github.com/elimuhub/elimu-go/internal/types"
	"github.com/elimuhub/elimu-go/internal/upload"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the default Elimu API base URL
	DefaultBaseURL = "https://api.elimu.app"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string
	UserAgent = "elimu-go/1.0.0"
)

// Client is the main Elimu platform API client
type Client struct {
	// Service interfaces
	Books         BookService
	Authors       AuthorService
	Jobs          JobService
	Scholarships  ScholarshipService
	Articles      ArticleService
	Videos        VideoService
	Users         UserService
	Companies     CompanyService
	Plans         PlanService
	Subscriptions SubscriptionService
	Auth          AuthService
	Uploads       UploadService

	// Internal fields
	baseURL    string
	httpClient *http.Client
	transport  Transport
	rest       *transport.RESTTransport
	cache      *cache.Cache
	options    *ClientOptions
	session    *Session
}

// ClientOptions configures the client
type ClientOptions struct {
	// BaseURL overrides the default API base URL. A base URL that already
	// ends in /api is used as-is; otherwise /api is inserted before every
	// resource path.
	BaseURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Token provides direct authentication token
	Token string

	// SessionFile path for session persistence
	SessionFile string

	// StrictValidation makes a failed session check on load clear the
	// session instead of trusting the locally stored user.
	StrictValidation bool

	// ChunkSize overrides the chunked upload chunk size
	ChunkSize int64

	// Logger for debug logging
	Logger Logger

	// Notifier receives user-facing success and error notifications
	Notifier Notifier

	// RetryConfig configures retry behavior
	RetryConfig *internalTypes.RetryConfig

	// RateLimiter for rate limiting
	RateLimiter RateLimiter

	// Hooks for observability
	Hooks *internalTypes.Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Notifier receives the transient notifications the platform shows for
// mutating calls: one message per success, one per failure.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// RateLimiter interface for rate limiting
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Transport issues REST calls against the backend
type Transport interface {
	Do(ctx context.Context, method, path string, body, result interface{}) error
	DoForm(ctx context.Context, method, path string, form *transport.Form, result interface{}) error
	SetAuth(token string)
}

// NewClient creates a new Elimu client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}

		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}

		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		if err := sentry.Init(sentryOpts); err != nil {
			// Log error but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	rest := transport.NewRESTTransport(&transport.Options{
		BaseURL:     opts.BaseURL,
		HTTPClient:  opts.HTTPClient,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
		Hooks:       opts.Hooks,
	})

	if opts.Token != "" {
		rest.SetAuth(opts.Token)
	}

	c := &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		transport:  rest,
		rest:       rest,
		cache:      cache.New(),
		options:    opts,
	}

	c.initServices()

	// Hydrate session if a file is configured
	if opts.SessionFile != "" {
		if err := c.Auth.LoadSession(opts.SessionFile); err != nil && opts.Logger != nil {
			opts.Logger.Warn("Failed to load session", "error", err)
		}
	}

	return c, nil
}

// NewClientWithToken creates a client with an auth token
func NewClientWithToken(token string) (*Client, error) {
	return NewClient(&ClientOptions{
		Token: token,
	})
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Books = &bookService{client: c}
	c.Authors = &authorService{client: c}
	c.Jobs = &jobService{client: c}
	c.Scholarships = &scholarshipService{client: c}
	c.Articles = &articleService{client: c}
	c.Videos = &videoService{client: c}
	c.Users = &userService{client: c}
	c.Companies = &companyService{client: c}
	c.Plans = &planService{client: c}
	c.Subscriptions = &subscriptionService{client: c}
	c.Auth = newAuthService(c)
	if c.rest != nil {
		c.Uploads = &uploadService{
			client:   c,
			uploader: upload.New(c.rest, c.options.ChunkSize, c.options.Logger),
		}
	}
}

// SetToken sets the authentication token
func (c *Client) SetToken(token string) {
	c.transport.SetAuth(token)
	if c.session == nil {
		c.session = &Session{}
	}
	c.session.Token = strings.TrimSpace(token)
}

// GetSession returns the current session
func (c *Client) GetSession() *Session {
	return c.session
}

// CacheLen returns the number of cached query results
func (c *Client) CacheLen() int {
	return c.cache.Len()
}

// InvalidateCache drops every cached query for the resource
func (c *Client) InvalidateCache(resource string) {
	c.invalidate(resource)
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	sentry.Flush(2 * time.Second)
}

// execute runs a JSON request with rate limiting and error capture
func (c *Client) execute(ctx context.Context, method, path string, body, result interface{}) error {
	if err := c.waitRateLimit(ctx); err != nil {
		return err
	}

	err := c.transport.Do(ctx, method, path, body, result)
	if err != nil {
		c.captureError(ctx, method, path, err)
	}
	return err
}

// executeForm runs a multipart request with rate limiting and error capture
func (c *Client) executeForm(ctx context.Context, method, path string, form *transport.Form, result interface{}) error {
	if err := c.waitRateLimit(ctx); err != nil {
		return err
	}

	err := c.transport.DoForm(ctx, method, path, form, result)
	if err != nil {
		c.captureError(ctx, method, path, err)
	}
	return err
}

func (c *Client) waitRateLimit(ctx context.Context) error {
	if c.options.RateLimiter == nil {
		return nil
	}
	if err := c.options.RateLimiter.Wait(ctx); err != nil {
		if hub := sentry.GetHubFromContext(ctx); hub != nil {
			hub.CaptureException(err)
		} else {
			sentry.CaptureException(err)
		}
		return errors.Wrap(err, "rate limiter")
	}
	return nil
}

// captureError reports a failed request to Sentry with request context
func (c *Client) captureError(ctx context.Context, method, path string, err error) {
	capture := func(scope *sentry.Scope) {
		scope.SetTag("api.method", method)
		scope.SetTag("api.path", path)
		scope.SetContext("api", map[string]interface{}{
			"method": method,
			"path":   path,
		})
	}

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			capture(scope)
			hub.CaptureException(err)
		})
	} else {
		sentry.WithScope(func(scope *sentry.Scope) {
			capture(scope)
			sentry.CaptureException(err)
		})
	}
}

// fetchList returns a collection body, served from the cache when the same
// resource and parameter combination was fetched before.
func (c *Client) fetchList(ctx context.Context, resource string, params *ListParams) (json.RawMessage, error) {
	key := cache.Key(resource, "", params.Values())
	if raw, ok := c.cache.Get(key); ok {
		return raw, nil
	}

	var raw json.RawMessage
	if err := c.execute(ctx, http.MethodGet, params.path(resource), nil, &raw); err != nil {
		return nil, err
	}

	c.cache.Set(key, raw)
	return raw, nil
}

// fetchOne returns a single object body by id. An empty id is rejected
// locally without any request.
func (c *Client) fetchOne(ctx context.Context, resource, id string) (json.RawMessage, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidID
	}

	key := cache.Key(resource, id, nil)
	if raw, ok := c.cache.Get(key); ok {
		return raw, nil
	}

	var raw json.RawMessage
	if err := c.execute(ctx, http.MethodGet, "/"+resource+"/"+id, nil, &raw); err != nil {
		return nil, err
	}

	c.cache.Set(key, raw)
	return raw, nil
}

// mutate runs a JSON mutation and applies the shared success/failure
// behavior: cache invalidation for the resource and a notification.
func (c *Client) mutate(ctx context.Context, method, path, resource string, body, result interface{}, successMsg string) error {
	err := c.execute(ctx, method, path, body, result)
	c.finishMutation(resource, successMsg, err)
	return err
}

// mutateForm is mutate for multipart bodies
func (c *Client) mutateForm(ctx context.Context, method, path, resource string, form *transport.Form, result interface{}, successMsg string) error {
	err := c.executeForm(ctx, method, path, form, result)
	c.finishMutation(resource, successMsg, err)
	return err
}

func (c *Client) finishMutation(resource, successMsg string, err error) {
	if err != nil {
		c.notifyError(err, "")
		return
	}
	c.invalidate(resource)
	if successMsg != "" && c.options.Notifier != nil {
		c.options.Notifier.Success(successMsg)
	}
}

// invalidate drops cached queries for the resource. The login resource is
// excluded: a login never touches cached lists.
func (c *Client) invalidate(resource string) {
	if resource == resourceLogin {
		return
	}
	c.cache.Invalidate(resource)
}

// notifyError forwards a user-facing error message to the notifier, picking
// the backend message first, then the backend detail, then the fallback.
func (c *Client) notifyError(err error, fallback string) {
	if c.options.Notifier == nil {
		return
	}
	c.options.Notifier.Error(errorMessage(err, fallback))
}

// errorMessage resolves the display message for a failed mutation
func errorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
	}
	if fallback != "" {
		return fallback
	}
	return "Something went wrong. Please try again."
}
