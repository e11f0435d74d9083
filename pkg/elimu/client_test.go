package elimu

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/elimuhub/elimu-go/internal/cache"
	"github.com/elimuhub/elimu-go/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTransport is a mock implementation of the Transport interface
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Do(ctx context.Context, method, path string, body, result interface{}) error {
	args := m.Called(ctx, method, path, body, result)

	// If mock provides result data, unmarshal it
	if args.Get(0) != nil && result != nil {
		resultJSON := args.Get(0).(string)
		if err := json.Unmarshal([]byte(resultJSON), result); err != nil {
			return err
		}
	}

	return args.Error(1)
}

func (m *MockTransport) DoForm(ctx context.Context, method, path string, form *transport.Form, result interface{}) error {
	args := m.Called(ctx, method, path, form, result)

	if args.Get(0) != nil && result != nil {
		resultJSON := args.Get(0).(string)
		if err := json.Unmarshal([]byte(resultJSON), result); err != nil {
			return err
		}
	}

	return args.Error(1)
}

func (m *MockTransport) SetAuth(token string) {
	m.Called(token)
}

// recordingNotifier collects the notifications a test run produced
type recordingNotifier struct {
	successes []string
	errs      []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errs = append(n.errs, msg) }

func newTestClient(mockTransport *MockTransport) *Client {
	client := &Client{
		transport: mockTransport,
		cache:     cache.New(),
		options:   &ClientOptions{},
		baseURL:   "https://api.test.com",
	}
	client.initServices()
	return client
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
	assert.NotNil(t, client.Books)
	assert.NotNil(t, client.Authors)
	assert.NotNil(t, client.Jobs)
	assert.NotNil(t, client.Scholarships)
	assert.NotNil(t, client.Articles)
	assert.NotNil(t, client.Videos)
	assert.NotNil(t, client.Users)
	assert.NotNil(t, client.Companies)
	assert.NotNil(t, client.Plans)
	assert.NotNil(t, client.Subscriptions)
	assert.NotNil(t, client.Auth)
	assert.NotNil(t, client.Uploads)
}

func TestNewClientWithToken(t *testing.T) {
	client, err := NewClientWithToken("test-token")

	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClient_SetToken(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("SetAuth", "  tok-123  ").Return()

	client.SetToken("  tok-123  ")

	require.NotNil(t, client.GetSession())
	assert.Equal(t, "tok-123", client.GetSession().Token)
	mockTransport.AssertExpectations(t)
}

func TestClient_ListIsCached(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{"books": [{"id": "book-1", "title": "Things Fall Apart"}]}`

	mockTransport.On("Do", mock.Anything, http.MethodGet, "/books", nil, mock.Anything).
		Return(response, nil).Once()

	first, err := client.Books.List(context.Background(), nil)
	require.NoError(t, err)

	// Second identical query is served from the cache
	second, err := client.Books.List(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, first.Books[0].ID, second.Books[0].ID)
	assert.Equal(t, 1, client.CacheLen())
	mockTransport.AssertExpectations(t)
}

func TestClient_DistinctParamsAreDistinctQueries(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do", mock.Anything, http.MethodGet, "/books", nil, mock.Anything).
		Return(`{"books": []}`, nil).Once()
	mockTransport.On("Do", mock.Anything, http.MethodGet, "/books?search=chinua", nil, mock.Anything).
		Return(`{"books": []}`, nil).Once()

	_, err := client.Books.List(context.Background(), nil)
	require.NoError(t, err)
	_, err = client.Books.List(context.Background(), &ListParams{Search: "chinua"})
	require.NoError(t, err)

	assert.Equal(t, 2, client.CacheLen())
	mockTransport.AssertExpectations(t)
}

func TestClient_MutationInvalidatesResourceCache(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	listResponse := `{"books": [{"id": "book-1", "title": "Things Fall Apart"}]}`

	mockTransport.On("Do", mock.Anything, http.MethodGet, "/books", nil, mock.Anything).
		Return(listResponse, nil).Twice()
	mockTransport.On("Do", mock.Anything, http.MethodGet, "/authors", nil, mock.Anything).
		Return(`{"authors": []}`, nil).Once()
	mockTransport.On("Do", mock.Anything, http.MethodDelete, "/books/book-1", nil, nil).
		Return(nil, nil).Once()

	_, err := client.Books.List(context.Background(), nil)
	require.NoError(t, err)
	_, err = client.Authors.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, client.CacheLen())

	require.NoError(t, client.Books.Delete(context.Background(), "book-1"))

	// Books queries are gone, the authors query survives
	assert.Equal(t, 1, client.CacheLen())

	_, err = client.Books.List(context.Background(), nil)
	require.NoError(t, err)
	mockTransport.AssertExpectations(t)
}

func TestClient_LoginNeverInvalidates(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do", mock.Anything, http.MethodGet, "/books", nil, mock.Anything).
		Return(`{"books": []}`, nil).Once()

	_, err := client.Books.List(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, client.CacheLen())

	client.invalidate(resourceLogin)

	assert.Equal(t, 1, client.CacheLen())
	mockTransport.AssertExpectations(t)
}

func TestClient_MutationNotifications(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)
	notifier := &recordingNotifier{}
	client.options.Notifier = notifier

	mockTransport.On("Do", mock.Anything, http.MethodDelete, "/books/book-1", nil, nil).
		Return(nil, nil).Once()
	mockTransport.On("Do", mock.Anything, http.MethodDelete, "/books/book-2", nil, nil).
		Return(nil, &Error{Code: "NOT_FOUND", Message: "Book not found", StatusCode: 404}).Once()

	require.NoError(t, client.Books.Delete(context.Background(), "book-1"))
	require.Error(t, client.Books.Delete(context.Background(), "book-2"))

	assert.Equal(t, []string{"Book deleted"}, notifier.successes)
	assert.Equal(t, []string{"Book not found"}, notifier.errs)
	mockTransport.AssertExpectations(t)
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{
			name: "backend message wins",
			err:  &Error{Message: "Title is required", Detail: "title: blank"},
			want: "Title is required",
		},
		{
			name: "detail when no message",
			err:  &Error{Detail: "title: blank"},
			want: "title: blank",
		},
		{
			name:     "fallback for bare errors",
			err:      assert.AnError,
			fallback: "Upload failed",
			want:     "Upload failed",
		},
		{
			name: "generic last resort",
			err:  assert.AnError,
			want: "Something went wrong. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.err, tt.fallback))
		})
	}
}
