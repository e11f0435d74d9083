package elimu

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(ErrNotAuthenticated))
	assert.True(t, IsAuthError(ErrLoginFailed))
	assert.True(t, IsAuthError(errors.Wrap(ErrSessionExpired, "loading session")))
	assert.False(t, IsAuthError(ErrNotFound))
	assert.False(t, IsAuthError(nil))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrRateLimited))
	assert.True(t, IsRetryable(ErrTimeout))
	assert.True(t, IsRetryable(errors.Wrap(ErrServerError, "listing books")))
	assert.True(t, IsRetryable(&Error{Code: "SERVER_ERROR", StatusCode: 503}))
	assert.False(t, IsRetryable(&Error{Code: "BAD_REQUEST", StatusCode: 400}))
	assert.False(t, IsRetryable(ErrInvalidID))
}

func TestIsValidationError(t *testing.T) {
	verrs := &ValidationErrors{Errors: []*ValidationError{{Field: "Title", Message: "Title is required"}}}
	assert.True(t, IsValidationError(verrs))
	assert.True(t, IsValidationError(errors.Wrap(verrs, "creating book")))
	assert.False(t, IsValidationError(&Error{Code: "BAD_REQUEST"}))
}

func TestError_Error(t *testing.T) {
	assert.Equal(t, "Book not found", (&Error{Code: "NOT_FOUND", Message: "Book not found"}).Error())
	assert.Equal(t, "title: blank", (&Error{Code: "BAD_REQUEST", Detail: "title: blank"}).Error())
	assert.Equal(t, "error: SERVER_ERROR", (&Error{Code: "SERVER_ERROR"}).Error())
}
