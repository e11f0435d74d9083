package elimu

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"data": {
			"books": [
				{
					"id": "book-1",
					"title": "Things Fall Apart",
					"authorId": "author-1",
					"tags": ["fiction", "classic"],
					"price": 12.50,
					"currency": "USD",
					"status": "published"
				},
				{
					"id": "book-2",
					"title": "The River Between",
					"authorId": "author-2",
					"tags": "[\"fiction\"]",
					"status": "draft"
				}
			],
			"pagination": {"page": 1, "limit": 20, "total": 2, "totalPages": 1}
		}
	}`

	mockTransport.On("Do", mock.Anything, http.MethodGet, "/books", nil, mock.Anything).
		Return(response, nil)

	list, err := client.Books.List(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, list.Books, 2)
	assert.Equal(t, "book-1", list.Books[0].ID)
	assert.Equal(t, "Things Fall Apart", list.Books[0].Title)
	assert.Equal(t, StringList{"fiction", "classic"}, list.Books[0].Tags)
	assert.Equal(t, CurrencyUSD, list.Books[0].Currency)
	// The second book carries its tags as a JSON-encoded string
	assert.Equal(t, StringList{"fiction"}, list.Books[1].Tags)
	require.NotNil(t, list.Pagination)
	assert.Equal(t, 2, list.Pagination.Total)

	mockTransport.AssertExpectations(t)
}

func TestBookService_Get(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{"book": {"id": "book-1", "title": "Things Fall Apart", "pages": 209}}`

	mockTransport.On("Do", mock.Anything, http.MethodGet, "/books/book-1", nil, mock.Anything).
		Return(response, nil)

	book, err := client.Books.Get(context.Background(), "book-1")

	require.NoError(t, err)
	assert.Equal(t, "book-1", book.ID)
	assert.Equal(t, 209, book.Pages)
	mockTransport.AssertExpectations(t)
}

func TestBookService_Get_EmptyID(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	_, err := client.Books.Get(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrInvalidID)
	mockTransport.AssertNotCalled(t, "Do")
}

func TestBookService_Create(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{"book": {"id": "book-99", "title": "Weep Not, Child", "authorId": "author-7"}}`

	mockTransport.On("Do", mock.Anything, http.MethodPost, "/books",
		mock.MatchedBy(func(body interface{}) bool {
			params, ok := body.(*CreateBookParams)
			return ok && params.Title == "Weep Not, Child" && params.AuthorID == "author-7"
		}), mock.Anything).Return(response, nil)

	book, err := client.Books.Create(context.Background(), &CreateBookParams{
		Title:    "Weep Not, Child",
		AuthorID: "author-7",
	})

	require.NoError(t, err)
	assert.Equal(t, "book-99", book.ID)
	mockTransport.AssertExpectations(t)
}

func TestBookService_Create_InlineAuthor(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do", mock.Anything, http.MethodPost, "/authors",
		mock.MatchedBy(func(body interface{}) bool {
			params, ok := body.(*CreateAuthorParams)
			return ok && params.PenName == "Grace Ogot"
		}), mock.Anything).
		Return(`{"author": {"id": "author-42", "penName": "Grace Ogot"}}`, nil).Once()

	// The book create must reference the freshly created author
	mockTransport.On("Do", mock.Anything, http.MethodPost, "/books",
		mock.MatchedBy(func(body interface{}) bool {
			params, ok := body.(*CreateBookParams)
			return ok && params.AuthorID == "author-42"
		}), mock.Anything).
		Return(`{"book": {"id": "book-7", "title": "The Promised Land", "authorId": "author-42"}}`, nil).Once()

	book, err := client.Books.Create(context.Background(), &CreateBookParams{
		Title:     "The Promised Land",
		NewAuthor: &CreateAuthorParams{PenName: "Grace Ogot"},
	})

	require.NoError(t, err)
	assert.Equal(t, "author-42", book.AuthorID)
	mockTransport.AssertExpectations(t)
}

func TestBookService_Create_MissingTitle(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	_, err := client.Books.Create(context.Background(), &CreateBookParams{
		AuthorID: "author-1",
	})

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	mockTransport.AssertNotCalled(t, "Do")
}

func TestBookService_Create_NeedsAuthorOrNewAuthor(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	_, err := client.Books.Create(context.Background(), &CreateBookParams{
		Title: "Orphaned Book",
	})

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	mockTransport.AssertNotCalled(t, "Do")
}

func TestBookService_Update(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{"book": {"id": "book-1", "title": "Things Fall Apart", "status": "archived"}}`

	mockTransport.On("Do", mock.Anything, http.MethodPut, "/books/book-1",
		mock.MatchedBy(func(body interface{}) bool {
			params, ok := body.(*UpdateBookParams)
			return ok && params.Status == StatusArchived
		}), mock.Anything).Return(response, nil)

	book, err := client.Books.Update(context.Background(), "book-1", &UpdateBookParams{
		Status: StatusArchived,
	})

	require.NoError(t, err)
	assert.Equal(t, StatusArchived, book.Status)
	mockTransport.AssertExpectations(t)
}

func TestBookService_Delete_EmptyID(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	err := client.Books.Delete(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidID)
	mockTransport.AssertNotCalled(t, "Do")
}
