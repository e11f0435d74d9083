package elimu

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/elimuhub/elimu-go/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthorService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"authors": [
			{"id": "author-1", "penName": "Chinua Achebe"},
			{"id": "author-2", "penName": "Ngugi wa Thiong'o"}
		]
	}`

	mockTransport.On("Do", mock.Anything, http.MethodGet, "/authors", nil, mock.Anything).
		Return(response, nil)

	list, err := client.Authors.List(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, list.Authors, 2)
	assert.Equal(t, "Chinua Achebe", list.Authors[0].PenName)
	assert.Nil(t, list.Pagination)
	mockTransport.AssertExpectations(t)
}

func TestAuthorService_CreateRefreshesList(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)
	notifier := &recordingNotifier{}
	client.options.Notifier = notifier

	mockTransport.On("Do", mock.Anything, http.MethodGet, "/authors", nil, mock.Anything).
		Return(`{"authors": []}`, nil).Twice()
	mockTransport.On("Do", mock.Anything, http.MethodPost, "/authors", mock.Anything, mock.Anything).
		Return(`{"author": {"id": "author-9", "penName": "Grace Ogot"}}`, nil).Once()

	_, err := client.Authors.List(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, client.CacheLen())

	author, err := client.Authors.Create(context.Background(), &CreateAuthorParams{PenName: "Grace Ogot"})
	require.NoError(t, err)
	assert.Equal(t, "author-9", author.ID)
	assert.Equal(t, []string{"Author created"}, notifier.successes)

	// The cached list was dropped, so the next List goes back to the backend
	assert.Equal(t, 0, client.CacheLen())
	_, err = client.Authors.List(context.Background(), nil)
	require.NoError(t, err)

	mockTransport.AssertExpectations(t)
}

func TestAuthorService_Create_WithPhoto(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("DoForm", mock.Anything, http.MethodPost, "/authors",
		mock.MatchedBy(func(form *transport.Form) bool {
			if form.Fields["penName"] != "Grace Ogot" {
				return false
			}
			return len(form.Files) == 1 && form.Files[0].Field == "photo" && form.Files[0].FileName == "grace.jpg"
		}), mock.Anything).
		Return(`{"author": {"id": "author-9", "penName": "Grace Ogot"}}`, nil)

	author, err := client.Authors.Create(context.Background(), &CreateAuthorParams{
		PenName: "Grace Ogot",
		Photo: &Attachment{
			Name:    "grace.jpg",
			Size:    1024,
			Content: bytes.NewReader([]byte("jpeg bytes")),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "author-9", author.ID)
	mockTransport.AssertExpectations(t)
}

func TestAuthorService_Update_EmptyID(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	_, err := client.Authors.Update(context.Background(), "", &UpdateAuthorParams{PenName: "X"})

	assert.ErrorIs(t, err, ErrInvalidID)
	mockTransport.AssertNotCalled(t, "Do")
}
