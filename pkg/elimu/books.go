package elimu

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/elimuhub/elimu-go/internal/upload"
	"github.com/elimuhub/elimu-go/internal/validate"
	"github.com/pkg/errors"
)

// bookService implements the BookService interface
type bookService struct {
	client *Client
}

// List retrieves a page of books
func (s *bookService) List(ctx context.Context, params *ListParams) (*BookList, error) {
	raw, err := s.client.fetchList(ctx, ResourceBooks, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	var books []*Book
	pg, err := decodeList(raw, "books", &books)
	if err != nil {
		return nil, err
	}

	return &BookList{Books: books, Pagination: pg}, nil
}

// Get retrieves a single book by ID
func (s *bookService) Get(ctx context.Context, bookID string) (*Book, error) {
	raw, err := s.client.fetchOne(ctx, ResourceBooks, bookID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get book")
	}

	var book Book
	if err := decodeObject(raw, "book", &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// Create creates a new book. A NewAuthor is created inline first and its id
// used for the book; a File above the direct upload limit goes through the
// chunked uploader and the book references the returned descriptor.
func (s *bookService) Create(ctx context.Context, params *CreateBookParams) (*Book, error) {
	if params == nil {
		params = &CreateBookParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	if params.NewAuthor != nil && params.AuthorID == "" {
		author, err := s.client.Authors.Create(ctx, params.NewAuthor)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create author inline")
		}
		params.AuthorID = author.ID
	}

	if params.File != nil && upload.ShouldChunk(params.File.Size) {
		desc, err := s.client.Uploads.Upload(ctx, params.File.Content, params.File.Size, params.File.Name, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload book file")
		}
		params.FileID = desc.ID
		params.File = nil
	}

	var raw json.RawMessage
	var err error
	if params.Cover != nil || params.File != nil {
		form, ferr := formFromParams(params, map[string]*Attachment{
			"cover": params.Cover,
			"file":  params.File,
		})
		if ferr != nil {
			return nil, ferr
		}
		err = s.client.mutateForm(ctx, http.MethodPost, "/books", ResourceBooks, form, &raw, "Book created")
	} else {
		err = s.client.mutate(ctx, http.MethodPost, "/books", ResourceBooks, params, &raw, "Book created")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create book")
	}

	var book Book
	if err := decodeObject(raw, "book", &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// Update updates an existing book
func (s *bookService) Update(ctx context.Context, bookID string, params *UpdateBookParams) (*Book, error) {
	if strings.TrimSpace(bookID) == "" {
		return nil, ErrInvalidID
	}
	if params == nil {
		params = &UpdateBookParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	if params.File != nil && upload.ShouldChunk(params.File.Size) {
		desc, err := s.client.Uploads.Upload(ctx, params.File.Content, params.File.Size, params.File.Name, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload book file")
		}
		params.FileID = desc.ID
		params.File = nil
	}

	var raw json.RawMessage
	var err error
	if params.Cover != nil || params.File != nil {
		form, ferr := formFromParams(params, map[string]*Attachment{
			"cover": params.Cover,
			"file":  params.File,
		})
		if ferr != nil {
			return nil, ferr
		}
		err = s.client.mutateForm(ctx, http.MethodPut, "/books/"+bookID, ResourceBooks, form, &raw, "Book updated")
	} else {
		err = s.client.mutate(ctx, http.MethodPut, "/books/"+bookID, ResourceBooks, params, &raw, "Book updated")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update book")
	}

	var book Book
	if err := decodeObject(raw, "book", &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// Delete deletes a book
func (s *bookService) Delete(ctx context.Context, bookID string) error {
	if strings.TrimSpace(bookID) == "" {
		return ErrInvalidID
	}
	return errors.Wrap(
		s.client.mutate(ctx, http.MethodDelete, "/books/"+bookID, ResourceBooks, nil, nil, "Book deleted"),
		"failed to delete book")
}
