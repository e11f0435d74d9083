package elimu

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/elimuhub/elimu-go/internal/validate"
	"github.com/pkg/errors"
)

// authorService implements the AuthorService interface
type authorService struct {
	client *Client
}

func (s *authorService) List(ctx context.Context, params *ListParams) (*AuthorList, error) {
	raw, err := s.client.fetchList(ctx, ResourceAuthors, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list authors")
	}

	var authors []*Author
	pg, err := decodeList(raw, "authors", &authors)
	if err != nil {
		return nil, err
	}

	return &AuthorList{Authors: authors, Pagination: pg}, nil
}

func (s *authorService) Get(ctx context.Context, authorID string) (*Author, error) {
	raw, err := s.client.fetchOne(ctx, ResourceAuthors, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get author")
	}

	var author Author
	if err := decodeObject(raw, "author", &author); err != nil {
		return nil, err
	}
	return &author, nil
}

func (s *authorService) Create(ctx context.Context, params *CreateAuthorParams) (*Author, error) {
	if params == nil {
		params = &CreateAuthorParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	var err error
	if params.Photo != nil {
		form, ferr := formFromParams(params, map[string]*Attachment{"photo": params.Photo})
		if ferr != nil {
			return nil, ferr
		}
		err = s.client.mutateForm(ctx, http.MethodPost, "/authors", ResourceAuthors, form, &raw, "Author created")
	} else {
		err = s.client.mutate(ctx, http.MethodPost, "/authors", ResourceAuthors, params, &raw, "Author created")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create author")
	}

	var author Author
	if err := decodeObject(raw, "author", &author); err != nil {
		return nil, err
	}
	return &author, nil
}

func (s *authorService) Update(ctx context.Context, authorID string, params *UpdateAuthorParams) (*Author, error) {
	if strings.TrimSpace(authorID) == "" {
		return nil, ErrInvalidID
	}
	if params == nil {
		params = &UpdateAuthorParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	var err error
	if params.Photo != nil {
		form, ferr := formFromParams(params, map[string]*Attachment{"photo": params.Photo})
		if ferr != nil {
			return nil, ferr
		}
		err = s.client.mutateForm(ctx, http.MethodPut, "/authors/"+authorID, ResourceAuthors, form, &raw, "Author updated")
	} else {
		err = s.client.mutate(ctx, http.MethodPut, "/authors/"+authorID, ResourceAuthors, params, &raw, "Author updated")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update author")
	}

	var author Author
	if err := decodeObject(raw, "author", &author); err != nil {
		return nil, err
	}
	return &author, nil
}

func (s *authorService) Delete(ctx context.Context, authorID string) error {
	if strings.TrimSpace(authorID) == "" {
		return ErrInvalidID
	}
	return errors.Wrap(
		s.client.mutate(ctx, http.MethodDelete, "/authors/"+authorID, ResourceAuthors, nil, nil, "Author deleted"),
		"failed to delete author")
}
