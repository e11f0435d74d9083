package elimu

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/elimuhub/elimu-go/internal/validate"
	"github.com/pkg/errors"
)

// articleService implements the ArticleService interface
type articleService struct {
	client *Client
}

func (s *articleService) List(ctx context.Context, params *ListParams) (*ArticleList, error) {
	raw, err := s.client.fetchList(ctx, ResourceArticles, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list articles")
	}

	var articles []*Article
	pg, err := decodeList(raw, "articles", &articles)
	if err != nil {
		return nil, err
	}

	return &ArticleList{Articles: articles, Pagination: pg}, nil
}

func (s *articleService) Get(ctx context.Context, articleID string) (*Article, error) {
	raw, err := s.client.fetchOne(ctx, ResourceArticles, articleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get article")
	}

	var article Article
	if err := decodeObject(raw, "article", &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *articleService) Create(ctx context.Context, params *CreateArticleParams) (*Article, error) {
	if params == nil {
		params = &CreateArticleParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	var err error
	if params.Image != nil {
		form, ferr := formFromParams(params, map[string]*Attachment{"image": params.Image})
		if ferr != nil {
			return nil, ferr
		}
		err = s.client.mutateForm(ctx, http.MethodPost, "/articles", ResourceArticles, form, &raw, "Article created")
	} else {
		err = s.client.mutate(ctx, http.MethodPost, "/articles", ResourceArticles, params, &raw, "Article created")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create article")
	}

	var article Article
	if err := decodeObject(raw, "article", &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *articleService) Update(ctx context.Context, articleID string, params *UpdateArticleParams) (*Article, error) {
	if strings.TrimSpace(articleID) == "" {
		return nil, ErrInvalidID
	}
	if params == nil {
		params = &UpdateArticleParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	var err error
	if params.Image != nil {
		form, ferr := formFromParams(params, map[string]*Attachment{"image": params.Image})
		if ferr != nil {
			return nil, ferr
		}
		err = s.client.mutateForm(ctx, http.MethodPut, "/articles/"+articleID, ResourceArticles, form, &raw, "Article updated")
	} else {
		err = s.client.mutate(ctx, http.MethodPut, "/articles/"+articleID, ResourceArticles, params, &raw, "Article updated")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update article")
	}

	var article Article
	if err := decodeObject(raw, "article", &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *articleService) Delete(ctx context.Context, articleID string) error {
	if strings.TrimSpace(articleID) == "" {
		return ErrInvalidID
	}
	return errors.Wrap(
		s.client.mutate(ctx, http.MethodDelete, "/articles/"+articleID, ResourceArticles, nil, nil, "Article deleted"),
		"failed to delete article")
}
