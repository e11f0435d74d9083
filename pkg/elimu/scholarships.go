package elimu

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/elimuhub/elimu-go/internal/validate"
	"github.com/pkg/errors"
)

// scholarshipService implements the ScholarshipService interface
type scholarshipService struct {
	client *Client
}

func (s *scholarshipService) List(ctx context.Context, params *ListParams) (*ScholarshipList, error) {
	raw, err := s.client.fetchList(ctx, ResourceScholarships, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scholarships")
	}

	var scholarships []*Scholarship
	pg, err := decodeList(raw, "scholarships", &scholarships)
	if err != nil {
		return nil, err
	}

	return &ScholarshipList{Scholarships: scholarships, Pagination: pg}, nil
}

func (s *scholarshipService) Get(ctx context.Context, scholarshipID string) (*Scholarship, error) {
	raw, err := s.client.fetchOne(ctx, ResourceScholarships, scholarshipID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get scholarship")
	}

	var scholarship Scholarship
	if err := decodeObject(raw, "scholarship", &scholarship); err != nil {
		return nil, err
	}
	return &scholarship, nil
}

func (s *scholarshipService) Create(ctx context.Context, params *CreateScholarshipParams) (*Scholarship, error) {
	if params == nil {
		params = &CreateScholarshipParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := s.client.mutate(ctx, http.MethodPost, "/scholarships", ResourceScholarships, params, &raw, "Scholarship created"); err != nil {
		return nil, errors.Wrap(err, "failed to create scholarship")
	}

	var scholarship Scholarship
	if err := decodeObject(raw, "scholarship", &scholarship); err != nil {
		return nil, err
	}
	return &scholarship, nil
}

func (s *scholarshipService) Update(ctx context.Context, scholarshipID string, params *UpdateScholarshipParams) (*Scholarship, error) {
	if strings.TrimSpace(scholarshipID) == "" {
		return nil, ErrInvalidID
	}
	if params == nil {
		params = &UpdateScholarshipParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := s.client.mutate(ctx, http.MethodPut, "/scholarships/"+scholarshipID, ResourceScholarships, params, &raw, "Scholarship updated"); err != nil {
		return nil, errors.Wrap(err, "failed to update scholarship")
	}

	var scholarship Scholarship
	if err := decodeObject(raw, "scholarship", &scholarship); err != nil {
		return nil, err
	}
	return &scholarship, nil
}

func (s *scholarshipService) Delete(ctx context.Context, scholarshipID string) error {
	if strings.TrimSpace(scholarshipID) == "" {
		return ErrInvalidID
	}
	return errors.Wrap(
		s.client.mutate(ctx, http.MethodDelete, "/scholarships/"+scholarshipID, ResourceScholarships, nil, nil, "Scholarship deleted"),
		"failed to delete scholarship")
}
