package elimu

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/elimuhub/elimu-go/internal/validate"
	"github.com/pkg/errors"
)

// companyService implements the CompanyService interface
type companyService struct {
	client *Client
}

func (s *companyService) List(ctx context.Context, params *ListParams) (*CompanyList, error) {
	raw, err := s.client.fetchList(ctx, ResourceCompanies, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}

	var companies []*Company
	pg, err := decodeList(raw, "companies", &companies)
	if err != nil {
		return nil, err
	}

	return &CompanyList{Companies: companies, Pagination: pg}, nil
}

func (s *companyService) Get(ctx context.Context, companyID string) (*Company, error) {
	raw, err := s.client.fetchOne(ctx, ResourceCompanies, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get company")
	}

	var company Company
	if err := decodeObject(raw, "company", &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *companyService) Create(ctx context.Context, params *CreateCompanyParams) (*Company, error) {
	if params == nil {
		params = &CreateCompanyParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	var err error
	if params.Logo != nil {
		form, ferr := formFromParams(params, map[string]*Attachment{"logo": params.Logo})
		if ferr != nil {
			return nil, ferr
		}
		err = s.client.mutateForm(ctx, http.MethodPost, "/companies", ResourceCompanies, form, &raw, "Company created")
	} else {
		err = s.client.mutate(ctx, http.MethodPost, "/companies", ResourceCompanies, params, &raw, "Company created")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create company")
	}

	var company Company
	if err := decodeObject(raw, "company", &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *companyService) Update(ctx context.Context, companyID string, params *UpdateCompanyParams) (*Company, error) {
	if strings.TrimSpace(companyID) == "" {
		return nil, ErrInvalidID
	}
	if params == nil {
		params = &UpdateCompanyParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	var err error
	if params.Logo != nil {
		form, ferr := formFromParams(params, map[string]*Attachment{"logo": params.Logo})
		if ferr != nil {
			return nil, ferr
		}
		err = s.client.mutateForm(ctx, http.MethodPut, "/companies/"+companyID, ResourceCompanies, form, &raw, "Company updated")
	} else {
		err = s.client.mutate(ctx, http.MethodPut, "/companies/"+companyID, ResourceCompanies, params, &raw, "Company updated")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update company")
	}

	var company Company
	if err := decodeObject(raw, "company", &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *companyService) Delete(ctx context.Context, companyID string) error {
	if strings.TrimSpace(companyID) == "" {
		return ErrInvalidID
	}
	return errors.Wrap(
		s.client.mutate(ctx, http.MethodDelete, "/companies/"+companyID, ResourceCompanies, nil, nil, "Company deleted"),
		"failed to delete company")
}
