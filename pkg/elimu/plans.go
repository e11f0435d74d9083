package elimu

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/elimuhub/elimu-go/internal/validate"
	"github.com/pkg/errors"
)

// planService implements the PlanService interface
type planService struct {
	client *Client
}

func (s *planService) List(ctx context.Context, params *ListParams) (*PlanList, error) {
	raw, err := s.client.fetchList(ctx, ResourcePlans, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	var plans []*Plan
	pg, err := decodeList(raw, "plans", &plans)
	if err != nil {
		return nil, err
	}

	return &PlanList{Plans: plans, Pagination: pg}, nil
}

func (s *planService) Get(ctx context.Context, planID string) (*Plan, error) {
	raw, err := s.client.fetchOne(ctx, ResourcePlans, planID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get plan")
	}

	var plan Plan
	if err := decodeObject(raw, "plan", &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *planService) Create(ctx context.Context, params *CreatePlanParams) (*Plan, error) {
	if params == nil {
		params = &CreatePlanParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := s.client.mutate(ctx, http.MethodPost, "/plans", ResourcePlans, params, &raw, "Plan created"); err != nil {
		return nil, errors.Wrap(err, "failed to create plan")
	}

	var plan Plan
	if err := decodeObject(raw, "plan", &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *planService) Update(ctx context.Context, planID string, params *UpdatePlanParams) (*Plan, error) {
	if strings.TrimSpace(planID) == "" {
		return nil, ErrInvalidID
	}
	if params == nil {
		params = &UpdatePlanParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := s.client.mutate(ctx, http.MethodPut, "/plans/"+planID, ResourcePlans, params, &raw, "Plan updated"); err != nil {
		return nil, errors.Wrap(err, "failed to update plan")
	}

	var plan Plan
	if err := decodeObject(raw, "plan", &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *planService) Delete(ctx context.Context, planID string) error {
	if strings.TrimSpace(planID) == "" {
		return ErrInvalidID
	}
	return errors.Wrap(
		s.client.mutate(ctx, http.MethodDelete, "/plans/"+planID, ResourcePlans, nil, nil, "Plan deleted"),
		"failed to delete plan")
}
