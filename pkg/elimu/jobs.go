package elimu

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/elimuhub/elimu-go/internal/validate"
	"github.com/pkg/errors"
)

// jobService implements the JobService interface
type jobService struct {
	client *Client
}

func (s *jobService) List(ctx context.Context, params *ListParams) (*JobList, error) {
	raw, err := s.client.fetchList(ctx, ResourceJobs, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}

	var jobs []*Job
	pg, err := decodeList(raw, "jobs", &jobs)
	if err != nil {
		return nil, err
	}

	return &JobList{Jobs: jobs, Pagination: pg}, nil
}

func (s *jobService) Get(ctx context.Context, jobID string) (*Job, error) {
	raw, err := s.client.fetchOne(ctx, ResourceJobs, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get job")
	}

	var job Job
	if err := decodeObject(raw, "job", &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *jobService) Create(ctx context.Context, params *CreateJobParams) (*Job, error) {
	if params == nil {
		params = &CreateJobParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := s.client.mutate(ctx, http.MethodPost, "/jobs", ResourceJobs, params, &raw, "Job created"); err != nil {
		return nil, errors.Wrap(err, "failed to create job")
	}

	var job Job
	if err := decodeObject(raw, "job", &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *jobService) Update(ctx context.Context, jobID string, params *UpdateJobParams) (*Job, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, ErrInvalidID
	}
	if params == nil {
		params = &UpdateJobParams{}
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := s.client.mutate(ctx, http.MethodPut, "/jobs/"+jobID, ResourceJobs, params, &raw, "Job updated"); err != nil {
		return nil, errors.Wrap(err, "failed to update job")
	}

	var job Job
	if err := decodeObject(raw, "job", &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *jobService) Delete(ctx context.Context, jobID string) error {
	if strings.TrimSpace(jobID) == "" {
		return ErrInvalidID
	}
	return errors.Wrap(
		s.client.mutate(ctx, http.MethodDelete, "/jobs/"+jobID, ResourceJobs, nil, nil, "Job deleted"),
		"failed to delete job")
}
