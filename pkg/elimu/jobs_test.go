package elimu

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestJobService_Create(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"job": {
			"id": "job-1",
			"title": "Backend Engineer",
			"companyId": "company-1",
			"type": "full_time",
			"remote": true,
			"salaryMin": 60000,
			"salaryMax": 90000,
			"currency": "KES",
			"deadline": "2026-12-31"
		}
	}`

	mockTransport.On("Do", mock.Anything, http.MethodPost, "/jobs",
		mock.MatchedBy(func(body interface{}) bool {
			params, ok := body.(*CreateJobParams)
			return ok && params.Type == JobTypeFullTime && params.CompanyID == "company-1"
		}), mock.Anything).Return(response, nil)

	job, err := client.Jobs.Create(context.Background(), &CreateJobParams{
		Title:     "Backend Engineer",
		CompanyID: "company-1",
		Type:      JobTypeFullTime,
		Remote:    true,
		SalaryMin: 60000,
		SalaryMax: 90000,
		Currency:  CurrencyKES,
	})

	require.NoError(t, err)
	assert.Equal(t, "job-1", job.ID)
	assert.Equal(t, JobTypeFullTime, job.Type)
	assert.Equal(t, "2026-12-31", job.Deadline.String())
	mockTransport.AssertExpectations(t)
}

func TestJobService_Create_Validation(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	_, err := client.Jobs.Create(context.Background(), &CreateJobParams{
		Title: "No company, bad type",
		Type:  JobType("freelance"),
	})

	require.Error(t, err)
	require.True(t, IsValidationError(err))

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make(map[string]bool)
	for _, fe := range verrs.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["CompanyID"])
	assert.True(t, fields["Type"])
	mockTransport.AssertNotCalled(t, "Do")
}

func TestJobService_Create_SalaryRange(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	_, err := client.Jobs.Create(context.Background(), &CreateJobParams{
		Title:     "Inverted salary band",
		CompanyID: "company-1",
		Type:      JobTypeContract,
		SalaryMin: 90000,
		SalaryMax: 60000,
	})

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	mockTransport.AssertNotCalled(t, "Do")
}

func TestJobService_List_RoleFilter(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do", mock.Anything, http.MethodGet, "/jobs?remote=true&type=internship", nil, mock.Anything).
		Return(`{"jobs": [{"id": "job-3", "type": "internship", "remote": true}]}`, nil)

	list, err := client.Jobs.List(context.Background(), &ListParams{
		Filters: map[string]string{"type": "internship", "remote": "true"},
	})

	require.NoError(t, err)
	require.Len(t, list.Jobs, 1)
	assert.True(t, list.Jobs[0].Remote)
	mockTransport.AssertExpectations(t)
}
