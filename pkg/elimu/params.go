package elimu

import (
	"encoding/json"
	"io"

	"github.com/elimuhub/elimu-go/internal/transport"
	"github.com/pkg/errors"
)

// Attachment is a file to send with a create or update call. Attachments at
// or below the chunked-upload threshold ride along in the multipart request;
// larger ones must go through the chunked uploader first.
type Attachment struct {
	Name    string
	Size    int64
	Content io.Reader
}

// CreateBookParams are the fields for a new book. Either AuthorID or
// NewAuthor must be set; NewAuthor creates the author inline first.
type CreateBookParams struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description,omitempty"`
	AuthorID    string              `json:"authorId,omitempty" validate:"required_without=NewAuthor"`
	NewAuthor   *CreateAuthorParams `json:"-"`
	Tags        []string            `json:"tags,omitempty"`
	Language    string              `json:"language,omitempty"`
	Pages       int                 `json:"pages,omitempty" validate:"omitempty,gte=1"`
	Price       float64             `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency    Currency            `json:"currency,omitempty" validate:"omitempty,oneof=USD EUR GBP KES TZS UGX NGN"`
	Status      PublishStatus       `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
	FileID      string              `json:"fileId,omitempty"`

	Cover *Attachment `json:"-"`
	File  *Attachment `json:"-"`
}

// UpdateBookParams are the fields to change on a book; zero fields are left
// untouched by the backend.
type UpdateBookParams struct {
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	AuthorID    string        `json:"authorId,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Language    string        `json:"language,omitempty"`
	Pages       int           `json:"pages,omitempty" validate:"omitempty,gte=1"`
	Price       float64       `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency    Currency      `json:"currency,omitempty" validate:"omitempty,oneof=USD EUR GBP KES TZS UGX NGN"`
	Status      PublishStatus `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
	FileID      string        `json:"fileId,omitempty"`

	Cover *Attachment `json:"-"`
	File  *Attachment `json:"-"`
}

// CreateAuthorParams are the fields for a new author
type CreateAuthorParams struct {
	PenName string `json:"penName" validate:"required"`
	Bio     string `json:"bio,omitempty"`

	Photo *Attachment `json:"-"`
}

// UpdateAuthorParams are the fields to change on an author
type UpdateAuthorParams struct {
	PenName string `json:"penName,omitempty"`
	Bio     string `json:"bio,omitempty"`

	Photo *Attachment `json:"-"`
}

// CreateJobParams are the fields for a new job posting
type CreateJobParams struct {
	Title       string        `json:"title" validate:"required"`
	Description string        `json:"description,omitempty"`
	CompanyID   string        `json:"companyId" validate:"required"`
	Type        JobType       `json:"type" validate:"required,oneof=full_time part_time contract internship volunteer"`
	Location    string        `json:"location,omitempty"`
	Remote      bool          `json:"remote,omitempty"`
	SalaryMin   float64       `json:"salaryMin,omitempty" validate:"omitempty,gte=0"`
	SalaryMax   float64       `json:"salaryMax,omitempty" validate:"omitempty,gtefield=SalaryMin"`
	Currency    Currency      `json:"currency,omitempty" validate:"omitempty,oneof=USD EUR GBP KES TZS UGX NGN"`
	Deadline    *Date         `json:"deadline,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Status      PublishStatus `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
}

// UpdateJobParams are the fields to change on a job posting
type UpdateJobParams struct {
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	CompanyID   string        `json:"companyId,omitempty"`
	Type        JobType       `json:"type,omitempty" validate:"omitempty,oneof=full_time part_time contract internship volunteer"`
	Location    string        `json:"location,omitempty"`
	Remote      *bool         `json:"remote,omitempty"`
	SalaryMin   float64       `json:"salaryMin,omitempty" validate:"omitempty,gte=0"`
	SalaryMax   float64       `json:"salaryMax,omitempty"`
	Currency    Currency      `json:"currency,omitempty" validate:"omitempty,oneof=USD EUR GBP KES TZS UGX NGN"`
	Deadline    *Date         `json:"deadline,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Status      PublishStatus `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
}

// CreateScholarshipParams are the fields for a new scholarship
type CreateScholarshipParams struct {
	Title       string         `json:"title" validate:"required"`
	Provider    string         `json:"provider" validate:"required"`
	Description string         `json:"description,omitempty"`
	Amount      float64        `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Currency    Currency       `json:"currency,omitempty" validate:"omitempty,oneof=USD EUR GBP KES TZS UGX NGN"`
	Level       EducationLevel `json:"level,omitempty" validate:"omitempty,oneof=certificate diploma bachelors masters phd"`
	Country     string         `json:"country,omitempty"`
	URL         string         `json:"url,omitempty" validate:"omitempty,url"`
	Deadline    *Date          `json:"deadline,omitempty"`
	Status      PublishStatus  `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
}

// UpdateScholarshipParams are the fields to change on a scholarship
type UpdateScholarshipParams struct {
	Title       string         `json:"title,omitempty"`
	Provider    string         `json:"provider,omitempty"`
	Description string         `json:"description,omitempty"`
	Amount      float64        `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Currency    Currency       `json:"currency,omitempty" validate:"omitempty,oneof=USD EUR GBP KES TZS UGX NGN"`
	Level       EducationLevel `json:"level,omitempty" validate:"omitempty,oneof=certificate diploma bachelors masters phd"`
	Country     string         `json:"country,omitempty"`
	URL         string         `json:"url,omitempty" validate:"omitempty,url"`
	Deadline    *Date          `json:"deadline,omitempty"`
	Status      PublishStatus  `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
}

// CreateArticleParams are the fields for a new article
type CreateArticleParams struct {
	Title  string        `json:"title" validate:"required"`
	Body   string        `json:"body" validate:"required"`
	Tags   []string      `json:"tags,omitempty"`
	Status PublishStatus `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`

	Image *Attachment `json:"-"`
}

// UpdateArticleParams are the fields to change on an article
type UpdateArticleParams struct {
	Title  string        `json:"title,omitempty"`
	Body   string        `json:"body,omitempty"`
	Tags   []string      `json:"tags,omitempty"`
	Status PublishStatus `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`

	Image *Attachment `json:"-"`
}

// CreateVideoParams are the fields for a new video. Media above the direct
// upload limit is sent through the chunked uploader automatically.
type CreateVideoParams struct {
	Title       string        `json:"title" validate:"required"`
	Description string        `json:"description,omitempty"`
	URL         string        `json:"url,omitempty" validate:"omitempty,url"`
	Duration    int           `json:"duration,omitempty" validate:"omitempty,gte=0"`
	Tags        []string      `json:"tags,omitempty"`
	Status      PublishStatus `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
	FileID      string        `json:"fileId,omitempty"`

	Media     *Attachment `json:"-"`
	Thumbnail *Attachment `json:"-"`
}

// UpdateVideoParams are the fields to change on a video
type UpdateVideoParams struct {
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	URL         string        `json:"url,omitempty" validate:"omitempty,url"`
	Duration    int           `json:"duration,omitempty" validate:"omitempty,gte=0"`
	Tags        []string      `json:"tags,omitempty"`
	Status      PublishStatus `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
	FileID      string        `json:"fileId,omitempty"`

	Media     *Attachment `json:"-"`
	Thumbnail *Attachment `json:"-"`
}

// CreateUserParams are the fields for a new user
type CreateUserParams struct {
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Role     UserRole `json:"role,omitempty" validate:"omitempty,oneof=admin editor member"`

	Avatar *Attachment `json:"-"`
}

// UpdateUserParams are the fields to change on a user
type UpdateUserParams struct {
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty" validate:"omitempty,email"`
	Password string   `json:"password,omitempty" validate:"omitempty,min=8"`
	Role     UserRole `json:"role,omitempty" validate:"omitempty,oneof=admin editor member"`

	Avatar *Attachment `json:"-"`
}

// CreateCompanyParams are the fields for a new company
type CreateCompanyParams struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	Location    string `json:"location,omitempty"`

	Logo *Attachment `json:"-"`
}

// UpdateCompanyParams are the fields to change on a company
type UpdateCompanyParams struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	Location    string `json:"location,omitempty"`

	Logo *Attachment `json:"-"`
}

// CreatePlanParams are the fields for a new subscription plan
type CreatePlanParams struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty"`
	Price       float64         `json:"price" validate:"gte=0"`
	Currency    Currency        `json:"currency" validate:"required,oneof=USD EUR GBP KES TZS UGX NGN"`
	Interval    BillingInterval `json:"interval" validate:"required,oneof=monthly yearly"`
	Features    []string        `json:"features,omitempty"`
	Active      bool            `json:"active,omitempty"`
}

// UpdatePlanParams are the fields to change on a plan
type UpdatePlanParams struct {
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	Price       *float64        `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency    Currency        `json:"currency,omitempty" validate:"omitempty,oneof=USD EUR GBP KES TZS UGX NGN"`
	Interval    BillingInterval `json:"interval,omitempty" validate:"omitempty,oneof=monthly yearly"`
	Features    []string        `json:"features,omitempty"`
	Active      *bool           `json:"active,omitempty"`
}

// CreateSubscriptionParams subscribes a user to a plan
type CreateSubscriptionParams struct {
	UserID string `json:"userId" validate:"required"`
	PlanID string `json:"planId" validate:"required"`
}

// formFromParams renders a params struct as a multipart form. Scalar fields
// become plain form values; arrays and objects are JSON-encoded strings,
// which is how the backend expects tag lists in multipart bodies.
func formFromParams(params interface{}, files map[string]*Attachment) (*transport.Form, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal params")
	}

	var members map[string]interface{}
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, errors.Wrap(err, "failed to flatten params")
	}

	form := &transport.Form{Fields: make(map[string]string)}
	for k, v := range members {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			form.Fields[k] = val
		case bool:
			if val {
				form.Fields[k] = "true"
			} else {
				form.Fields[k] = "false"
			}
		case float64:
			encoded, _ := json.Marshal(val)
			form.Fields[k] = string(encoded)
		default:
			encoded, err := json.Marshal(val)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to encode field %q", k)
			}
			form.Fields[k] = string(encoded)
		}
	}

	for field, att := range files {
		if att == nil {
			continue
		}
		form.Files = append(form.Files, transport.FormFile{
			Field:    field,
			FileName: att.Name,
			Content:  att.Content,
		})
	}

	return form, nil
}
