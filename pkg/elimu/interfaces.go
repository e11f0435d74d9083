package elimu

import (
	"context"
	"io"
)

// BookService handles the book catalog
type BookService interface {
	// List retrieves a page of books
	List(ctx context.Context, params *ListParams) (*BookList, error)

	// Get retrieves a single book by ID
	Get(ctx context.Context, bookID string) (*Book, error)

	// Create creates a new book, optionally creating its author inline
	Create(ctx context.Context, params *CreateBookParams) (*Book, error)

	// Update updates an existing book
	Update(ctx context.Context, bookID string, params *UpdateBookParams) (*Book, error)

	// Delete deletes a book
	Delete(ctx context.Context, bookID string) error
}

// AuthorService handles book authors
type AuthorService interface {
	// List retrieves a page of authors
	List(ctx context.Context, params *ListParams) (*AuthorList, error)

	// Get retrieves a single author by ID
	Get(ctx context.Context, authorID string) (*Author, error)

	// Create creates a new author
	Create(ctx context.Context, params *CreateAuthorParams) (*Author, error)

	// Update updates an existing author
	Update(ctx context.Context, authorID string, params *UpdateAuthorParams) (*Author, error)

	// Delete deletes an author
	Delete(ctx context.Context, authorID string) error
}

// JobService handles job postings
type JobService interface {
	// List retrieves a page of jobs
	List(ctx context.Context, params *ListParams) (*JobList, error)

	// Get retrieves a single job by ID
	Get(ctx context.Context, jobID string) (*Job, error)

	// Create creates a new job posting
	Create(ctx context.Context, params *CreateJobParams) (*Job, error)

	// Update updates an existing job posting
	Update(ctx context.Context, jobID string, params *UpdateJobParams) (*Job, error)

	// Delete deletes a job posting
	Delete(ctx context.Context, jobID string) error
}

// ScholarshipService handles scholarship listings
type ScholarshipService interface {
	// List retrieves a page of scholarships
	List(ctx context.Context, params *ListParams) (*ScholarshipList, error)

	// Get retrieves a single scholarship by ID
	Get(ctx context.Context, scholarshipID string) (*Scholarship, error)

	// Create creates a new scholarship
	Create(ctx context.Context, params *CreateScholarshipParams) (*Scholarship, error)

	// Update updates an existing scholarship
	Update(ctx context.Context, scholarshipID string, params *UpdateScholarshipParams) (*Scholarship, error)

	// Delete deletes a scholarship
	Delete(ctx context.Context, scholarshipID string) error
}

// ArticleService handles editorial articles
type ArticleService interface {
	// List retrieves a page of articles
	List(ctx context.Context, params *ListParams) (*ArticleList, error)

	// Get retrieves a single article by ID
	Get(ctx context.Context, articleID string) (*Article, error)

	// Create creates a new article
	Create(ctx context.Context, params *CreateArticleParams) (*Article, error)

	// Update updates an existing article
	Update(ctx context.Context, articleID string, params *UpdateArticleParams) (*Article, error)

	// Delete deletes an article
	Delete(ctx context.Context, articleID string) error
}

// VideoService handles video lessons
type VideoService interface {
	// List retrieves a page of videos
	List(ctx context.Context, params *ListParams) (*VideoList, error)

	// Get retrieves a single video by ID
	Get(ctx context.Context, videoID string) (*Video, error)

	// Create creates a new video; large media files go through the chunked
	// uploader first and the returned descriptor is referenced here
	Create(ctx context.Context, params *CreateVideoParams) (*Video, error)

	// Update updates an existing video
	Update(ctx context.Context, videoID string, params *UpdateVideoParams) (*Video, error)

	// Delete deletes a video
	Delete(ctx context.Context, videoID string) error
}

// UserService handles platform users
type UserService interface {
	// List retrieves a page of users; a role filter narrows by UserRole
	List(ctx context.Context, params *ListParams) (*UserList, error)

	// Get retrieves a single user by ID
	Get(ctx context.Context, userID string) (*User, error)

	// Create creates a new user
	Create(ctx context.Context, params *CreateUserParams) (*User, error)

	// Update updates an existing user
	Update(ctx context.Context, userID string, params *UpdateUserParams) (*User, error)

	// Delete deletes a user
	Delete(ctx context.Context, userID string) error
}

// CompanyService handles employers on the job board
type CompanyService interface {
	// List retrieves a page of companies
	List(ctx context.Context, params *ListParams) (*CompanyList, error)

	// Get retrieves a single company by ID
	Get(ctx context.Context, companyID string) (*Company, error)

	// Create creates a new company
	Create(ctx context.Context, params *CreateCompanyParams) (*Company, error)

	// Update updates an existing company
	Update(ctx context.Context, companyID string, params *UpdateCompanyParams) (*Company, error)

	// Delete deletes a company
	Delete(ctx context.Context, companyID string) error
}

// PlanService handles subscription plans
type PlanService interface {
	// List retrieves a page of plans
	List(ctx context.Context, params *ListParams) (*PlanList, error)

	// Get retrieves a single plan by ID
	Get(ctx context.Context, planID string) (*Plan, error)

	// Create creates a new plan
	Create(ctx context.Context, params *CreatePlanParams) (*Plan, error)

	// Update updates an existing plan
	Update(ctx context.Context, planID string, params *UpdatePlanParams) (*Plan, error)

	// Delete deletes a plan
	Delete(ctx context.Context, planID string) error
}

// SubscriptionService handles user subscriptions
type SubscriptionService interface {
	// List retrieves a page of subscriptions
	List(ctx context.Context, params *ListParams) (*SubscriptionList, error)

	// Get retrieves a single subscription by ID
	Get(ctx context.Context, subscriptionID string) (*Subscription, error)

	// Create subscribes a user to a plan
	Create(ctx context.Context, params *CreateSubscriptionParams) (*Subscription, error)

	// Cancel cancels a subscription
	Cancel(ctx context.Context, subscriptionID string) (*Subscription, error)

	// Delete deletes a subscription record
	Delete(ctx context.Context, subscriptionID string) error
}

// AuthService handles authentication and the session lifecycle
type AuthService interface {
	// Login authenticates with email and password
	Login(ctx context.Context, email, password string) error

	// SetSession establishes a session from a known user and token; both
	// are required and a missing one leaves state untouched
	SetSession(user *User, token string) error

	// Logout clears the session and its persisted state
	Logout() error

	// GetSession returns the current session
	GetSession() (*Session, error)

	// SaveSession saves the session to file
	SaveSession(path string) error

	// LoadSession rehydrates the session from file, discarding it when it
	// is older than the maximum session age
	LoadSession(path string) error

	// Validate checks the session token against the backend
	Validate(ctx context.Context) error
}

// UploadService handles file uploads
type UploadService interface {
	// Upload sends a file through the chunked uploader and returns the
	// assembled-file descriptor
	Upload(ctx context.Context, r io.Reader, size int64, name string, progress func(float64)) (*FileDescriptor, error)

	// ShouldChunk reports whether a file of this size must be chunked
	// rather than attached to a single multipart request
	ShouldChunk(size int64) bool
}
