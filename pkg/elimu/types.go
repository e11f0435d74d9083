package elimu

import (
	"time"
)

// Pagination describes the slice of a collection a list response covers
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Book represents a book in the content catalog
type Book struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	AuthorID    string        `json:"authorId"`
	Author      *Author       `json:"author,omitempty"`
	Tags        StringList    `json:"tags,omitempty"`
	Language    string        `json:"language"`
	Pages       int           `json:"pages"`
	Price       float64       `json:"price"`
	Currency    Currency      `json:"currency"`
	Status      PublishStatus `json:"status"`
	CoverURL    string        `json:"coverUrl"`
	FileURL     string        `json:"fileUrl"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Author represents a book author
type Author struct {
	ID        string    `json:"id"`
	PenName   string    `json:"penName"`
	Bio       string    `json:"bio"`
	PhotoURL  string    `json:"photoUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// Job represents a job posting
type Job struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	CompanyID   string        `json:"companyId"`
	Company     *Company      `json:"company,omitempty"`
	Type        JobType       `json:"type"`
	Location    string        `json:"location"`
	Remote      bool          `json:"remote"`
	SalaryMin   float64       `json:"salaryMin"`
	SalaryMax   float64       `json:"salaryMax"`
	Currency    Currency      `json:"currency"`
	Deadline    Date          `json:"deadline"`
	Tags        StringList    `json:"tags,omitempty"`
	Status      PublishStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Scholarship represents a scholarship listing
type Scholarship struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Provider    string         `json:"provider"`
	Description string         `json:"description"`
	Amount      float64        `json:"amount"`
	Currency    Currency       `json:"currency"`
	Level       EducationLevel `json:"level"`
	Country     string         `json:"country"`
	URL         string         `json:"url"`
	Deadline    Date           `json:"deadline"`
	Status      PublishStatus  `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Article represents an editorial article
type Article struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Body        string        `json:"body"`
	ImageURL    string        `json:"imageUrl"`
	Tags        StringList    `json:"tags,omitempty"`
	Status      PublishStatus `json:"status"`
	PublishedAt *time.Time    `json:"publishedAt,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Video represents a video lesson
type Video struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	URL          string        `json:"url"`
	ThumbnailURL string        `json:"thumbnailUrl"`
	Duration     int           `json:"duration"`
	Tags         StringList    `json:"tags,omitempty"`
	Status       PublishStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// User represents a platform user
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// Company represents an employer on the job board
type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	Location    string    `json:"location"`
	LogoURL     string    `json:"logoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Plan represents a subscription plan
type Plan struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Currency    Currency        `json:"currency"`
	Interval    BillingInterval `json:"interval"`
	Features    StringList      `json:"features,omitempty"`
	Active      bool            `json:"active"`
}

// Subscription represents a user's subscription to a plan
type Subscription struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	PlanID    string             `json:"planId"`
	User      *User              `json:"user,omitempty"`
	Plan      *Plan              `json:"plan,omitempty"`
	Status    SubscriptionStatus `json:"status"`
	StartedAt time.Time          `json:"startedAt"`
	ExpiresAt *time.Time         `json:"expiresAt,omitempty"`
}

// Session is the public view of the authenticated session
type Session struct {
	User    *User     `json:"user,omitempty"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"savedAt"`
}

// FileDescriptor is the record of an uploaded file
type FileDescriptor struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
}

// List result types

// BookList is a page of books
type BookList struct {
	Books      []*Book     `json:"books"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// AuthorList is a page of authors
type AuthorList struct {
	Authors    []*Author   `json:"authors"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// JobList is a page of jobs
type JobList struct {
	Jobs       []*Job      `json:"jobs"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ScholarshipList is a page of scholarships
type ScholarshipList struct {
	Scholarships []*Scholarship `json:"scholarships"`
	Pagination   *Pagination    `json:"pagination,omitempty"`
}

// ArticleList is a page of articles
type ArticleList struct {
	Articles   []*Article  `json:"articles"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// VideoList is a page of videos
type VideoList struct {
	Videos     []*Video    `json:"videos"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// UserList is a page of users
type UserList struct {
	Users      []*User     `json:"users"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// CompanyList is a page of companies
type CompanyList struct {
	Companies  []*Company  `json:"companies"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// PlanList is a page of plans
type PlanList struct {
	Plans      []*Plan     `json:"plans"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// SubscriptionList is a page of subscriptions
type SubscriptionList struct {
	Subscriptions []*Subscription `json:"subscriptions"`
	Pagination    *Pagination     `json:"pagination,omitempty"`
}
