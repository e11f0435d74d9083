package elimu

// Resource collection names used for request paths and cache keys
const (
	ResourceBooks         = "books"
	ResourceAuthors       = "authors"
	ResourceJobs          = "jobs"
	ResourceScholarships  = "scholarships"
	ResourceArticles      = "articles"
	ResourceVideos        = "videos"
	ResourceUsers         = "users"
	ResourceCompanies     = "companies"
	ResourcePlans         = "plans"
	ResourceSubscriptions = "subscriptions"

	// resourceLogin never takes part in cache invalidation
	resourceLogin = "login"
)

// JobType enumerates employment types on job postings
type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeVolunteer  JobType = "volunteer"
)

// Currency enumerates the currencies accepted on priced resources
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyKES Currency = "KES"
	CurrencyTZS Currency = "TZS"
	CurrencyUGX Currency = "UGX"
	CurrencyNGN Currency = "NGN"
)

// PublishStatus enumerates the content lifecycle states
type PublishStatus string

const (
	StatusDraft     PublishStatus = "draft"
	StatusPublished PublishStatus = "published"
	StatusArchived  PublishStatus = "archived"
)

// UserRole enumerates platform roles
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
	RoleMember UserRole = "member"
)

// SubscriptionStatus enumerates subscription lifecycle states
type SubscriptionStatus string

const (
	SubscriptionTrial    SubscriptionStatus = "trial"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

// BillingInterval enumerates plan billing periods
type BillingInterval string

const (
	BillingMonthly BillingInterval = "monthly"
	BillingYearly  BillingInterval = "yearly"
)

// EducationLevel enumerates scholarship study levels
type EducationLevel string

const (
	LevelCertificate EducationLevel = "certificate"
	LevelDiploma     EducationLevel = "diploma"
	LevelBachelors   EducationLevel = "bachelors"
	LevelMasters     EducationLevel = "masters"
	LevelPhD         EducationLevel = "phd"
)
