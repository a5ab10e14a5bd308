package models

import "time"

// Availability states for professional profiles.
const (
	AvailabilityAvailable   = "available"
	AvailabilityBusy        = "busy"
	AvailabilityUnavailable = "unavailable"
)

// ProfessionalProfileDB represents a professional profile row. At most one
// exists per user, enforced by a unique constraint on user_id.
type ProfessionalProfileDB struct {
	ID              int64      `json:"id" db:"id"`
	UserID          int64      `json:"userId" db:"user_id"`
	Title           string     `json:"title" db:"title"`
	Company         string     `json:"company" db:"company"`
	ExperienceYears int        `json:"experienceYears" db:"experience_years"`
	Skills          StringList `json:"skills" db:"skills"`
	Bio             string     `json:"bio" db:"bio"`
	Phone           string     `json:"phone" db:"phone"`
	LinkedinURL     string     `json:"linkedinUrl" db:"linkedin_url"`
	PortfolioURL    string     `json:"portfolioUrl" db:"portfolio_url"`
	HourlyRate      float64    `json:"hourlyRate" db:"hourly_rate"`
	Availability    string     `json:"availability" db:"availability"`
	ProfileImageURL string     `json:"profileImageUrl" db:"profile_image_url"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// ProfessionalProfileWithOwner is a profile row joined with the owning user.
type ProfessionalProfileWithOwner struct {
	ProfessionalProfileDB
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
}

// ProfessionalProfileUpdate is a partial update with COALESCE semantics.
type ProfessionalProfileUpdate struct {
	Title           *string     `json:"title"`
	Company         *string     `json:"company"`
	ExperienceYears *int        `json:"experienceYears"`
	Skills          *StringList `json:"skills"`
	Bio             *string     `json:"bio"`
	Phone           *string     `json:"phone"`
	LinkedinURL     *string     `json:"linkedinUrl"`
	PortfolioURL    *string     `json:"portfolioUrl"`
	HourlyRate      *float64    `json:"hourlyRate"`
	Availability    *string     `json:"availability"`
	ProfileImageURL *string     `json:"profileImageUrl"`
}
