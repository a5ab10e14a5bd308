package models

import "time"

// BusinessProfileDB represents a business profile row. At most one exists
// per user, enforced by a unique constraint on user_id.
type BusinessProfileDB struct {
	ID              int64      `json:"id" db:"id"`
	UserID          int64      `json:"userId" db:"user_id"`
	BusinessName    string     `json:"businessName" db:"business_name"`
	Category        string     `json:"category" db:"category"`
	Description     string     `json:"description" db:"description"`
	Phone           string     `json:"phone" db:"phone"`
	Address         string     `json:"address" db:"address"`
	Website         string     `json:"website" db:"website"`
	FoundedYear     int        `json:"foundedYear" db:"founded_year"`
	Services        StringList `json:"services" db:"services"`
	Specializations StringList `json:"specializations" db:"specializations"`
	LogoURL         string     `json:"logoUrl" db:"logo_url"`
	CoverImageURL   string     `json:"coverImageUrl" db:"cover_image_url"`
	Rating          float64    `json:"rating" db:"rating"`           // cached aggregate, recomputed on review writes
	ReviewCount     int        `json:"reviewCount" db:"review_count"` // cached aggregate, recomputed on review writes
	IsFeatured      bool       `json:"isFeatured" db:"is_featured"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// BusinessProfileWithOwner is a profile row joined with the owning user.
type BusinessProfileWithOwner struct {
	BusinessProfileDB
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
}

// BusinessListing is a directory entry: the profile joined with its owner
// and the live review aggregates. avg_rating is 0 when no reviews exist.
type BusinessListing struct {
	ID              int64      `json:"id" db:"id"`
	UserID          int64      `json:"userId" db:"user_id"`
	BusinessName    string     `json:"businessName" db:"business_name"`
	Category        string     `json:"category" db:"category"`
	Description     string     `json:"description" db:"description"`
	Phone           string     `json:"phone" db:"phone"`
	Address         string     `json:"address" db:"address"`
	Website         string     `json:"website" db:"website"`
	FoundedYear     int        `json:"foundedYear" db:"founded_year"`
	Services        StringList `json:"services" db:"services"`
	Specializations StringList `json:"specializations" db:"specializations"`
	LogoURL         string     `json:"logoUrl" db:"logo_url"`
	CoverImageURL   string     `json:"coverImageUrl" db:"cover_image_url"`
	IsFeatured      bool       `json:"isFeatured" db:"is_featured"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
	FirstName       string     `json:"firstName" db:"first_name"`
	LastName        string     `json:"lastName" db:"last_name"`
	Email           string     `json:"email" db:"email"`
	ReviewCount     int        `json:"review_count" db:"review_count"`
	AvgRating       float64    `json:"avg_rating" db:"avg_rating"`
}

// BusinessProfileUpdate is a partial update: nil fields keep their stored
// value (COALESCE semantics), set fields overwrite it.
type BusinessProfileUpdate struct {
	BusinessName    *string     `json:"businessName"`
	Category        *string     `json:"category"`
	Description     *string     `json:"description"`
	Phone           *string     `json:"phone"`
	Address         *string     `json:"address"`
	Website         *string     `json:"website"`
	FoundedYear     *int        `json:"foundedYear"`
	Services        *StringList `json:"services"`
	Specializations *StringList `json:"specializations"`
	LogoURL         *string     `json:"logoUrl"`
	CoverImageURL   *string     `json:"coverImageUrl"`
}

// BusinessFilter carries the optional listing filters and pagination.
type BusinessFilter struct {
	Category  string
	Search    string
	MinRating float64
	Limit     int
	Offset    int
}

// CategoryCount is a distinct category with the number of active businesses in it.
type CategoryCount struct {
	Category string `json:"category" db:"category"`
	Count    int    `json:"count" db:"count"`
}
