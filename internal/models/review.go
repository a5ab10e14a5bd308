package models

import "time"

// Rating bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5
)

// ReviewDB represents a review row. At most one exists per
// (reviewer, business) pair, enforced by a unique constraint.
type ReviewDB struct {
	ID         int64     `json:"id" db:"id"`
	ReviewerID int64     `json:"reviewerId" db:"reviewer_id"`
	BusinessID int64     `json:"businessId" db:"business_id"`
	Rating     int       `json:"rating" db:"rating"`
	ReviewText string    `json:"reviewText" db:"review_text"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// ReviewWithAuthor is a review joined with the reviewer's name.
type ReviewWithAuthor struct {
	ReviewDB
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
}

// ReviewEvent is the payload published to Kafka when a review is created.
type ReviewEvent struct {
	EventID    string `json:"event_id"`    // Unique identifier of the event
	Timestamp  int64  `json:"timestamp"`   // Unix timestamp (seconds) of the write
	ReviewID   int64  `json:"review_id"`   // Newly created review
	ReviewerID int64  `json:"reviewer_id"` // Authenticated author
	BusinessID int64  `json:"business_id"` // Reviewed business profile
	Rating     int    `json:"rating"`      // Rating value, 1..5
}
