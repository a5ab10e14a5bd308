package models

import "time"

// Account kinds. Fixed at registration, no endpoint mutates them.
const (
	UserTypeBusiness     = "business"
	UserTypeProfessional = "professional"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                   // Primary key
	Email        string    `json:"email" db:"email"`             // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`         // Hashed password, never serialized
	FirstName    string    `json:"firstName" db:"first_name"`    // Given name
	LastName     string    `json:"lastName" db:"last_name"`      // Family name
	UserType     string    `json:"userType" db:"user_type"`      // business or professional
	IsVerified   bool      `json:"isVerified" db:"is_verified"`  // Email verification flag
	IsActive     bool      `json:"isActive" db:"is_active"`      // Soft-disable flag
	CreatedAt    time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
