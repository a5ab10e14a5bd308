package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error variables. Handlers switch on these to pick the HTTP status;
// anything else is treated as a storage failure.
var (
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidUserType      = errors.New("user type must be business or professional")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrBusinessNotFound     = errors.New("business not found")
	ErrAlreadyReviewed      = errors.New("business already reviewed by this user")
	ErrRatingOutOfRange     = errors.New("rating must be between 1 and 5")
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation. The constraints are the real enforcement for
// the one-profile-per-user and one-review-per-pair rules; pre-checks
// only narrow the window, they cannot close it.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
