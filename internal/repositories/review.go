package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/smshozab/ConnectHub-Pro/internal/logger"
	"github.com/smshozab/ConnectHub-Pro/internal/models"
)

// ReviewReadRepository handles review read operations.
type ReviewReadRepository struct {
	db *sqlx.DB
}

func NewReviewReadRepository(db *sqlx.DB) *ReviewReadRepository {
	return &ReviewReadRepository{db: db}
}

// GetByReviewerAndBusiness returns the review for the pair, or nil if none exists.
func (r *ReviewReadRepository) GetByReviewerAndBusiness(ctx context.Context, reviewerID, businessID int64) (*models.ReviewDB, error) {
	const query = `
		SELECT id, reviewer_id, business_id, rating, review_text, created_at
		FROM reviews
		WHERE reviewer_id = $1 AND business_id = $2
	`

	var review models.ReviewDB
	err := r.db.GetContext(ctx, &review, query, reviewerID, businessID)

	logger.Log.Infow("review query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reviewerID, businessID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByBusiness returns a page of reviews with the reviewer's name,
// newest first, plus the total number of reviews for the business.
func (r *ReviewReadRepository) ListByBusiness(ctx context.Context, businessID int64, limit, offset int) ([]models.ReviewWithAuthor, int, error) {
	const countQuery = `SELECT COUNT(*) FROM reviews WHERE business_id = $1`

	var total int
	err := r.db.GetContext(ctx, &total, countQuery, businessID)

	logger.Log.Infow("review count query",
		"query", countQuery,
		"args", []any{businessID},
		"result", total,
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	const query = `
		SELECT r.id, r.reviewer_id, r.business_id, r.rating, r.review_text, r.created_at,
		       u.first_name, u.last_name
		FROM reviews r
		JOIN users u ON r.reviewer_id = u.id
		WHERE r.business_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3
	`

	reviews := []models.ReviewWithAuthor{}
	err = r.db.SelectContext(ctx, &reviews, query, businessID, limit, offset)

	logger.Log.Infow("review list query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{businessID, limit, offset},
		"rows", len(reviews),
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// ReviewWriteRepository handles review write operations.
type ReviewWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewReviewWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db, txGetter: txGetter}
}

func (r *ReviewWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a review and refreshes the cached aggregate columns on
// the reviewed profile in the same executor, so under the request
// transaction both commit or neither does. The unique constraint on
// (reviewer_id, business_id) surfaces as a driver error on duplicates.
func (r *ReviewWriteRepository) Save(ctx context.Context, reviewerID, businessID int64, rating int, reviewText string) (int64, error) {
	const insertQuery = `
		INSERT INTO reviews (reviewer_id, business_id, rating, review_text, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	exec := r.executor(ctx)

	var id int64
	err := sqlx.GetContext(ctx, exec, &id, insertQuery, reviewerID, businessID, rating, reviewText)

	logger.Log.Infow("review insert",
		"query", strings.Join(strings.Fields(insertQuery), " "),
		"args", []any{reviewerID, businessID, rating},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	const refreshQuery = `
		UPDATE business_profiles SET
			rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE business_id = $1), 0),
			review_count = (SELECT COUNT(*) FROM reviews WHERE business_id = $1),
			updated_at = NOW()
		WHERE id = $1
	`

	_, err = exec.ExecContext(ctx, refreshQuery, businessID)

	logger.Log.Infow("review aggregate refresh",
		"query", strings.Join(strings.Fields(refreshQuery), " "),
		"args", []any{businessID},
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}
