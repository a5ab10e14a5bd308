package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/smshozab/ConnectHub-Pro/internal/logger"
	"github.com/smshozab/ConnectHub-Pro/internal/models"
)

const businessProfileColumns = `id, user_id, business_name, category, description, phone, address, website, founded_year, services, specializations, logo_url, cover_image_url, rating, review_count, is_featured, created_at, updated_at`

// listingColumns deliberately excludes the cached rating/review_count
// columns; listings expose the live aggregates under the same names.
const listingColumns = `bp.id, bp.user_id, bp.business_name, bp.category, bp.description, bp.phone, bp.address, bp.website, bp.founded_year, bp.services, bp.specializations, bp.logo_url, bp.cover_image_url, bp.is_featured, bp.created_at, bp.updated_at`

// BusinessProfileReadRepository handles business profile read operations.
type BusinessProfileReadRepository struct {
	db *sqlx.DB
}

func NewBusinessProfileReadRepository(db *sqlx.DB) *BusinessProfileReadRepository {
	return &BusinessProfileReadRepository{db: db}
}

// GetByUserID returns the profile owned by the given user, or nil if none exists.
func (r *BusinessProfileReadRepository) GetByUserID(ctx context.Context, userID int64) (*models.BusinessProfileDB, error) {
	const query = `
		SELECT ` + businessProfileColumns + `
		FROM business_profiles
		WHERE user_id = $1
	`

	var profile models.BusinessProfileDB
	err := r.db.GetContext(ctx, &profile, query, userID)

	logger.Log.Infow("business profile query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetOwn returns the profile owned by the given user joined with the
// owner's name and email, or nil if none exists.
func (r *BusinessProfileReadRepository) GetOwn(ctx context.Context, userID int64) (*models.BusinessProfileWithOwner, error) {
	const query = `
		SELECT bp.id, bp.user_id, bp.business_name, bp.category, bp.description, bp.phone,
		       bp.address, bp.website, bp.founded_year, bp.services, bp.specializations,
		       bp.logo_url, bp.cover_image_url, bp.rating, bp.review_count, bp.is_featured,
		       bp.created_at, bp.updated_at,
		       u.first_name, u.last_name, u.email
		FROM business_profiles bp
		JOIN users u ON bp.user_id = u.id
		WHERE bp.user_id = $1
	`

	var profile models.BusinessProfileWithOwner
	err := r.db.GetContext(ctx, &profile, query, userID)

	logger.Log.Infow("business profile query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByID returns a single listing with live review aggregates, or nil
// when the profile is absent or its owner is inactive.
func (r *BusinessProfileReadRepository) GetByID(ctx context.Context, id int64) (*models.BusinessListing, error) {
	const query = `
		SELECT ` + listingColumns + `,
		       u.first_name, u.last_name, u.email,
		       COUNT(r.id) AS review_count,
		       COALESCE(AVG(r.rating), 0) AS avg_rating
		FROM business_profiles bp
		JOIN users u ON bp.user_id = u.id
		LEFT JOIN reviews r ON r.business_id = bp.id
		WHERE bp.id = $1 AND u.is_active = TRUE
		GROUP BY bp.id, u.id
	`

	var listing models.BusinessListing
	err := r.db.GetContext(ctx, &listing, query, id)

	logger.Log.Infow("business listing query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// List returns a page of listings matching the filter plus the total
// count under the same filter, so pagination metadata stays consistent.
// Search matches case-insensitive substrings of name, description and
// the services text; min rating is applied to the live aggregate, after
// grouping, because the rating is computed by the review join.
func (r *BusinessProfileReadRepository) List(ctx context.Context, filter models.BusinessFilter) ([]models.BusinessListing, int, error) {
	var (
		conds  []string
		having string
		args   []any
	)

	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("bp.category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(bp.business_name ILIKE $%d OR bp.description ILIKE $%d OR bp.services ILIKE $%d)", n, n, n))
	}
	if filter.MinRating > 0 {
		args = append(args, filter.MinRating)
		having = fmt.Sprintf(" HAVING COALESCE(AVG(r.rating), 0) >= $%d", len(args))
	}

	where := "WHERE u.is_active = TRUE"
	if len(conds) > 0 {
		where += " AND " + strings.Join(conds, " AND ")
	}

	grouped := `
		FROM business_profiles bp
		JOIN users u ON bp.user_id = u.id
		LEFT JOIN reviews r ON r.business_id = bp.id
		` + where + `
		GROUP BY bp.id, u.id` + having

	countQuery := `SELECT COUNT(*) FROM (SELECT bp.id ` + grouped + `) AS filtered`

	var total int
	err := r.db.GetContext(ctx, &total, countQuery, args...)

	logger.Log.Infow("business count query",
		"query", strings.Join(strings.Fields(countQuery), " "),
		"args", args,
		"result", total,
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, filter.Offset)
	dataQuery := `
		SELECT ` + listingColumns + `,
		       u.first_name, u.last_name, u.email,
		       COUNT(r.id) AS review_count,
		       COALESCE(AVG(r.rating), 0) AS avg_rating ` +
		grouped +
		fmt.Sprintf(" ORDER BY bp.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	listings := []models.BusinessListing{}
	err = r.db.SelectContext(ctx, &listings, dataQuery, args...)

	logger.Log.Infow("business list query",
		"query", strings.Join(strings.Fields(dataQuery), " "),
		"args", args,
		"rows", len(listings),
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

// ListCategories returns distinct categories of active businesses with
// a per-category count, most populous first.
func (r *BusinessProfileReadRepository) ListCategories(ctx context.Context) ([]models.CategoryCount, error) {
	const query = `
		SELECT bp.category, COUNT(*) AS count
		FROM business_profiles bp
		JOIN users u ON bp.user_id = u.id
		WHERE u.is_active = TRUE
		GROUP BY bp.category
		ORDER BY count DESC
	`

	categories := []models.CategoryCount{}
	err := r.db.SelectContext(ctx, &categories, query)

	logger.Log.Infow("category query",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(categories),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return categories, nil
}

// BusinessProfileWriteRepository handles business profile write operations.
type BusinessProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBusinessProfileWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BusinessProfileWriteRepository {
	return &BusinessProfileWriteRepository{db: db, txGetter: txGetter}
}

func (r *BusinessProfileWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new profile for its user and returns the generated id.
// The unique constraint on user_id surfaces as a driver error when a
// profile already exists.
func (r *BusinessProfileWriteRepository) Save(ctx context.Context, profile models.BusinessProfileDB) (int64, error) {
	const query = `
		INSERT INTO business_profiles
			(user_id, business_name, category, description, phone, address, website,
			 founded_year, services, specializations, logo_url, cover_image_url,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id
	`
	args := []any{
		profile.UserID, profile.BusinessName, profile.Category, profile.Description,
		profile.Phone, profile.Address, profile.Website, profile.FoundedYear,
		profile.Services, profile.Specializations, profile.LogoURL, profile.CoverImageURL,
	}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow("business profile insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{profile.UserID, profile.BusinessName, profile.Category},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites only the supplied fields; nil fields keep their
// stored value via COALESCE. Omitting a field can never null it out.
func (r *BusinessProfileWriteRepository) Update(ctx context.Context, userID int64, update models.BusinessProfileUpdate) error {
	const query = `
		UPDATE business_profiles SET
			business_name = COALESCE($1, business_name),
			category = COALESCE($2, category),
			description = COALESCE($3, description),
			phone = COALESCE($4, phone),
			address = COALESCE($5, address),
			website = COALESCE($6, website),
			founded_year = COALESCE($7, founded_year),
			services = COALESCE($8, services),
			specializations = COALESCE($9, specializations),
			logo_url = COALESCE($10, logo_url),
			cover_image_url = COALESCE($11, cover_image_url),
			updated_at = NOW()
		WHERE user_id = $12
	`
	args := []any{
		update.BusinessName, update.Category, update.Description, update.Phone,
		update.Address, update.Website, update.FoundedYear, update.Services,
		update.Specializations, update.LogoURL, update.CoverImageURL, userID,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("business profile update",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
