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

const professionalProfileColumns = `id, user_id, title, company, experience_years, skills, bio, phone, linkedin_url, portfolio_url, hourly_rate, availability, profile_image_url, created_at, updated_at`

// ProfessionalProfileReadRepository handles professional profile read operations.
type ProfessionalProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfessionalProfileReadRepository(db *sqlx.DB) *ProfessionalProfileReadRepository {
	return &ProfessionalProfileReadRepository{db: db}
}

// GetByUserID returns the profile owned by the given user, or nil if none exists.
func (r *ProfessionalProfileReadRepository) GetByUserID(ctx context.Context, userID int64) (*models.ProfessionalProfileDB, error) {
	const query = `
		SELECT ` + professionalProfileColumns + `
		FROM professional_profiles
		WHERE user_id = $1
	`

	var profile models.ProfessionalProfileDB
	err := r.db.GetContext(ctx, &profile, query, userID)

	logger.Log.Infow("professional profile query",
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
func (r *ProfessionalProfileReadRepository) GetOwn(ctx context.Context, userID int64) (*models.ProfessionalProfileWithOwner, error) {
	const query = `
		SELECT pp.id, pp.user_id, pp.title, pp.company, pp.experience_years, pp.skills,
		       pp.bio, pp.phone, pp.linkedin_url, pp.portfolio_url, pp.hourly_rate,
		       pp.availability, pp.profile_image_url, pp.created_at, pp.updated_at,
		       u.first_name, u.last_name, u.email
		FROM professional_profiles pp
		JOIN users u ON pp.user_id = u.id
		WHERE pp.user_id = $1
	`

	var profile models.ProfessionalProfileWithOwner
	err := r.db.GetContext(ctx, &profile, query, userID)

	logger.Log.Infow("professional profile query",
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

// ProfessionalProfileWriteRepository handles professional profile write operations.
type ProfessionalProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProfessionalProfileWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfessionalProfileWriteRepository {
	return &ProfessionalProfileWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProfessionalProfileWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new profile for its user and returns the generated id.
func (r *ProfessionalProfileWriteRepository) Save(ctx context.Context, profile models.ProfessionalProfileDB) (int64, error) {
	const query = `
		INSERT INTO professional_profiles
			(user_id, title, company, experience_years, skills, bio, phone,
			 linkedin_url, portfolio_url, hourly_rate, availability, profile_image_url,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id
	`
	availability := profile.Availability
	if availability == "" {
		availability = models.AvailabilityAvailable
	}
	args := []any{
		profile.UserID, profile.Title, profile.Company, profile.ExperienceYears,
		profile.Skills, profile.Bio, profile.Phone, profile.LinkedinURL,
		profile.PortfolioURL, profile.HourlyRate, availability, profile.ProfileImageURL,
	}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow("professional profile insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{profile.UserID, profile.Title},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites only the supplied fields; nil fields keep their
// stored value via COALESCE.
func (r *ProfessionalProfileWriteRepository) Update(ctx context.Context, userID int64, update models.ProfessionalProfileUpdate) error {
	const query = `
		UPDATE professional_profiles SET
			title = COALESCE($1, title),
			company = COALESCE($2, company),
			experience_years = COALESCE($3, experience_years),
			skills = COALESCE($4, skills),
			bio = COALESCE($5, bio),
			phone = COALESCE($6, phone),
			linkedin_url = COALESCE($7, linkedin_url),
			portfolio_url = COALESCE($8, portfolio_url),
			hourly_rate = COALESCE($9, hourly_rate),
			availability = COALESCE($10, availability),
			profile_image_url = COALESCE($11, profile_image_url),
			updated_at = NOW()
		WHERE user_id = $12
	`
	args := []any{
		update.Title, update.Company, update.ExperienceYears, update.Skills,
		update.Bio, update.Phone, update.LinkedinURL, update.PortfolioURL,
		update.HourlyRate, update.Availability, update.ProfileImageURL, userID,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("professional profile update",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
