package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/smshozab/ConnectHub-Pro/internal/logger"
)

// schema is applied once at startup, before any request is served.
// Every statement is idempotent, so restarting against an existing
// database is a no-op. The unique constraints here are the real
// enforcement for "one profile per user" and "one review per pair";
// application-level pre-checks only produce friendlier errors.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	email VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	user_type TEXT NOT NULL CHECK (user_type IN ('business', 'professional')),
	is_verified BOOLEAN NOT NULL DEFAULT FALSE,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS business_profiles (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL UNIQUE REFERENCES users (id) ON DELETE CASCADE,
	business_name TEXT NOT NULL,
	category TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	website TEXT NOT NULL DEFAULT '',
	founded_year INT NOT NULL DEFAULT 0,
	services TEXT NOT NULL DEFAULT '[]',
	specializations TEXT NOT NULL DEFAULT '[]',
	logo_url TEXT NOT NULL DEFAULT '',
	cover_image_url TEXT NOT NULL DEFAULT '',
	rating DOUBLE PRECISION NOT NULL DEFAULT 0,
	review_count INT NOT NULL DEFAULT 0,
	is_featured BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS professional_profiles (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL UNIQUE REFERENCES users (id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	company TEXT NOT NULL DEFAULT '',
	experience_years INT NOT NULL DEFAULT 0,
	skills TEXT NOT NULL DEFAULT '[]',
	bio TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	linkedin_url TEXT NOT NULL DEFAULT '',
	portfolio_url TEXT NOT NULL DEFAULT '',
	hourly_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
	availability TEXT NOT NULL DEFAULT 'available' CHECK (availability IN ('available', 'busy', 'unavailable')),
	profile_image_url TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS messages (
	id BIGSERIAL PRIMARY KEY,
	sender_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	recipient_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	subject TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL,
	is_read BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS connections (
	id BIGSERIAL PRIMARY KEY,
	requester_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	addressee_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted', 'declined')),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (requester_id, addressee_id)
);

CREATE TABLE IF NOT EXISTS reviews (
	id BIGSERIAL PRIMARY KEY,
	reviewer_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	business_id BIGINT NOT NULL REFERENCES business_profiles (id) ON DELETE CASCADE,
	rating INT NOT NULL CHECK (rating >= 1 AND rating <= 5),
	review_text TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (reviewer_id, business_id)
);
`

// Bootstrap creates the schema if it does not exist yet.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		logger.Log.Errorw("schema bootstrap failed", "error", err)
		return err
	}
	logger.Log.Info("database schema ready")
	return nil
}
