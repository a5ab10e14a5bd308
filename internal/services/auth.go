package services

import (
	"context"

	"github.com/smshozab/ConnectHub-Pro/internal/logger"
	"github.com/smshozab/ConnectHub-Pro/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash, firstName, lastName, userType string) (int64, error)
}

// TokenGenerator defines an interface for generating JWT tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64, userType string) (string, error)
}

// SessionWriter records and drops issued tokens.
type SessionWriter interface {
	Save(ctx context.Context, userID int64, token string) error
	Delete(ctx context.Context, userID int64) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	jwt      TokenGenerator
	sessions SessionWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator, sessions SessionWriter) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		jwt:      jwt,
		sessions: sessions,
	}
}

// Register creates a user account with the given kind and returns a
// signed token plus the created user.
func (svc *AuthService) Register(ctx context.Context, email, password, firstName, lastName, userType string) (string, *models.UserDB, error) {
	if userType != models.UserTypeBusiness && userType != models.UserTypeProfessional {
		return "", nil, ErrInvalidUserType
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	id, err := svc.writer.Save(ctx, email, string(hashedPassword), firstName, lastName, userType)
	if err != nil {
		if isUniqueViolation(err) {
			return "", nil, ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, id, userType)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	svc.recordSession(ctx, id, token)

	user := &models.UserDB{
		ID:        id,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		UserType:  userType,
		IsActive:  true,
	}
	return token, user, nil
}

// Login authenticates a user and returns a signed token plus the user.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.UserType)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	svc.recordSession(ctx, user.ID, token)

	return token, user, nil
}

// Logout drops the stored session for the user.
func (svc *AuthService) Logout(ctx context.Context, userID int64) error {
	if svc.sessions == nil {
		return nil
	}
	if err := svc.sessions.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete session", "user_id", userID, "err", err)
		return err
	}
	return nil
}

// recordSession stores the issued token. Session tracking is advisory:
// a failure is logged but never blocks the login.
func (svc *AuthService) recordSession(ctx context.Context, userID int64, token string) {
	if svc.sessions == nil {
		return
	}
	if err := svc.sessions.Save(ctx, userID, token); err != nil {
		logger.Log.Errorw("failed to record session", "user_id", userID, "err", err)
	}
}
