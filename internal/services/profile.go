package services

import (
	"context"

	"github.com/smshozab/ConnectHub-Pro/internal/logger"
	"github.com/smshozab/ConnectHub-Pro/internal/models"
)

// BusinessProfileReader defines read operations for business profiles.
type BusinessProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.BusinessProfileDB, error)
	GetOwn(ctx context.Context, userID int64) (*models.BusinessProfileWithOwner, error)
}

// BusinessProfileWriter defines write operations for business profiles.
type BusinessProfileWriter interface {
	Save(ctx context.Context, profile models.BusinessProfileDB) (int64, error)
	Update(ctx context.Context, userID int64, update models.BusinessProfileUpdate) error
}

// ProfessionalProfileReader defines read operations for professional profiles.
type ProfessionalProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.ProfessionalProfileDB, error)
	GetOwn(ctx context.Context, userID int64) (*models.ProfessionalProfileWithOwner, error)
}

// ProfessionalProfileWriter defines write operations for professional profiles.
type ProfessionalProfileWriter interface {
	Save(ctx context.Context, profile models.ProfessionalProfileDB) (int64, error)
	Update(ctx context.Context, userID int64, update models.ProfessionalProfileUpdate) error
}

// ProfileService owns the one-profile-per-user rule and the
// coalesce-style partial updates for both profile kinds.
type ProfileService struct {
	businessReader     BusinessProfileReader
	businessWriter     BusinessProfileWriter
	professionalReader ProfessionalProfileReader
	professionalWriter ProfessionalProfileWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(
	businessReader BusinessProfileReader,
	businessWriter BusinessProfileWriter,
	professionalReader ProfessionalProfileReader,
	professionalWriter ProfessionalProfileWriter,
) *ProfileService {
	return &ProfileService{
		businessReader:     businessReader,
		businessWriter:     businessWriter,
		professionalReader: professionalReader,
		professionalWriter: professionalWriter,
	}
}

// CreateBusinessProfile inserts the profile for the given user. The
// owner id always comes from the authenticated principal, never from
// the payload.
func (svc *ProfileService) CreateBusinessProfile(ctx context.Context, userID int64, profile models.BusinessProfileDB) (int64, error) {
	existing, err := svc.businessReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check business profile exists", "user_id", userID, "err", err)
		return 0, err
	}
	if existing != nil {
		return 0, ErrProfileAlreadyExists
	}

	profile.UserID = userID
	id, err := svc.businessWriter.Save(ctx, profile)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrProfileAlreadyExists
		}
		logger.Log.Errorw("failed to save business profile", "user_id", userID, "err", err)
		return 0, err
	}
	return id, nil
}

// CreateProfessionalProfile inserts the profile for the given user.
func (svc *ProfileService) CreateProfessionalProfile(ctx context.Context, userID int64, profile models.ProfessionalProfileDB) (int64, error) {
	existing, err := svc.professionalReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check professional profile exists", "user_id", userID, "err", err)
		return 0, err
	}
	if existing != nil {
		return 0, ErrProfileAlreadyExists
	}

	profile.UserID = userID
	id, err := svc.professionalWriter.Save(ctx, profile)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrProfileAlreadyExists
		}
		logger.Log.Errorw("failed to save professional profile", "user_id", userID, "err", err)
		return 0, err
	}
	return id, nil
}

// GetOwnBusinessProfile returns the caller's profile joined with the
// account name and email.
func (svc *ProfileService) GetOwnBusinessProfile(ctx context.Context, userID int64) (*models.BusinessProfileWithOwner, error) {
	profile, err := svc.businessReader.GetOwn(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get business profile", "user_id", userID, "err", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// GetOwnProfessionalProfile returns the caller's profile joined with
// the account name and email.
func (svc *ProfileService) GetOwnProfessionalProfile(ctx context.Context, userID int64) (*models.ProfessionalProfileWithOwner, error) {
	profile, err := svc.professionalReader.GetOwn(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get professional profile", "user_id", userID, "err", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// UpdateBusinessProfile applies a partial update. Omitted fields keep
// their stored value.
func (svc *ProfileService) UpdateBusinessProfile(ctx context.Context, userID int64, update models.BusinessProfileUpdate) error {
	existing, err := svc.businessReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check business profile exists", "user_id", userID, "err", err)
		return err
	}
	if existing == nil {
		return ErrProfileNotFound
	}

	if err := svc.businessWriter.Update(ctx, userID, update); err != nil {
		logger.Log.Errorw("failed to update business profile", "user_id", userID, "err", err)
		return err
	}
	return nil
}

// UpdateProfessionalProfile applies a partial update.
func (svc *ProfileService) UpdateProfessionalProfile(ctx context.Context, userID int64, update models.ProfessionalProfileUpdate) error {
	existing, err := svc.professionalReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check professional profile exists", "user_id", userID, "err", err)
		return err
	}
	if existing == nil {
		return ErrProfileNotFound
	}

	if err := svc.professionalWriter.Update(ctx, userID, update); err != nil {
		logger.Log.Errorw("failed to update professional profile", "user_id", userID, "err", err)
		return err
	}
	return nil
}

// GetBusinessProfileByUser fetches the profile owned by the given user.
func (svc *ProfileService) GetBusinessProfileByUser(ctx context.Context, userID int64) (*models.BusinessProfileDB, error) {
	profile, err := svc.businessReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get business profile", "user_id", userID, "err", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// GetProfessionalProfileByUser fetches the profile owned by the given user.
func (svc *ProfileService) GetProfessionalProfileByUser(ctx context.Context, userID int64) (*models.ProfessionalProfileDB, error) {
	profile, err := svc.professionalReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get professional profile", "user_id", userID, "err", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}
