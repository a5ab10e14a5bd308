package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/smshozab/ConnectHub-Pro/internal/logger"
	"github.com/smshozab/ConnectHub-Pro/internal/models"
	"github.com/smshozab/ConnectHub-Pro/internal/services"
)

// OwnProfileReader defines the interface that the service must implement.
type OwnProfileReader interface {
	GetOwnBusinessProfile(ctx context.Context, userID int64) (*models.BusinessProfileWithOwner, error)
	GetOwnProfessionalProfile(ctx context.Context, userID int64) (*models.ProfessionalProfileWithOwner, error)
}

// NewProfileMeHandler returns an HTTP handler for the caller's own profile.
// The profile kind follows the account kind in the bearer claims.
// @Summary Get own profile
// @Description Returns the caller's profile joined with the account name and email.
// @Tags profiles
// @Produce json
// @Success 200 {object} handlers.Response "The caller's profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Profile not created yet"
// @Router /profiles/me [get]
// @Security BearerAuth
func NewProfileMeHandler(svc OwnProfileReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := getClaims(w, r, tokener)
		if claims == nil {
			return
		}

		var (
			profile any
			err     error
		)
		switch claims.UserType {
		case models.UserTypeBusiness:
			profile, err = svc.GetOwnBusinessProfile(r.Context(), claims.UserID)
		case models.UserTypeProfessional:
			profile, err = svc.GetOwnProfessionalProfile(r.Context(), claims.UserID)
		default:
			writeError(w, http.StatusForbidden, "Access denied for this account type")
			return
		}
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProfileNotFound):
				writeError(w, http.StatusNotFound, "Profile not found")
			default:
				logger.Log.Errorw("failed to get own profile", "user_id", claims.UserID, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeData(w, http.StatusOK, profile)
	}
}
