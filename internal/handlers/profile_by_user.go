package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/smshozab/ConnectHub-Pro/internal/jwt"
	"github.com/smshozab/ConnectHub-Pro/internal/logger"
	"github.com/smshozab/ConnectHub-Pro/internal/models"
	"github.com/smshozab/ConnectHub-Pro/internal/services"
)

// ProfileByUserReader defines the interface that the service must implement.
type ProfileByUserReader interface {
	GetBusinessProfileByUser(ctx context.Context, userID int64) (*models.BusinessProfileDB, error)
	GetProfessionalProfileByUser(ctx context.Context, userID int64) (*models.ProfessionalProfileDB, error)
}

// NewBusinessProfileByUserHandler returns an HTTP handler for fetching a
// business profile by owner id. Only the owner may fetch it.
// @Summary Get a business profile by owner
// @Description Returns the business profile owned by the given user. The caller must be that user.
// @Tags profiles
// @Produce json
// @Param userId path int true "Owner user id"
// @Success 200 {object} handlers.Response "The profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Router /profiles/business/user/{userId} [get]
// @Security BearerAuth
func NewBusinessProfileByUserHandler(svc ProfileByUserReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, userID := ownerFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		profile, err := svc.GetBusinessProfileByUser(r.Context(), userID)
		if err != nil {
			writeProfileByUserError(w, userID, err)
			return
		}
		writeData(w, http.StatusOK, profile)
	}
}

// NewProfessionalProfileByUserHandler returns an HTTP handler for fetching
// a professional profile by owner id. Only the owner may fetch it.
// @Summary Get a professional profile by owner
// @Description Returns the professional profile owned by the given user. The caller must be that user.
// @Tags profiles
// @Produce json
// @Param userId path int true "Owner user id"
// @Success 200 {object} handlers.Response "The profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Router /profiles/professional/user/{userId} [get]
// @Security BearerAuth
func NewProfessionalProfileByUserHandler(svc ProfileByUserReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, userID := ownerFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		profile, err := svc.GetProfessionalProfileByUser(r.Context(), userID)
		if err != nil {
			writeProfileByUserError(w, userID, err)
			return
		}
		writeData(w, http.StatusOK, profile)
	}
}

// ownerFromRequest resolves the claims and the userId path parameter,
// enforcing that the caller is the addressed owner. On failure the
// response is already written and claims is nil.
func ownerFromRequest(w http.ResponseWriter, r *http.Request, tokener Tokener) (claims *jwt.Claims, userID int64) {
	c := getClaims(w, r, tokener)
	if c == nil {
		return nil, 0
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return nil, 0
	}
	if c.UserID != userID {
		writeError(w, http.StatusForbidden, "Access denied")
		return nil, 0
	}
	return c, userID
}

func writeProfileByUserError(w http.ResponseWriter, userID int64, err error) {
	switch {
	case errors.Is(err, services.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, "Profile not found")
	default:
		logger.Log.Errorw("failed to get profile by user", "user_id", userID, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
