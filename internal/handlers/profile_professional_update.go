package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smshozab/ConnectHub-Pro/internal/logger"
	"github.com/smshozab/ConnectHub-Pro/internal/models"
	"github.com/smshozab/ConnectHub-Pro/internal/services"
)

// ProfessionalProfileUpdater defines the interface that the service must implement.
type ProfessionalProfileUpdater interface {
	UpdateProfessionalProfile(ctx context.Context, userID int64, update models.ProfessionalProfileUpdate) error
}

// NewProfessionalProfileUpdateHandler returns an HTTP handler for partially
// updating the caller's professional profile.
// @Summary Update a professional profile
// @Description Applies a partial update to the caller's professional profile.
// @Tags profiles
// @Accept json
// @Produce json
// @Param professionalProfileUpdate body models.ProfessionalProfileUpdate true "Fields to overwrite"
// @Success 200 {object} handlers.Response "Profile updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not a professional account"
// @Failure 404 {object} handlers.ErrorResponse "Profile not created yet"
// @Router /profiles/professional [put]
// @Security BearerAuth
func NewProfessionalProfileUpdateHandler(svc ProfessionalProfileUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := getClaims(w, r, tokener)
		if claims == nil {
			return
		}
		if !requireKind(w, claims, models.UserTypeProfessional) {
			return
		}

		var update models.ProfessionalProfileUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.UpdateProfessionalProfile(r.Context(), claims.UserID, update); err != nil {
			switch {
			case errors.Is(err, services.ErrProfileNotFound):
				writeError(w, http.StatusNotFound, "Profile not found")
			default:
				logger.Log.Errorw("failed to update professional profile", "user_id", claims.UserID, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeMessage(w, http.StatusOK, "Profile updated")
	}
}
