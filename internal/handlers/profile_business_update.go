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

// BusinessProfileUpdater defines the interface that the service must implement.
type BusinessProfileUpdater interface {
	UpdateBusinessProfile(ctx context.Context, userID int64, update models.BusinessProfileUpdate) error
}

// NewBusinessProfileUpdateHandler returns an HTTP handler for partially
// updating the caller's business profile. Omitted fields keep their
// stored values.
// @Summary Update a business profile
// @Description Applies a partial update to the caller's business profile.
// @Tags profiles
// @Accept json
// @Produce json
// @Param businessProfileUpdate body models.BusinessProfileUpdate true "Fields to overwrite"
// @Success 200 {object} handlers.Response "Profile updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not a business account"
// @Failure 404 {object} handlers.ErrorResponse "Profile not created yet"
// @Router /profiles/business [put]
// @Security BearerAuth
func NewBusinessProfileUpdateHandler(svc BusinessProfileUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := getClaims(w, r, tokener)
		if claims == nil {
			return
		}
		if !requireKind(w, claims, models.UserTypeBusiness) {
			return
		}

		var update models.BusinessProfileUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.UpdateBusinessProfile(r.Context(), claims.UserID, update); err != nil {
			switch {
			case errors.Is(err, services.ErrProfileNotFound):
				writeError(w, http.StatusNotFound, "Profile not found")
			default:
				logger.Log.Errorw("failed to update business profile", "user_id", claims.UserID, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeMessage(w, http.StatusOK, "Profile updated")
	}
}
