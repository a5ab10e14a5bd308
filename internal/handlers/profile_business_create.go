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

// BusinessProfileCreator defines the interface that the service must implement.
type BusinessProfileCreator interface {
	CreateBusinessProfile(ctx context.Context, userID int64, profile models.BusinessProfileDB) (int64, error)
}

// BusinessProfileRequest represents the JSON body for creating a business profile
// swagger:model BusinessProfileRequest
type BusinessProfileRequest struct {
	// Business name
	// required: true
	// default: Acme Plumbing
	BusinessName string `json:"businessName"`

	// Category
	// required: true
	// default: home_services
	Category string `json:"category"`

	// Description
	Description string `json:"description"`

	// Contact phone
	Phone string `json:"phone"`

	// Street address
	Address string `json:"address"`

	// Website URL
	Website string `json:"website"`

	// Year founded
	FoundedYear int `json:"foundedYear"`

	// Offered services
	Services models.StringList `json:"services"`

	// Specializations
	Specializations models.StringList `json:"specializations"`

	// Logo image URL
	LogoURL string `json:"logoUrl"`

	// Cover image URL
	CoverImageURL string `json:"coverImageUrl"`
}

// ProfileCreateData is the payload returned for a created profile
// swagger:model ProfileCreateData
type ProfileCreateData struct {
	// Id of the new profile
	ProfileID int64 `json:"profileId"`
}

// NewBusinessProfileCreateHandler returns an HTTP handler for creating
// the caller's business profile.
// @Summary Create a business profile
// @Description Creates the caller's business profile. One profile per account.
// @Tags profiles
// @Accept json
// @Produce json
// @Param businessProfileRequest body handlers.BusinessProfileRequest true "Business profile"
// @Success 201 {object} handlers.Response "Profile created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not a business account"
// @Failure 409 {object} handlers.ErrorResponse "Profile already exists"
// @Router /profiles/business [post]
// @Security BearerAuth
func NewBusinessProfileCreateHandler(svc BusinessProfileCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := getClaims(w, r, tokener)
		if claims == nil {
			return
		}
		if !requireKind(w, claims, models.UserTypeBusiness) {
			return
		}

		var req BusinessProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.BusinessName == "" || req.Category == "" {
			writeError(w, http.StatusBadRequest, "Business name and category are required")
			return
		}

		id, err := svc.CreateBusinessProfile(r.Context(), claims.UserID, models.BusinessProfileDB{
			BusinessName:    req.BusinessName,
			Category:        req.Category,
			Description:     req.Description,
			Phone:           req.Phone,
			Address:         req.Address,
			Website:         req.Website,
			FoundedYear:     req.FoundedYear,
			Services:        req.Services,
			Specializations: req.Specializations,
			LogoURL:         req.LogoURL,
			CoverImageURL:   req.CoverImageURL,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProfileAlreadyExists):
				writeError(w, http.StatusConflict, "Profile already exists")
			default:
				logger.Log.Errorw("failed to create business profile", "user_id", claims.UserID, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeData(w, http.StatusCreated, ProfileCreateData{ProfileID: id})
	}
}
