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

// ProfessionalProfileCreator defines the interface that the service must implement.
type ProfessionalProfileCreator interface {
	CreateProfessionalProfile(ctx context.Context, userID int64, profile models.ProfessionalProfileDB) (int64, error)
}

// ProfessionalProfileRequest represents the JSON body for creating a professional profile
// swagger:model ProfessionalProfileRequest
type ProfessionalProfileRequest struct {
	// Professional title
	// required: true
	// default: Electrician
	Title string `json:"title"`

	// Current company
	Company string `json:"company"`

	// Years of experience
	ExperienceYears int `json:"experienceYears"`

	// Skills
	Skills models.StringList `json:"skills"`

	// Short bio
	Bio string `json:"bio"`

	// Contact phone
	Phone string `json:"phone"`

	// LinkedIn URL
	LinkedinURL string `json:"linkedinUrl"`

	// Portfolio URL
	PortfolioURL string `json:"portfolioUrl"`

	// Hourly rate
	HourlyRate float64 `json:"hourlyRate"`

	// Availability, available, busy or unavailable
	// default: available
	Availability string `json:"availability"`

	// Profile image URL
	ProfileImageURL string `json:"profileImageUrl"`
}

// NewProfessionalProfileCreateHandler returns an HTTP handler for creating
// the caller's professional profile.
// @Summary Create a professional profile
// @Description Creates the caller's professional profile. One profile per account.
// @Tags profiles
// @Accept json
// @Produce json
// @Param professionalProfileRequest body handlers.ProfessionalProfileRequest true "Professional profile"
// @Success 201 {object} handlers.Response "Profile created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not a professional account"
// @Failure 409 {object} handlers.ErrorResponse "Profile already exists"
// @Router /profiles/professional [post]
// @Security BearerAuth
func NewProfessionalProfileCreateHandler(svc ProfessionalProfileCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := getClaims(w, r, tokener)
		if claims == nil {
			return
		}
		if !requireKind(w, claims, models.UserTypeProfessional) {
			return
		}

		var req ProfessionalProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Title == "" {
			writeError(w, http.StatusBadRequest, "Title is required")
			return
		}

		id, err := svc.CreateProfessionalProfile(r.Context(), claims.UserID, models.ProfessionalProfileDB{
			Title:           req.Title,
			Company:         req.Company,
			ExperienceYears: req.ExperienceYears,
			Skills:          req.Skills,
			Bio:             req.Bio,
			Phone:           req.Phone,
			LinkedinURL:     req.LinkedinURL,
			PortfolioURL:    req.PortfolioURL,
			HourlyRate:      req.HourlyRate,
			Availability:    req.Availability,
			ProfileImageURL: req.ProfileImageURL,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProfileAlreadyExists):
				writeError(w, http.StatusConflict, "Profile already exists")
			default:
				logger.Log.Errorw("failed to create professional profile", "user_id", claims.UserID, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeData(w, http.StatusCreated, ProfileCreateData{ProfileID: id})
	}
}
