package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/smshozab/ConnectHub-Pro/internal/logger"
	"github.com/smshozab/ConnectHub-Pro/internal/services"
)

// ReviewAdder defines the interface that the service must implement.
type ReviewAdder interface {
	Add(ctx context.Context, reviewerID, businessID int64, rating int, reviewText string) (int64, error)
}

// ReviewCreateRequest represents the JSON body for creating a review
// swagger:model ReviewCreateRequest
type ReviewCreateRequest struct {
	// Rating, 1 to 5
	// required: true
	// default: 5
	Rating int `json:"rating"`

	// Optional free-form text
	// default: Great work, on time and on budget.
	ReviewText string `json:"reviewText"`
}

// ReviewCreateData is the payload returned for a created review
// swagger:model ReviewCreateData
type ReviewCreateData struct {
	// Id of the new review
	ReviewID int64 `json:"reviewId"`
}

// NewReviewCreateHandler returns an HTTP handler for creating a review.
// @Summary Create a review
// @Description Creates one review by the authenticated caller for the given business. One review per caller per business.
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Business id"
// @Param reviewCreateRequest body handlers.ReviewCreateRequest true "Review"
// @Success 201 {object} handlers.Response "Review created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid body or rating out of range"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Business not found"
// @Failure 409 {object} handlers.ErrorResponse "Business already reviewed by caller"
// @Router /businesses/{id}/reviews [post]
// @Security BearerAuth
func NewReviewCreateHandler(svc ReviewAdder, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := getClaims(w, r, tokener)
		if claims == nil {
			return
		}

		businessID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid business id")
			return
		}

		var req ReviewCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		id, err := svc.Add(r.Context(), claims.UserID, businessID, req.Rating, req.ReviewText)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRatingOutOfRange):
				writeError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
			case errors.Is(err, services.ErrBusinessNotFound):
				writeError(w, http.StatusNotFound, "Business not found")
			case errors.Is(err, services.ErrAlreadyReviewed):
				writeError(w, http.StatusConflict, "You have already reviewed this business")
			default:
				logger.Log.Errorw("failed to create review", "business_id", businessID, "reviewer_id", claims.UserID, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeData(w, http.StatusCreated, ReviewCreateData{ReviewID: id})
	}
}
