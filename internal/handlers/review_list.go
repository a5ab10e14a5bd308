package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/smshozab/ConnectHub-Pro/internal/logger"
	"github.com/smshozab/ConnectHub-Pro/internal/models"
)

// ReviewLister defines the interface that the service must implement.
type ReviewLister interface {
	ListForBusiness(ctx context.Context, businessID int64, limit, offset int) ([]models.ReviewWithAuthor, models.Pagination, error)
}

// ReviewListData is the payload for a review page
// swagger:model ReviewListData
type ReviewListData struct {
	// Reviews, newest first
	Reviews []models.ReviewWithAuthor `json:"reviews"`

	// Page metadata
	Pagination models.Pagination `json:"pagination"`
}

// NewReviewListHandler returns an HTTP handler for listing reviews.
// @Summary List reviews for a business
// @Description Returns a page of reviews with author names, newest first.
// @Tags reviews
// @Produce json
// @Param id path int true "Business id"
// @Param limit query int false "Page size, 1-50, default 10"
// @Param offset query int false "Page offset, default 0"
// @Success 200 {object} handlers.Response "Review page"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /businesses/{id}/reviews [get]
func NewReviewListHandler(svc ReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid business id")
			return
		}

		query := r.URL.Query()
		reviews, pagination, err := svc.ListForBusiness(r.Context(), businessID, queryInt(query.Get("limit")), queryInt(query.Get("offset")))
		if err != nil {
			logger.Log.Errorw("failed to list reviews", "business_id", businessID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if reviews == nil {
			reviews = []models.ReviewWithAuthor{}
		}

		writeData(w, http.StatusOK, ReviewListData{Reviews: reviews, Pagination: pagination})
	}
}
