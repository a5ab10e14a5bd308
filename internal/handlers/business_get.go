package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/smshozab/ConnectHub-Pro/internal/logger"
	"github.com/smshozab/ConnectHub-Pro/internal/models"
	"github.com/smshozab/ConnectHub-Pro/internal/services"
)

// BusinessGetter defines the interface that the service must implement.
type BusinessGetter interface {
	Get(ctx context.Context, id int64) (*models.BusinessListing, []models.ReviewWithAuthor, error)
}

// BusinessDetailData is the payload for a business detail view
// swagger:model BusinessDetailData
type BusinessDetailData struct {
	// The business with live aggregates
	Business *models.BusinessListing `json:"business"`

	// Up to ten most recent reviews
	RecentReviews []models.ReviewWithAuthor `json:"recentReviews"`
}

// NewBusinessGetHandler returns an HTTP handler for the business detail view.
// @Summary Get a business
// @Description Returns one business with its review aggregates and up to ten recent reviews.
// @Tags businesses
// @Produce json
// @Param id path int true "Business id"
// @Success 200 {object} handlers.Response "Business detail"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Business not found"
// @Router /businesses/{id} [get]
func NewBusinessGetHandler(svc BusinessGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid business id")
			return
		}

		listing, reviews, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBusinessNotFound):
				writeError(w, http.StatusNotFound, "Business not found")
			default:
				logger.Log.Errorw("failed to get business", "business_id", id, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		if reviews == nil {
			reviews = []models.ReviewWithAuthor{}
		}

		writeData(w, http.StatusOK, BusinessDetailData{Business: listing, RecentReviews: reviews})
	}
}
