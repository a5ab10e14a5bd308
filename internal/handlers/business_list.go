package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/smshozab/ConnectHub-Pro/internal/logger"
	"github.com/smshozab/ConnectHub-Pro/internal/models"
)

// BusinessLister defines the interface that the service must implement.
type BusinessLister interface {
	List(ctx context.Context, filter models.BusinessFilter) ([]models.BusinessListing, models.Pagination, error)
}

// BusinessListData is the payload for a directory page
// swagger:model BusinessListData
type BusinessListData struct {
	// Matching businesses, newest first
	Businesses []models.BusinessListing `json:"businesses"`

	// Page metadata under the same filter
	Pagination models.Pagination `json:"pagination"`
}

// NewBusinessListHandler returns an HTTP handler for the business directory.
// @Summary List businesses
// @Description Returns a filtered page of active businesses with live review aggregates.
// @Tags businesses
// @Produce json
// @Param category query string false "Exact category match"
// @Param search query string false "Case-insensitive substring over name, description and services"
// @Param rating query number false "Minimum average rating"
// @Param limit query int false "Page size, 1-100, default 20"
// @Param offset query int false "Page offset, default 0"
// @Success 200 {object} handlers.Response "Directory page"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /businesses [get]
func NewBusinessListHandler(svc BusinessLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := models.BusinessFilter{
			Category: query.Get("category"),
			Search:   query.Get("search"),
			Limit:    queryInt(query.Get("limit")),
			Offset:   queryInt(query.Get("offset")),
		}
		if raw := query.Get("rating"); raw != "" {
			if rating, err := strconv.ParseFloat(raw, 64); err == nil {
				filter.MinRating = rating
			}
		}

		listings, pagination, err := svc.List(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("failed to list businesses", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if listings == nil {
			listings = []models.BusinessListing{}
		}

		writeData(w, http.StatusOK, BusinessListData{Businesses: listings, Pagination: pagination})
	}
}

// queryInt parses an optional numeric query parameter. Absent or
// malformed values fall back to 0 and take the service defaults.
func queryInt(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
