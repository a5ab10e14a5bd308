package handlers

import (
	"context"
	"net/http"

	"github.com/smshozab/ConnectHub-Pro/internal/logger"
	"github.com/smshozab/ConnectHub-Pro/internal/models"
)

// CategoryLister defines the interface that the service must implement.
type CategoryLister interface {
	Categories(ctx context.Context) ([]models.CategoryCount, error)
}

// CategoriesData is the payload for the category index
// swagger:model CategoriesData
type CategoriesData struct {
	// Distinct categories with active business counts, most populous first
	Categories []models.CategoryCount `json:"categories"`
}

// NewBusinessCategoriesHandler returns an HTTP handler for the category index.
// @Summary List categories
// @Description Returns the distinct business categories with per-category counts.
// @Tags businesses
// @Produce json
// @Success 200 {object} handlers.Response "Categories"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /businesses/meta/categories [get]
func NewBusinessCategoriesHandler(svc CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.Categories(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list categories", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if categories == nil {
			categories = []models.CategoryCount{}
		}

		writeData(w, http.StatusOK, CategoriesData{Categories: categories})
	}
}
