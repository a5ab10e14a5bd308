package services

import (
	"context"

	"github.com/smshozab/ConnectHub-Pro/internal/logger"
	"github.com/smshozab/ConnectHub-Pro/internal/models"
)

// Listing page bounds.
const (
	DefaultBusinessLimit = 20
	MaxBusinessLimit     = 100
	recentReviewsLimit   = 10
)

// BusinessDirectoryReader defines the listing queries over business profiles.
type BusinessDirectoryReader interface {
	List(ctx context.Context, filter models.BusinessFilter) ([]models.BusinessListing, int, error)
	GetByID(ctx context.Context, id int64) (*models.BusinessListing, error)
	ListCategories(ctx context.Context) ([]models.CategoryCount, error)
}

// RecentReviewsReader fetches reviews for the business detail view.
type RecentReviewsReader interface {
	ListByBusiness(ctx context.Context, businessID int64, limit, offset int) ([]models.ReviewWithAuthor, int, error)
}

// BusinessService serves the public directory: filtered listings,
// detail views and category counts.
type BusinessService struct {
	directory BusinessDirectoryReader
	reviews   RecentReviewsReader
}

// NewBusinessService creates a new BusinessService instance.
func NewBusinessService(directory BusinessDirectoryReader, reviews RecentReviewsReader) *BusinessService {
	return &BusinessService{
		directory: directory,
		reviews:   reviews,
	}
}

// List returns a page of listings under the given filter plus
// pagination metadata consistent with the same filter.
func (svc *BusinessService) List(ctx context.Context, filter models.BusinessFilter) ([]models.BusinessListing, models.Pagination, error) {
	filter.Limit = clampLimit(filter.Limit, DefaultBusinessLimit, MaxBusinessLimit)
	filter.Offset = clampOffset(filter.Offset)

	listings, total, err := svc.directory.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list businesses", "err", err)
		return nil, models.Pagination{}, err
	}

	return listings, models.NewPagination(total, filter.Limit, filter.Offset), nil
}

// Get returns a single listing with its ten most recent reviews.
func (svc *BusinessService) Get(ctx context.Context, id int64) (*models.BusinessListing, []models.ReviewWithAuthor, error) {
	listing, err := svc.directory.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get business", "business_id", id, "err", err)
		return nil, nil, err
	}
	if listing == nil {
		return nil, nil, ErrBusinessNotFound
	}

	reviews, _, err := svc.reviews.ListByBusiness(ctx, id, recentReviewsLimit, 0)
	if err != nil {
		logger.Log.Errorw("failed to list recent reviews", "business_id", id, "err", err)
		return nil, nil, err
	}

	return listing, reviews, nil
}

// Categories returns the distinct categories with per-category counts.
func (svc *BusinessService) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	categories, err := svc.directory.ListCategories(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "err", err)
		return nil, err
	}
	return categories, nil
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
