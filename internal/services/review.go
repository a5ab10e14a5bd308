package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/smshozab/ConnectHub-Pro/internal/logger"
	"github.com/smshozab/ConnectHub-Pro/internal/models"
)

// Review page bounds.
const (
	DefaultReviewLimit = 10
	MaxReviewLimit     = 50
)

// ReviewReader defines read operations for reviews.
type ReviewReader interface {
	GetByReviewerAndBusiness(ctx context.Context, reviewerID, businessID int64) (*models.ReviewDB, error)
	ListByBusiness(ctx context.Context, businessID int64, limit, offset int) ([]models.ReviewWithAuthor, int, error)
}

// ReviewWriter defines write operations for reviews.
type ReviewWriter interface {
	Save(ctx context.Context, reviewerID, businessID int64, rating int, reviewText string) (int64, error)
}

// ReviewedBusinessReader checks that the review target exists.
type ReviewedBusinessReader interface {
	GetByID(ctx context.Context, id int64) (*models.BusinessListing, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ReviewService owns the rating bounds, the one-review-per-pair rule
// and review-created event publishing.
type ReviewService struct {
	reader      ReviewReader
	writer      ReviewWriter
	businesses  ReviewedBusinessReader
	kafkaWriter KafkaWriter
}

// NewReviewService creates a new ReviewService instance.
func NewReviewService(reader ReviewReader, writer ReviewWriter, businesses ReviewedBusinessReader, kafkaWriter KafkaWriter) *ReviewService {
	return &ReviewService{
		reader:      reader,
		writer:      writer,
		businesses:  businesses,
		kafkaWriter: kafkaWriter,
	}
}

// Add creates a review by the authenticated reviewer. Rating bounds are
// checked before any storage access.
func (svc *ReviewService) Add(ctx context.Context, reviewerID, businessID int64, rating int, reviewText string) (int64, error) {
	if rating < models.MinRating || rating > models.MaxRating {
		return 0, ErrRatingOutOfRange
	}

	business, err := svc.businesses.GetByID(ctx, businessID)
	if err != nil {
		logger.Log.Errorw("failed to check business exists", "business_id", businessID, "err", err)
		return 0, err
	}
	if business == nil {
		return 0, ErrBusinessNotFound
	}

	existing, err := svc.reader.GetByReviewerAndBusiness(ctx, reviewerID, businessID)
	if err != nil {
		logger.Log.Errorw("failed to check existing review", "reviewer_id", reviewerID, "business_id", businessID, "err", err)
		return 0, err
	}
	if existing != nil {
		return 0, ErrAlreadyReviewed
	}

	id, err := svc.writer.Save(ctx, reviewerID, businessID, rating, reviewText)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrAlreadyReviewed
		}
		logger.Log.Errorw("failed to save review", "reviewer_id", reviewerID, "business_id", businessID, "err", err)
		return 0, err
	}

	svc.publishReviewEvent(ctx, models.ReviewEvent{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		ReviewID:   id,
		ReviewerID: reviewerID,
		BusinessID: businessID,
		Rating:     rating,
	})

	return id, nil
}

// ListForBusiness returns a page of reviews, newest first, plus
// pagination metadata.
func (svc *ReviewService) ListForBusiness(ctx context.Context, businessID int64, limit, offset int) ([]models.ReviewWithAuthor, models.Pagination, error) {
	limit = clampLimit(limit, DefaultReviewLimit, MaxReviewLimit)
	offset = clampOffset(offset)

	reviews, total, err := svc.reader.ListByBusiness(ctx, businessID, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list reviews", "business_id", businessID, "err", err)
		return nil, models.Pagination{}, err
	}

	return reviews, models.NewPagination(total, limit, offset), nil
}

// publishReviewEvent publishes the event to Kafka. Publishing is
// fire-and-forget: a missing writer or a broker error never fails the
// review write.
func (svc *ReviewService) publishReviewEvent(ctx context.Context, event models.ReviewEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal review event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.BusinessID, 10)),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish review event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("review event published", "event_id", event.EventID, "business_id", event.BusinessID)
	}
}
