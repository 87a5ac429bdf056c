package repository

import (
	"context"

	"github.com/google/uuid"

	"whiskybase-backend/internal/domains/review/model"
)

// ReviewRepository persists reviews and exposes the raw ratings the
// aggregator works from.
type ReviewRepository interface {
	// ListForWhisky returns all reviews for a whisky, newest first.
	ListForWhisky(ctx context.Context, whiskyID uuid.UUID) ([]model.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	// ListRatings returns every overall rating currently stored for the
	// whisky, in no particular order.
	ListRatings(ctx context.Context, whiskyID uuid.UUID) ([]int, error)
	Create(ctx context.Context, rv *model.Review) error
	Update(ctx context.Context, id uuid.UUID, patch model.UpdateReviewRequest) (*model.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RatingStore is the slice of the whisky store the aggregator writes back to.
type RatingStore interface {
	UpdateRatingStats(ctx context.Context, id uuid.UUID, averageRating float64, totalReviews int) error
}
