package service

import (
	"context"

	"github.com/google/uuid"

	"whiskybase-backend/internal/domains/review/model"
)

type ServiceInterface interface {
	ListReviewsForWhisky(ctx context.Context, whiskyID uuid.UUID) ([]model.Review, error)
	CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error)
	UpdateReview(ctx context.Context, id uuid.UUID, req model.UpdateReviewRequest) (*model.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
}
