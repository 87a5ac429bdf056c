package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"whiskybase-backend/internal/domains/review/model"
	"whiskybase-backend/internal/domains/review/repository"
)

type reviewService struct {
	repo    repository.ReviewRepository
	ratings repository.RatingStore
	// Serializes the mutate-then-recompute sequence per whisky so concurrent
	// review writes cannot interleave and persist a stale aggregate.
	locks *keyedMutex
}

func NewReviewService(repo repository.ReviewRepository, ratings repository.RatingStore) ServiceInterface {
	return &reviewService{
		repo:    repo,
		ratings: ratings,
		locks:   newKeyedMutex(),
	}
}

func (s *reviewService) ListReviewsForWhisky(ctx context.Context, whiskyID uuid.UUID) ([]model.Review, error) {
	reviews, err := s.repo.ListForWhisky(ctx, whiskyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// CreateReview inserts the review, then synchronously recomputes the whisky's
// aggregate. A recompute failure after a successful insert leaves the review
// in place with a stale aggregate and surfaces the error.
func (s *reviewService) CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rv := req.ToReview(time.Now().UTC())

	s.locks.Lock(rv.WhiskyID)
	defer s.locks.Unlock(rv.WhiskyID)

	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.recomputeRating(ctx, rv.WhiskyID); err != nil {
		return nil, err
	}

	return rv, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id uuid.UUID, req model.UpdateReviewRequest) (*model.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The owning whisky is immutable, so the existing record tells us which
	// aggregate to lock and recompute.
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == model.ErrReviewNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	s.locks.Lock(existing.WhiskyID)
	defer s.locks.Unlock(existing.WhiskyID)

	rv, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if err == model.ErrReviewNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	if err := s.recomputeRating(ctx, rv.WhiskyID); err != nil {
		return nil, err
	}

	return rv, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == model.ErrReviewNotFound {
			return err
		}
		return fmt.Errorf("failed to get review: %w", err)
	}

	s.locks.Lock(existing.WhiskyID)
	defer s.locks.Unlock(existing.WhiskyID)

	if err := s.repo.Delete(ctx, id); err != nil {
		if err == model.ErrReviewNotFound {
			return err
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return s.recomputeRating(ctx, existing.WhiskyID)
}

// recomputeRating reads every rating for the whisky and writes the aggregate
// back. No remaining reviews resets it to exactly 0/0.
func (s *reviewService) recomputeRating(ctx context.Context, whiskyID uuid.UUID) error {
	ratings, err := s.repo.ListRatings(ctx, whiskyID)
	if err != nil {
		return fmt.Errorf("failed to list ratings: %w", err)
	}

	average := 0.0
	if len(ratings) > 0 {
		sum := 0
		for _, rating := range ratings {
			sum += rating
		}
		average = roundHalfUp(float64(sum) / float64(len(ratings)))
	}

	if err := s.ratings.UpdateRatingStats(ctx, whiskyID, average, len(ratings)); err != nil {
		return fmt.Errorf("failed to update rating stats: %w", err)
	}

	return nil
}

// roundHalfUp rounds to one decimal with ties going up, so 1.25 -> 1.3 and
// an average of 4/3 -> 1.3.
func roundHalfUp(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
