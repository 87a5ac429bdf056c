package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"whiskybase-backend/internal/domains/review/model"
)

// MemoryRepository is an in-memory ReviewRepository used by tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	reviews map[uuid.UUID]model.Review
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		reviews: make(map[uuid.UUID]model.Review),
	}
}

func (r *MemoryRepository) ListForWhisky(ctx context.Context, whiskyID uuid.UUID) ([]model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := []model.Review{}
	for _, rv := range r.reviews {
		if rv.WhiskyID == whiskyID {
			reviews = append(reviews, rv)
		}
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].CreatedAt.After(reviews[j].CreatedAt) })
	return reviews, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rv, ok := r.reviews[id]
	if !ok {
		return nil, model.ErrReviewNotFound
	}
	return &rv, nil
}

func (r *MemoryRepository) ListRatings(ctx context.Context, whiskyID uuid.UUID) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ratings := []int{}
	for _, rv := range r.reviews {
		if rv.WhiskyID == whiskyID {
			ratings = append(ratings, rv.Rating)
		}
	}
	return ratings, nil
}

func (r *MemoryRepository) Create(ctx context.Context, rv *model.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews[rv.ID] = *rv
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, id uuid.UUID, patch model.UpdateReviewRequest) (*model.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rv, ok := r.reviews[id]
	if !ok {
		return nil, model.ErrReviewNotFound
	}

	if patch.Username != nil {
		rv.Username = *patch.Username
	}
	if patch.Rating != nil {
		rv.Rating = *patch.Rating
	}
	if patch.Title != nil {
		rv.Title = *patch.Title
	}
	if patch.Comment != nil {
		rv.Comment = *patch.Comment
	}
	if patch.Nose != nil {
		rv.Nose = patch.Nose
	}
	if patch.Palate != nil {
		rv.Palate = patch.Palate
	}
	if patch.Finish != nil {
		rv.Finish = patch.Finish
	}
	if patch.Value != nil {
		rv.Value = patch.Value
	}

	r.reviews[id] = rv
	return &rv, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return model.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}
