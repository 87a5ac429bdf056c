package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"whiskybase-backend/internal/domains/whisky/model"
)

// MemoryRepository is an in-memory WhiskyRepository used by tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	whiskies map[uuid.UUID]model.Whisky
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		whiskies: make(map[uuid.UUID]model.Whisky),
	}
}

func (r *MemoryRepository) List(ctx context.Context, limit, offset int) ([]model.Whisky, int, error) {
	if limit < 0 || offset < 0 {
		// The SQL backend rejects these the same way.
		return nil, 0, fmt.Errorf("invalid limit/offset: %d/%d", limit, offset)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]model.Whisky, 0, len(r.whiskies))
	for _, w := range r.whiskies {
		all = append(all, w)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	total := len(all)
	if offset >= total {
		return []model.Whisky{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Whisky, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.whiskies[id]
	if !ok {
		return nil, model.ErrWhiskyNotFound
	}
	return &w, nil
}

func (r *MemoryRepository) Search(ctx context.Context, query string, limit int) ([]model.Whisky, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(query)
	matches := make([]model.Whisky, 0, limit)
	for _, w := range r.whiskies {
		if len(matches) >= limit {
			break
		}
		if containsFold(w.Name, needle) ||
			containsFold(w.Distillery, needle) ||
			(w.Region != nil && containsFold(*w.Region, needle)) ||
			containsFold(w.Country, needle) {
			matches = append(matches, w)
		}
	}
	return matches, nil
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}

func (r *MemoryRepository) Create(ctx context.Context, w *model.Whisky) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.whiskies[w.ID] = *w
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, id uuid.UUID, patch model.UpdateWhiskyRequest, updatedAt time.Time) (*model.Whisky, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.whiskies[id]
	if !ok {
		return nil, model.ErrWhiskyNotFound
	}

	if patch.Name != nil {
		w.Name = *patch.Name
	}
	if patch.Distillery != nil {
		w.Distillery = *patch.Distillery
	}
	if patch.Country != nil {
		w.Country = *patch.Country
	}
	if patch.Region != nil {
		w.Region = patch.Region
	}
	if patch.Type != nil {
		w.Type = *patch.Type
	}
	if patch.Age != nil {
		w.Age = patch.Age
	}
	if patch.ABV != nil {
		w.ABV = *patch.ABV
	}
	if patch.Bottler != nil {
		w.Bottler = patch.Bottler
	}
	if patch.CaskType != nil {
		w.CaskType = patch.CaskType
	}
	if patch.Color != nil {
		w.Color = patch.Color
	}
	if patch.Nose != nil {
		w.Nose = patch.Nose
	}
	if patch.Palate != nil {
		w.Palate = patch.Palate
	}
	if patch.Finish != nil {
		w.Finish = patch.Finish
	}
	if patch.Description != nil {
		w.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		w.ImageURL = patch.ImageURL
	}
	if patch.Limited != nil {
		w.Limited = *patch.Limited
	}
	if patch.Discontinued != nil {
		w.Discontinued = *patch.Discontinued
	}
	if patch.ReleaseYear != nil {
		w.ReleaseYear = patch.ReleaseYear
	}
	if patch.BottleSize != nil {
		w.BottleSize = *patch.BottleSize
	}
	w.UpdatedAt = updatedAt

	r.whiskies[id] = w
	return &w, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.whiskies[id]; !ok {
		return model.ErrWhiskyNotFound
	}
	delete(r.whiskies, id)
	return nil
}

func (r *MemoryRepository) UpdateRatingStats(ctx context.Context, id uuid.UUID, averageRating float64, totalReviews int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.whiskies[id]
	if !ok {
		return model.ErrWhiskyNotFound
	}
	// updated_at intentionally untouched, matching the SQL backend.
	w.AverageRating = averageRating
	w.TotalReviews = totalReviews
	r.whiskies[id] = w
	return nil
}
