package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"whiskybase-backend/internal/domains/price/model"
)

// MemoryRepository is an in-memory PriceRepository used by tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	prices map[uuid.UUID]model.Price
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		prices: make(map[uuid.UUID]model.Price),
	}
}

func (r *MemoryRepository) ListForWhisky(ctx context.Context, whiskyID uuid.UUID) ([]model.Price, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prices := []model.Price{}
	for _, p := range r.prices {
		if p.WhiskyID == whiskyID {
			prices = append(prices, p)
		}
	}
	sort.Slice(prices, func(i, j int) bool { return prices[i].Price.LessThan(prices[j].Price) })
	return prices, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Price, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.prices[id]
	if !ok {
		return nil, model.ErrPriceNotFound
	}
	return &p, nil
}

func (r *MemoryRepository) Create(ctx context.Context, p *model.Price) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prices[p.ID] = *p
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, id uuid.UUID, patch model.UpdatePriceRequest, lastChecked time.Time) (*model.Price, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.prices[id]
	if !ok {
		return nil, model.ErrPriceNotFound
	}

	if patch.Retailer != nil {
		p.Retailer = *patch.Retailer
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Currency != nil {
		p.Currency = *patch.Currency
	}
	if patch.URL != nil {
		p.URL = *patch.URL
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	if patch.Country != nil {
		p.Country = patch.Country
	}
	if patch.IsOnSale != nil {
		p.IsOnSale = *patch.IsOnSale
	}
	if patch.RegularPrice != nil {
		p.RegularPrice = patch.RegularPrice
	}
	// Refreshed regardless of which fields changed, matching the SQL backend.
	p.LastChecked = lastChecked

	r.prices[id] = p
	return &p, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.prices[id]; !ok {
		return model.ErrPriceNotFound
	}
	delete(r.prices, id)
	return nil
}
