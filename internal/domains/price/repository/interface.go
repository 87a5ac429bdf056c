package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"whiskybase-backend/internal/domains/price/model"
)

// PriceRepository persists retailer price quotes.
type PriceRepository interface {
	// ListForWhisky returns all quotes for a whisky sorted by price ascending.
	// A whisky with no quotes yields an empty slice, not an error.
	ListForWhisky(ctx context.Context, whiskyID uuid.UUID) ([]model.Price, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Price, error)
	Create(ctx context.Context, p *model.Price) error
	// Update applies the non-nil patch fields and always sets last_checked to
	// lastChecked, whatever the patch contains.
	Update(ctx context.Context, id uuid.UUID, patch model.UpdatePriceRequest, lastChecked time.Time) (*model.Price, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
