package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"whiskybase-backend/internal/domains/whisky/model"
)

// WhiskyRepository is the data-access contract for catalog items.
type WhiskyRepository interface {
	// List returns a page of whiskies sorted by name ascending, plus the
	// total number of rows. Limit and offset are passed through as given.
	List(ctx context.Context, limit, offset int) ([]model.Whisky, int, error)

	// GetByID returns the whisky or model.ErrWhiskyNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Whisky, error)

	// Search performs a case-insensitive substring match across name,
	// distillery, region and country, returning at most limit rows.
	Search(ctx context.Context, query string, limit int) ([]model.Whisky, error)

	Create(ctx context.Context, w *model.Whisky) error

	// Update applies the non-nil patch fields and refreshes updated_at.
	// Returns the updated row or model.ErrWhiskyNotFound.
	Update(ctx context.Context, id uuid.UUID, patch model.UpdateWhiskyRequest, updatedAt time.Time) (*model.Whisky, error)

	// Delete removes the whisky or returns model.ErrWhiskyNotFound.
	// Owned prices and reviews are removed by the schema's cascade rule.
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateRatingStats writes the derived aggregate back to the whisky.
	// It deliberately leaves updated_at untouched: a rating recompute is
	// maintenance, not a content edit.
	UpdateRatingStats(ctx context.Context, id uuid.UUID, averageRating float64, totalReviews int) error
}
