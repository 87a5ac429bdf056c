package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whiskybase-backend/internal/domains/price/model"
	"whiskybase-backend/internal/domains/price/repository"
)

func validCreateRequest(whiskyID uuid.UUID, amount string) model.CreatePriceRequest {
	price := decimal.RequireFromString(amount)
	return model.CreatePriceRequest{
		WhiskyID: whiskyID,
		Retailer: "The Whisky Exchange",
		Price:    &price,
		URL:      "https://example.com/lagavulin-16",
	}
}

func TestCreatePriceAppliesDefaults(t *testing.T) {
	svc := NewPriceService(repository.NewMemoryRepository())

	p, err := svc.CreatePrice(context.Background(), validCreateRequest(uuid.New(), "89.99"))
	require.NoError(t, err)

	assert.Equal(t, model.DefaultCurrency, p.Currency)
	assert.True(t, p.InStock)
	assert.False(t, p.LastChecked.IsZero())
	assert.True(t, p.Price.Equal(decimal.RequireFromString("89.99")))
}

func TestCreatePriceKeepsExplicitValues(t *testing.T) {
	svc := NewPriceService(repository.NewMemoryRepository())

	req := validCreateRequest(uuid.New(), "74.50")
	req.Currency = "GBP"
	inStock := false
	req.InStock = &inStock

	p, err := svc.CreatePrice(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "GBP", p.Currency)
	assert.False(t, p.InStock)
}

func TestCreatePriceValidation(t *testing.T) {
	svc := NewPriceService(repository.NewMemoryRepository())
	negative := decimal.RequireFromString("-1")

	tests := []struct {
		name string
		req  model.CreatePriceRequest
	}{
		{"missing whisky", validCreateRequest(uuid.Nil, "10.00")},
		{
			"missing retailer",
			func() model.CreatePriceRequest {
				r := validCreateRequest(uuid.New(), "10.00")
				r.Retailer = ""
				return r
			}(),
		},
		{
			"missing price",
			func() model.CreatePriceRequest {
				r := validCreateRequest(uuid.New(), "10.00")
				r.Price = nil
				return r
			}(),
		},
		{
			"negative price",
			func() model.CreatePriceRequest {
				r := validCreateRequest(uuid.New(), "10.00")
				r.Price = &negative
				return r
			}(),
		},
		{
			"missing url",
			func() model.CreatePriceRequest {
				r := validCreateRequest(uuid.New(), "10.00")
				r.URL = ""
				return r
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePrice(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestListPricesSortedAscending(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewPriceService(repo)
	ctx := context.Background()
	whiskyID := uuid.New()

	for _, amount := range []string{"99.00", "79.00", "89.00"} {
		_, err := svc.CreatePrice(ctx, validCreateRequest(whiskyID, amount))
		require.NoError(t, err)
	}
	// A quote for another whisky must not leak in.
	_, err := svc.CreatePrice(ctx, validCreateRequest(uuid.New(), "1.00"))
	require.NoError(t, err)

	prices, err := svc.ListPricesForWhisky(ctx, whiskyID)
	require.NoError(t, err)
	require.Len(t, prices, 3)
	assert.True(t, prices[0].Price.Equal(decimal.RequireFromString("79.00")))
	assert.True(t, prices[1].Price.Equal(decimal.RequireFromString("89.00")))
	assert.True(t, prices[2].Price.Equal(decimal.RequireFromString("99.00")))
}

func TestListPricesEmpty(t *testing.T) {
	svc := NewPriceService(repository.NewMemoryRepository())

	prices, err := svc.ListPricesForWhisky(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, prices)
}

func TestUpdatePriceRefreshesLastChecked(t *testing.T) {
	svc := NewPriceService(repository.NewMemoryRepository())
	ctx := context.Background()

	p, err := svc.CreatePrice(ctx, validCreateRequest(uuid.New(), "50.00"))
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	// Touching only inStock still counts as a fresh observation.
	inStock := false
	updated, err := svc.UpdatePrice(ctx, p.ID, model.UpdatePriceRequest{InStock: &inStock})
	require.NoError(t, err)

	assert.False(t, updated.InStock)
	assert.True(t, updated.LastChecked.After(p.LastChecked))
	// The price itself is untouched.
	assert.True(t, updated.Price.Equal(p.Price))
}

func TestUpdatePriceNotFound(t *testing.T) {
	svc := NewPriceService(repository.NewMemoryRepository())

	retailer := "Master of Malt"
	_, err := svc.UpdatePrice(context.Background(), uuid.New(), model.UpdatePriceRequest{Retailer: &retailer})
	assert.ErrorIs(t, err, model.ErrPriceNotFound)
}

func TestDeletePrice(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewPriceService(repo)
	ctx := context.Background()
	whiskyID := uuid.New()

	p, err := svc.CreatePrice(ctx, validCreateRequest(whiskyID, "60.00"))
	require.NoError(t, err)

	require.NoError(t, svc.DeletePrice(ctx, p.ID))

	prices, err := svc.ListPricesForWhisky(ctx, whiskyID)
	require.NoError(t, err)
	assert.Empty(t, prices)
}

func TestDeletePriceNotFound(t *testing.T) {
	svc := NewPriceService(repository.NewMemoryRepository())

	err := svc.DeletePrice(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrPriceNotFound)
}
