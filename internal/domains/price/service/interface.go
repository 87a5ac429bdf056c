package service

import (
	"context"

	"github.com/google/uuid"

	"whiskybase-backend/internal/domains/price/model"
)

type ServiceInterface interface {
	ListPricesForWhisky(ctx context.Context, whiskyID uuid.UUID) ([]model.Price, error)
	CreatePrice(ctx context.Context, req model.CreatePriceRequest) (*model.Price, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, req model.UpdatePriceRequest) (*model.Price, error)
	DeletePrice(ctx context.Context, id uuid.UUID) error
}
