package service

import (
	"context"

	"github.com/google/uuid"

	"whiskybase-backend/internal/domains/whisky/model"
)

type ServiceInterface interface {
	ListWhiskies(ctx context.Context, page, limit int) (*model.ListWhiskiesResponse, error)
	GetWhisky(ctx context.Context, id uuid.UUID) (*model.Whisky, error)
	SearchWhiskies(ctx context.Context, query string) ([]model.Whisky, error)
	CreateWhisky(ctx context.Context, req model.CreateWhiskyRequest) (*model.Whisky, error)
	UpdateWhisky(ctx context.Context, id uuid.UUID, req model.UpdateWhiskyRequest) (*model.Whisky, error)
	DeleteWhisky(ctx context.Context, id uuid.UUID) error
}
