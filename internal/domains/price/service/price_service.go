package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"whiskybase-backend/internal/domains/price/model"
	"whiskybase-backend/internal/domains/price/repository"
)

type priceService struct {
	repo repository.PriceRepository
}

func NewPriceService(repo repository.PriceRepository) ServiceInterface {
	return &priceService{repo: repo}
}

func (s *priceService) ListPricesForWhisky(ctx context.Context, whiskyID uuid.UUID) ([]model.Price, error) {
	prices, err := s.repo.ListForWhisky(ctx, whiskyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}
	return prices, nil
}

func (s *priceService) CreatePrice(ctx context.Context, req model.CreatePriceRequest) (*model.Price, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := req.ToPrice(time.Now().UTC())

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create price: %w", err)
	}

	return p, nil
}

func (s *priceService) UpdatePrice(ctx context.Context, id uuid.UUID, req model.UpdatePriceRequest) (*model.Price, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.Update(ctx, id, req, time.Now().UTC())
	if err != nil {
		if err == model.ErrPriceNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update price: %w", err)
	}

	return p, nil
}

func (s *priceService) DeletePrice(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == model.ErrPriceNotFound {
			return err
		}
		return fmt.Errorf("failed to delete price: %w", err)
	}
	return nil
}
