package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"whiskybase-backend/internal/domains/whisky/model"
	"whiskybase-backend/internal/domains/whisky/repository"
)

type whiskyService struct {
	repo repository.WhiskyRepository
}

func NewWhiskyService(repo repository.WhiskyRepository) ServiceInterface {
	return &whiskyService{repo: repo}
}

// ListWhiskies pages through the catalog sorted by name. Page and limit
// arrive already defaulted by the handler; other values pass through to the
// store untouched.
func (s *whiskyService) ListWhiskies(ctx context.Context, page, limit int) (*model.ListWhiskiesResponse, error) {
	offset := (page - 1) * limit

	whiskies, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list whiskies: %w", err)
	}

	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return &model.ListWhiskiesResponse{
		Whiskies:    whiskies,
		TotalPages:  totalPages,
		CurrentPage: page,
		Total:       total,
	}, nil
}

func (s *whiskyService) GetWhisky(ctx context.Context, id uuid.UUID) (*model.Whisky, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == model.ErrWhiskyNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get whisky: %w", err)
	}
	return w, nil
}

func (s *whiskyService) SearchWhiskies(ctx context.Context, query string) ([]model.Whisky, error) {
	whiskies, err := s.repo.Search(ctx, query, model.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search whiskies: %w", err)
	}
	return whiskies, nil
}

func (s *whiskyService) CreateWhisky(ctx context.Context, req model.CreateWhiskyRequest) (*model.Whisky, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	w := req.ToWhisky(time.Now().UTC())

	if err := s.repo.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to create whisky: %w", err)
	}

	return w, nil
}

func (s *whiskyService) UpdateWhisky(ctx context.Context, id uuid.UUID, req model.UpdateWhiskyRequest) (*model.Whisky, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	w, err := s.repo.Update(ctx, id, req, time.Now().UTC())
	if err != nil {
		if err == model.ErrWhiskyNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update whisky: %w", err)
	}

	return w, nil
}

func (s *whiskyService) DeleteWhisky(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == model.ErrWhiskyNotFound {
			return err
		}
		return fmt.Errorf("failed to delete whisky: %w", err)
	}
	return nil
}
