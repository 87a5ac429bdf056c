package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whiskybase-backend/internal/domains/review/model"
	"whiskybase-backend/internal/domains/review/repository"
	whiskyModel "whiskybase-backend/internal/domains/whisky/model"
	whiskyRepo "whiskybase-backend/internal/domains/whisky/repository"
)

func newTestService(t *testing.T) (ServiceInterface, *whiskyRepo.MemoryRepository, uuid.UUID) {
	t.Helper()

	whiskies := whiskyRepo.NewMemoryRepository()
	whiskyID := uuid.New()
	now := time.Now().UTC()
	err := whiskies.Create(context.Background(), &whiskyModel.Whisky{
		ID:          whiskyID,
		Name:        "Lagavulin 16",
		Distillery:  "Lagavulin",
		Country:     "Scotland",
		Type:        whiskyModel.TypeSingleMalt,
		ABV:         43.0,
		Description: "Peaty Islay classic",
		CaskType:    []string{},
		BottleSize:  700,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)

	svc := NewReviewService(repository.NewMemoryRepository(), whiskies)
	return svc, whiskies, whiskyID
}

func createRequest(whiskyID uuid.UUID, rating int) model.CreateReviewRequest {
	return model.CreateReviewRequest{
		WhiskyID: whiskyID,
		Username: "taster",
		Rating:   rating,
		Title:    "Solid dram",
		Comment:  "Smoke and iodine with a long finish",
	}
}

func TestCreateReviewSingleRating(t *testing.T) {
	svc, whiskies, whiskyID := newTestService(t)
	ctx := context.Background()

	rv, err := svc.CreateReview(ctx, createRequest(whiskyID, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, rv.Rating)

	w, err := whiskies.GetByID(ctx, whiskyID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, w.AverageRating)
	assert.Equal(t, 1, w.TotalReviews)
}

func TestCreateReviewAveragesAcrossReviews(t *testing.T) {
	svc, whiskies, whiskyID := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateReview(ctx, createRequest(whiskyID, 1))
	require.NoError(t, err)
	_, err = svc.CreateReview(ctx, createRequest(whiskyID, 5))
	require.NoError(t, err)

	w, err := whiskies.GetByID(ctx, whiskyID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, w.AverageRating)
	assert.Equal(t, 2, w.TotalReviews)
}

func TestCreateReviewRoundsHalfUp(t *testing.T) {
	svc, whiskies, whiskyID := newTestService(t)
	ctx := context.Background()

	for _, rating := range []int{1, 1, 2} {
		_, err := svc.CreateReview(ctx, createRequest(whiskyID, rating))
		require.NoError(t, err)
	}

	// 4/3 = 1.333... rounds to 1.3.
	w, err := whiskies.GetByID(ctx, whiskyID)
	require.NoError(t, err)
	assert.Equal(t, 1.3, w.AverageRating)
	assert.Equal(t, 3, w.TotalReviews)
}

func TestCreateReviewValidation(t *testing.T) {
	svc, _, whiskyID := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  model.CreateReviewRequest
	}{
		{"missing whisky", createRequest(uuid.Nil, 3)},
		{"rating too low", createRequest(whiskyID, 0)},
		{"rating too high", createRequest(whiskyID, 6)},
		{
			"missing comment",
			model.CreateReviewRequest{WhiskyID: whiskyID, Username: "taster", Rating: 3, Title: "t"},
		},
		{
			"aspect score out of range",
			func() model.CreateReviewRequest {
				r := createRequest(whiskyID, 3)
				nose := 7
				r.Nose = &nose
				return r
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateReview(ctx, tt.req)
			assert.Error(t, err)
		})
	}
}

func TestUpdateReviewReaggregates(t *testing.T) {
	svc, whiskies, whiskyID := newTestService(t)
	ctx := context.Background()

	rv, err := svc.CreateReview(ctx, createRequest(whiskyID, 2))
	require.NoError(t, err)
	_, err = svc.CreateReview(ctx, createRequest(whiskyID, 4))
	require.NoError(t, err)

	newRating := 5
	updated, err := svc.UpdateReview(ctx, rv.ID, model.UpdateReviewRequest{Rating: &newRating})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, whiskyID, updated.WhiskyID)

	// (5+4)/2 = 4.5
	w, err := whiskies.GetByID(ctx, whiskyID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, w.AverageRating)
	assert.Equal(t, 2, w.TotalReviews)
}

func TestUpdateReviewNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	rating := 4
	_, err := svc.UpdateReview(context.Background(), uuid.New(), model.UpdateReviewRequest{Rating: &rating})
	assert.ErrorIs(t, err, model.ErrReviewNotFound)
}

func TestDeleteReviewReaggregates(t *testing.T) {
	svc, whiskies, whiskyID := newTestService(t)
	ctx := context.Background()

	rv, err := svc.CreateReview(ctx, createRequest(whiskyID, 1))
	require.NoError(t, err)
	_, err = svc.CreateReview(ctx, createRequest(whiskyID, 5))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReview(ctx, rv.ID))

	w, err := whiskies.GetByID(ctx, whiskyID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, w.AverageRating)
	assert.Equal(t, 1, w.TotalReviews)
}

func TestDeleteLastReviewResetsAggregate(t *testing.T) {
	svc, whiskies, whiskyID := newTestService(t)
	ctx := context.Background()

	rv, err := svc.CreateReview(ctx, createRequest(whiskyID, 4))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReview(ctx, rv.ID))

	w, err := whiskies.GetByID(ctx, whiskyID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, w.AverageRating)
	assert.Equal(t, 0, w.TotalReviews)
}

func TestDeleteReviewNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.DeleteReview(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrReviewNotFound)
}

func TestRecomputeLeavesUpdatedAtAlone(t *testing.T) {
	svc, whiskies, whiskyID := newTestService(t)
	ctx := context.Background()

	before, err := whiskies.GetByID(ctx, whiskyID)
	require.NoError(t, err)

	_, err = svc.CreateReview(ctx, createRequest(whiskyID, 5))
	require.NoError(t, err)

	after, err := whiskies.GetByID(ctx, whiskyID)
	require.NoError(t, err)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
}

func TestConcurrentReviewsConsistentAggregate(t *testing.T) {
	svc, whiskies, whiskyID := newTestService(t)
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		rating := i%5 + 1
		go func(rating int) {
			defer wg.Done()
			_, err := svc.CreateReview(ctx, createRequest(whiskyID, rating))
			assert.NoError(t, err)
		}(rating)
	}
	wg.Wait()

	// 20 ratings, four of each value 1..5, mean exactly 3.
	w, err := whiskies.GetByID(ctx, whiskyID)
	require.NoError(t, err)
	assert.Equal(t, writers, w.TotalReviews)
	assert.Equal(t, 3.0, w.AverageRating)
}

func TestListReviewsNewestFirst(t *testing.T) {
	whiskies := whiskyRepo.NewMemoryRepository()
	whiskyID := uuid.New()
	now := time.Now().UTC()
	require.NoError(t, whiskies.Create(context.Background(), &whiskyModel.Whisky{
		ID: whiskyID, Name: "Test", Distillery: "Test", Country: "Scotland",
		Description: "test", CaskType: []string{}, CreatedAt: now, UpdatedAt: now,
	}))

	reviews := repository.NewMemoryRepository()
	svc := NewReviewService(reviews, whiskies)
	ctx := context.Background()

	old := model.Review{
		ID: uuid.New(), WhiskyID: whiskyID, Username: "a", Rating: 3,
		Title: "old", Comment: "c", CreatedAt: now.Add(-time.Hour),
	}
	recent := model.Review{
		ID: uuid.New(), WhiskyID: whiskyID, Username: "b", Rating: 4,
		Title: "recent", Comment: "c", CreatedAt: now,
	}
	require.NoError(t, reviews.Create(ctx, &old))
	require.NoError(t, reviews.Create(ctx, &recent))

	got, err := svc.ListReviewsForWhisky(ctx, whiskyID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "recent", got[0].Title)
	assert.Equal(t, "old", got[1].Title)
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{3.0, 3.0},
		{4.0 / 3.0, 1.3},
		{1.25, 1.3},
		{1.24, 1.2},
		{4.449, 4.4},
		{4.45, 4.5},
		{0.0, 0.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roundHalfUp(tt.in), "roundHalfUp(%v)", tt.in)
	}
}
